package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"decoupe/internal/yt"
)

const appVersion = "1.0.0"

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Affiche la version de decoupe et celle de yt-dlp",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("decoupe %s\n", appVersion)

			// version de yt-dlp : best-effort, la config peut manquer
			if _, err := ctx.ensureApp(); err != nil {
				return nil
			}
			if _, version, err := yt.InitYtDlp(cmd.Context(), ctx.cfg); err == nil {
				fmt.Printf("yt-dlp  %s\n", version)
			}
			return nil
		},
	}
}
