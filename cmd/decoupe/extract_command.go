package main

import (
	"github.com/spf13/cobra"

	"decoupe/internal/app"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var opts app.ExtractOptions

	cmd := &cobra.Command{
		Use:   "extract [url]",
		Short: "Télécharge la transcription d'une vidéo et écrit le cache de segments",
		Long: "Télécharge les sous-titres d'une vidéo Youtube (manuels ou automatiques\n" +
			"selon la configuration), les transforme en segments datés et les écrit\n" +
			"dans un fichier .segments.json réutilisable par `decoupe match`.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.URL = args[0]
			}
			_, err = a.RunExtract(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.RangeStart, "from", "", "début de la plage à garder (MM:SS ou HH:MM:SS)")
	cmd.Flags().StringVar(&opts.RangeEnd, "to", "", "fin de la plage à garder (MM:SS ou HH:MM:SS)")
	cmd.Flags().StringVar(&opts.Lang, "lang", "", "langue des sous-titres (défaut : config)")

	return cmd
}
