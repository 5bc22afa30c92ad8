package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"decoupe/internal/align"
	"decoupe/internal/app"
	"decoupe/pkg/timecode"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var opts app.MatchOptions

	cmd := &cobra.Command{
		Use:   "match <segments.json> <document.md>",
		Short: "Apparie un document de pages avec les segments et dérive les timestamps",
		Long: "Apparie chaque page du document (séparées par ---) avec la transcription\n" +
			"du cache de segments, dérive le timestamp de début et de fin de chaque\n" +
			"page et écrit le résultat en YAML (plus un rapport markdown si demandé).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			opts.SegmentsPath = args[0]
			opts.DocumentPath = args[1]

			res, err := a.RunMatch(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Println(renderMatchTable(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", "", "mode d'appariement : strict, tolerant ou fuzzy (défaut : config)")
	cmd.Flags().StringVar(&opts.OutDir, "out", "", "dossier de sortie (défaut : dossier du cache)")

	return cmd
}

func renderMatchTable(res *app.MatchResult) string {
	rows := make([][]string, 0, len(res.Derived))
	for i, d := range res.Derived {
		rows = append(rows, []string{
			strconv.Itoa(d.PageNumber),
			res.Pages[i].Title,
			timecode.FormatSecondsToTime(int(d.Start)),
			timecode.FormatSecondsToTime(int(d.End)),
			align.FormatDuration(d.Duration),
			fmt.Sprintf("%.0f %%", res.Matches[i].Confidence*100),
		})
	}
	return renderTable(
		[]string{"Page", "Titre", "Début", "Fin", "Durée", "Confiance"},
		rows,
		[]int{0, 2, 3, 4, 5}, // colonnes numériques alignées à droite
	)
}
