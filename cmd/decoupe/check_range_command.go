package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"decoupe/pkg/timecode"
)

// newCheckRangeCommand valide une plage sans rien télécharger : pratique pour
// vérifier des bornes avant de lancer un extract long.
func newCheckRangeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-range <début> <fin> <durée totale>",
		Short: "Vérifie qu'une plage début/fin est cohérente avec une durée",
		Long: "Vérifie qu'une plage de temps (MM:SS ou HH:MM:SS) est valide par rapport\n" +
			"à la durée totale d'une vidéo : bornes bien formées, début avant fin,\n" +
			"aucune borne au-delà de la durée.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := timecode.ParseTimeToSeconds(args[2])
			if err != nil {
				return fmt.Errorf("durée totale : %w", err)
			}
			if err := timecode.ValidateTimeRange(args[0], args[1], total); err != nil {
				return err
			}
			fmt.Printf("Plage valide : %s → %s (durée totale %s)\n",
				args[0], args[1], timecode.FormatSecondsToTime(total))
			return nil
		},
	}
	return cmd
}
