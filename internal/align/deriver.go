package align

import (
	"fmt"
	"math"

	"decoupe/pkg/model"
)

// DeriveOptions fixe les seuils (en secondes) des avertissements de durée.
// Des valeurs <= 0 retombent sur les défauts.
type DeriveOptions struct {
	MinPageDuration float64
	MaxPageDuration float64
}

// DefaultDeriveOptions : en dessous de 3s une page ne correspond
// probablement pas à un vrai span audio, au dessus de 120s elle est
// suspecte pour du contenu paginé.
func DefaultDeriveOptions() DeriveOptions {
	return DeriveOptions{
		MinPageDuration: 3,
		MaxPageDuration: 120,
	}
}

// DeriveTimestamps calcule les bornes de chaque page depuis ses segments
// matchés : début = début du premier segment, fin = fin du dernier. Fonction
// batch pure, à une exception près : les durées implausibles produisent des
// avertissements (jamais des rejets) retournés à l'appelant.
//
// Un groupe de segments vide ou des bornes inversées signalent un bug dans
// la séquence d'appel (données construites sans passer par le matcher) :
// erreur immédiate, indexée par page, sans coercition silencieuse.
func DeriveTimestamps(matches []model.MatchedSegment, opts DeriveOptions) ([]model.DerivedTimestamp, []string, error) {
	if opts.MinPageDuration <= 0 {
		opts.MinPageDuration = DefaultDeriveOptions().MinPageDuration
	}
	if opts.MaxPageDuration <= 0 {
		opts.MaxPageDuration = DefaultDeriveOptions().MaxPageDuration
	}

	out := make([]model.DerivedTimestamp, 0, len(matches))
	var warnings []string

	for _, m := range matches {
		if len(m.Segments) == 0 {
			return nil, warnings, fmt.Errorf("page %d : aucun segment matché, impossible de dériver les timestamps", m.PageNumber)
		}
		start := m.Segments[0].Start
		end := m.Segments[len(m.Segments)-1].End
		if end <= start {
			return nil, warnings, fmt.Errorf("page %d : fin %.2fs <= début %.2fs, segments incohérents", m.PageNumber, end, start)
		}

		duration := end - start
		if duration < opts.MinPageDuration {
			warnings = append(warnings, fmt.Sprintf("page %d : durée très courte (%s, moins de %.0fs)",
				m.PageNumber, FormatDuration(duration), opts.MinPageDuration))
		} else if duration > opts.MaxPageDuration {
			warnings = append(warnings, fmt.Sprintf("page %d : durée très longue (%s, plus de %.0fs)",
				m.PageNumber, FormatDuration(duration), opts.MaxPageDuration))
		}

		out = append(out, model.DerivedTimestamp{
			PageNumber: m.PageNumber,
			Start:      start,
			End:        end,
			Duration:   duration,
		})
	}
	return out, warnings, nil
}

// FormatDuration affiche une durée en "M:SS" (minutes sans zéro initial),
// pour les tableaux et les messages.
func FormatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
