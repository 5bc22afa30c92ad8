package captions

import (
	"fmt"

	"decoupe/pkg/model"
)

// TrimSegmentsToRange ne garde que les segments qui chevauchent la fenêtre
// [startSec, endSec]. endSec <= 0 signifie "jusqu'à la fin". Les segments ne
// sont pas recoupés : un segment à cheval sur une borne est gardé entier, le
// découpage par pages se charge du reste.
func TrimSegmentsToRange(segments []model.TranscriptSegment, startSec, endSec float64) ([]model.TranscriptSegment, error) {
	if endSec > 0 && endSec <= startSec {
		return nil, fmt.Errorf("plage invalide : fin %.0fs <= début %.0fs", endSec, startSec)
	}

	var out []model.TranscriptSegment
	for _, s := range segments {
		if s.End <= startSec {
			continue
		}
		if endSec > 0 && s.Start >= endSec {
			break // segments ordonnés : plus rien à garder
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		end := "la fin"
		if endSec > 0 {
			end = fmt.Sprintf("%.0fs", endSec)
		}
		return nil, fmt.Errorf("aucun segment dans la plage %.0fs → %s", startSec, end)
	}
	return out, nil
}
