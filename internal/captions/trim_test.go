package captions

import (
	"testing"

	"decoupe/pkg/model"
)

func TestTrimSegmentsToRange(t *testing.T) {
	segs := []model.TranscriptSegment{
		{Start: 0, End: 10, Text: "a"},
		{Start: 10, End: 20, Text: "b"},
		{Start: 20, End: 30, Text: "c"},
	}

	t.Run("fenêtre intérieure", func(t *testing.T) {
		out, err := TrimSegmentsToRange(segs, 12, 25)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 2 || out[0].Text != "b" || out[1].Text != "c" {
			t.Errorf("segments = %v", out)
		}
	})

	t.Run("fin ouverte", func(t *testing.T) {
		out, err := TrimSegmentsToRange(segs, 15, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 2 || out[0].Text != "b" {
			t.Errorf("segments = %v", out)
		}
	})

	t.Run("segment à cheval gardé entier", func(t *testing.T) {
		out, err := TrimSegmentsToRange(segs, 5, 15)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 2 || out[0].Start != 0 || out[1].End != 20 {
			t.Errorf("segments = %v", out)
		}
	})

	t.Run("plage vide", func(t *testing.T) {
		if _, err := TrimSegmentsToRange(segs, 100, 0); err == nil {
			t.Error("plage hors vidéo acceptée")
		}
	})

	t.Run("bornes inversées", func(t *testing.T) {
		if _, err := TrimSegmentsToRange(segs, 20, 10); err == nil {
			t.Error("bornes inversées acceptées")
		}
	})
}
