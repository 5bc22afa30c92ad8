package align

import (
	"strings"
	"testing"

	"decoupe/pkg/model"
)

func TestDeriveTimestampsEndToEnd(t *testing.T) {
	matches := []model.MatchedSegment{
		{PageNumber: 1, Confidence: 1, Segments: []model.TranscriptSegment{seg(0, 2, "Bonjour je m'appelle Liam")}},
		{PageNumber: 2, Confidence: 1, Segments: []model.TranscriptSegment{seg(2, 5, "Je me reveille sans reveil")}},
	}

	got, warnings, err := DeriveTimestamps(matches, DefaultDeriveOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.DerivedTimestamp{
		{PageNumber: 1, Start: 0, End: 2, Duration: 2},
		{PageNumber: 2, Start: 2, End: 5, Duration: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("timestamps[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
	// 2s et 3s sont sous le seuil de 3s pour la première page seulement
	if len(warnings) != 1 || !strings.Contains(warnings[0], "page 1") {
		t.Errorf("warnings = %v; want un seul avertissement courte durée pour la page 1", warnings)
	}
}

func TestDeriveTimestampsMultiSegmentSpan(t *testing.T) {
	matches := []model.MatchedSegment{
		{PageNumber: 1, Segments: []model.TranscriptSegment{
			seg(1.5, 4, "première moitié"),
			seg(4, 9.25, "seconde moitié"),
		}},
	}
	got, _, err := DeriveTimestamps(matches, DefaultDeriveOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Start != 1.5 || got[0].End != 9.25 || got[0].Duration != 7.75 {
		t.Errorf("got %+v; want start 1.5, end 9.25, duration 7.75", got[0])
	}
}

func TestDeriveTimestampsInvariantViolations(t *testing.T) {
	t.Run("groupe vide", func(t *testing.T) {
		_, _, err := DeriveTimestamps([]model.MatchedSegment{{PageNumber: 4}}, DefaultDeriveOptions())
		if err == nil || !strings.Contains(err.Error(), "page 4") {
			t.Fatalf("expected page-indexed error, got %v", err)
		}
	})

	t.Run("bornes inversées", func(t *testing.T) {
		m := []model.MatchedSegment{{PageNumber: 7, Segments: []model.TranscriptSegment{seg(5, 5, "x")}}}
		_, _, err := DeriveTimestamps(m, DefaultDeriveOptions())
		if err == nil || !strings.Contains(err.Error(), "page 7") {
			t.Fatalf("expected page-indexed error, got %v", err)
		}
	})
}

func TestDeriveTimestampsDurationWarnings(t *testing.T) {
	matches := []model.MatchedSegment{
		{PageNumber: 1, Segments: []model.TranscriptSegment{seg(0, 1, "trop court")}},
		{PageNumber: 2, Segments: []model.TranscriptSegment{seg(1, 31, "durée normale")}},
		{PageNumber: 3, Segments: []model.TranscriptSegment{seg(31, 200, "trop long")}},
	}
	got, warnings, err := DeriveTimestamps(matches, DefaultDeriveOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// les avertissements sont consultatifs : les trois pages sont retournées
	if len(got) != 3 {
		t.Fatalf("len = %d; want 3 (les warnings ne rejettent jamais)", len(got))
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v; want 2 (page 1 courte, page 3 longue)", warnings)
	}
	if !strings.Contains(warnings[0], "page 1") || !strings.Contains(warnings[0], "courte") {
		t.Errorf("warnings[0] = %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "page 3") || !strings.Contains(warnings[1], "longue") {
		t.Errorf("warnings[1] = %q", warnings[1])
	}
}

func TestDeriveTimestampsCustomThresholds(t *testing.T) {
	matches := []model.MatchedSegment{
		{PageNumber: 1, Segments: []model.TranscriptSegment{seg(0, 2, "x")}},
	}
	_, warnings, err := DeriveTimestamps(matches, DeriveOptions{MinPageDuration: 1, MaxPageDuration: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v; want aucun avec un seuil min abaissé", warnings)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{2, "0:02"},
		{62.4, "1:02"},
		{90, "1:30"},
		{754, "12:34"},
	}
	for _, tc := range tests {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
