package align

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"decoupe/pkg/model"
)

func quietEntry() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func seg(start, end float64, text string) model.TranscriptSegment {
	return model.TranscriptSegment{Start: start, End: end, Text: text}
}

func TestMatchPageExactSingleSegment(t *testing.T) {
	sm := NewSegmentMatcher([]model.TranscriptSegment{
		seg(0, 2, "Bonjour je m'appelle Liam"),
		seg(2, 5, "Je me reveille sans reveil"),
	}, ModeStrict, quietEntry())

	m, err := sm.MatchPage(1, "Bonjour je m'appelle Liam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PageNumber != 1 {
		t.Errorf("PageNumber = %d; want 1", m.PageNumber)
	}
	if m.Confidence != 1.0 {
		t.Errorf("Confidence = %v; want 1.0", m.Confidence)
	}
	if len(m.Segments) != 1 || m.Segments[0].Start != 0 || m.Segments[0].End != 2 {
		t.Errorf("Segments = %v; want le premier segment seul", m.Segments)
	}
}

func TestMatchPageMultiSegmentWindow(t *testing.T) {
	sm := NewSegmentMatcher([]model.TranscriptSegment{
		seg(0, 1.5, "Bonjour je"),
		seg(1.5, 3, "m'appelle Liam"),
		seg(3, 5, "Je me reveille"),
	}, ModeStrict, quietEntry())

	m, err := sm.MatchPage(1, "Bonjour je m'appelle Liam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Segments) != 2 {
		t.Fatalf("len(Segments) = %d; want 2", len(m.Segments))
	}
	if sm.Remaining() != 1 {
		t.Errorf("Remaining = %d; want 1", sm.Remaining())
	}
}

// le cas qui motive tout l'algorithme : une phrase répétée trois fois doit
// se lier à ses trois occurrences successives, jamais deux fois à la même
func TestRepeatedPhraseBindsSequentially(t *testing.T) {
	segs := []model.TranscriptSegment{
		seg(0, 1, "hello"),
		seg(1, 2, "hello"),
		seg(2, 3, "hello"),
	}
	sm := NewSegmentMatcher(segs, ModeStrict, quietEntry())

	for i := 0; i < 3; i++ {
		m, err := sm.MatchPage(i+1, "hello")
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", i+1, err)
		}
		if len(m.Segments) != 1 {
			t.Fatalf("page %d: len(Segments) = %d; want 1", i+1, len(m.Segments))
		}
		if m.Segments[0].Start != float64(i) {
			t.Errorf("page %d: Start = %v; want %d", i+1, m.Segments[0].Start, i)
		}
	}

	// tout est consommé : le prochain appel doit échouer explicitement
	if _, err := sm.MatchPage(4, "hello"); err == nil {
		t.Fatal("expected exhaustion error, got nil")
	} else if !strings.Contains(err.Error(), "déjà consommés") {
		t.Errorf("exhaustion error = %q", err.Error())
	}
}

// invariant de partition : la concaténation des résultats couvre un préfixe
// du tableau d'origine, sans chevauchement ni réordonnancement
func TestPartitionInvariant(t *testing.T) {
	segs := []model.TranscriptSegment{
		seg(0, 2, "un"),
		seg(2, 4, "deux"),
		seg(4, 6, "trois"),
		seg(6, 8, "quatre"),
		seg(8, 10, "cinq"),
	}
	sm := NewSegmentMatcher(segs, ModeStrict, quietEntry())

	pages := []string{"un deux", "trois", "quatre cinq"}
	var flat []model.TranscriptSegment
	for i, p := range pages {
		m, err := sm.MatchPage(i+1, p)
		if err != nil {
			t.Fatalf("page %d: %v", i+1, err)
		}
		flat = append(flat, m.Segments...)
	}

	if len(flat) != len(segs) {
		t.Fatalf("préfixe couvert = %d segments; want %d", len(flat), len(segs))
	}
	for i := range flat {
		if flat[i] != segs[i] {
			t.Errorf("segment %d: %v != %v", i, flat[i], segs[i])
		}
	}
}

func TestThresholdsPerMode(t *testing.T) {
	// page avec un mot inséré : similarité exacte 5/6 ~ 0.833
	page := "Je me reveille sans un reveil"
	transcript := []model.TranscriptSegment{seg(0, 3, "Je me reveille sans reveil")}

	tests := []struct {
		mode   Mode
		accept bool
	}{
		{ModeStrict, false},
		{ModeTolerant, false}, // 0.833 < 0.85
		{ModeFuzzy, true},
	}
	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			sm := NewSegmentMatcher(transcript, tc.mode, quietEntry())
			m, err := sm.MatchPage(1, page)
			if tc.accept {
				if err != nil {
					t.Fatalf("mode %s: unexpected error: %v", tc.mode, err)
				}
				want := 5.0 / 6.0
				if diff := m.Confidence - want; diff > 1e-12 || diff < -1e-12 {
					t.Errorf("Confidence = %v; want %v (la valeur Jaccard exacte, pas 1.0)", m.Confidence, want)
				}
				return
			}
			if err == nil {
				t.Fatalf("mode %s: expected rejection", tc.mode)
			}
		})
	}
}

// monotonie des seuils : tout ce que strict accepte, tolerant et fuzzy
// l'acceptent aussi
func TestThresholdMonotonicity(t *testing.T) {
	segs := []model.TranscriptSegment{seg(0, 4, "le chat dort sur le tapis")}
	page := "le chat dort sur le tapis"

	for _, mode := range []Mode{ModeStrict, ModeTolerant, ModeFuzzy} {
		sm := NewSegmentMatcher(segs, mode, quietEntry())
		if _, err := sm.MatchPage(1, page); err != nil {
			t.Errorf("mode %s: rejet inattendu d'un match exact : %v", mode, err)
		}
	}
}

func TestNoMatchErrorDetails(t *testing.T) {
	sm := NewSegmentMatcher([]model.TranscriptSegment{
		seg(0, 2, "totalement autre chose"),
	}, ModeTolerant, quietEntry())

	_, err := sm.MatchPage(3, "le texte de ma page")
	if err == nil {
		t.Fatal("expected error")
	}

	var nme *NoMatchError
	if !errors.As(err, &nme) {
		t.Fatalf("expected *NoMatchError, got %T", err)
	}
	if nme.PageNumber != 3 {
		t.Errorf("PageNumber = %d; want 3", nme.PageNumber)
	}
	if nme.Threshold != 0.85 {
		t.Errorf("Threshold = %v; want 0.85", nme.Threshold)
	}

	msg := err.Error()
	for _, want := range []string{"page 3", "tolerant", "85%", "totalement autre chose", "suggestion"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q ne contient pas %q", msg, want)
		}
	}
}

// la garde 2x : face à des segments sans rapport et bien plus longs que la
// page, l'expansion s'arrête au lieu de balayer tout le transcript
func TestEarlyExitGuardStopsExpansion(t *testing.T) {
	segs := []model.TranscriptSegment{
		seg(0, 5, "une très longue phrase qui n'a strictement aucun rapport avec la page demandée"),
		seg(5, 10, "et une autre phrase tout aussi longue et tout aussi hors sujet pour la suite"),
	}
	sm := NewSegmentMatcher(segs, ModeStrict, quietEntry())

	_, err := sm.MatchPage(1, "court")
	if err == nil {
		t.Fatal("expected no-match error")
	}
	// l'échec n'a rien consommé : le curseur reste au début
	if sm.Remaining() != len(segs) {
		t.Errorf("Remaining = %d; want %d (échec ne consomme pas)", sm.Remaining(), len(segs))
	}
}
