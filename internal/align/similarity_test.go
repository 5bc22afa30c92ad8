package align

import (
	"math"
	"testing"
)

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello World",
		"  Bonjour   le\tmonde \n",
		"Je me RÉVEILLE sans réveil",
		"日本語のテキスト",
		"déjà  vu…  déjà",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize non idempotente pour %q : %q != %q", in, once, twice)
		}
	}
}

func TestNormalizePreservesDiacritics(t *testing.T) {
	got := Normalize("  Élève  RÉVEILLÉ\nà   Genève ")
	want := "élève réveillé à genève"
	if got != want {
		t.Fatalf("Normalize = %q; want %q", got, want)
	}
}

func TestNormalizeComposedAndDecomposedAgree(t *testing.T) {
	// "é" précomposé (U+00E9) vs "e" + combining acute (U+0301)
	composed := "réveil"
	decomposed := "réveil"
	if Normalize(composed) != Normalize(decomposed) {
		t.Fatalf("NFC attendu : %q et %q doivent normaliser pareil", composed, decomposed)
	}
}

func TestSimilarityProperties(t *testing.T) {
	pairs := [][2]string{
		{"bonjour je m'appelle liam", "je me reveille sans reveil"},
		{"hello world", "world hello"},
		{"", "quelque chose"},
		{"un deux trois", "un deux trois quatre"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("symétrie violée pour %q/%q : %v != %v", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Errorf("score hors bornes pour %q/%q : %v", p[0], p[1], ab)
		}
	}

	if got := Similarity("bonjour tout le monde", "bonjour tout le monde"); got != 1.0 {
		t.Errorf("score(a,a) = %v; want 1.0", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("score(\"\",\"\") = %v; want 1.0", got)
	}
}

func TestSimilarityKnownValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		// ensembles {a,b} et {b,c} : intersection 1, union 3
		{"a b", "b c", 1.0 / 3.0},
		// ordre et répétitions ignorés
		{"hello hello world", "world hello", 1.0},
		// scénario du workflow : un mot inséré parmi 5
		{"je me reveille sans un reveil", "je me reveille sans reveil", 5.0 / 6.0},
	}
	for _, tc := range tests {
		got := Similarity(tc.a, tc.b)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Similarity(%q, %q) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestWordDiff(t *testing.T) {
	added, removed := wordDiff("je me reveille sans un reveil", "je me reveille sans reveil")
	if len(added) != 1 || added[0] != "un" {
		t.Errorf("added = %v; want [un]", added)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %v; want []", removed)
	}

	added, removed = wordDiff("bonjour le monde", "salut le monde")
	if len(added) != 1 || added[0] != "bonjour" {
		t.Errorf("added = %v; want [bonjour]", added)
	}
	if len(removed) != 1 || removed[0] != "salut" {
		t.Errorf("removed = %v; want [salut]", removed)
	}
}
