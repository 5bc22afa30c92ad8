package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"decoupe/internal/captions"
	"decoupe/internal/config"
	"decoupe/pkg/model"
)

type fakeUI struct{}

func (fakeUI) GetYtURL(ctx context.Context) (string, error) { return "", nil }
func (fakeUI) WaitForExit(ctx context.Context) error        { return nil }
func (fakeUI) PrintInfo(ctx context.Context, s string)      {}
func (fakeUI) PrintError(ctx context.Context, s string)     {}

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.OutputDir = t.TempDir()
	cfg.Lang = "fr"
	cfg.Matching.Mode = "tolerant"
	cfg.Matching.MinPageDuration = 3
	cfg.Matching.MaxPageDuration = 120
	cfg.SaveReport = true
	return cfg
}

func writeMatchFixtures(t *testing.T, dir string) (segmentsPath, docPath string) {
	t.Helper()

	cache := captions.NewCache(
		&model.Meta{ID: "vid123", Title: "Ma vidéo"},
		model.CaptionTrack{Lang: "fr-orig", Source: model.SubSourceAutomatic},
		captions.ExtractionRange{},
		[]model.TranscriptSegment{
			{Start: 0, End: 4, Text: "Bonjour à tous"},
			{Start: 4, End: 9, Text: "aujourd'hui on parle de Go"},
		},
	)
	segmentsPath = filepath.Join(dir, cache.Filename())
	if err := cache.Save(segmentsPath); err != nil {
		t.Fatal(err)
	}

	doc := "# Page 1 : Intro\nBonjour à tous\n---\n# Page 2 : Sujet\naujourd'hui on parle de Go\n---\n"
	docPath = filepath.Join(dir, "pages.md")
	if err := os.WriteFile(docPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return segmentsPath, docPath
}

func TestRunMatchEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	a := New(cfg, fakeUI{}, quietLog())

	segmentsPath, docPath := writeMatchFixtures(t, cfg.OutputDir)

	res, err := a.RunMatch(context.Background(), MatchOptions{
		SegmentsPath: segmentsPath,
		DocumentPath: docPath,
	})
	if err != nil {
		t.Fatalf("RunMatch: %v", err)
	}

	if len(res.Derived) != 2 {
		t.Fatalf("Derived = %d, attendu 2", len(res.Derived))
	}
	if res.Derived[0].Start != 0 || res.Derived[0].End != 4 {
		t.Errorf("page 1 = [%.1f, %.1f], attendu [0, 4]", res.Derived[0].Start, res.Derived[0].End)
	}
	if res.Derived[1].Start != 4 || res.Derived[1].End != 9 {
		t.Errorf("page 2 = [%.1f, %.1f], attendu [4, 9]", res.Derived[1].Start, res.Derived[1].End)
	}

	// fichiers produits
	if _, err := os.Stat(res.TimestampsPath); err != nil {
		t.Errorf("timestamps absents : %v", err)
	}
	b, err := os.ReadFile(res.TimestampsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "page_number: 1") {
		t.Errorf("YAML inattendu :\n%s", b)
	}
	if res.ReportPath == "" {
		t.Fatal("rapport non généré alors que save_report = true")
	}
	if _, err := os.Stat(res.ReportPath); err != nil {
		t.Errorf("rapport absent : %v", err)
	}
}

func TestRunMatchStrictRejectsDivergence(t *testing.T) {
	cfg := testConfig(t)
	a := New(cfg, fakeUI{}, quietLog())

	segmentsPath, _ := writeMatchFixtures(t, cfg.OutputDir)

	// le document diverge d'un mot : strict doit refuser
	doc := "Bonjour à vous\n---\n"
	docPath := filepath.Join(cfg.OutputDir, "divergent.md")
	if err := os.WriteFile(docPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := a.RunMatch(context.Background(), MatchOptions{
		SegmentsPath: segmentsPath,
		DocumentPath: docPath,
		Mode:         "strict",
	})
	if err == nil {
		t.Fatal("divergence acceptée en mode strict")
	}
}

func TestRunMatchUnknownMode(t *testing.T) {
	cfg := testConfig(t)
	a := New(cfg, fakeUI{}, quietLog())
	_, err := a.RunMatch(context.Background(), MatchOptions{Mode: "exact"})
	if err == nil {
		t.Fatal("mode inconnu accepté")
	}
}
