package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	cfg.normalizeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("la configuration par défaut doit être valide : %v", err)
	}
}

func TestValidateRejectsBadMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Matching.Mode = "approximatif"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("mode invalide accepté")
	}
	if !strings.Contains(err.Error(), "matching.mode") {
		t.Errorf("message inattendu : %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decoupe.yaml")
	content := `
lang: en
matching:
  mode: fuzzy
  min_page_duration: 5
  max_page_duration: 60
config_version: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != "en" {
		t.Errorf("Lang = %q, attendu en", cfg.Lang)
	}
	if cfg.Matching.Mode != "fuzzy" {
		t.Errorf("Matching.Mode = %q, attendu fuzzy", cfg.Matching.Mode)
	}
	if cfg.Matching.MinPageDuration != 5 || cfg.Matching.MaxPageDuration != 60 {
		t.Errorf("durées = %v/%v", cfg.Matching.MinPageDuration, cfg.Matching.MaxPageDuration)
	}
	// champ absent -> valeur par défaut conservée
	if !cfg.PreferManualSubs {
		t.Error("PreferManualSubs devrait garder sa valeur par défaut (true)")
	}
}

func TestResolveYtDlpPath(t *testing.T) {
	cfg := defaultConfig()

	cfg.YtDlp.Path = ""
	cfg.ResolveYtDlpPath()
	if !strings.HasSuffix(cfg.YtDlp.ResolvedPath, cfg.YtDlp.Name) {
		t.Errorf("ResolvedPath = %q", cfg.YtDlp.ResolvedPath)
	}

	// chemin répertoire : on joint le nom de l'exe
	cfg.YtDlp.Path = filepath.Join("tools", "bin")
	cfg.ResolveYtDlpPath()
	if filepath.Base(cfg.YtDlp.ResolvedPath) != cfg.YtDlp.Name {
		t.Errorf("ResolvedPath = %q", cfg.YtDlp.ResolvedPath)
	}
}
