package yt

import "testing"

const sampleYtdlpJSON = `{
	"id": "abc123",
	"title": "Ma vidéo",
	"uploader": "chaine",
	"upload_date": "20240115",
	"duration": 754.2,
	"chapters": [
		{"start_time": 0, "title": "Intro"},
		{"start": 120.6, "title": "Suite"}
	],
	"subtitles": {
		"fr": [
			{"ext": "vtt", "url": "https://example.com/fr.vtt"},
			{"ext": "json3", "url": "https://example.com/fr.json3"}
		]
	},
	"automatic_captions": {
		"en": [{"ext": "json3", "url": "https://example.com/en.json3"}],
		"fr-orig": [{"ext": "json3", "url": "https://example.com/fr-orig.json3"}]
	}
}`

func TestParseYTDLP(t *testing.T) {
	meta, err := ParseYTDLP([]byte(sampleYtdlpJSON))
	if err != nil {
		t.Fatalf("ParseYTDLP: %v", err)
	}

	if meta.ID != "abc123" || meta.Title != "Ma vidéo" {
		t.Errorf("identité inattendue : %s / %q", meta.ID, meta.Title)
	}
	if int64(meta.Duration) != 754 {
		t.Errorf("Duration = %d, attendu 754", meta.Duration)
	}
	if meta.UploadDate.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("UploadDate = %s", meta.UploadDate)
	}

	if len(meta.Chapters) != 2 {
		t.Fatalf("Chapters = %d, attendu 2", len(meta.Chapters))
	}
	// le second chapitre utilise le champ fallback "start", arrondi
	if int64(meta.Chapters[1].Start) != 121 {
		t.Errorf("Chapters[1].Start = %d, attendu 121", meta.Chapters[1].Start)
	}

	// manuels : seul le json3 est retenu (le vtt est écarté)
	if len(meta.ManualCaps) != 1 {
		t.Fatalf("ManualCaps = %d, attendu 1", len(meta.ManualCaps))
	}
	if meta.ManualCaps[0].Lang != "fr" || meta.ManualCaps[0].Format != "json3" {
		t.Errorf("ManualCaps[0] = %+v", meta.ManualCaps[0])
	}

	// automatiques : seule la piste -orig est retenue
	if len(meta.AutoCaps) != 1 {
		t.Fatalf("AutoCaps = %d, attendu 1", len(meta.AutoCaps))
	}
	if meta.AutoCaps[0].Lang != "fr-orig" {
		t.Errorf("AutoCaps[0].Lang = %s, attendu fr-orig", meta.AutoCaps[0].Lang)
	}
}

func TestIsYouTubeURL(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"HTTPS://YOUTU.BE/abc", true},
		{"https://vimeo.com/12345", false},
		{"pas une url", false},
	}
	for _, c := range cases {
		if got := IsYouTubeURL(c.url); got != c.want {
			t.Errorf("IsYouTubeURL(%q) = %v, attendu %v", c.url, got, c.want)
		}
	}
}
