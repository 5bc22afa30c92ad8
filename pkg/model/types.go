package model

import "fmt"

// Seconds est un alias explicite pour représenter une durée en secondes entières.
type Seconds int64

// TimestampHHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres par composant).
// Exemple : 65 -> "00:01:05", 3661 -> "01:01:01".
func (s Seconds) TimestampHHMMSS() string {
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// SubSource représente la provenance d'une piste de sous-titres.
// automatic = captions ASR générées par Youtube
// manual = fournies par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}

// Chapter représente un chapitre d'une vidéo avec un timestamp et un titre.
type Chapter struct {
	Start Seconds `json:"start"`
	Title string  `json:"title"`
}

// CaptionTrack décrit une piste de sous-titres associée à une vidéo.
type CaptionTrack struct {
	Lang   string    `json:"lang"`
	Format string    `json:"format,omitempty"`
	URL    string    `json:"url,omitempty"`
	Source SubSource `json:"source,omitempty"`
}

func (c CaptionTrack) String() string {
	return fmt.Sprintf("CaptionTrack(lang=%s, format=%s, source=%s)", c.Lang, c.Format, c.Source)
}
