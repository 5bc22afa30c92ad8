package model

import (
	"fmt"
	"strings"
	"time"
)

// Meta regroupe les métadonnées extraites d'une vidéo YouTube.
type Meta struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Uploader     string         `json:"uploader,omitempty"`
	UploadDate   time.Time      `json:"upload_date,omitempty"`
	Duration     Seconds        `json:"duration,omitempty"`
	Description  string         `json:"description,omitempty"`
	Chapters     []Chapter      `json:"chapters,omitempty"`
	AutoCaps     []CaptionTrack `json:"auto_captions,omitempty"`
	ManualCaps   []CaptionTrack `json:"manual_captions,omitempty"`
}

func (m Meta) HasManualCaptions() bool {
	return len(m.ManualCaps) != 0
}

func (m Meta) HasAutoCaptions() bool {
	return len(m.AutoCaps) != 0
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[ID=%s, Title=%q, Uploader=%s, Duration=%s, Chapters=%d, Captions=%d]",
		m.ID, m.Title, m.Uploader, m.Duration.TimestampHHMMSS(),
		len(m.Chapters), len(m.AutoCaps)+len(m.ManualCaps))
}

// Pretty retourne une fiche multi-lignes simple.
// Elle montre les langues présentes dans AutoCaps et ManualCaps
// en les listant telles qu'elles apparaissent dans les CaptionTrack.
func (m Meta) Pretty() string {
	dateStr := "<unknown>"
	if !m.UploadDate.IsZero() {
		dateStr = m.UploadDate.Format("2006-01-02")
	}

	langsFrom := func(tracks []CaptionTrack) []string {
		out := make([]string, 0, len(tracks))
		for _, t := range tracks {
			// on prend la valeur telle quelle ; vide -> on ignore
			if t.Lang != "" {
				out = append(out, t.Lang)
			}
		}
		return out
	}

	formatLangs := func(list []string) string {
		if len(list) == 0 {
			return "(aucune)"
		}
		return strings.Join(list, ", ")
	}

	return fmt.Sprintf(
		"Meta:\n"+
			"  ID         : %s\n"+
			"  Title      : %q\n"+
			"  Uploader   : %s\n"+
			"  Date       : %s\n"+
			"  Duration   : %s\n"+
			"  Chapters   : %d\n"+
			"  AutoCaps   : %s\n"+
			"  ManualCaps : %s\n",
		m.ID,
		m.Title,
		m.Uploader,
		dateStr,
		m.Duration.TimestampHHMMSS(),
		len(m.Chapters),
		formatLangs(langsFrom(m.AutoCaps)),
		formatLangs(langsFrom(m.ManualCaps)),
	)
}
