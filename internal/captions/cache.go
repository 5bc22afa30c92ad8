package captions

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"decoupe/internal/fsutil"
	"decoupe/pkg/model"
)

const CacheVersion = 1

// ExtractionRange mémorise la plage demandée par l'utilisateur telle qu'il
// l'a saisie ("MM:SS"/"HH:MM:SS") : on conserve les chaînes d'origine pour
// l'affichage, pas les secondes parsées.
type ExtractionRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

func (r ExtractionRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

func (r ExtractionRange) String() string {
	if r.IsZero() {
		return "(vidéo complète)"
	}
	return fmt.Sprintf("%s → %s", r.Start, r.End)
}

// Cache est le fichier JSON intermédiaire entre l'extraction et le matching :
// les segments datés + de quoi retracer d'où ils viennent.
type Cache struct {
	Version   int                       `json:"version"`
	RunID     string                    `json:"run_id"`
	VideoID   string                    `json:"video_id"`
	Title     string                    `json:"title"`
	Lang      string                    `json:"lang"`
	Source    model.SubSource           `json:"source"`
	Range     ExtractionRange           `json:"extraction_range,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
	Segments  []model.TranscriptSegment `json:"segments"`
}

// NewCache assemble un cache prêt à sauvegarder, avec un run id frais.
func NewCache(m *model.Meta, track model.CaptionTrack, rng ExtractionRange, segments []model.TranscriptSegment) Cache {
	c := Cache{
		Version:   CacheVersion,
		RunID:     uuid.NewString(),
		Lang:      track.Lang,
		Source:    track.Source,
		Range:     rng,
		CreatedAt: time.Now().UTC(),
		Segments:  segments,
	}
	if m != nil {
		c.VideoID = m.ID
		c.Title = m.Title
	}
	return c
}

// Filename compose le nom de fichier du cache à partir du titre de la vidéo.
// Exemple : "Une journée à Paris (fr).segments.json".
func (c Cache) Filename() string {
	base := fsutil.SanitizeFilename(c.Title)
	lang := c.Lang
	if lang == "" {
		lang = "und"
	}
	return fmt.Sprintf("%s (%s).segments.json", base, lang)
}

// Save écrit le cache en JSON indenté, atomiquement.
func (c Cache) Save(path string) error {
	if len(c.Segments) == 0 {
		return fmt.Errorf("cache %s : aucun segment à sauvegarder", path)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encodage JSON du cache : %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("écriture du cache %s : %w", path, err)
	}
	return nil
}

// LoadCache lit et valide un cache de segments. Les erreurs distinguent le
// fichier introuvable, le JSON illisible et les segments incohérents.
func LoadCache(path string) (Cache, error) {
	var c Cache

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, fmt.Errorf("fichier de segments introuvable : %s (lancer `decoupe extract` d'abord ?)", path)
		}
		return c, fmt.Errorf("lecture du cache %s : %w", path, err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("cache %s illisible : %w", path, err)
	}

	if len(c.Segments) == 0 {
		return c, fmt.Errorf("cache %s : aucun segment", path)
	}
	for i, s := range c.Segments {
		if s.End <= s.Start {
			return c, fmt.Errorf("cache %s : segment %d : fin %.2fs <= début %.2fs", path, i, s.End, s.Start)
		}
	}
	return c, nil
}
