package captions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"decoupe/internal/fetch"
	"decoupe/pkg/model"
)

var ErrNoCaptions = errors.New("aucune piste de captions disponible pour cette source")

// Download contient la piste choisie + contexte utile (titre) + payload.
type Download struct {
	Title string
	Track model.CaptionTrack
	Data  []byte // nil tant que non téléchargé
}

// SelectTrack choisit la piste à télécharger pour la source et la langue
// demandées : format json3 obligatoire, match exact de langue d'abord, puis
// variante "-orig" (piste d'origine non traduite), puis préfixe ("fr"
// matche "fr-FR"). ErrNoCaptions si rien ne convient.
func SelectTrack(m *model.Meta, source model.SubSource, lang string) (model.CaptionTrack, error) {
	var empty model.CaptionTrack
	if m == nil {
		return empty, fmt.Errorf("SelectTrack: meta nil")
	}

	var tracks []model.CaptionTrack
	switch source {
	case model.SubSourceManual:
		tracks = m.ManualCaps
	default:
		tracks = m.AutoCaps
	}

	var json3 []model.CaptionTrack
	for _, t := range tracks {
		if t.Format == "json3" && t.URL != "" {
			json3 = append(json3, t)
		}
	}
	if len(json3) == 0 {
		return empty, ErrNoCaptions
	}

	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return json3[0], nil
	}

	for _, t := range json3 {
		if strings.ToLower(t.Lang) == lang {
			return t, nil
		}
	}
	for _, t := range json3 {
		if strings.ToLower(t.Lang) == lang+"-orig" {
			return t, nil
		}
	}
	for _, t := range json3 {
		if strings.HasPrefix(strings.ToLower(t.Lang), lang) {
			return t, nil
		}
	}
	return empty, fmt.Errorf("%w : langue %q absente", ErrNoCaptions, lang)
}

// DownloadFromMeta sélectionne puis télécharge la piste de captions.
func DownloadFromMeta(ctx context.Context, m *model.Meta, source model.SubSource, lang string, timeout time.Duration, maxBytes int64) (Download, error) {
	var empty Download

	track, err := SelectTrack(m, source, lang)
	if err != nil {
		return empty, err
	}

	data, err := fetch.BytesWithTimeout(ctx, track.URL, timeout, maxBytes)
	if err != nil {
		return empty, fmt.Errorf("téléchargement de la piste %s : %w", track, err)
	}
	if len(data) == 0 {
		return empty, fmt.Errorf("piste %s : réponse vide", track)
	}

	return Download{
		Title: m.Title,
		Track: track,
		Data:  data,
	}, nil
}

// ParseRaw parse d.Data et retourne la structure json3 brute.
func (d *Download) ParseRaw() (rawJSON3, error) {
	var empty rawJSON3
	if d == nil || len(d.Data) == 0 {
		return empty, fmt.Errorf("ParseRaw: pas de données dans Download (nil/empty)")
	}
	return ParseJSON3Bytes(d.Data)
}
