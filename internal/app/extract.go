package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"decoupe/internal/captions"
	"decoupe/internal/fetch"
	"decoupe/internal/fsutil"
	"decoupe/internal/yt"
	"decoupe/pkg/model"
	"decoupe/pkg/timecode"
)

const defaultExtractTimeout = 2 * time.Minute

// ExtractOptions contient les informations venant des flags d'extract.
type ExtractOptions struct {
	URL        string
	RangeStart string // "MM:SS" ou "HH:MM:SS", vide = début de la vidéo
	RangeEnd   string // vide = fin de la vidéo
	Lang       string // vide = cfg.Lang
}

// RunExtract télécharge les captions d'une vidéo, les transforme en segments
// datés et sauvegarde le cache JSON. Retourne le chemin du cache écrit.
func (a *App) RunExtract(ctx context.Context, opts ExtractOptions) (string, error) {
	// Récupération de l'URL : priorité flag > clipboard > prompt
	url := opts.URL
	if url == "" {
		u, err := a.ui.GetYtURL(ctx)
		if err != nil {
			return "", fmt.Errorf("get url: %w", err)
		}
		url = u
	}
	if !yt.IsYouTubeURL(url) {
		return "", fmt.Errorf("URL non reconnue comme une vidéo Youtube : %s", url)
	}

	lang := opts.Lang
	if lang == "" {
		lang = a.cfg.Lang
	}

	// Init yt-dlp (CheckBinary + version)
	dl, version, err := yt.InitYtDlp(ctx, a.cfg)
	if err != nil {
		return "", fmt.Errorf("yt init: %w", err)
	}
	a.ytClient = dl
	a.log.WithField("version", version).Debug("yt-dlp prêt")

	// Extraction des métadonnées
	exCtx, exCancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer exCancel()

	raw, err := a.ytClient.ExtractRaw(exCtx, url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("opération annulée")
		}
		return "", fmt.Errorf("extract raw: %w", err)
	}
	if a.cfg.YtDlp.ShowWarnings {
		raw.PrintWarnings()
	}

	// parse métadonnées
	meta, err := yt.ParseYTDLP(raw.JSON)
	if err != nil {
		return "", fmt.Errorf("parse ytdlp: %w", err)
	}
	a.ui.PrintInfo(ctx, meta.Pretty())

	// plage d'extraction demandée
	rng, startSec, endSec, err := resolveRange(opts.RangeStart, opts.RangeEnd, int(meta.Duration))
	if err != nil {
		return "", err
	}

	// préparation dossier de sortie
	outDir := a.cfg.OutputDir
	if a.cfg.SaveInSubdir {
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(meta.Title))
	}
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}

	// téléchargement des captions
	source := model.SubSourceAutomatic
	if a.cfg.PreferManualSubs && meta.HasManualCaptions() {
		source = model.SubSourceManual
	}

	dlSubs, err := captions.DownloadFromMeta(ctx, meta, source, lang, fetch.DefaultTimeout, fetch.DefaultMaxBytes)
	if err != nil {
		return "", err
	}
	a.log.WithFields(logrus.Fields{
		"lang":   dlSubs.Track.Lang,
		"source": dlSubs.Track.Source,
		"bytes":  len(dlSubs.Data),
	}).Info("piste de captions téléchargée")

	if a.cfg.SaveRawSubs {
		rawPath := filepath.Join(outDir, fsutil.SanitizeFilename(meta.Title)+".captions.json3")
		if err := os.WriteFile(rawPath, dlSubs.Data, filePerm); err != nil {
			return "", fmt.Errorf("write raw captions: %w", err)
		}
	}

	// json3 -> segments datés
	rawCaps, err := dlSubs.ParseRaw()
	if err != nil {
		return "", err
	}
	segments, err := captions.TransformRawToSegments(rawCaps, dlSubs.Track.Source)
	if err != nil {
		return "", fmt.Errorf("transformation des captions : %w", err)
	}

	if !rng.IsZero() {
		segments, err = captions.TrimSegmentsToRange(segments, float64(startSec), float64(endSec))
		if err != nil {
			return "", err
		}
	}
	a.log.WithField("segments", len(segments)).Info("segments construits")

	// sauvegarde du cache
	cache := captions.NewCache(meta, dlSubs.Track, rng, segments)
	cachePath := filepath.Join(outDir, cache.Filename())
	if err := cache.Save(cachePath); err != nil {
		return "", err
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("Segments écrits dans :\n%s", cachePath))
	return cachePath, nil
}

// resolveRange valide les bornes saisies et les convertit en secondes.
// Les deux bornes vides = vidéo complète ; une seule borne fournie est
// complétée (début = 0, fin = durée totale).
func resolveRange(start, end string, totalDuration int) (captions.ExtractionRange, int, int, error) {
	var rng captions.ExtractionRange
	if start == "" && end == "" {
		return rng, 0, 0, nil
	}

	if start == "" {
		start = "00:00"
	}
	if end == "" {
		end = timecode.FormatSecondsToTime(totalDuration)
	}
	if err := timecode.ValidateTimeRange(start, end, totalDuration); err != nil {
		return rng, 0, 0, err
	}

	startSec, err := timecode.ParseTimeToSeconds(start)
	if err != nil {
		return rng, 0, 0, err
	}
	endSec, err := timecode.ParseTimeToSeconds(end)
	if err != nil {
		return rng, 0, 0, err
	}
	rng = captions.ExtractionRange{Start: start, End: end}
	return rng, startSec, endSec, nil
}
