package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"decoupe/internal/align"
	"decoupe/internal/assets"
	"decoupe/internal/captions"
	"decoupe/internal/document"
	"decoupe/internal/fsutil"
	"decoupe/internal/report"
	"decoupe/pkg/model"
	"decoupe/pkg/timecode"
)

// MatchOptions contient les informations venant des flags de match.
type MatchOptions struct {
	SegmentsPath string // cache produit par extract
	DocumentPath string // document de pages "---"
	Mode         string // vide = cfg.Matching.Mode
	OutDir       string // vide = dossier du cache
}

// MatchResult regroupe ce que RunMatch a produit, pour l'affichage final.
type MatchResult struct {
	Pages          []model.PageDefinition
	Matches        []model.MatchedSegment
	Derived        []model.DerivedTimestamp
	Warnings       []string
	TimestampsPath string
	ReportPath     string
}

// RunMatch apparie un document de pages avec un cache de segments, dérive les
// timestamps de chaque page et écrit le YAML (plus le rapport markdown si la
// config le demande).
func (a *App) RunMatch(ctx context.Context, opts MatchOptions) (*MatchResult, error) {
	modeStr := opts.Mode
	if modeStr == "" {
		modeStr = a.cfg.Matching.Mode
	}
	mode, err := align.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	cache, err := captions.LoadCache(opts.SegmentsPath)
	if err != nil {
		return nil, err
	}

	pages, parseWarnings, err := document.ParseFile(opts.DocumentPath)
	if err != nil {
		return nil, err
	}
	for _, w := range parseWarnings {
		a.log.Warn(w)
	}

	// appariement page par page, dans l'ordre du document
	matcher := align.NewSegmentMatcher(cache.Segments, mode, a.log)
	matches := make([]model.MatchedSegment, 0, len(pages))
	for _, p := range pages {
		m, err := matcher.MatchPage(p.Number, p.Text)
		if err != nil {
			return nil, fmt.Errorf("appariement du document %s : %w", opts.DocumentPath, err)
		}
		matches = append(matches, m)
	}
	if rem := matcher.Remaining(); rem > 0 {
		a.log.WithField("segments", rem).Warn("segments de transcription non couverts par le document")
	}

	derived, durationWarnings, err := align.DeriveTimestamps(matches, align.DeriveOptions{
		MinPageDuration: a.cfg.Matching.MinPageDuration,
		MaxPageDuration: a.cfg.Matching.MaxPageDuration,
	})
	if err != nil {
		return nil, err
	}
	for _, w := range durationWarnings {
		a.log.Warn(w)
	}

	// contrôle final : chaque page doit rester dans la durée de l'extrait
	trimmedDuration := cache.Segments[len(cache.Segments)-1].End
	for _, d := range derived {
		if err := timecode.ValidatePageTimestamps(d.Start, d.End, trimmedDuration, d.PageNumber); err != nil {
			return nil, err
		}
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Dir(opts.SegmentsPath)
	}

	res := &MatchResult{
		Pages:    pages,
		Matches:  matches,
		Derived:  derived,
		Warnings: append(parseWarnings, durationWarnings...),
	}

	// YAML des timestamps
	data, err := yaml.Marshal(derived)
	if err != nil {
		return nil, fmt.Errorf("encodage YAML des timestamps : %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(opts.SegmentsPath), ".segments.json")
	res.TimestampsPath = filepath.Join(outDir, base+".timestamps.yaml")
	if err := fsutil.WriteFileAtomic(res.TimestampsPath, data, filePerm); err != nil {
		return nil, fmt.Errorf("écriture des timestamps %s : %w", res.TimestampsPath, err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Timestamps écrits dans :\n%s", res.TimestampsPath))

	// rapport markdown
	if a.cfg.SaveReport {
		reportPath, err := a.writeReport(&cache, mode, res, outDir)
		if err != nil {
			return nil, err
		}
		res.ReportPath = reportPath
		a.ui.PrintInfo(ctx, fmt.Sprintf("Rapport écrit dans :\n%s", reportPath))
	}

	return res, nil
}

func (a *App) writeReport(cache *captions.Cache, mode align.Mode, res *MatchResult, outDir string) (string, error) {
	renderer, err := report.NewRendererFromFS(assets.Embedded, []string{"templates/*.tmpl"})
	if err != nil {
		return "", err
	}

	data, err := report.BuildReportData(cache, mode, res.Pages, res.Matches, res.Derived, res.Warnings)
	if err != nil {
		return "", err
	}
	content, err := renderer.Render(report.ReportName, data)
	if err != nil {
		return "", err
	}

	title := cache.Title
	if title == "" {
		title = "découpage"
	}
	return fsutil.SaveMarkdownAtomic(outDir, fsutil.SanitizeFilename(title+" (découpage)"), content, true)
}
