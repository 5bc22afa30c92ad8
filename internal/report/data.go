package report

import (
	"fmt"
	"time"

	"decoupe/internal/align"
	"decoupe/internal/captions"
	"decoupe/pkg/model"
	"decoupe/pkg/timecode"
)

// ReportName est le basename du template de rapport dans les assets embarqués.
const ReportName = "match_report.md.tmpl"

// ReportPage est une ligne du tableau des pages du rapport.
type ReportPage struct {
	Number     int
	Title      string
	Start      string
	End        string
	Duration   string
	Confidence string
}

// ReportData alimente le template match_report.md.tmpl.
type ReportData struct {
	Title     string
	VideoID   string
	Lang      string
	Source    string
	Mode      string
	Range     string
	CreatedAt string
	Pages     []ReportPage
	Warnings  []string
}

// BuildReportData assemble les données du rapport à partir du cache de segments,
// des pages et des résultats d'appariement. pages, matches et derived doivent
// être alignés par index (une entrée par page, dans l'ordre).
func BuildReportData(cache *captions.Cache, mode align.Mode,
	pages []model.PageDefinition, matches []model.MatchedSegment,
	derived []model.DerivedTimestamp, warnings []string) (ReportData, error) {

	if cache == nil {
		return ReportData{}, fmt.Errorf("cache nil")
	}
	if len(pages) != len(matches) || len(pages) != len(derived) {
		return ReportData{}, fmt.Errorf("incohérence pages/appariements : %d pages, %d appariements, %d timestamps",
			len(pages), len(matches), len(derived))
	}

	rd := ReportData{
		Title:     cache.Title,
		VideoID:   cache.VideoID,
		Lang:      cache.Lang,
		Source:    cache.Source.String(),
		Mode:      string(mode),
		Range:     cache.Range.String(),
		CreatedAt: time.Now().Format("2006-01-02 15:04"),
		Warnings:  append([]string(nil), warnings...),
	}

	for i, d := range derived {
		rd.Pages = append(rd.Pages, ReportPage{
			Number:     d.PageNumber,
			Title:      pages[i].Title,
			Start:      timecode.FormatSecondsToTime(int(d.Start)),
			End:        timecode.FormatSecondsToTime(int(d.End)),
			Duration:   align.FormatDuration(d.Duration),
			Confidence: fmt.Sprintf("%.0f %%", matches[i].Confidence*100),
		})
	}

	return rd, nil
}
