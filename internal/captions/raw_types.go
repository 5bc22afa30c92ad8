package captions

import "strings"

// rawJSON3 représente la structure brute telle qu'on la récupère depuis
// yt-dlp / YouTube json3.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	AAppend     *int     `json:"aAppend,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
	// On ignore volontairement les autres champs (wpWinPosId, wWinId, etc.)
}

type rawSeg struct {
	Utf8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

// IsNewlineOnly indique si l'event ne contient que des retours à la ligne :
// true pour des segs qui ne contiennent que "\n", "\\n" ou des espaces.
func (e rawEvent) IsNewlineOnly() bool {
	if len(e.Segs) == 0 {
		return false
	}
	for _, s := range e.Segs {
		t := strings.TrimSpace(s.Utf8)
		if t == "" {
			continue
		}
		if t == "\n" || t == "\\n" {
			continue
		}
		// du contenu non-newline : l'event porte du texte
		return false
	}
	return true
}

// endMs retourne la fin absolue de l'event (tStartMs + dDurationMs) et true,
// ou (0, false) si l'une des deux valeurs manque.
func (e rawEvent) endMs() (int64, bool) {
	if e.TStartMs == nil || e.DDurationMs == nil {
		return 0, false
	}
	return *e.TStartMs + *e.DDurationMs, true
}
