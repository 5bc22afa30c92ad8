package captions

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"decoupe/pkg/model"
)

// transform.go : conversion du json3 brut en segments datés début/fin.
// Le format ASR fournit des timestamps par mot (tOffsetMs + tStartMs) ; on
// reconstruit des phrases en coupant sur les ponctuations, les pauses
// longues et une limite de sécurité en nombre de mots. Les sous-titres
// manuels sont des blocs déjà datés (tStartMs + dDurationMs) : un bloc = un
// segment.

const (
	// seuil pour couper une phrase quand la pause entre deux mots est trop longue
	pauseThresholdMs = 2000
	// sécurité : nombre maximum de mots par segment
	maxWordsPerSegment = 100
	// queue par défaut quand aucune fin d'event n'est connue au commit
	defaultTailMs = 600
	// durée minimale d'un segment après bornage par le suivant
	minSegmentMs = 300
)

// TransformRawToSegments convertit la structure json3 en segments datés,
// selon la provenance de la piste.
func TransformRawToSegments(raw rawJSON3, source model.SubSource) ([]model.TranscriptSegment, error) {
	if source == model.SubSourceManual {
		return transformManualEvents(raw), nil
	}
	return transformASREvents(raw), nil
}

// pendingSegment accumule une phrase en cours de construction (bornes en ms).
type pendingSegment struct {
	startMs int64
	endMs   int64
	text    string
}

// transformASREvents reconstruit des phrases depuis des captions ASR datées
// au mot. La fin d'un segment est provisoire (fin d'event ou dernière
// position de mot + queue) puis bornée par le début du segment suivant.
func transformASREvents(raw rawJSON3) []model.TranscriptSegment {
	var pending []pendingSegment

	var (
		sb             strings.Builder
		currentStartMs int64 = -1 // timestamp du premier mot de la phrase en cours
		lastWordTs     int64 = -1 // timestamp du dernier mot vu (pour la pause)
		currentEndMs   int64 = -1 // meilleure estimation de fin connue
	)

	commit := func() {
		txt := strings.TrimSpace(sb.String())
		sb.Reset()
		if txt == "" {
			currentStartMs = -1
			currentEndMs = -1
			return
		}
		start := currentStartMs
		if start < 0 {
			start = lastWordTs
		}
		if start < 0 {
			start = 0
		}
		end := currentEndMs
		if end <= start {
			end = start + defaultTailMs
		}
		pending = append(pending, pendingSegment{startMs: start, endMs: end, text: txt})
		currentStartMs = -1
		currentEndMs = -1
	}

	appendText := func(s string) {
		s = cleanSeg(s)
		if s == "" {
			return
		}
		if sb.Len() == 0 {
			sb.WriteString(s)
		} else {
			sb.WriteByte(' ')
			sb.WriteString(s)
		}
	}

	for _, ev := range raw.Events {
		if ev.IsNewlineOnly() {
			continue
		}
		evEnd, evEndOK := ev.endMs()

		for _, seg := range ev.Segs {
			s := strings.ReplaceAll(seg.Utf8, "\\n", "\n")
			if strings.TrimSpace(s) == "" {
				continue
			}

			ts, tsOK := absTimeMs(ev, seg)
			if tsOK {
				// pause plus longue que le seuil : on coupe la phrase en cours
				if lastWordTs >= 0 && (ts-lastWordTs) > pauseThresholdMs && sb.Len() > 0 {
					commit()
				}
				lastWordTs = ts
				if currentStartMs < 0 {
					currentStartMs = ts
				}
			}
			if evEndOK && evEnd > currentEndMs {
				currentEndMs = evEnd
			}

			appendText(s)

			// sécurité : limiter la longueur en nombre de mots
			if len(strings.Fields(sb.String())) >= maxWordsPerSegment {
				commit()
				continue
			}

			// commit si le seg se termine par un terminator de phrase
			trimmed := trimTrailingClosers(s)
			if r, ok := lastNonSpaceRune(trimmed); ok && isSentenceTerminatorRune(r) {
				commit()
			}
		}
	}
	commit()

	return finalizeSegments(pending)
}

// transformManualEvents : un event manuel = un bloc déjà borné, donc un
// segment. Les blocs vides ou sans timestamp sont ignorés.
func transformManualEvents(raw rawJSON3) []model.TranscriptSegment {
	var pending []pendingSegment
	for _, ev := range raw.Events {
		if ev.TStartMs == nil || ev.IsNewlineOnly() {
			continue
		}
		var parts []string
		for _, seg := range ev.Segs {
			if t := cleanSeg(seg.Utf8); t != "" {
				parts = append(parts, t)
			}
		}
		text := strings.TrimSpace(strings.Join(parts, " "))
		if text == "" {
			continue
		}
		start := *ev.TStartMs
		end, ok := ev.endMs()
		if !ok || end <= start {
			end = start + defaultTailMs
		}
		pending = append(pending, pendingSegment{startMs: start, endMs: end, text: text})
	}
	return finalizeSegments(pending)
}

// finalizeSegments borne chaque fin provisoire par le début du segment
// suivant (les estimations par event se chevauchent souvent), garantit
// end > start, et convertit les millisecondes en secondes.
func finalizeSegments(pending []pendingSegment) []model.TranscriptSegment {
	out := make([]model.TranscriptSegment, 0, len(pending))
	for i, p := range pending {
		end := p.endMs
		if i+1 < len(pending) {
			next := pending[i+1].startMs
			if next > p.startMs && end > next {
				end = next
			}
		}
		if end <= p.startMs {
			end = p.startMs + minSegmentMs
		}
		out = append(out, model.TranscriptSegment{
			Start: float64(p.startMs) / 1000,
			End:   float64(end) / 1000,
			Text:  p.text,
		})
	}
	return out
}

// absTimeMs calcule le timestamp absolu d'un mot : tStartMs (event) +
// tOffsetMs (mot). Le booléen vaut false quand ni l'event ni le seg ne
// portent de timestamp (un ts de 0 reste un vrai timestamp).
func absTimeMs(ev rawEvent, seg rawSeg) (int64, bool) {
	var base int64
	ok := false
	if ev.TStartMs != nil {
		base = *ev.TStartMs
		ok = true
	}
	if seg.TOffsetMs != nil {
		return base + *seg.TOffsetMs, true
	}
	return base, ok
}

func isSentenceTerminatorRune(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloserRune(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', ')', ']', '}', '»':
		return true
	}
	return false
}

// trimTrailingClosers enlève guillemets/parenthèses fermantes accolées à la
// fin qui masquent un terminator.
func trimTrailingClosers(s string) string {
	for {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
		if s == "" {
			return s
		}
		r, size := utf8.DecodeLastRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			// octet invalide : on le retire et on continue
			s = s[:len(s)-1]
			continue
		}
		if isCloserRune(r) {
			s = s[:len(s)-size]
			continue
		}
		break
	}
	return s
}

// lastNonSpaceRune retourne la dernière rune non blanche, et true si trouvée.
func lastNonSpaceRune(s string) (rune, bool) {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[:len(s)-1]
			continue
		}
		if !unicode.IsSpace(r) {
			return r, true
		}
		s = s[:len(s)-size]
	}
	return 0, false
}

// cleanSeg normalise un seg : convertit "\n" et "\\n" en espaces, réduit les
// séquences d'espaces, trim.
func cleanSeg(s string) string {
	s = strings.ReplaceAll(s, "\\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
