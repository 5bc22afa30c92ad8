package align

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"decoupe/pkg/model"
)

// windowLengthFactor : garde d'arrêt de l'expansion de fenêtre. Dès que le
// texte candidat dépasse ce multiple de la longueur du texte de page, aucun
// match raisonnable n'existe à proximité et on abandonne la page.
const windowLengthFactor = 2

// excerptLen : longueur max des extraits de texte inclus dans les erreurs.
const excerptLen = 120

// SegmentMatcher matche, page après page, un document édité sur la séquence
// ordonnée des segments ASR. Le curseur interne avance de façon monotone :
// chaque segment consommé ne peut plus être réattribué, ce qui garantit
// qu'une phrase répétée dans le document se lie à SA répétition dans l'audio
// (chronologiquement) et jamais deux fois au même segment.
//
// Contrainte d'usage : une instance par document, créée via NewSegmentMatcher
// puis appelée séquentiellement dans l'ordre des pages. Le curseur n'est pas
// réinitialisable : ne pas partager une instance entre documents, ne pas
// appeler MatchPage depuis plusieurs goroutines.
type SegmentMatcher struct {
	segments []model.TranscriptSegment
	mode     Mode
	cursor   int // index du premier segment pas encore consommé
	log      *logrus.Entry
}

// NewSegmentMatcher construit un matcher sur la séquence complète des
// segments. log sert uniquement aux diagnostics (diffs des matchs imparfaits) ;
// nil est accepté.
func NewSegmentMatcher(segments []model.TranscriptSegment, mode Mode, log *logrus.Entry) *SegmentMatcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SegmentMatcher{
		segments: segments,
		mode:     mode,
		log:      log,
	}
}

// Remaining retourne le nombre de segments pas encore consommés.
func (sm *SegmentMatcher) Remaining() int {
	return len(sm.segments) - sm.cursor
}

// MatchPage cherche la première fenêtre de segments contigus, à partir du
// curseur, dont le texte concaténé atteint le seuil du mode. En cas de
// succès le curseur avance de la taille de la fenêtre ; si la confiance est
// < 1.0 un diff mot à mot est loggé (observabilité seulement, le résultat
// n'en dépend pas). Le numéro de page est fourni par l'appelant et recopié
// tel quel dans le résultat.
func (sm *SegmentMatcher) MatchPage(pageNumber int, pageText string) (model.MatchedSegment, error) {
	var empty model.MatchedSegment

	normPage := Normalize(pageText)
	if normPage == "" {
		return empty, fmt.Errorf("page %d : texte vide après normalisation", pageNumber)
	}

	remaining := sm.segments[sm.cursor:]
	if len(remaining) == 0 {
		return empty, fmt.Errorf(
			"page %d : tous les segments du transcript sont déjà consommés, impossible de matcher %q",
			pageNumber, excerpt(normPage))
	}

	threshold := sm.mode.Threshold()

	var firstScore float64
	for windowSize := 1; windowSize <= len(remaining); windowSize++ {
		candidate := remaining[:windowSize]
		candText := windowText(candidate)
		score := Similarity(normPage, candText)
		if windowSize == 1 {
			firstScore = score
		}

		if score >= threshold {
			sm.cursor += windowSize
			if score < 1.0 {
				sm.logImperfectMatch(pageNumber, normPage, candText, score)
			}
			// copie : le résultat ne doit pas aliaser le tableau interne
			segs := make([]model.TranscriptSegment, windowSize)
			copy(segs, candidate)
			return model.MatchedSegment{
				PageNumber: pageNumber,
				Segments:   segs,
				Confidence: score,
			}, nil
		}

		// fenêtre déjà bien plus longue que la page : inutile de l'étendre
		if len(candText) > windowLengthFactor*len(normPage) {
			break
		}
	}

	return empty, &NoMatchError{
		PageNumber: pageNumber,
		Mode:       sm.mode,
		Threshold:  threshold,
		Similarity: firstScore,
		Candidate:  remaining[0].Text,
		PageText:   excerpt(normPage),
	}
}

// windowText concatène les textes d'une fenêtre de segments (séparés par un
// espace) puis normalise le tout.
func windowText(segs []model.TranscriptSegment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, s.Text)
	}
	return Normalize(strings.Join(parts, " "))
}

func (sm *SegmentMatcher) logImperfectMatch(pageNumber int, normPage, candText string, score float64) {
	added, removed := wordDiff(normPage, candText)
	sm.log.WithFields(logrus.Fields{
		"page":       pageNumber,
		"confidence": fmt.Sprintf("%.0f%%", score*100),
		"added":      strings.Join(added, " "),
		"removed":    strings.Join(removed, " "),
	}).Warn("match accepté avec une confiance imparfaite")
}

func excerpt(s string) string {
	if len(s) <= excerptLen {
		return s
	}
	// couper sur une frontière de rune
	cut := excerptLen
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "…"
}

// NoMatchError détaille l'échec du matching d'une page : similarité mesurée
// sur le premier candidat, seuil exigé, textes impliqués et suggestion de
// remédiation. C'est l'échec attendu du workflow (l'utilisateur ré-édite son
// document ou relâche le mode puis relance), pas un crash.
type NoMatchError struct {
	PageNumber int
	Mode       Mode
	Threshold  float64
	Similarity float64
	Candidate  string // texte littéral du premier segment candidat
	PageText   string // texte de page normalisé, tronqué
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf(
		"page %d : aucune fenêtre de segments n'atteint le seuil %.0f%% (mode %s) ; meilleure similarité %.0f%%\n"+
			"  transcript : %q\n"+
			"  page       : %q\n"+
			"  suggestion : %s",
		e.PageNumber, e.Threshold*100, e.Mode, e.Similarity*100,
		e.Candidate, e.PageText, e.Mode.Suggestion())
}
