package model

import "fmt"

// TranscriptSegment représente un span de parole produit par l'ASR, avec ses
// bornes temporelles en secondes. Immuable une fois produit par l'extraction :
// le matching ne fait que le lire.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration retourne la durée du segment en secondes.
func (s TranscriptSegment) Duration() float64 {
	return s.End - s.Start
}

func (s TranscriptSegment) String() string {
	return fmt.Sprintf("[%.2f-%.2f] %q", s.Start, s.End, s.Text)
}

// PageDefinition représente une page du document édité, avant matching.
// Number est 1-based et séquentiel ; Text est déjà normalisé (espaces).
type PageDefinition struct {
	Number int    `json:"page_number"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// MatchedSegment est le résultat du matching d'une page sur une suite
// contiguë de segments. Segments est une sous-séquence contiguë du tableau
// d'origine, dans l'ordre d'origine ; Confidence vaut 1.0 pour un match
// exact après normalisation, moins pour une acceptation fuzzy.
type MatchedSegment struct {
	PageNumber int                 `json:"page_number"`
	Segments   []TranscriptSegment `json:"segments"`
	Confidence float64             `json:"confidence"`
}

// DerivedTimestamp contient les bornes temporelles d'une page, calculées
// depuis le premier et le dernier segment matchés. Destiné à l'étape de
// découpe audio en aval (ffmpeg ou équivalent, hors de ce dépôt).
type DerivedTimestamp struct {
	PageNumber int     `json:"page_number" yaml:"page_number"`
	Start      float64 `json:"start_time" yaml:"start_time"`
	End        float64 `json:"end_time" yaml:"end_time"`
	Duration   float64 `json:"duration" yaml:"duration"`
}
