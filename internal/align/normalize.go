// Package align contient le coeur de l'alignement texte/transcript :
// normalisation, similarité par ensembles de tokens, matching séquentiel des
// pages sur les segments ASR et dérivation des timestamps de page.
package align

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize produit la forme canonique d'un texte pour comparaison :
// NFC (les encodages composé/décomposé d'un même caractère accentué
// deviennent égaux), minuscules Unicode, espaces/retours/tabs réduits à un
// espace ASCII unique, trim. Aucune translittération : les diacritiques et
// les scripts non latins sont conservés tels quels.
// Idempotente : Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// tokenSet retourne l'ensemble des tokens uniques d'une chaîne normalisée
// (découpage sur les espaces, doublons fusionnés).
func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
