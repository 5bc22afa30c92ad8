package align

// Similarity calcule l'indice de Jaccard entre les ensembles de tokens des
// deux textes : |intersection| / |union|, dans [0,1]. La comparaison est
// ensembliste (pas de comptage des répétitions) et insensible à l'ordre des
// mots, ce qui tolère les reformulations légères typiques d'un transcript
// édité à la main tout en restant bon marché (pas de distance d'édition).
//
// Les deux entrées passent par Normalize, donc l'appelant peut fournir du
// texte brut ou déjà normalisé indifféremment. Deux textes vides sont
// considérés identiques (score 1.0) pour éviter la division par zéro.
func Similarity(a, b string) float64 {
	setA := tokenSet(Normalize(a))
	setB := tokenSet(Normalize(b))

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}
