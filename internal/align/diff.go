package align

import "strings"

// wordDiff compare les tokens de la page et du candidat : added = mots de la
// page absents du transcript, removed = mots du transcript absents de la
// page. L'ordre d'apparition est conservé, les doublons fusionnés. Les deux
// entrées sont supposées déjà normalisées.
func wordDiff(page, candidate string) (added, removed []string) {
	pageSet := tokenSet(page)
	candSet := tokenSet(candidate)

	added = missingFrom(page, candSet)
	removed = missingFrom(candidate, pageSet)
	return added, removed
}

// missingFrom liste, dans l'ordre et sans doublon, les tokens de s absents
// de l'ensemble other.
func missingFrom(s string, other map[string]struct{}) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := other[tok]; !ok {
			out = append(out, tok)
		}
	}
	return out
}
