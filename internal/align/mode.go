package align

import "fmt"

// Mode fixe le seuil de similarité exigé pour accepter une fenêtre de
// segments. Les seuils sont fixes, pas réglables appel par appel.
type Mode string

const (
	ModeStrict   Mode = "strict"   // match exact après normalisation
	ModeTolerant Mode = "tolerant" // similarité >= 0.85
	ModeFuzzy    Mode = "fuzzy"    // similarité >= 0.60
)

// ParseMode convertit la chaîne de config/CLI en Mode, erreur si inconnue.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStrict, ModeTolerant, ModeFuzzy:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("mode de matching inconnu %q (attendu : strict, tolerant ou fuzzy)", s)
	}
}

// Threshold retourne le seuil de similarité du mode.
func (m Mode) Threshold() float64 {
	switch m {
	case ModeTolerant:
		return 0.85
	case ModeFuzzy:
		return 0.60
	default:
		return 1.0
	}
}

// Suggestion retourne le conseil de remédiation à afficher quand aucune
// fenêtre n'atteint le seuil dans ce mode.
func (m Mode) Suggestion() string {
	switch m {
	case ModeStrict:
		return "essayez le mode tolerant ou fuzzy, ou restaurez le texte d'origine du transcript"
	case ModeTolerant:
		return "essayez le mode fuzzy, ou rapprochez vos éditions du transcript d'origine"
	default:
		return "rapprochez vos éditions du transcript d'origine (le mode fuzzy est déjà le plus permissif)"
	}
}
