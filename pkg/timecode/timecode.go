// Package timecode fournit le parsing et la validation des timestamps
// "MM:SS" / "HH:MM:SS" utilisés pour délimiter les plages d'extraction et
// vérifier les bornes des pages avant toute découpe audio.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeToSeconds convertit "MM:SS" ou "HH:MM:SS" en secondes.
// - MM:SS : minutes sans limite de magnitude, secondes 0-59.
// - HH:MM:SS : heures sans limite, minutes 0-59, secondes 0-59.
// Toute autre forme (composant non numérique, négatif, hors bornes)
// retourne une erreur nommant le format attendu.
func ParseTimeToSeconds(s string) (int, error) {
	raw := strings.TrimSpace(s)
	parts := strings.Split(raw, ":")

	parseComponent := func(p, name string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("timestamp %q invalide : composant %s non numérique (format attendu MM:SS ou HH:MM:SS)", raw, name)
		}
		if v < 0 {
			return 0, fmt.Errorf("timestamp %q invalide : composant %s négatif (format attendu MM:SS ou HH:MM:SS)", raw, name)
		}
		return v, nil
	}

	switch len(parts) {
	case 2:
		m, err := parseComponent(parts[0], "minutes")
		if err != nil {
			return 0, err
		}
		sec, err := parseComponent(parts[1], "secondes")
		if err != nil {
			return 0, err
		}
		if sec > 59 {
			return 0, fmt.Errorf("timestamp %q invalide : secondes %d hors bornes (0-59)", raw, sec)
		}
		return m*60 + sec, nil
	case 3:
		h, err := parseComponent(parts[0], "heures")
		if err != nil {
			return 0, err
		}
		m, err := parseComponent(parts[1], "minutes")
		if err != nil {
			return 0, err
		}
		sec, err := parseComponent(parts[2], "secondes")
		if err != nil {
			return 0, err
		}
		if m > 59 {
			return 0, fmt.Errorf("timestamp %q invalide : minutes %d hors bornes (0-59)", raw, m)
		}
		if sec > 59 {
			return 0, fmt.Errorf("timestamp %q invalide : secondes %d hors bornes (0-59)", raw, sec)
		}
		return h*3600 + m*60 + sec, nil
	default:
		return 0, fmt.Errorf("timestamp %q invalide : format attendu MM:SS ou HH:MM:SS", raw)
	}
}

// FormatSecondsToTime est l'inverse de ParseTimeToSeconds : "MM:SS" si moins
// d'une heure, "HH:MM:SS" sinon. Minutes et secondes toujours sur 2 chiffres
// (heures aussi quand présentes).
func FormatSecondsToTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
