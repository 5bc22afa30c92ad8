package timecode

import "fmt"

// rangeEndSlack : tolérance d'une seconde sur la borne de fin, pour absorber
// les arrondis entre la durée annoncée par yt-dlp et les timestamps réels.
const rangeEndSlack = 1

// ValidateTimeRange vérifie qu'une plage "start-end" demandée par
// l'utilisateur est cohérente avec la durée totale connue du média.
// startTime et endTime sont les chaînes "MM:SS"/"HH:MM:SS" d'origine ;
// totalDuration est en secondes.
func ValidateTimeRange(startTime, endTime string, totalDuration int) error {
	start, err := ParseTimeToSeconds(startTime)
	if err != nil {
		return fmt.Errorf("borne de début : %w", err)
	}
	end, err := ParseTimeToSeconds(endTime)
	if err != nil {
		return fmt.Errorf("borne de fin : %w", err)
	}

	if start < 0 {
		return fmt.Errorf("borne de début négative : %s (%ds)", FormatSecondsToTime(start), start)
	}
	if start >= end {
		return fmt.Errorf("la borne de début %s (%ds) doit précéder la borne de fin %s (%ds) d'au moins une seconde",
			FormatSecondsToTime(start), start, FormatSecondsToTime(end), end)
	}
	if start > totalDuration {
		return fmt.Errorf("la borne de début %s (%ds) dépasse la durée totale %s (%ds)",
			FormatSecondsToTime(start), start, FormatSecondsToTime(totalDuration), totalDuration)
	}
	if end > totalDuration+rangeEndSlack {
		return fmt.Errorf("la borne de fin %s (%ds) dépasse la durée totale %s (%ds)",
			FormatSecondsToTime(end), end, FormatSecondsToTime(totalDuration), totalDuration)
	}
	return nil
}

// ValidatePageTimestamps applique les mêmes contrôles à une page, mais en
// secondes flottantes et relativement à la durée du média déjà trimé
// (00:00 = début de l'extrait, pas de la vidéo source). Chaque message est
// préfixé du numéro de page pour la traçabilité.
func ValidatePageTimestamps(pageStart, pageEnd, trimmedDuration float64, pageNumber int) error {
	if pageStart < 0 {
		return fmt.Errorf("page %d : début négatif (%.2fs)", pageNumber, pageStart)
	}
	if pageEnd <= pageStart {
		return fmt.Errorf("page %d : le début %s (%.2fs) doit précéder la fin %s (%.2fs)",
			pageNumber, FormatSecondsToTime(int(pageStart)), pageStart, FormatSecondsToTime(int(pageEnd)), pageEnd)
	}
	if pageEnd-pageStart < 1 {
		return fmt.Errorf("page %d : plage trop courte (%.2fs, minimum 1s)", pageNumber, pageEnd-pageStart)
	}
	if pageStart > trimmedDuration {
		return fmt.Errorf("page %d : le début %s (%.2fs) dépasse la durée de l'extrait %s (%.2fs)",
			pageNumber, FormatSecondsToTime(int(pageStart)), pageStart, FormatSecondsToTime(int(trimmedDuration)), trimmedDuration)
	}
	if pageEnd > trimmedDuration+rangeEndSlack {
		return fmt.Errorf("page %d : la fin %s (%.2fs) dépasse la durée de l'extrait %s (%.2fs)",
			pageNumber, FormatSecondsToTime(int(pageEnd)), pageEnd, FormatSecondsToTime(int(trimmedDuration)), trimmedDuration)
	}
	return nil
}
