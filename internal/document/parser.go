// Package document parse le document de pages édité par l'utilisateur :
// des pages séparées par une ligne "---", chacune avec un titre optionnel
// "# Page N : Titre" et un corps en texte libre.
package document

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"decoupe/pkg/model"
)

// minPageChars : en dessous de cette longueur normalisée, une page a peu de
// chances de correspondre à un vrai span audio ; on avertit sans rejeter.
const minPageChars = 10

// pageDelimiter matche une ligne ne contenant que trois tirets, espaces
// autour tolérés.
var pageDelimiter = regexp.MustCompile(`(?m)^[ \t]*---[ \t]*$`)

// headingPattern matche la ligne d'en-tête optionnelle d'une page.
// Formes acceptées (insensible à la casse) : "# Page", "# Page 3",
// "# Page 3:", "# Page 3 : Mon titre", "## page: Titre". Le numéro, les
// deux-points et le titre sont optionnels ; le croisillon initial est exigé
// pour qu'un corps commençant par le mot "page" ne soit jamais avalé comme
// en-tête. Ce motif est un point de divergence subtil entre implémentations :
// le documenter ici est volontaire.
var headingPattern = regexp.MustCompile(`(?i)^#+\s*page\b\s*(\d+)?\s*:?\s*(.*)$`)

// ParseFile lit le document depuis path et le parse.
func ParseFile(path string) ([]model.PageDefinition, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("lecture du document %s impossible : %w", path, err)
	}
	return Parse(string(data))
}

// Parse découpe le document en pages ordonnées. Retourne les pages, une
// liste d'avertissements non fatals (pages très courtes) et une erreur si le
// document est malformé : aucun délimiteur, ou page intérieure vide (seul le
// chunk final vide, dû à un délimiteur de fin, est toléré).
// Les caractères non ASCII sont conservés tels quels : pas de
// translittération, le parser doit rester fiable pour les langues à
// diacritiques ou non latines.
func Parse(doc string) ([]model.PageDefinition, []string, error) {
	chunks := pageDelimiter.Split(doc, -1)
	if len(chunks) < 2 {
		return nil, nil, fmt.Errorf("aucun délimiteur de page (ligne \"---\") dans le document : au moins un saut de page est requis")
	}

	var pages []model.PageDefinition
	var warnings []string

	for i, chunk := range chunks {
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			// chunk final vide (délimiteur en fin de document) : toléré
			if i == len(chunks)-1 {
				continue
			}
			return nil, warnings, fmt.Errorf("page %d : contenu vide", len(pages)+1)
		}

		pageNumber := len(pages) + 1
		title, body := splitHeading(trimmed, pageNumber)

		body = strings.Join(strings.Fields(body), " ")
		if body == "" {
			return nil, warnings, fmt.Errorf("page %d : contenu vide", pageNumber)
		}
		if len([]rune(body)) < minPageChars {
			warnings = append(warnings, fmt.Sprintf("page %d : texte très court (%q), match audio improbable", pageNumber, body))
		}

		pages = append(pages, model.PageDefinition{
			Number: pageNumber,
			Title:  title,
			Text:   body,
		})
	}

	if len(pages) == 0 {
		return nil, warnings, fmt.Errorf("document sans aucune page non vide")
	}
	return pages, warnings, nil
}

// splitHeading isole l'éventuelle ligne d'en-tête du chunk. Retourne le
// titre (explicite, ou "Page N" par défaut) et le corps restant.
func splitHeading(chunk string, pageNumber int) (title, body string) {
	title = fmt.Sprintf("Page %d", pageNumber)
	body = chunk

	first, rest, _ := strings.Cut(chunk, "\n")
	m := headingPattern.FindStringSubmatch(strings.TrimSpace(first))
	if m == nil {
		return title, body
	}

	if t := strings.TrimSpace(m[2]); t != "" {
		title = t
	}
	return title, rest
}
