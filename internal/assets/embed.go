package assets

import "embed"

//go:embed decoupe.example.yaml
//go:embed templates/*.tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "decoupe.example.yaml"

// MatchReportTemplate : chemin DANS Embedded du template de rapport.
const MatchReportTemplate = "templates/match_report.md.tmpl"
