package yt

// YtDlpConfig représente les flags ajoutables quand on invoque yt-dlp
type YtDlpConfig struct {
	SkipDownload bool
	NoWarnings   bool // true => ajouter --no-warnings
	NoProgress   bool
	NoUpdate     bool
	NoConfig     bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewYtDlpConfig initialise une configuration standard de yt-dlp,
// showWarnings vient du yaml de config.
func NewYtDlpConfig(showWarnings bool) *YtDlpConfig {
	return &YtDlpConfig{
		SkipDownload: true,
		NoWarnings:   !showWarnings,
		NoProgress:   true,
		NoUpdate:     true,
		NoConfig:     true, // ignorer les configs extérieures : comportement prévisible
	}
}

// BuildArgs construit la slice d'arguments à passer à yt-dlp.
func (c *YtDlpConfig) BuildArgs(url string) []string {
	args := make([]string, 0, 8)
	// --no-config en tête pour éviter qu'une config locale modifie la suite
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	args = append(args, "-j")
	if c.SkipDownload {
		args = append(args, "--skip-download")
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	args = append(args, url)
	return args
}
