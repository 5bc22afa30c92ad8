package app

import (
	"github.com/sirupsen/logrus"

	"decoupe/internal/config"
	"decoupe/internal/ui"
	"decoupe/internal/yt"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// App orchestre les différentes dépendances (UI, YtDlp, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	log      *logrus.Entry
	ytClient yt.Interface // initialisé dans RunExtract
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, log *logrus.Entry) *App {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &App{
		cfg: cfg,
		ui:  uiClient,
		log: log,
	}
}
