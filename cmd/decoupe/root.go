package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"decoupe/internal/app"
	"decoupe/internal/assets"
	"decoupe/internal/bootstrap"
	"decoupe/internal/config"
	"decoupe/internal/ui"
)

// commandContext charge la config et construit l'App une seule fois,
// partagé entre les sous-commandes.
type commandContext struct {
	configFlag *string

	cfg *config.Config
	app *app.App
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	ctx := &commandContext{
		configFlag: &configFlag,
	}

	rootCmd := &cobra.Command{
		Use:           "decoupe",
		Short:         "Découpe une vidéo Youtube en pages datées via sa transcription",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "chemin du fichier de configuration")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "logs de debug")

	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newMatchCommand(ctx))
	rootCmd.AddCommand(newCheckRangeCommand())
	rootCmd.AddCommand(newVersionCommand(ctx))

	return rootCmd
}

// ensureApp charge la config (en la créant au besoin) et construit l'App.
func (c *commandContext) ensureApp() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	path := *c.configFlag
	if path == "" {
		// par défaut : decoupe.yaml à côté du binaire
		path = "decoupe.yaml"
		if exePath, err := os.Executable(); err == nil {
			path = filepath.Join(filepath.Dir(exePath), "decoupe.yaml")
		}
	}

	// créer le fichier depuis l'asset embarqué s'il n'existe pas encore
	if err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset); err != nil {
		return nil, fmt.Errorf("bootstrap config: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	c.cfg = cfg

	c.app = app.New(cfg, ui.NewTerminal(), logrus.NewEntry(logrus.StandardLogger()))
	return c.app, nil
}
