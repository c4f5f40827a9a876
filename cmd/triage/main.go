package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pranavthakur-code/get-health-help/internal/config"
	"github.com/pranavthakur-code/get-health-help/internal/logging"
	"github.com/pranavthakur-code/get-health-help/internal/render"
)

var (
	configFlag string
	styleFlag  string
	widthFlag  int
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "triage",
		Short: "Symptom guidance from the AI Health Assistant",
		Long: `triage maps a description of your symptoms to general guidance:
possible causes, over-the-counter options, home care and when to see a doctor.

Examples:
  triage ask "I have a headache and feel dizzy"
  triage chat
  triage chat --style light`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configFlag, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&styleFlag, "style", "", "glamour style: dark, light, notty or a JSON style path")
	root.PersistentFlags().IntVar(&widthFlag, "width", 0, "word-wrap width")

	root.AddCommand(newAskCmd(), newChatCmd())
	return root
}

// loadConfig resolves configuration from the environment, the optional TOML
// file and the command-line flags, in that order.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if configFlag != "" {
		if err := config.LoadFile(cfg, configFlag); err != nil {
			return nil, err
		}
	}
	if styleFlag != "" {
		cfg.Render.Style = styleFlag
	}
	if widthFlag > 0 {
		cfg.Render.Width = widthFlag
	}

	// The terminal owns stdout/stderr, so logs only go to a file when asked.
	if _, err := logging.InitWriter(cfg.Log, io.Discard); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return cfg, nil
}

func renderOptions(cfg *config.Config) render.Options {
	return render.DefaultOptions().
		WithStyle(cfg.Render.Style).
		WithWidth(cfg.Render.Width)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
