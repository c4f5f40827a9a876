package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	chatservice "github.com/pranavthakur-code/get-health-help/internal/service/chat"
	"github.com/pranavthakur-code/get-health-help/internal/tui"
)

// thinkingDelay maps a configured zero to an immediate reply.
func thinkingDelay(d time.Duration) time.Duration {
	if d == 0 {
		return chatservice.NoThinkingDelay
	}
	return d
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			session := chatservice.NewSession("", chatservice.Options{
				ThinkingDelay: thinkingDelay(cfg.Triage.ThinkingDelay),
				Logger:        slog.Default(),
			})
			return tui.Run(session, renderOptions(cfg))
		},
	}
}
