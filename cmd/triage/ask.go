package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pranavthakur-code/get-health-help/internal/analysis/triage"
	"github.com/pranavthakur-code/get-health-help/internal/render"
)

func newAskCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "ask <symptoms>",
		Short: "Classify one description and print the guidance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runAsk(cmd.OutOrStdout(), strings.Join(args, " "), renderOptions(cfg), raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal styling")
	return cmd
}

func runAsk(out io.Writer, input string, opts render.Options, raw bool) error {
	doc := triage.Classify(input)

	if raw {
		_, err := fmt.Fprintln(out, render.Document(doc))
		return err
	}

	rendered, err := render.Terminal(doc, opts)
	if err != nil {
		return fmt.Errorf("render reply: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
