package main

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/tabs"
)

type rootOptions struct {
	logLevel      string
	logPath       string
	reducedMotion bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tabstrip",
		Short:         "Show accessible animated tab strips",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.logPath != "" {
				tabstrip.SetLogPath(opts.logPath)
			}
			tabstrip.SetRawLogLevel(opts.logLevel)
			if opts.reducedMotion {
				tabs.SetReducedMotion(true)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logPath, "log-path", "", "also write logs to this file")
	cmd.PersistentFlags().BoolVar(&opts.reducedMotion, "reduced-motion", false, "skip indicator animations and smooth scrolling")

	cmd.AddCommand(newShowCmd(opts), newCheckCmd())
	return cmd
}
