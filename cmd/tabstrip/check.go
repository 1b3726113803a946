package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/config"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a strip definition and print its resolved labels",
		Example: `  tabstrip check mail.toml
  tabstrip check settings.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d tabs, variant %q\n", args[0], len(def.Tabs), def.Variant)
			for i, label := range def.Labels() {
				marker := " "
				if i == def.Selected {
					marker = "*"
				}
				line := fmt.Sprintf("%s %d %s", marker, i, label)
				if def.Tabs[i].Disabled {
					line += " (disabled)"
				}
				if icon := def.IconPath(i); icon != "" {
					line += " [" + icon + "]"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
