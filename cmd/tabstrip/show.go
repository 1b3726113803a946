package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/config"
)

type showOptions struct {
	keyboard   string
	accent     string
	font       string
	background string
}

func newShowCmd(root *rootOptions) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Open a window showing the strip and print the confirmed selection",
		Long: `Opens the strip described by <file> and waits for the user.

Arrow keys, Home and End move focus; Space or a click selects; Enter confirms
and Escape cancels. The selected index and label are printed on confirm.
The command exits with status 2 when the strip is cancelled.`,
		Example: `  tabstrip show mail.toml
  ENVIRONMENT=DEV WINDOW_WIDTH=800 tabstrip show --accent 0x3366cc settings.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.Load(args[0])
			if err != nil {
				return err
			}
			accent, err := parseHex(opts.accent)
			if err != nil {
				return fmt.Errorf("--accent: %w", err)
			}

			title := def.Title
			if title == "" {
				title = "tabstrip"
			}
			if err := tabstrip.Init(tabstrip.Options{
				WindowTitle:         title,
				AccentColorHex:      accent,
				FontPath:            opts.font,
				BackgroundImagePath: opts.background,
				ReducedMotion:       root.reducedMotion || def.ReducedMotion,
			}); err != nil {
				return err
			}
			defer tabstrip.Close()

			settings := tabstrip.DefaultTabStripSettings()
			settings.KeyboardDevice = opts.keyboard
			result, err := tabstrip.TabStripFromDefinition(def, settings)
			if err != nil {
				return err
			}

			tabstrip.GetLogger().Info("strip confirmed", "selected", result.Selected, "changes", result.Changes)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", result.Selected, result.Label)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.keyboard, "keyboard", "", "evdev keyboard device to read, e.g. /dev/input/event3")
	cmd.Flags().StringVar(&opts.accent, "accent", "", "indicator color as hex, e.g. 0x008080")
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType font for labels")
	cmd.Flags().StringVar(&opts.background, "background", "", "image drawn behind the strip")
	return cmd
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
