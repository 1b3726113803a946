package config

import (
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/tabs"
)

// Build creates the strip described by d on doc. Extra options apply after
// the definition's own.
func (d *Definition) Build(doc *tabs.Document, opts ...tabs.TabsOption) *tabs.Tabs {
	items := make([]*tabs.Tab, len(d.Tabs))
	for i, def := range d.Tabs {
		var tabOpts []tabs.TabOption
		if def.Icon != "" {
			tabOpts = append(tabOpts, tabs.WithIcon(d.IconPath(i)))
		}
		if def.InlineIcon {
			tabOpts = append(tabOpts, tabs.WithInlineIcon())
		}
		if def.Disabled {
			tabOpts = append(tabOpts, tabs.WithTabDisabled())
		}
		items[i] = tabs.NewTab(d.Label(i), tabOpts...)
	}

	stripOpts := []tabs.TabsOption{tabs.WithVariant(d.Variant), tabs.WithSelected(d.Selected)}
	if d.SelectOnFocus {
		stripOpts = append(stripOpts, tabs.WithSelectOnFocus())
	}
	if d.Disabled {
		stripOpts = append(stripOpts, tabs.WithDisabled())
	}
	return tabs.NewTabs(doc, items, append(stripOpts, opts...)...)
}
