// Package config loads tab strip definitions from TOML or YAML files and
// resolves their labels through go-i18n message catalogs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrNoTabs          = errors.New("no tabs defined")
	ErrEmptyLabel      = errors.New("empty label")
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrSelectedRange   = errors.New("selected index out of range")
	ErrUnknownFormat   = errors.New("unknown definition format")
	ErrSelectedDisable = errors.New("selected tab is disabled")
)

// TabDef describes one tab.
type TabDef struct {
	Label      string `toml:"label" yaml:"label"`
	Icon       string `toml:"icon" yaml:"icon"`
	InlineIcon bool   `toml:"inline_icon" yaml:"inline_icon"`
	Disabled   bool   `toml:"disabled" yaml:"disabled"`
}

// Definition is a complete strip: container settings plus its tabs.
type Definition struct {
	Title         string   `toml:"title" yaml:"title"`
	Variant       string   `toml:"variant" yaml:"variant"`
	Selected      int      `toml:"selected" yaml:"selected"`
	SelectOnFocus bool     `toml:"select_on_focus" yaml:"select_on_focus"`
	Disabled      bool     `toml:"disabled" yaml:"disabled"`
	ReducedMotion bool     `toml:"reduced_motion" yaml:"reduced_motion"`
	Language      string   `toml:"language" yaml:"language"`
	Messages      []string `toml:"messages" yaml:"messages"`
	Tabs          []TabDef `toml:"tab" yaml:"tab"`

	// Dir is the directory relative paths are resolved against.
	Dir string `toml:"-" yaml:"-"`

	catalog *Catalog
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads, validates and localizes the definition at path.
func Load(path string) (*Definition, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.Dir = filepath.Dir(path)
	if err := def.Localize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes and validates a definition. Labels stay unresolved until
// Localize runs.
func Parse(data []byte, format Format) (*Definition, error) {
	def := &Definition{Variant: "primary"}
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(def)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse toml: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(def); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

var variantTokens = map[string]bool{
	"primary":    true,
	"secondary":  true,
	"navigation": true,
	"vertical":   true,
}

// Validate checks the definition for errors a strip can't recover from.
func (d *Definition) Validate() error {
	if len(d.Tabs) == 0 {
		return ErrNoTabs
	}
	for _, tok := range strings.Fields(d.Variant) {
		if !variantTokens[tok] {
			return fmt.Errorf("%w: %q", ErrUnknownVariant, tok)
		}
	}
	for i, tab := range d.Tabs {
		if strings.TrimSpace(tab.Label) == "" {
			return fmt.Errorf("tab %d: %w", i, ErrEmptyLabel)
		}
	}
	if d.Selected < 0 || d.Selected >= len(d.Tabs) {
		return fmt.Errorf("%w: %d of %d", ErrSelectedRange, d.Selected, len(d.Tabs))
	}
	if d.Tabs[d.Selected].Disabled && !d.Disabled {
		return fmt.Errorf("tab %d: %w", d.Selected, ErrSelectedDisable)
	}
	return nil
}

// Localize loads the message catalogs named in Messages and resolves labels
// for Language.
func (d *Definition) Localize() error {
	paths := make([]string, len(d.Messages))
	for i, m := range d.Messages {
		paths[i] = d.resolve(m)
	}
	catalog, err := NewCatalog(d.Language, paths...)
	if err != nil {
		return err
	}
	d.catalog = catalog
	return nil
}

// Label returns the display text of tab i.
func (d *Definition) Label(i int) string {
	if i < 0 || i >= len(d.Tabs) {
		return ""
	}
	if d.catalog == nil {
		return d.Tabs[i].Label
	}
	return d.catalog.Translate(d.Tabs[i].Label)
}

// Labels returns the display text of every tab.
func (d *Definition) Labels() []string {
	out := make([]string, len(d.Tabs))
	for i := range d.Tabs {
		out[i] = d.Label(i)
	}
	return out
}

// IconPath returns the icon file of tab i, resolved against Dir, or "".
func (d *Definition) IconPath(i int) string {
	if i < 0 || i >= len(d.Tabs) || d.Tabs[i].Icon == "" {
		return ""
	}
	return d.resolve(d.Tabs[i].Icon)
}

func (d *Definition) resolve(p string) string {
	if filepath.IsAbs(p) || d.Dir == "" {
		return p
	}
	return filepath.Join(d.Dir, p)
}
