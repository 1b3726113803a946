package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog resolves label message IDs for one language. An ID with no message
// is shown as written.
type Catalog struct {
	tag       language.Tag
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewCatalog creates a catalog for lang ("" means English) from TOML or YAML
// message files. File names carry their language, e.g. active.de.toml.
func NewCatalog(lang string, files ...string) (*Catalog, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		tag = parsed
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	for _, f := range files {
		if _, err := bundle.LoadMessageFile(f); err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
	}
	return &Catalog{
		tag:       tag,
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Language returns the catalog language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// AddMessages registers messages for tag, e.g. built-in defaults.
func (c *Catalog) AddMessages(tag language.Tag, messages ...*i18n.Message) error {
	return c.bundle.AddMessages(tag, messages...)
}

// Translate resolves id, falling back to id itself when no message matches.
func (c *Catalog) Translate(id string) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) || s == "" {
			return id
		}
	}
	return s
}
