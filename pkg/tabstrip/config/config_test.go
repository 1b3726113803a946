package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/frame"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/tabs"
)

func TestLoadTOMLResolvesLabels(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "strip.toml"))
	require.NoError(t, err)

	assert.Equal(t, "Mail", def.Title)
	assert.Equal(t, 1, def.Selected)
	assert.True(t, def.SelectOnFocus)
	assert.Equal(t, []string{"Posteingang", "Gesendet", "Archive"}, def.Labels())
	assert.Equal(t, filepath.Join("testdata", "inbox.svg"), def.IconPath(0))
	assert.Empty(t, def.IconPath(1))
	assert.Empty(t, def.Label(9))
}

func TestLoadYAML(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "strip.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "secondary vertical", def.Variant)
	assert.Equal(t, []string{"General", "Display", "Network"}, def.Labels())
	assert.True(t, def.Tabs[2].Disabled)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no tabs", `variant = "primary"`, ErrNoTabs},
		{"empty label", "[[tab]]\nlabel = \" \"", ErrEmptyLabel},
		{"bad variant", "variant = \"fancy\"\n[[tab]]\nlabel = \"A\"", ErrUnknownVariant},
		{"selected range", "selected = 3\n[[tab]]\nlabel = \"A\"", ErrSelectedRange},
		{"selected disabled", "[[tab]]\nlabel = \"A\"\ndisabled = true\n[[tab]]\nlabel = \"B\"", ErrSelectedDisable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), FormatTOML)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("colour = \"red\"\n[[tab]]\nlabel = \"A\""), FormatTOML)
	assert.ErrorContains(t, err, "colour")

	_, err = Parse([]byte("colour: red\ntab:\n  - label: A\n"), FormatYAML)
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFor("strip.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadReportsBadLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.toml")
	require.NoError(t, os.WriteFile(path, []byte("language = \"not a tag!\"\n[[tab]]\nlabel = \"A\""), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "language")
}

func TestCatalogFallsBackToID(t *testing.T) {
	c, err := NewCatalog("")
	require.NoError(t, err)
	assert.Equal(t, "tab.unknown", c.Translate("tab.unknown"))
	assert.Equal(t, "en", c.Language().String())
}

func TestBuildCreatesStrip(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "strip.toml"))
	require.NoError(t, err)

	sched := frame.NewScheduler(time.Time{})
	doc := tabs.NewDocument(sched)
	strip := def.Build(doc)
	sched.Drain()

	require.Equal(t, 3, strip.Len())
	assert.Equal(t, 1, strip.Selected())
	assert.True(t, strip.SelectOnFocus())
	assert.Equal(t, "Posteingang", strip.Item(0).Label())
	assert.True(t, strip.Item(0).InlineIcon())
	assert.Equal(t, def.IconPath(0), strip.Item(0).Icon())
	assert.True(t, strip.Item(2).Disabled())
	assert.True(t, strip.Item(1).HasAttribute(tabs.AttrSelected))
}
