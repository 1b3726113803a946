package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPrintsResolvedLabels(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "../../pkg/tabstrip/config/testdata/strip.toml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "3 tabs")
	assert.Contains(t, out.String(), "  0 Posteingang")
	assert.Contains(t, out.String(), "* 1 Gesendet")
	assert.Contains(t, out.String(), "2 Archive (disabled)")
}

func TestCheckRejectsUnknownFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "strip.json"})

	assert.Error(t, cmd.Execute())
}

func TestParseHex(t *testing.T) {
	for in, want := range map[string]uint32{
		"":         0,
		"0x008080": 0x008080,
		"#3366cc":  0x3366cc,
		"ffffff":   0xffffff,
	} {
		got, err := parseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseHex("teal")
	assert.Error(t, err)
}
