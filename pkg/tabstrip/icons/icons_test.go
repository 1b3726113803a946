package icons

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <rect x="0" y="0" width="12" height="24" fill="#ff0000"/>
</svg>`

func TestRenderFillsShape(t *testing.T) {
	img, err := Render(strings.NewReader(square), 48)
	require.NoError(t, err)

	assert.Equal(t, 48, img.Bounds().Dx())
	left := img.RGBAAt(10, 24)
	right := img.RGBAAt(40, 24)
	assert.Equal(t, uint8(255), left.A)
	assert.Equal(t, uint8(255), left.R)
	assert.Zero(t, right.A)
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := Render(strings.NewReader(square), 0)
	assert.Error(t, err)

	_, err = Render(strings.NewReader("<svg><rect"), 24)
	assert.Error(t, err)
}

func TestTintKeepsAlpha(t *testing.T) {
	img, err := Render(strings.NewReader(square), 24)
	require.NoError(t, err)

	Tint(img, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	px := img.RGBAAt(2, 12)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, px)
	assert.Zero(t, img.RGBAAt(20, 12).A)
}

func TestCacheRendersOncePerSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "half.svg")
	require.NoError(t, os.WriteFile(path, []byte(square), 0644))

	c := NewCache()
	a, err := c.Get(path, 24)
	require.NoError(t, err)
	b, err := c.Get(path, 24)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = c.Get(path, 32)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestCacheRejectsNonSVG(t *testing.T) {
	_, err := NewCache().Get("icon.png", 24)
	assert.ErrorIs(t, err, ErrNotSVG)
	assert.True(t, IsSVG("ICON.SVG"))
}
