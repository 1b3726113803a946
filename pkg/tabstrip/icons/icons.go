// Package icons rasterizes SVG icons for the tab icon slot.
package icons

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrNotSVG is returned for icon files that aren't SVG.
var ErrNotSVG = errors.New("icons: not an svg file")

// IsSVG reports whether path names an SVG file.
func IsSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// Render rasterizes the SVG read from r into a size x size image.
func Render(r io.Reader, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icons: invalid size %d", size)
	}
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icons: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}

// Tint replaces the color of every pixel with c, keeping its alpha. Icon sets
// are drawn in one color and tinted to the theme.
func Tint(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := img.RGBAAt(x, y).A
			if a == 0 {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(uint16(c.R) * uint16(a) / 255),
				G: uint8(uint16(c.G) * uint16(a) / 255),
				B: uint8(uint16(c.B) * uint16(a) / 255),
				A: a,
			})
		}
	}
}

type cacheKey struct {
	path string
	size int
}

// Cache rasterizes icon files once per size.
type Cache struct {
	mu     sync.Mutex
	images map[cacheKey]*image.RGBA
}

func NewCache() *Cache {
	return &Cache{images: make(map[cacheKey]*image.RGBA)}
}

// Get returns path rasterized at size.
func (c *Cache) Get(path string, size int) (*image.RGBA, error) {
	if !IsSVG(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotSVG, path)
	}
	key := cacheKey{path, size}

	c.mu.Lock()
	img, ok := c.images[key]
	c.mu.Unlock()
	if ok {
		return img, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("icons: read %s: %w", path, err)
	}
	img, err = Render(bytes.NewReader(data), size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()
	return img, nil
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.images)
}
