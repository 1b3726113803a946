package internal

import (
	"image"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FillRect fills rect with c scaled by opacity.
func FillRect(r *sdl.Renderer, rect *sdl.Rect, c sdl.Color, opacity float64) {
	r.SetDrawColor(c.R, c.G, c.B, alpha(c, opacity))
	r.FillRect(rect)
}

// DrawRect outlines rect with a border of the given thickness.
func DrawRect(r *sdl.Renderer, rect *sdl.Rect, c sdl.Color, thickness int32) {
	r.SetDrawColor(c.R, c.G, c.B, c.A)
	for i := int32(0); i < thickness; i++ {
		r.DrawRect(&sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i})
	}
}

// FillRoundedRect fills rect with rounded corners, one scanline at a time
// through the corner rows.
func FillRoundedRect(r *sdl.Renderer, rect *sdl.Rect, radius int32, c sdl.Color, opacity float64) {
	radius = min(radius, rect.W/2, rect.H/2)
	if radius <= 0 {
		FillRect(r, rect, c, opacity)
		return
	}
	r.SetDrawColor(c.R, c.G, c.B, alpha(c, opacity))
	r.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})
	for dy := int32(0); dy < radius; dy++ {
		off := radius - int32(math.Sqrt(float64(radius*radius-(radius-dy)*(radius-dy))))
		w := rect.W - 2*off
		r.FillRect(&sdl.Rect{X: rect.X + off, Y: rect.Y + dy, W: w, H: 1})
		r.FillRect(&sdl.Rect{X: rect.X + off, Y: rect.Y + rect.H - 1 - dy, W: w, H: 1})
	}
}

func alpha(c sdl.Color, opacity float64) uint8 {
	opacity = max(0, min(1, opacity))
	return uint8(math.Round(float64(c.A) * opacity))
}

// TextTexture renders text with font in c.
func TextTexture(r *sdl.Renderer, font *ttf.Font, text string, c sdl.Color) (*sdl.Texture, error) {
	surface, err := font.RenderUTF8Blended(text, c)
	if err != nil {
		return nil, err
	}
	defer surface.Free()
	return r.CreateTextureFromSurface(surface)
}

// ImageTexture uploads an RGBA image as a blended texture.
func ImageTexture(r *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		copy(pixels[y*pitch:y*pitch+w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}

	tex, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}

// CopyCentered draws tex centered in dst, keeping its size.
func CopyCentered(r *sdl.Renderer, tex *sdl.Texture, dst *sdl.Rect) {
	_, _, w, h, err := tex.Query()
	if err != nil {
		return
	}
	r.Copy(tex, nil, &sdl.Rect{X: dst.X + (dst.W-w)/2, Y: dst.Y + (dst.H-h)/2, W: w, H: h})
}
