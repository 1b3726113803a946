package tabstrip

import (
	"fmt"
	"image"
	"math"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/icons"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/tabs"
)

func (c *tabStripController) render(window *internal.Window) error {
	renderer := window.Renderer
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	window.Clear()

	if c.title != "" && fonts.Title != nil {
		tex, err := c.text(renderer, fonts.Title, c.title, theme.TextColor)
		if err != nil {
			return NewInfrastructureError("render_title", err)
		}
		_, _, w, h, _ := tex.Query()
		m := c.settings.Margins
		renderer.Copy(tex, nil, &sdl.Rect{X: m.Left, Y: m.Top + constants.DefaultTitleSpacing, W: w, H: h})
	}

	viewport := toSDLRect(c.strip.Viewport())
	internal.FillRect(renderer, &viewport, theme.SurfaceColor, 1)
	renderer.SetClipRect(&viewport)
	for _, item := range c.strip.Items() {
		if err := c.renderItem(renderer, theme, fonts, item); err != nil {
			renderer.SetClipRect(nil)
			return err
		}
	}
	renderer.SetClipRect(nil)

	return c.renderFooter(window, theme, fonts)
}

func (c *tabStripController) renderItem(renderer *sdl.Renderer, theme internal.Theme, fonts internal.Fonts, item *tabs.Tab) error {
	bounds := toSDLRect(item.ClientBounds())
	viewport := toSDLRect(c.strip.Viewport())
	if !bounds.HasIntersection(&viewport) {
		return nil
	}

	if frame := item.IndicatorFrame(); frame.Opacity > 0 {
		rect := toSDLRect(frame.Transform.Apply(item.IndicatorRect()))
		if isNavigationVariant(c.strip.Variant()) {
			internal.FillRoundedRect(renderer, &rect, rect.H/2, theme.AccentColor, frame.Opacity)
		} else {
			internal.FillRect(renderer, &rect, theme.AccentColor, frame.Opacity)
		}
	}

	if item.HasFocus() {
		internal.DrawRect(renderer, &bounds, theme.FocusColor, 2)
	}

	color := theme.TextColor
	switch {
	case item.Disabled():
		color = theme.DisabledTextColor
	case item.Selected():
		color = theme.SelectedTextColor
	}

	if item.Icon() != "" {
		rect := toSDLRect(item.IconRect())
		tex, err := c.icon(renderer, item.Icon(), int(rect.W), color)
		if err != nil {
			// A broken icon leaves an empty slot rather than closing the strip.
			c.log.Warn("tabstrip: drawing icon", "icon", item.Icon(), "error", err)
		} else {
			internal.CopyCentered(renderer, tex, &rect)
		}
	}

	if item.Label() != "" && fonts.Label != nil {
		tex, err := c.text(renderer, fonts.Label, item.Label(), color)
		if err != nil {
			return NewInfrastructureError("render_label", err)
		}
		rect := toSDLRect(item.LabelRect())
		internal.CopyCentered(renderer, tex, &rect)
	}
	return nil
}

func (c *tabStripController) renderFooter(window *internal.Window, theme internal.Theme, fonts internal.Fonts) error {
	if len(c.settings.FooterHelpItems) == 0 || fonts.Hint == nil {
		return nil
	}
	width, height := window.Size()
	m := c.settings.Margins
	y := height - m.Bottom - int32(fonts.Hint.Height())
	x := m.Left
	gap := int32(fonts.Hint.Height())

	for _, help := range c.settings.FooterHelpItems {
		text := help.HelpText
		if help.ButtonName != "" {
			text = help.ButtonName + " " + help.HelpText
		}
		tex, err := c.text(window.Renderer, fonts.Hint, text, theme.HintColor)
		if err != nil {
			return NewInfrastructureError("render_footer", err)
		}
		_, _, w, h, _ := tex.Query()
		if x+w > width-m.Right {
			break
		}
		window.Renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
		x += w + gap
	}
	return nil
}

func (c *tabStripController) text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, error) {
	key := fmt.Sprintf("text|%p|%s|%02x%02x%02x%02x", font, text, color.R, color.G, color.B, color.A)
	return c.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		return internal.TextTexture(renderer, font, text, color)
	})
}

// icon returns the icon at path sized to fit a size x size slot. SVG icons
// are rasterized and tinted to color; other formats are drawn as they are.
func (c *tabStripController) icon(renderer *sdl.Renderer, path string, size int, color sdl.Color) (*sdl.Texture, error) {
	if !icons.IsSVG(path) {
		return c.textures.GetOrCreate("image|"+path, func() (*sdl.Texture, error) {
			return img.LoadTexture(renderer, path)
		})
	}

	key := fmt.Sprintf("svg|%s|%d|%02x%02x%02x", path, size, color.R, color.G, color.B)
	return c.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		raster, err := c.icons.Get(path, size)
		if err != nil {
			return nil, err
		}
		tinted := image.NewRGBA(raster.Bounds())
		copy(tinted.Pix, raster.Pix)
		icons.Tint(tinted, internal.RGBA(color))
		return internal.ImageTexture(renderer, tinted)
	})
}

func toSDLRect(r tabs.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(r.X)),
		Y: int32(math.Round(r.Y)),
		W: int32(math.Round(r.W)),
		H: int32(math.Round(r.H)),
	}
}
