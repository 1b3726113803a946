package tabstrip

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/config"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/frame"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/icons"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal/input"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal/logging"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/panels"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/tabs"
)

// TabItem describes one tab shown by TabStrip.
type TabItem struct {
	Label      string
	Icon       string // SVG or PNG path, optional
	InlineIcon bool   // Draw the icon beside the label instead of above it
	Disabled   bool
}

// FooterHelpItem is one hint in the footer, e.g. an icon glyph and "Select".
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// TabStripSettings configures a TabStrip screen.
type TabStripSettings struct {
	Variant         string // primary, secondary or navigation, optionally with vertical
	Selected        int
	SelectOnFocus   bool
	Disabled        bool
	Extent          int32 // Cross-axis size of the strip; 0 picks one from the font
	Margins         internal.Padding
	FooterHelpItems []FooterHelpItem
	KeyboardDevice  string               // evdev device read alongside SDL input, optional
	Switcher        *panels.Switcher     // Follows user-driven changes; Escape steps back through its history
	OnChange        func(index int) bool // Runs after each change event; returning true closes the strip
}

// DefaultTabStripSettings returns the settings used by TabStrip when none
// are customized.
func DefaultTabStripSettings() TabStripSettings {
	return TabStripSettings{
		Variant: "primary",
		Margins: internal.UniformPadding(20),
		FooterHelpItems: []FooterHelpItem{
			{ButtonName: constants.LeftRight, HelpText: "Navigate"},
			{ButtonName: constants.Space, HelpText: "Select"},
			{ButtonName: constants.Enter, HelpText: "Confirm"},
			{ButtonName: constants.Escape, HelpText: "Back"},
		},
	}
}

type tabStripController struct {
	title    string
	settings TabStripSettings

	sched    *frame.Scheduler
	doc      *tabs.Document
	strip    *tabs.Tabs
	repeater *input.Repeater
	log      *slog.Logger

	textures *internal.TextureCache
	icons    *icons.Cache

	changes int
	result  *TabStripResult
	err     error
	done    bool
}

// TabStrip shows items as a tab strip and blocks until the user confirms
// (Enter or Start) or backs out (Escape or B, returning ErrCancelled).
func TabStrip(title string, settings TabStripSettings, items []TabItem) (*TabStripResult, error) {
	return runTabStrip(title, settings, func(doc *tabs.Document) *tabs.Tabs {
		tabItems := make([]*tabs.Tab, len(items))
		for i, item := range items {
			var opts []tabs.TabOption
			if item.Icon != "" {
				opts = append(opts, tabs.WithIcon(item.Icon))
			}
			if item.InlineIcon {
				opts = append(opts, tabs.WithInlineIcon())
			}
			if item.Disabled {
				opts = append(opts, tabs.WithTabDisabled())
			}
			tabItems[i] = tabs.NewTab(item.Label, opts...)
		}
		return tabs.NewTabs(doc, tabItems, settings.stripOptions()...)
	})
}

// TabStripFromDefinition shows the strip described by def. The definition's
// container settings take the place of the matching fields in settings.
func TabStripFromDefinition(def *config.Definition, settings TabStripSettings) (*TabStripResult, error) {
	settings.Variant = def.Variant
	settings.Selected = def.Selected
	settings.SelectOnFocus = def.SelectOnFocus
	settings.Disabled = def.Disabled
	return runTabStrip(def.Title, settings, func(doc *tabs.Document) *tabs.Tabs {
		return def.Build(doc)
	})
}

func (s TabStripSettings) stripOptions() []tabs.TabsOption {
	opts := []tabs.TabsOption{tabs.WithVariant(s.Variant), tabs.WithSelected(s.Selected)}
	if s.SelectOnFocus {
		opts = append(opts, tabs.WithSelectOnFocus())
	}
	if s.Disabled {
		opts = append(opts, tabs.WithDisabled())
	}
	return opts
}

func runTabStrip(title string, settings TabStripSettings, build func(*tabs.Document) *tabs.Tabs) (*TabStripResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("tab_strip", errNotInitialized)
	}

	c := newTabStripController(title, settings, build)
	defer c.textures.Destroy()

	if settings.KeyboardDevice != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c.startKeyboard(ctx, settings.KeyboardDevice)
	}

	c.layout(window)

	for !c.done {
		if event := sdl.WaitEventTimeout(int(constants.DefaultFrameInterval.Milliseconds())); event != nil {
			c.handleEvent(window, event)
			for event = sdl.PollEvent(); event != nil && !c.done; event = sdl.PollEvent() {
				c.handleEvent(window, event)
			}
		}
		if c.done {
			break
		}

		now := time.Now()
		if k := c.repeater.Update(now); k != constants.KeyUnassigned {
			c.doc.KeyDown(k)
		}
		c.sched.Tick(now)
		c.strip.Step(now)

		if err := c.render(window); err != nil {
			return nil, err
		}
		window.Present()
	}

	return c.result, c.err
}

func newTabStripController(title string, settings TabStripSettings, build func(*tabs.Document) *tabs.Tabs) *tabStripController {
	sched := frame.NewScheduler(time.Now())
	doc := tabs.NewDocument(sched, tabs.WithLogger(logging.GetInternalLogger()))
	c := &tabStripController{
		title:    title,
		settings: settings,
		sched:    sched,
		doc:      doc,
		strip:    build(doc),
		repeater: input.NewRepeater(),
		log:      logging.GetInternalLogger(),
		textures: internal.NewTextureCache(),
		icons:    icons.NewCache(),
	}

	c.strip.AddEventListener(tabs.EventChange, func(*tabs.Event) {
		c.changes++
		c.log.Debug("tabstrip: selection changed", "selected", c.strip.Selected(), "previous", c.strip.PreviousSelected())
		if settings.OnChange != nil && settings.OnChange(c.strip.Selected()) {
			c.finish(TabStripActionActivated)
		}
	})
	if settings.Switcher != nil {
		settings.Switcher.Attach(c.strip)
	}
	sched.Drain()

	if focus := c.strip.FocusableItem(); focus != nil {
		focus.Focus()
	}
	return c
}

func (c *tabStripController) startKeyboard(ctx context.Context, path string) {
	kb, err := input.OpenKeyboard(path, c.log)
	if err != nil {
		c.log.Warn("tabstrip: raw keyboard unavailable", "path", path, "error", err)
		return
	}
	go func() {
		if err := kb.Run(ctx, c.sched, func(ev input.KeyEvent) {
			if !ev.Repeat {
				c.handleKey(ev.Key, ev.Pressed)
			}
		}); err != nil && ctx.Err() == nil {
			c.log.Error("tabstrip: raw keyboard stopped", "path", path, "error", err)
		}
	}()
}

func (c *tabStripController) handleEvent(window *internal.Window, event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		c.cancel()
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			c.layout(window)
		}
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			x, y := windowToRenderer(window, e.X, e.Y)
			c.doc.ClickAt(x, y)
		}
	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			internal.OpenController(int(e.Which))
		}
	default:
		if key, pressed, ok := internal.TranslateEvent(event); ok {
			c.handleKey(key, pressed)
		}
	}
}

func (c *tabStripController) handleKey(key constants.Key, pressed bool) {
	if !pressed {
		c.repeater.Release(key)
		c.doc.KeyUp(key)
		return
	}

	switch key {
	case constants.KeyEnter:
		c.finish(TabStripActionConfirmed)
		return
	case constants.KeyEscape:
		if sw := c.settings.Switcher; sw != nil && !sw.History().IsEmpty() {
			index, _ := sw.Back()
			if item := c.strip.Item(index); item != nil && c.doc.ActiveElement() != nil {
				item.Focus()
			}
			return
		}
		c.cancel()
		return
	}

	c.repeater.Press(key, time.Now())
	c.doc.KeyDown(key)
}

func (c *tabStripController) finish(action TabStripAction) {
	label := ""
	if item := c.strip.SelectedItem(); item != nil {
		label = item.Label()
	}
	c.result = &TabStripResult{
		Action:   action,
		Selected: c.strip.Selected(),
		Label:    label,
		Changes:  c.changes,
	}
	c.done = true
}

func (c *tabStripController) cancel() {
	c.result = nil
	c.err = ErrCancelled
	c.done = true
}

// layout sizes the strip viewport from the window and fonts.
func (c *tabStripController) layout(window *internal.Window) {
	width, height := window.Size()
	scale := internal.GetScaleFactor()
	fonts := internal.GetFonts()
	m := c.settings.Margins

	top := m.Top
	if c.title != "" && fonts.Title != nil {
		top += int32(fonts.Title.Height()) + constants.DefaultTitleSpacing*2
	}
	bottom := m.Bottom
	if len(c.settings.FooterHelpItems) > 0 && fonts.Hint != nil {
		bottom += int32(fonts.Hint.Height()) + constants.DefaultTitleSpacing*2
	}

	metrics := scaledMetrics(scale)
	extent := float64(c.settings.Extent)
	if extent <= 0 {
		extent = c.defaultExtent(metrics, fonts)
	}

	var viewport tabs.Rect
	if c.strip.Orientation() == tabs.Vertical {
		viewport = tabs.Rect{
			X: float64(m.Left),
			Y: float64(top),
			W: extent,
			H: float64(max(0, height-top-bottom)),
		}
	} else {
		viewport = tabs.Rect{
			X: float64(m.Left),
			Y: float64(top),
			W: float64(max(0, width-m.Horizontal())),
			H: extent,
		}
	}

	c.strip.SetMetrics(metrics)
	c.strip.Layout(viewport, internal.TextMeasurer{Font: fonts.Label})
	c.log.Debug("tabstrip: layout", "viewport", viewport, "content", c.strip.ContentExtent())
}

func (c *tabStripController) defaultExtent(m tabs.Metrics, fonts internal.Fonts) float64 {
	text := 16.0
	if fonts.Label != nil {
		text = float64(fonts.Label.Height())
	}
	if c.strip.Orientation() == tabs.Vertical {
		widest := 0.0
		measurer := internal.TextMeasurer{Font: fonts.Label}
		for _, item := range c.strip.Items() {
			w, _ := measurer.MeasureText(item.Label())
			widest = max(widest, w)
		}
		return widest + m.IconSize + m.InlineGap + 2*m.PaddingX
	}

	content := text
	for _, item := range c.strip.Items() {
		if item.Icon() != "" && !item.InlineIcon() {
			content = max(content, text+m.StackGap+m.IconSize)
		}
	}
	return max(m.MinExtent, content+2*m.PaddingY)
}

func scaledMetrics(scale float64) tabs.Metrics {
	m := tabs.DefaultMetrics()
	m.PaddingX *= scale
	m.PaddingY *= scale
	m.IconSize *= scale
	m.InlineGap *= scale
	m.StackGap *= scale
	m.MinExtent *= scale
	m.PrimaryThickness *= scale
	m.SecondaryThickness *= scale
	m.PillPadding *= scale
	return m
}

// windowToRenderer maps window coordinates to renderer output pixels, which
// differ on high DPI displays.
func windowToRenderer(window *internal.Window, x, y int32) (float64, float64) {
	ww, wh := window.Window.GetSize()
	rw, rh := window.Size()
	if ww <= 0 || wh <= 0 {
		return float64(x), float64(y)
	}
	return float64(x) * float64(rw) / float64(ww), float64(y) * float64(rh) / float64(wh)
}

func isNavigationVariant(variant string) bool {
	return strings.Contains(variant, "navigation")
}
