// Package sdlview shows the keyboard in a native SDL window. Physical keys
// and mouse clicks drive the same controller as the browser build; typed
// characters go to an in-memory text buffer drawn above the keys.
package sdlview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/i18n"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"
)

const (
	keySpacing = int32(6)
	keyRadius  = int32(6)
	codeEscape = "Escape"
)

type Config struct {
	Title     string
	Width     int32
	Height    int32
	FontPath  string
	FontSizes FontSizes
	Theme     Theme
	// Scancodes defaults to DefaultScancodeMap, or the file named by
	// INPUT_MAPPING_PATH.
	Scancodes ScancodeMap
}

type View struct {
	cfg    Config
	window *Window
	fonts  fonts

	kb     *vkbd.Controller
	bridge *vkbd.Bridge
	input  *vkbd.TextBuffer

	rects     []keyRect
	inputRect sdl.Rect
	pointer   string

	running *atomic.Bool
	logger  *slog.Logger
}

func newView(cfg Config, kb *vkbd.Controller, input *vkbd.TextBuffer) (*View, error) {
	if !kb.Built() {
		return nil, vkbd.ErrNotBuilt
	}
	if cfg.Scancodes == nil {
		cfg.Scancodes = scancodeMapFromEnv()
	}
	if cfg.FontSizes == (FontSizes{}) {
		cfg.FontSizes = DefaultFontSizes
	}
	if cfg.Theme == (Theme{}) {
		cfg.Theme = DefaultTheme()
	}
	if input == nil {
		input = vkbd.NewTextBuffer("")
	}

	v := &View{
		cfg:     cfg,
		kb:      kb,
		input:   input,
		bridge:  vkbd.NewBridge(kb, input, vkbd.WithTyping(true)),
		running: atomic.NewBool(false),
		logger:  vkbd.GetLogger(),
	}

	localize(kb.State().Language)
	kb.OnLanguageChange(localize)
	return v, nil
}

func localize(lang string) {
	if err := i18n.SetWithCode(lang); err != nil {
		vkbd.GetLogger().Debug("No messages for language", "language", lang, "error", err)
	}
}

// New initializes SDL and opens the window. kb must already be built.
func New(cfg Config, kb *vkbd.Controller, input *vkbd.TextBuffer) (*View, error) {
	v, err := newView(cfg, kb, input)
	if err != nil {
		return nil, err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to initialize SDL_ttf: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = i18n.GetString("page_title")
	}
	if v.window, err = openWindow(title, cfg.Width, cfg.Height); err != nil {
		v.quitSDL()
		return nil, err
	}

	path, err := resolveFontPath(cfg.FontPath)
	if err == nil {
		v.fonts, err = loadFonts(path, v.cfg.FontSizes, v.window.GetWidth())
	}
	if err != nil {
		v.window.close()
		v.quitSDL()
		return nil, err
	}

	v.relayout(v.window.GetWidth(), v.window.GetHeight())
	return v, nil
}

func (v *View) Input() *vkbd.TextBuffer {
	return v.input
}

// Run processes events and redraws until the window is closed, Escape is
// pressed, Stop is called or ctx is done.
func (v *View) Run(ctx context.Context) error {
	v.running.Store(true)
	stop := context.AfterFunc(ctx, v.Stop)
	defer stop()

	for v.running.Load() {
		if event := sdl.WaitEventTimeout(16); event != nil {
			v.handleEvent(event)
		}
		v.render()
	}
	return ctx.Err()
}

// Stop ends Run. It may be called from any goroutine.
func (v *View) Stop() {
	v.running.Store(false)
}

func (v *View) Close() {
	v.fonts.close()
	if v.window != nil {
		v.window.close()
	}
	v.quitSDL()
}

func (v *View) quitSDL() {
	ttf.Quit()
	sdl.Quit()
}

func (v *View) handleEvent(event sdl.Event) {
	var err error

	switch e := event.(type) {
	case *sdl.QuitEvent:
		v.Stop()

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			v.relayout(e.Data1, e.Data2)
		}

	case *sdl.KeyboardEvent:
		ev, ok := v.cfg.Scancodes.keyEvent(e)
		if !ok {
			v.logger.Debug("Keyboard input not mapped", "scancode", e.Keysym.Scancode)
			return
		}
		if ev.Code == codeEscape {
			if e.Type == sdl.KEYDOWN {
				v.Stop()
			}
			return
		}
		if e.Type == sdl.KEYDOWN {
			err = v.bridge.KeyDown(ev)
		} else {
			err = v.bridge.KeyUp(ev)
		}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		code := hitTest(v.rects, e.X, e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			v.pointer = code
			err = v.bridge.PointerDown(code)
			break
		}

		err = v.bridge.PointerUp(v.pointer)
		if err == nil && code != "" && code == v.pointer {
			err = v.bridge.Click(code)
		}
		v.pointer = ""
	}

	if err != nil {
		v.logger.Error("Input handling failed", "error", err)
	}
}

// relayout recomputes the text field and key rectangles for a w x h window.
func (v *View) relayout(w, h int32) {
	margin := w * 5 / 100
	top := h / 10

	v.inputRect = sdl.Rect{X: margin, Y: top, W: w - 2*margin, H: h * 12 / 100}

	kbTop := v.inputRect.Y + v.inputRect.H + h/25
	area := sdl.Rect{X: margin, Y: kbTop, W: w - 2*margin, H: h - kbTop - h/8}
	v.rects = layoutKeys(v.kb.Snapshot(), area, keySpacing)
}

func (v *View) render() {
	renderer := v.window.Renderer
	theme := v.cfg.Theme

	bg := theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	w, h := v.window.GetWidth(), v.window.GetHeight()
	drawText(renderer, v.fonts.input, i18n.GetString("page_title"), sdl.Rect{W: w, H: h / 10}, theme.TextColor, true)

	v.renderInput(renderer)
	v.renderKeys(renderer)

	hint := stripMarkup(i18n.GetString("description_usage"))
	drawText(renderer, v.fonts.hint, hint, sdl.Rect{Y: h - h/8, W: w, H: h / 8}, theme.HintColor, true)

	renderer.Present()
}

func (v *View) renderInput(renderer *sdl.Renderer) {
	theme := v.cfg.Theme
	rect := v.inputRect

	drawRoundedRect(renderer, &rect, 0, theme.InputColor)
	border := theme.InputBorderColor
	renderer.SetDrawColor(border.R, border.G, border.B, border.A)
	renderer.DrawRect(&rect)

	padding := int32(10)
	text := []rune(v.input.Text())
	caret := v.input.Caret()

	caretX := textWidth(v.fonts.input, string(text[:caret]))
	visible := rect.W - 2*padding
	offset := max(caretX-visible, 0)

	var shown []rune
	for i := range text {
		if textWidth(v.fonts.input, string(text[:i])) >= offset {
			shown = text[i:]
			offset = textWidth(v.fonts.input, string(text[:i]))
			break
		}
	}

	textRect := sdl.Rect{X: rect.X + padding, Y: rect.Y, W: visible, H: rect.H}
	renderer.SetClipRect(&rect)
	drawText(renderer, v.fonts.input, string(shown), textRect, theme.InputTextColor, false)
	renderer.SetClipRect(nil)

	height := int32(v.fonts.input.Height())
	cursor := sdl.Rect{
		X: rect.X + padding + caretX - offset,
		Y: rect.Y + (rect.H-height)/2,
		W: 2,
		H: height,
	}
	c := theme.InputTextColor
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRect(&cursor)
}

func (v *View) renderKeys(renderer *sdl.Renderer) {
	theme := v.cfg.Theme
	snap := v.kb.Snapshot()
	if len(snap) != len(v.rects) {
		v.relayout(v.window.GetWidth(), v.window.GetHeight())
	}

	for i, k := range snap {
		if i >= len(v.rects) {
			break
		}
		rect := v.rects[i].rect

		color := theme.KeyColor
		switch {
		case k.Pressed:
			color = theme.PressedKeyColor
		case k.Active:
			color = theme.ActiveKeyColor
		case k.Kind == layout.KindSpecial:
			color = theme.SpecialKeyColor
		}

		drawRoundedRect(renderer, &rect, keyRadius, color)
		drawText(renderer, v.fonts.key, k.Glyph, rect, theme.TextColor, true)
	}
}

var markupStripper = strings.NewReplacer("<span>", "", "</span>", "")

func stripMarkup(s string) string {
	return markupStripper.Replace(s)
}
