package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
	"github.com/pawndev/vkbd/pkg/vkbd/sdlview"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowCmd shows the keyboard in an SDL window.
type WindowCmd struct {
	Width   int32       `help:"Window width; 0 uses the display size" default:"1024"`
	Height  int32       `help:"Window height; 0 uses the display size" default:"600"`
	Font    string      `help:"TTF font with Latin and Cyrillic glyphs" type:"path"`
	KeySize int         `help:"Key glyph font size at 1024px width" default:"28"`
	Mapping string      `help:"JSON scancode override file" type:"path"`
	Theme   ThemeConfig `embed:"" prefix:"theme."`
}

// ThemeConfig overrides theme colors given as #RRGGBB.
type ThemeConfig struct {
	Background string `help:"Window background color"`
	Key        string `help:"Key color"`
	Pressed    string `help:"Pressed key color"`
	Active     string `help:"Latched modifier color"`
	Text       string `help:"Glyph color"`
}

func (t ThemeConfig) apply(theme sdlview.Theme) (sdlview.Theme, error) {
	for _, o := range []struct {
		value string
		dst   *sdl.Color
	}{
		{t.Background, &theme.BackgroundColor},
		{t.Key, &theme.KeyColor},
		{t.Pressed, &theme.PressedKeyColor},
		{t.Active, &theme.ActiveKeyColor},
		{t.Text, &theme.TextColor},
	} {
		if o.value == "" {
			continue
		}
		c, err := sdlview.ParseHexColor(o.value)
		if err != nil {
			return theme, err
		}
		*o.dst = c
	}
	return theme, nil
}

// Run is called by Kong when the window command is executed.
func (w *WindowCmd) Run(logger *slog.Logger, table *layout.Table, store vkbd.PreferenceStore, options vkbd.Options) error {
	theme, err := w.Theme.apply(sdlview.DefaultTheme())
	if err != nil {
		return err
	}

	cfg := sdlview.Config{
		Width:     w.Width,
		Height:    w.Height,
		FontPath:  w.Font,
		FontSizes: sdlview.DefaultFontSizes,
		Theme:     theme,
	}
	if w.KeySize > 0 {
		cfg.FontSizes.Key = w.KeySize
	}
	if w.Mapping != "" {
		if cfg.Scancodes, err = sdlview.LoadScancodeMap(w.Mapping); err != nil {
			return err
		}
	}

	kb, err := vkbd.NewController(table, store, vkbd.WithStrict(vkbd.StrictMode(options)))
	if err != nil {
		return err
	}
	// The page tree backs the controller; the window draws from its snapshot.
	if _, err := buildDocument(kb); err != nil {
		return err
	}

	view, err := sdlview.New(cfg, kb, nil)
	if err != nil {
		return err
	}
	defer view.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Keyboard window open", "language", kb.State().Language)
	err = view.Run(ctx)
	logger.Info("Keyboard window closed", "text", view.Input().Text())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
