package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/htmldom"
	"github.com/pawndev/vkbd/pkg/vkbd/i18n"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
)

// RenderCmd writes a static snapshot of the keyboard page.
type RenderCmd struct {
	Output string   `short:"o" help:"Write to this file instead of stdout" type:"path"`
	Lang   string   `help:"Language to show; defaults to the stored preference"`
	Shift  bool     `help:"Render with shift held"`
	Caps   bool     `help:"Render with caps lock on"`
	Press  []string `help:"Key codes to mark as pressed, e.g. KeyA"`
}

// Run is called by Kong when the render command is executed.
func (r *RenderCmd) Run(logger *slog.Logger, table *layout.Table, store vkbd.PreferenceStore, options vkbd.Options) error {
	// Rendering another language must not change the stored preference.
	snapshot := vkbd.NewMemoryStore()
	if lang, ok := store.Get(vkbd.LanguagePreferenceKey); ok {
		_ = snapshot.Set(vkbd.LanguagePreferenceKey, lang)
	}

	kb, err := vkbd.NewController(table, snapshot, vkbd.WithStrict(vkbd.StrictMode(options)))
	if err != nil {
		return err
	}
	if r.Lang != "" {
		if err := kb.SetLanguage(r.Lang); err != nil {
			return err
		}
	}

	doc, err := buildDocument(kb)
	if err != nil {
		return err
	}

	kb.SetShift(r.Shift)
	kb.SetCapsLock(r.Caps)
	if err := kb.SetActive("CapsLock", r.Caps); err != nil {
		return err
	}
	for _, code := range r.Press {
		if err := kb.Press(code); err != nil {
			return err
		}
	}

	var w io.Writer = os.Stdout
	if r.Output != "" {
		if err := EnsureDir(r.Output); err != nil {
			return err
		}
		f, err := os.Create(r.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", r.Output, err)
		}
		defer f.Close()
		w = f
	}

	if err := doc.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	logger.Info("Rendered keyboard", "language", kb.State().Language, "output", r.Output)
	return nil
}

// buildDocument builds the full page, stylesheet and title included, into a
// headless document.
func buildDocument(kb *vkbd.Controller) (*htmldom.Document, error) {
	doc := htmldom.New()
	doc.AddStyle(vkbd.Stylesheet)

	if _, err := vkbd.BuildPage(doc, doc.Body(), kb); err != nil {
		return nil, err
	}
	doc.SetTitle(i18n.GetString("page_title"))
	return doc, nil
}
