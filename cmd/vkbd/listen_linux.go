//go:build linux

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/evdev"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
)

// Run is called by Kong when the listen command is executed.
func (l *ListenCmd) Run(logger *slog.Logger, table *layout.Table, store vkbd.PreferenceStore, options vkbd.Options) error {
	kb, err := vkbd.NewController(table, store, vkbd.WithStrict(vkbd.StrictMode(options)))
	if err != nil {
		return err
	}
	doc, err := buildDocument(kb)
	if err != nil {
		return err
	}

	input := vkbd.NewTextBuffer("")
	br := vkbd.NewBridge(kb, input, vkbd.WithTyping(true))

	src, err := evdev.Open(logger, l.Device...)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Listening for key events", "language", kb.State().Language)
	for t := range src.Run(ctx) {
		if t.Down {
			err = br.KeyDown(t.Event)
		} else {
			err = br.KeyUp(t.Event)
		}
		if err != nil {
			logger.Error("Key event failed", "code", t.Event.Code, "error", err)
			continue
		}
		st := kb.State()
		logger.Debug("Key event", "code", t.Event.Code, "down", t.Down,
			"language", st.Language, "shift", st.Shift, "caps", st.CapsLock, "text", input.Text())
	}

	fmt.Println(input.Text())

	if l.Output == "" {
		return nil
	}
	if err := EnsureDir(l.Output); err != nil {
		return err
	}
	f, err := os.Create(l.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", l.Output, err)
	}
	defer f.Close()
	return doc.Render(f)
}
