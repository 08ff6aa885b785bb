package vkbd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pawndev/vkbd/pkg/vkbd/i18n"
	"github.com/pawndev/vkbd/pkg/vkbd/internal"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
)

type Options struct {
	LogFilename string
	LogOutput   io.Writer
	LogLevel    string
	// Debug raises the keyboard's own log level and makes unknown key codes
	// an error. The VKBD_DEV environment variable has the same effect.
	Debug bool
}

// Init configures logging and localization and loads the bundled layout.
// It must be called before the first logger is used.
func Init(options Options) (*layout.Table, error) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}
	if options.LogOutput != nil {
		internal.SetLogOutput(options.LogOutput)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.Debug || internal.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if err := i18n.Init(); err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	table, err := layout.Load()
	if err != nil {
		internal.GetInternalLogger().Error("Bundled layout is invalid", "error", err)
		return nil, err
	}
	return table, nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// StrictMode reports whether unknown key codes should be treated as errors.
func StrictMode(options Options) bool {
	return options.Debug || internal.IsDevMode()
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
