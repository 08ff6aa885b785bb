package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile     *os.File
	logFilename string
	logDir      = "logs"
	output      io.Writer = os.Stdout

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogFilename enables mirroring log output into logs/<filename>.
// It must be called before the first logger is requested.
func SetLogFilename(filename string) {
	dir, name := filepath.Split(filename)
	if dir != "" {
		logDir = dir
	}
	logFilename = name
}

// SetLogOutput replaces stdout as the primary log destination.
// It must be called before the first logger is requested.
func SetLogOutput(w io.Writer) {
	output = w
}

func setup() {
	setupOnce.Do(func() {
		multiWriter = output
		if logFilename == "" {
			return
		}

		if err := os.MkdirAll(logDir, 0755); err != nil {
			panic("Failed to create logs directory: " + err.Error())
		}

		var err error
		logFile, err = os.OpenFile(filepath.Join(logDir, logFilename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			panic("Failed to open log file: " + err.Error())
		}

		multiWriter = io.MultiWriter(output, logFile)
	})
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// GetInternalLogger returns the logger used by the keyboard itself. It is
// quiet (errors only) unless raised through SetInternalLogLevel.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		}).WithAttrs([]slog.Attr{slog.String("component", "vkbd")})
		internalLogger = slog.New(handler)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}

// DevModeEnvVar switches on strict key checking and verbose internal logs.
const DevModeEnvVar = "VKBD_DEV"

// IsDevMode reports whether the process runs in development mode.
func IsDevMode() bool {
	v := strings.ToLower(os.Getenv(DevModeEnvVar))
	return v != "" && v != "0" && v != "false"
}
