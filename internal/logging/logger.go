package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured log level
const LevelEnv = "TIERMAKER_LOG_LEVEL"

var (
	base    = newBase()
	closer  io.Closer
	baseMu  sync.Mutex
	loggers = make(map[string]*logrus.Entry)
)

func newBase() *logrus.Logger {
	l := logrus.New()
	// Nothing is written until Configure is called: the TUI owns the terminal.
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// NewLogger returns the logger for a component. Loggers share one output, so
// a later Configure call applies to loggers handed out earlier.
func NewLogger(component string) *logrus.Entry {
	baseMu.Lock()
	defer baseMu.Unlock()

	if entry, ok := loggers[component]; ok {
		return entry
	}
	entry := base.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Configure applies level, formatter and sink settings to every logger.
// The previous log file, if any, is closed.
func Configure(cfg Config) error {
	baseMu.Lock()
	defer baseMu.Unlock()

	levelStr := "info"
	if env := os.Getenv(LevelEnv); env != "" {
		levelStr = env
	} else if cfg.Level != "" {
		levelStr = cfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	base.SetLevel(level)

	switch cfg.Format {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if cfg.File == "" {
		base.SetOutput(io.Discard)
		return nil
	}

	path := expandPath(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		base.SetOutput(io.Discard)
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		base.SetOutput(io.Discard)
		return fmt.Errorf("failed to open log file: %w", err)
	}
	base.SetOutput(file)
	closer = file
	return nil
}

// SetOutput routes all loggers to w. Used by tests and by commands that run
// without the TUI.
func SetOutput(w io.Writer) {
	baseMu.Lock()
	defer baseMu.Unlock()
	base.SetOutput(w)
}

// Close releases the log file opened by Configure
func Close() error {
	baseMu.Lock()
	defer baseMu.Unlock()
	base.SetOutput(io.Discard)
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
