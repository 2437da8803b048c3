package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable that enables debug logging.
const EnvVar = "FLOATING_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	closer  io.Closer
	checked bool
)

// Init starts debug logging to the file at path. An empty path uses
// "floating-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "floating-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if closer != nil {
		closer.Close()
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	closer = w
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "floating",
	})
	checked = true
	return nil
}

// SetOutput routes debug logging to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		closer.Close()
		closer = nil
	}
	checked = true
	if w == nil {
		logger = nil
		return
	}
	logger = log.NewWithOptions(w, log.Options{Level: log.DebugLevel, Prefix: "floating"})
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	checked = false
	if closer != nil {
		err := closer.Close()
		closer = nil
		return err
	}
	return nil
}

// Enabled reports whether debug messages are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return current() != nil
}

// current returns the active logger, initializing from the environment on first use.
// Caller must hold mu.
func current() *log.Logger {
	if !checked {
		checked = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "floating: debug log disabled: %v\n", err)
			}
		}
	}
	return logger
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

// With writes a structured debug message with key/value pairs.
func With(msg string, keyvals ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l := current(); l != nil {
		l.Debug(msg, keyvals...)
	}
}
