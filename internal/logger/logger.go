// Package logger provides leveled logging for the portalcheck CLI.
// When verbose mode is enabled via the --verbose flag, debug, info and
// warning messages are printed to stderr to help users follow a run.
// Errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr)
)

// newLogger builds a console logger that prints "[LEVEL] message key=value".
// Colour is used only when w is a terminal.
func newLogger(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i any) string {
			level, _ := i.(string)
			return "[" + strings.ToUpper(level) + "]"
		},
	}
	return zerolog.New(cw).Level(zerolog.DebugLevel)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(w)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Debug().Msgf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Info().Msgf(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Warn().Msgf(format, args...)
	}
}

// Error prints an error message with its cause. Always printed.
func Error(err error, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Error().Err(err).Msgf(format, args...)
}
