// Package log holds the process-wide structured logger. Records go to
// stderr so they never mix with command results.
//
// Components take the *slog.Logger returned by Logger once; level and
// output changes made later still reach them.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// EnvLevel names the variable that overrides the level chosen by flags.
const EnvLevel = "RSM_LOG_LEVEL"

var (
	level  = new(slog.LevelVar)
	out    = &swapWriter{}
	logger *slog.Logger
)

// swapWriter forwards to a writer that can be replaced while loggers
// built on it are in use.
type swapWriter struct {
	w atomic.Pointer[io.Writer]
}

func (s *swapWriter) Write(p []byte) (int, error) {
	return (*s.w.Load()).Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	s.w.Store(&w)
}

func init() {
	level.Set(slog.LevelWarn)
	out.set(os.Stderr)
	logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Configure sets the level from the --verbose and --quiet flags. Quiet
// wins over verbose. A valid RSM_LOG_LEVEL wins over both.
func Configure(verbose, quiet bool) error {
	switch {
	case quiet:
		level.Set(slog.LevelError)
	case verbose:
		level.Set(slog.LevelDebug)
	default:
		level.Set(slog.LevelWarn)
	}
	if env := strings.TrimSpace(os.Getenv(EnvLevel)); env != "" {
		if err := SetLevel(env); err != nil {
			return fmt.Errorf("%s: %w", EnvLevel, err)
		}
	}
	return nil
}

// SetLevel parses a level name such as "debug" or "WARN".
func SetLevel(name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return err
	}
	level.Set(l)
	return nil
}

// Level reports the current level.
func Level() slog.Level {
	return level.Level()
}

// SetOutput changes the log output destination
func SetOutput(w io.Writer) {
	out.set(w)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Logger() *slog.Logger {
	return logger
}
