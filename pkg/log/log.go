package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// CreateHandler creates a [slog.Handler] writing to w, using the given level
// and format strings.
//
// The text format is colored only when w is a terminal.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "":
		return newCharmHandler(w, level, charmlog.TextFormatter), nil
	case LogfmtFormat:
		return newCharmHandler(w, level, charmlog.LogfmtFormatter), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, logFormat)
}

func newCharmHandler(w io.Writer, level slog.Level, f charmlog.Formatter) *charmlog.Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       f,
		ReportTimestamp: true,
	})

	if !isTerminal(w) {
		l.SetColorProfile(termenv.Ascii)
	}

	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetLevel parses a level string into a [slog.Level].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}

// NewDiscard returns a [slog.Logger] that drops every record.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
