// Package logging builds the process-wide structured logger.
//
// Records are emitted as JSON lines through log/slog, either to a log
// file or to stderr. The minimum level is held in a slog.LevelVar so
// it can be retuned while the process runs, which matters for a tool
// that spends most of its life in raw terminal mode where restarting
// to change verbosity is disruptive.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

// Accepted level names, lowest to highest severity.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Options configures a Logger.
type Options struct {
	// Level is the minimum severity to record. One of debug, info,
	// warn, error. Defaults to info when empty.
	Level string

	// Path is the log file, opened in append mode. When empty,
	// records go to stderr. A real file is strongly recommended when
	// the controlling terminal is in raw mode, since stderr output
	// would corrupt the screen.
	Path string

	// Session tags every record with a session identifier so runs
	// can be separated in a shared log file.
	Session string
}

// Logger wraps slog.Logger with a mutable level and an owned sink.
type Logger struct {
	*slog.Logger

	level *slog.LevelVar
	file  *os.File
}

// New creates a Logger from the given options.
func New(opts Options) (*Logger, error) {
	level := new(slog.LevelVar)
	parsed, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	level.Set(parsed)

	var sink io.Writer = os.Stderr
	var file *os.File
	if opts.Path != "" {
		file, err = os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		sink = file
	}

	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	if opts.Session != "" {
		logger = logger.With("session", opts.Session)
	}

	return &Logger{Logger: logger, level: level, file: file}, nil
}

// Nop returns a Logger that discards every record.
func Nop() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		level:  new(slog.LevelVar),
	}
}

// SetLevel changes the minimum severity for subsequent records.
func (l *Logger) SetLevel(name string) error {
	parsed, err := ParseLevel(name)
	if err != nil {
		return err
	}
	l.level.Set(parsed)
	return nil
}

// Close flushes and closes the log file, if one was opened. It is
// safe to call on a stderr-backed Logger.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to its slog value. The empty string
// parses as info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
