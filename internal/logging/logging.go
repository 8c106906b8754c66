// Package logging builds the application's zerolog loggers.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name; unparseable values fall back to info.
	Level string

	// Format is "console" (human-readable, the default) or "json".
	Format string

	// File, when set, duplicates output to this path in append mode.
	File string
}

// Result carries the constructed logger and the file handle to close on
// shutdown, if any.
type Result struct {
	Logger zerolog.Logger
	file   *os.File
}

// Close releases the log file handle, if one was opened.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger per cfg. Console format writes human-readable lines
// to stderr; json writes raw zerolog JSON. When cfg.File is set, output is
// duplicated to the file; a file open failure falls back to stderr-only
// rather than failing the command.
func New(cfg Config) Result {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var console io.Writer = os.Stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	writers := []io.Writer{console}
	result := Result{}

	if cfg.File != "" {
		file, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr == nil {
			result.file = file
			writers = append(writers, file)
		}
	}

	out := writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	result.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
