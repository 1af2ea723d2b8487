// Package logging wires zerolog to stderr and to a per-user log file.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openwith/openwith/internal/appdirs"
)

// Setup configures the global logger: human-readable output on stderr
// filtered to warnings (debug with verbose), plus an always-on debug
// file log in the state directory. The returned closer flushes the
// file and may be nil.
func Setup(verbose bool) io.Closer {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if env := strings.TrimSpace(os.Getenv("OPENWITH_LOG")); env != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	writers := []io.Writer{levelWriter{w: console, min: level}}

	var closer io.Closer
	if file := openLogFile(); file != nil {
		writers = append(writers, file)
		closer = file
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return closer
}

func openLogFile() *os.File {
	if _, err := appdirs.EnsureStateDir(); err != nil {
		return nil
	}
	path, err := appdirs.LogFilePath()
	if err != nil {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil
	}
	return file
}

// levelWriter filters one output branch without limiting the other.
type levelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (lw levelWriter) Write(p []byte) (int, error) {
	return lw.w.Write(p)
}

func (lw levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < lw.min {
		return len(p), nil
	}
	return lw.w.Write(p)
}
