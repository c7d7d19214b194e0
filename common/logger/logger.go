package logger

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Debug bool
	// File enables a JSON copy of every record in a rotating file.
	File      string
	MaxSizeMB int
}

// InitLogger installs the default slog logger. The returned closer flushes
// the log file, if any.
func InitLogger(opts Options) io.Closer {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := newRotatingFile(opts.File, opts.MaxSizeMB)
		handlers = append(handlers, slog.NewJSONHandler(lj, &slog.HandlerOptions{Level: level}))
		closer = lj
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return closer
}

func newRotatingFile(path string, maxSizeMB int) *lumberjack.Logger {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   false,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
