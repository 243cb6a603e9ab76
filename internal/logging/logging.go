package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/localnerve/shift-schedule/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm/logger"
)

// Setup points the standard logger at stderr, and also at a rotating file
// when LOG_FILE is set. The returned writer is shared with the request
// logger and the database logger; closing it closes the file.
func Setup(cfg *config.Config) io.WriteCloser {
	var out io.WriteCloser = nopCloser{os.Stderr}

	if cfg.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			Compress:   true,
		}
		out = teeCloser{Writer: io.MultiWriter(os.Stderr, rotating), closer: rotating}
	}

	log.SetOutput(out)
	log.SetFlags(log.LstdFlags)
	return out
}

// GormLogger builds the database logger writing to w at the given level
func GormLogger(w io.Writer, level string) logger.Interface {
	return logger.New(log.New(w, "\r\n", log.LstdFlags), logger.Config{
		LogLevel:                  ParseGormLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// ParseGormLevel maps silent, error, warn and info; anything else is warn
func ParseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type teeCloser struct {
	io.Writer
	closer io.Closer
}

func (t teeCloser) Close() error {
	return t.closer.Close()
}
