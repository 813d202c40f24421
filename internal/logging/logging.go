// Package logging routes logrus output to a rotating file so it never
// draws over the terminal UI.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"weather-gauges.klederson.com/internal/config"
)

// New returns a logger writing to file at the given level. An empty file
// discards everything. The returned closer releases the file.
func New(file, level string) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if file == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}
	out := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    config.LogMaxSizeMB,
		MaxBackups: config.LogMaxBackups,
	}
	log.SetOutput(out)
	return log, out, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
