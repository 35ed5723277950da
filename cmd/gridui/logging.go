package main

import (
	"io"
	"log"

	"github.com/lixenwraith/gridui/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging returns the engine logger and its closer
// Without debug or a file name everything is discarded; the terminal owns stdout and stderr
func setupLogging(cfg config.LogConfig) (*log.Logger, io.Closer) {
	if !cfg.Debug || cfg.File == "" {
		return log.New(io.Discard, "", 0), nopCloser{}
	}
	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return log.New(w, "gridui ", log.LstdFlags|log.Lmicroseconds), w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
