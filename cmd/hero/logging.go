package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/hero-motion/config"
)

// setupLogging routes the standard logger to a rotated file when debug is on
// Otherwise all log output is discarded so the terminal stays clean
// Returns the open file, or nil when logging is disabled or failed
func setupLogging(debug bool, lc config.LogConfig) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(lc.Dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(lc.Dir, lc.File)
	maxSize := int64(lc.MaxSizeMB) * 1024 * 1024
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxSize {
		ext := filepath.Ext(lc.File)
		base := strings.TrimSuffix(lc.File, ext)
		rotated := filepath.Join(lc.Dir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		// Failed rotation keeps appending to the oversized file
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}
