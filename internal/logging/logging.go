package logging

import (
	"log"
	"os"
)

var (
	enabled bool
	logger  *log.Logger
)

// Setup routes debug lines to the file named by path, typically taken from
// WEND_DEBUG. An empty path leaves logging disabled. The terminal is never
// written to; the screen belongs to the UI.
func Setup(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	enabled = true
	return nil
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	return enabled
}

// Debugf writes one formatted line to the debug log. No-op unless Setup
// succeeded.
func Debugf(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}
