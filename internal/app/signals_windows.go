//go:build windows

package app

import "os"

// There is no SIGCONT on Windows; suspend is a no-op there as well.
func contSignals() []os.Signal {
	return nil
}
