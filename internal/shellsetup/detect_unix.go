//go:build !windows

package shellsetup

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DetectParentShellName reports the executable name of the parent process,
// or "" when it cannot be determined.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	if comm, err := os.ReadFile("/proc/" + strconv.Itoa(ppid) + "/comm"); err == nil {
		if name := cleanProcessName(string(comm)); name != "" {
			return name
		}
	}

	// No procfs (macOS, the BSDs); ask ps instead.
	out, err := exec.Command("ps", "-p", strconv.Itoa(ppid), "-o", "comm=").Output()
	if err != nil {
		return ""
	}
	return cleanProcessName(string(out))
}

// cleanProcessName strips the path and the login-shell dash ("-zsh").
func cleanProcessName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	name = filepath.Base(name)
	return strings.TrimPrefix(name, "-")
}
