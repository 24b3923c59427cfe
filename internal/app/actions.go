package app

import (
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// commandBuilder is swapped out by tests to fake the clipboard process.
var commandBuilder = exec.Command

// handleClipboard copies the absolute path of the entry under the cursor
// to the system clipboard. In an empty directory the directory's own path
// is copied instead.
func (app *Application) handleClipboard() bool {
	if !app.clipboardAvail || len(app.clipboardCmd) == 0 {
		app.state.Status = "no clipboard command found"
		return true
	}

	target := app.state.CurrentPath
	if entry := app.state.CursorEntry(); entry >= 0 {
		target = filepath.Join(app.state.CurrentPath, app.state.Entries.Name(entry))
	}
	target = normalizeClipboardPath(target, runtime.GOOS)

	cmd := commandBuilder(app.clipboardCmd[0], app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(target)
	if err := cmd.Run(); err != nil {
		app.state.LastError = fmt.Errorf("clipboard command %s failed: %w", app.clipboardCmd[0], err)
		return true
	}
	app.state.LastYankTime = time.Now()
	return true
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}
