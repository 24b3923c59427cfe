package app

import (
	"os/exec"
	"runtime"
	"strings"
)

func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	if strings.EqualFold(goos, "windows") {
		for _, candidate := range []string{"clip.exe", "clip"} {
			if path, err := lookPath(candidate); err == nil && path != "" {
				return []string{path}, true
			}
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, err := lookPath(ps); err == nil && path != "" {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
		return nil, false
	}

	for _, cmd := range []string{"pbcopy", "xclip", "wl-copy", "xsel"} {
		resolved, err := lookPath(cmd)
		if err != nil || resolved == "" {
			continue
		}
		switch cmd {
		case "xclip":
			return []string{resolved, "-selection", "clipboard"}, true
		case "xsel":
			return []string{resolved, "--input", "--clipboard"}, true
		default:
			return []string{resolved}, true
		}
	}

	return nil, false
}
