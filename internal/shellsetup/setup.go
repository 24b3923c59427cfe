package shellsetup

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
}

// PrintSetup writes a wend shell function to stdout. The function runs the
// browser with WEND_LASTDIR pointing at a fresh temp file and cd's into
// whatever directory the browser wrote there on quit.
func PrintSetup(shellOverride string, cfg Config) {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	wpath, err := os.Executable()
	if err != nil {
		wpath = "wend"
	}
	quoted := strconv.Quote(wpath)

	switch shell {
	case "fish":
		fmt.Printf(`function wend
    if test (count $argv) -gt 0
        command %s $argv
        return $status
    end

    set -l wend_tmp (mktemp)
    WEND_LASTDIR=$wend_tmp command %s
    if test -f "$wend_tmp" -a ! -L "$wend_tmp"
        set -l dest (cat "$wend_tmp" 2>/dev/null)
        if test -d "$dest"
            builtin cd "$dest"
        end
    end
    rm -f "$wend_tmp"
end
`, quoted, quoted)
	case "pwsh":
		fmt.Printf(`function wend {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    if ($Args.Count -gt 0) {
        & %s @Args
        return
    }

    $lastDir = Join-Path ([System.IO.Path]::GetTempPath()) ("wend_lastdir_" + [System.IO.Path]::GetRandomFileName())
    $env:WEND_LASTDIR = $lastDir
    try {
        & %s
        if (Test-Path $lastDir -PathType Leaf) {
            $dest = (Get-Content $lastDir -Raw -ErrorAction SilentlyContinue)
            if ($dest) { $dest = $dest.Trim() }
            if ($dest -and (Test-Path $dest -PathType Container)) {
                Set-Location $dest
            }
        }
    } finally {
        Remove-Item $lastDir -ErrorAction SilentlyContinue
        Remove-Item Env:WEND_LASTDIR -ErrorAction SilentlyContinue
    }
}
`, quoted, quoted)
	default:
		// bash, zsh, sh, ksh and anything else POSIX-ish
		fmt.Printf(`wend() {
    if [ "$#" -gt 0 ]; then
        command %s "$@"
        return $?
    fi

    wend_tmp=$(mktemp "${TMPDIR:-/tmp}/wend_lastdir.XXXXXX") || return 1
    WEND_LASTDIR="$wend_tmp" command %s
    if [ -f "$wend_tmp" ] && [ ! -L "$wend_tmp" ]; then
        dest=$(cat "$wend_tmp" 2>/dev/null)
        if [ -d "$dest" ] 2>/dev/null; then
            cd "$dest"
        fi
    fi
    rm -f "$wend_tmp"
}
`, quoted, quoted)
	}
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		// cmd.exe has no shell functions; PowerShell is the only target.
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
