package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/wend-cli/wend/internal/app"
	"github.com/wend-cli/wend/internal/config"
	"github.com/wend-cli/wend/internal/logging"
	"github.com/wend-cli/wend/internal/shellsetup"
)

func printHelp() {
	fmt.Print(`wend - keyboard-driven directory browser

USAGE:
    wend [OPTIONS]

OPTIONS:
    -h, --help            Show this help message and exit
    -s, --setup [SHELL]   Output the shell integration function (optionally force SHELL)
    -p, --pick            Print the selected paths to stdout on quit

ENVIRONMENT:
    WEND_LASTDIR   File the final directory is written to on quit
    WEND_DEBUG     File debug logging is appended to
`)
}

var parentShellDetector = shellsetup.DetectParentShellName

func main() {
	// UTF-8 fallback keeps non-ASCII names readable on limited terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	pickMode := false

	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-s" || arg == "--setup":
			shellOverride := ""
			if len(os.Args) > 2 {
				shellOverride = os.Args[2]
			}
			shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			os.Exit(0)
		case strings.HasPrefix(arg, "--setup="):
			shellOverride := strings.TrimPrefix(arg, "--setup=")
			shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			os.Exit(0)
		case arg == "-p" || arg == "--pick":
			pickMode = true
		default:
			fmt.Fprintf(os.Stderr, "wend: unknown option %q\n", arg)
			fmt.Fprintln(os.Stderr, "Run 'wend --help' for usage.")
			os.Exit(1)
		}
	}

	if err := logging.Setup(os.Getenv("WEND_DEBUG")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	// The screen is restored here; stdout and stderr are ours again.
	if pickMode {
		for _, path := range app.SelectionPaths() {
			fmt.Println(path)
		}
	}

	// The wrapping shell function reads this file and cd's into it.
	if lastDirFile := os.Getenv("WEND_LASTDIR"); lastDirFile != "" {
		if path := app.ExitPath(); path != "" {
			if err := os.WriteFile(lastDirFile, []byte(path), 0600); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not write %s: %v\n", lastDirFile, err)
			}
		}
	}
}
