package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/wend-cli/wend/internal/state"
	textutil "github.com/wend-cli/wend/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.State) []string {
	hiddenDesc := "Show hidden files"
	if state != nil && state.ShowHidden {
		hiddenDesc = "Hide hidden files"
	}

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "j/k or ↑/↓", desc: "Move cursor (wraps at both ends)"},
				{keys: "l, → or ↵", desc: "Enter directory"},
				{keys: "h or ←", desc: "Go to parent directory"},
				{keys: "g / G", desc: "Jump to top / bottom"},
				{keys: "~", desc: "Go home"},
			},
		},
		{
			title: "Selection",
			entries: []helpOverlayEntry{
				{keys: "Space", desc: "Select entry and step down"},
				{keys: "a", desc: "Select everything"},
				{keys: "A", desc: "Invert selection"},
			},
		},
		{
			title: "File operations",
			entries: []helpOverlayEntry{
				{keys: "d", desc: "Delete selected (here and remembered)"},
				{keys: "v", desc: "Move remembered selection here"},
				{keys: "p", desc: "Copy remembered selection here"},
				{keys: "y", desc: "Yank current path to clipboard"},
			},
		},
		{
			title: "Search & view",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Search in this directory"},
				{keys: "Esc or ↵", desc: "Leave search, keep position"},
				{keys: ".", desc: hiddenDesc},
				{keys: "r", desc: "Refresh listing"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "Ctrl+Z", desc: "Suspend to shell"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}
	lines = append(lines, "", "Legend: / directory · @ symlink · * selected")

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-14s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.State, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	bodyStyle := baseStyle
	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.truncateTextToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, bodyStyle)
		row++
	}

	footer := "any key closes"
	if h > 0 {
		footerText := r.truncateTextToWidth(footer, w)
		r.drawTextLine(0, h-1, w, footerText, headerStyle)
	}
}
