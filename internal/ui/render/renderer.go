package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wend-cli/wend/internal/config"
	statepkg "github.com/wend-cli/wend/internal/state"
	textutil "github.com/wend-cli/wend/internal/textutil"
)

const yankFlashDuration = 100 * time.Millisecond

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, cfg *config.Config) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  ThemeFromConfig(cfg),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.State) {
	r.screen.Clear()

	w, h := r.screen.Size()

	if state != nil && state.ShowHelp {
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawEntryList(state, w, h)
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the current path. The row flashes
// briefly after a yank to confirm the copy.
func (r *Renderer) drawHeader(state *statepkg.State, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	if isYankFlashing(state) {
		headerStyle = tcell.StyleDefault.Background(r.theme.FlashBg).Foreground(r.theme.FlashFg)
	}

	endX := r.drawTextLine(0, 0, w, "wend", headerStyle.Bold(true))
	if endX < w {
		r.screen.SetContent(endX, 0, ' ', nil, headerStyle)
		endX++
	}

	path := state.CurrentPath
	if path == "" {
		path = "/"
	}
	path = displayText(path)
	if endX < w {
		endX = r.drawTextLine(endX, 0, w-endX, r.fitPathToWidth(path, w-endX), headerStyle)
	}

	for x := endX; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
	}
}

func isYankFlashing(state *statepkg.State) bool {
	if state.LastYankTime.IsZero() {
		return false
	}
	return time.Since(state.LastYankTime) < yankFlashDuration
}

// drawEntryList renders the visible slice of the listing.
func (r *Renderer) drawEntryList(state *statepkg.State, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background)
	listTop := 1
	listBottom := h - 1

	total := state.VisibleCount()
	y := listTop
	for pos := state.Window.Start; pos < total && y < listBottom; pos++ {
		idx := state.EntryIndex(pos)
		if idx < 0 {
			break
		}
		r.drawEntryRow(state, idx, pos == state.Cursor, y, w)
		y++
	}

	if total == 0 && y < listBottom {
		emptyStyle := baseStyle.Foreground(r.theme.HiddenFg)
		r.drawTextLine(1, y, w-1, "(empty)", emptyStyle)
		y++
	}

	for ; y < listBottom; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}
}

func (r *Renderer) drawEntryRow(state *statepkg.State, idx int, underCursor bool, y, w int) {
	kind := state.Entries.KindAt(idx)
	name := state.Entries.Name(idx)
	selected := state.Selected.IsSet(idx)

	rowStyle := tcell.StyleDefault.Background(r.theme.Background)
	switch {
	case underCursor:
		rowStyle = tcell.StyleDefault.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)
	case selected:
		rowStyle = rowStyle.Foreground(r.theme.SelectedFg).Bold(true)
	case kind.IsSymlink():
		rowStyle = rowStyle.Foreground(r.theme.SymlinkFg)
	case kind.IsDir():
		rowStyle = rowStyle.Foreground(r.theme.DirectoryFg)
	default:
		rowStyle = rowStyle.Foreground(r.theme.FileFg)
	}
	if len(name) > 0 && name[0] == '.' && !underCursor && !selected {
		rowStyle = rowStyle.Foreground(r.theme.HiddenFg)
	}

	// Marker column for selected entries, icon column for the kind.
	marker := ' '
	if selected {
		marker = '*'
	}
	icon := ' '
	if kind.IsSymlink() {
		icon = '@'
	} else if kind.IsDir() {
		icon = '/'
	}

	prefix := fmt.Sprintf("%c%c ", marker, icon)
	nameWidth := w - r.measureTextWidth(prefix)
	displayName := displayText(name)
	if nameWidth > 0 {
		displayName = r.truncateTextToWidth(displayName, nameWidth)
	} else {
		displayName = ""
	}

	endX := r.drawTextLine(0, y, w, prefix+displayName, rowStyle)
	for x := endX; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, rowStyle)
	}
}

// drawFooter renders the bottom row: the search prompt while searching,
// otherwise status text on the left and listing counts on the right.
func (r *Renderer) drawFooter(state *statepkg.State, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	footerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	counts := formatListingCounts(state)
	countsWidth := r.measureTextWidth(counts)
	leftLimit := w - countsWidth - 1
	if leftLimit < 0 {
		leftLimit = 0
	}

	var endX int
	switch {
	case state.Mode == statepkg.ModeSearching:
		prompt := "/" + textutil.SanitizeTerminalText(state.Query)
		endX = r.drawTextLine(0, y, leftLimit, prompt, footerStyle)
		cursorStyle := tcell.StyleDefault.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)
		endX = r.drawStyledRune(endX, y, leftLimit, '█', cursorStyle)

	case state.LastError != nil:
		errText := displayText("! " + state.LastError.Error())
		errText = r.truncateTextToWidth(errText, leftLimit)
		endX = r.drawTextLine(0, y, leftLimit, errText, footerStyle.Foreground(r.theme.ErrorFg))

	case state.Status != "":
		status := r.truncateTextToWidth(displayText(state.Status), leftLimit)
		endX = r.drawTextLine(0, y, leftLimit, status, footerStyle)

	default:
		hints := r.truncateTextToWidth(buildFooterHints(state), leftLimit)
		endX = r.drawTextLine(0, y, leftLimit, hints, footerStyle.Foreground(r.theme.HiddenFg))
	}

	for x := endX; x < w-countsWidth; x++ {
		r.screen.SetContent(x, y, ' ', nil, footerStyle)
	}
	r.drawTextLine(w-countsWidth, y, countsWidth, counts, footerStyle)
}

// displayText prepares filesystem-derived text for the screen: tabs become
// column-aligned spaces and remaining control runes are neutralized. Names
// from the listing arrive NFC-normalized, but the working directory path
// does not, so combining marks can still reach the draw routines.
func displayText(text string) string {
	return textutil.SanitizeTerminalText(textutil.ExpandTabs(text, textutil.DefaultTabWidth))
}

// formatListingCounts renders "cursor/total", the selection size, and a
// saved-selection badge when other directories hold selections.
func formatListingCounts(state *statepkg.State) string {
	total := state.VisibleCount()
	pos := 0
	if total > 0 {
		pos = state.Cursor + 1
	}
	counts := fmt.Sprintf("%d/%d", pos, total)
	if n := state.Selected.Count(); n > 0 {
		counts = fmt.Sprintf("%d selected · %s", n, counts)
	}
	return counts
}
