package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/wend-cli/wend/internal/state"
	"github.com/wend-cli/wend/internal/store"
)

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil, nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "file.txt",
			width:  20,
			expect: "file.txt",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "verylongname",
			width:  6,
			expect: "veryl…",
		},
		{
			name:   "only ellipsis when width too small",
			text:   "example",
			width:  1,
			expect: "…",
		},
		{
			name:   "wide runes measured by cell",
			text:   "你好世界",
			width:  5,
			expect: "你好…",
		},
		{
			name:   "returns empty when width is zero",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestFitPathToWidthKeepsTail(t *testing.T) {
	r := NewRenderer(nil, nil)

	tests := []struct {
		name   string
		path   string
		width  int
		expect string
	}{
		{
			name:   "fits untouched",
			path:   "/home/user",
			width:  20,
			expect: "/home/user",
		},
		{
			name:   "trims from the left",
			path:   "/home/user/projects/wend",
			width:  10,
			expect: "…ects/wend",
		},
		{
			name:   "only ellipsis when width too small",
			path:   "/very/deep",
			width:  1,
			expect: "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.fitPathToWidth(tt.path, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil, nil)

	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}

	if got := r.measureTextWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestFormatListingCounts(t *testing.T) {
	state := renderTestState(t, 10)

	if got := formatListingCounts(state); got != "1/3" {
		t.Fatalf("expected 1/3, got %q", got)
	}

	state.Cursor = 2
	state.Selected.Toggle(0)
	state.Selected.Toggle(1)
	if got := formatListingCounts(state); got != "2 selected · 3/3" {
		t.Fatalf("expected selection in counts, got %q", got)
	}
}

func TestFormatListingCountsEmptyListing(t *testing.T) {
	state := statepkg.NewState("/tmp", false)

	if got := formatListingCounts(state); got != "0/0" {
		t.Fatalf("expected 0/0 for empty listing, got %q", got)
	}
}

func TestFooterHintsFollowSelection(t *testing.T) {
	state := renderTestState(t, 10)

	hints := buildFooterHints(state)
	if !strings.Contains(hints, "/ search") {
		t.Fatalf("expected browse hints, got %q", hints)
	}
	if strings.Contains(hints, "y yank") {
		t.Fatalf("yank hint needs a clipboard, got %q", hints)
	}

	state.Selected.Toggle(0)
	state.ClipboardAvailable = true
	hints = buildFooterHints(state)
	if !strings.Contains(hints, "v move here") || !strings.Contains(hints, "y yank") {
		t.Fatalf("expected selection hints with yank, got %q", hints)
	}
}

func TestHelpOverlayReflectsHiddenToggle(t *testing.T) {
	state := renderTestState(t, 10)

	lines := strings.Join(buildHelpOverlayLines(state), "\n")
	if !strings.Contains(lines, "Show hidden files") {
		t.Fatalf("expected show-hidden description, got:\n%s", lines)
	}

	state.ShowHidden = true
	lines = strings.Join(buildHelpOverlayLines(state), "\n")
	if !strings.Contains(lines, "Hide hidden files") {
		t.Fatalf("expected hide-hidden description, got:\n%s", lines)
	}
}

func TestRenderDrawsListingAndFooter(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer scr.Fini()
	scr.SetSize(40, 8)

	state := renderTestState(t, 6)
	state.ScreenWidth = 40
	state.ScreenHeight = 8
	state.Selected.Toggle(1)

	renderer := NewRenderer(scr, nil)
	renderer.Render(state)

	rows := screenRows(scr)
	if !strings.Contains(rows[0], "wend /tmp") {
		t.Errorf("header should show the path, got %q", rows[0])
	}
	if !strings.Contains(rows[1], "/ docs") {
		t.Errorf("first row should be the directory, got %q", rows[1])
	}
	if !strings.Contains(rows[2], "*  a.txt") {
		t.Errorf("selected file should carry the marker, got %q", rows[2])
	}
	if !strings.Contains(rows[7], "1 selected · 1/3") {
		t.Errorf("footer should show counts, got %q", rows[7])
	}
}

func TestRenderSearchPromptReplacesStatus(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer scr.Fini()
	scr.SetSize(40, 8)

	state := renderTestState(t, 6)
	state.ScreenWidth = 40
	state.ScreenHeight = 8
	state.Mode = statepkg.ModeSearching
	state.Query = "doc"
	state.Matches = []int{0}
	state.Cursor = 0

	renderer := NewRenderer(scr, nil)
	renderer.Render(state)

	rows := screenRows(scr)
	if !strings.Contains(rows[7], "/doc") {
		t.Errorf("footer should show the search prompt, got %q", rows[7])
	}
	if !strings.Contains(rows[7], "1/1") {
		t.Errorf("footer should count matches while searching, got %q", rows[7])
	}
	if strings.Contains(strings.Join(rows[1:7], "\n"), "a.txt") {
		t.Errorf("non-matching entries must not be drawn while searching")
	}
}

func TestRenderHelpOverlayCoversScreen(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer scr.Fini()
	scr.SetSize(60, 20)

	state := renderTestState(t, 18)
	state.ShowHelp = true

	renderer := NewRenderer(scr, nil)
	renderer.Render(state)

	rows := screenRows(scr)
	if !strings.Contains(rows[0], "Help") {
		t.Errorf("expected help title, got %q", rows[0])
	}
	if strings.Contains(strings.Join(rows, "\n"), "a.txt") {
		t.Errorf("help overlay must replace the listing")
	}
}

func renderTestState(t *testing.T, height int) *statepkg.State {
	t.Helper()
	state := statepkg.NewState("/tmp", false)
	state.Entries.Append("docs", store.KindDir)
	state.Entries.Append("a.txt", store.KindFile)
	state.Entries.Append("b.txt", store.KindFile)
	state.Selected.ResizeAndClear(state.Entries.Len())
	state.Window.Height = height
	state.ScreenWidth = 80
	state.ScreenHeight = height + 2
	return state
}

func screenRows(scr tcell.SimulationScreen) []string {
	cells, w, h := scr.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			cell := cells[y*w+x]
			if len(cell.Runes) > 0 {
				b.WriteRune(cell.Runes[0])
			} else {
				b.WriteByte(' ')
			}
		}
		rows[y] = b.String()
	}
	return rows
}
