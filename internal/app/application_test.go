package app

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	statepkg "github.com/wend-cli/wend/internal/state"
	"github.com/wend-cli/wend/internal/store"
)

func TestDetectClipboardPrefersPbcopyOnUnix(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		if cmd == "pbcopy" {
			return "/usr/bin/pbcopy", nil
		}
		return "", errors.New("not found")
	}
	args, ok := detectClipboardInternal("linux", lookPath)
	if !ok {
		t.Fatalf("expected clipboard command")
	}
	expected := []string{"/usr/bin/pbcopy"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}

func TestDetectClipboardGivesXclipTheClipboardSelection(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		if cmd == "xclip" {
			return "/usr/bin/xclip", nil
		}
		return "", errors.New("not found")
	}
	args, ok := detectClipboardInternal("linux", lookPath)
	if !ok {
		t.Fatalf("expected clipboard command")
	}
	expected := []string{"/usr/bin/xclip", "-selection", "clipboard"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}

func TestDetectClipboardPrefersClipOnWindows(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		if cmd == "clip.exe" {
			return `C:\Windows\System32\clip.exe`, nil
		}
		return "", errors.New("not found")
	}
	args, ok := detectClipboardInternal("windows", lookPath)
	if !ok {
		t.Fatalf("expected clipboard command")
	}
	expected := []string{`C:\Windows\System32\clip.exe`}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}

func TestDetectClipboardFallsBackToPowershell(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		if cmd == "powershell" {
			return `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`, nil
		}
		return "", errors.New("not found")
	}
	args, ok := detectClipboardInternal("windows", lookPath)
	if !ok {
		t.Fatalf("expected clipboard command")
	}
	expected := []string{`C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}

func TestDetectClipboardReportsAbsence(t *testing.T) {
	lookPath := func(string) (string, error) {
		return "", errors.New("not found")
	}
	if _, ok := detectClipboardInternal("linux", lookPath); ok {
		t.Fatalf("expected no clipboard command")
	}
}

func TestHandleActionQuitRecordsExitPath(t *testing.T) {
	app := newLoopTestApplication("/tmp/somewhere")

	if rendered := app.handleAction(statepkg.QuitAction{}); rendered {
		t.Fatalf("expected no re-render on quit")
	}
	if !app.shouldQuit {
		t.Fatalf("expected shouldQuit after QuitAction")
	}
	if app.exitPath != "/tmp/somewhere" {
		t.Fatalf("expected exit path %q, got %q", "/tmp/somewhere", app.exitPath)
	}
}

func TestHandleActionReducesAndRequestsRender(t *testing.T) {
	app := newLoopTestApplication("/tmp/somewhere")
	app.state.Entries.Append("a.txt", store.KindFile)
	app.state.Entries.Append("b.txt", store.KindFile)
	app.state.Selected.ResizeAndClear(2)

	if rendered := app.handleAction(statepkg.MoveDownAction{}); !rendered {
		t.Fatalf("expected re-render after cursor movement")
	}
	if app.state.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", app.state.Cursor)
	}
	if app.shouldQuit {
		t.Fatalf("cursor movement must not quit")
	}
}

func TestSelectionPathsCombinesHistoryAndCurrent(t *testing.T) {
	state := statepkg.NewState("/work/here", false)
	state.Entries.Append("notes.txt", store.KindFile)
	state.Entries.Append("todo.txt", store.KindFile)
	state.Selected.ResizeAndClear(2)
	state.Selected.Set(1)

	reducer := statepkg.NewReducer()
	reducer.History().Save("/work/away", store.Snapshot{Names: []string{"old.txt"}, Indices: []int{0}})

	app := &Application{state: state, reducer: reducer}

	got := app.SelectionPaths()
	want := []string{
		filepath.Join("/work/away", "old.txt"),
		filepath.Join("/work/here", "todo.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSelectionPathsEmptyWhenNothingSelected(t *testing.T) {
	app := newLoopTestApplication("/work/here")
	if paths := app.SelectionPaths(); len(paths) != 0 {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func newLoopTestApplication(path string) *Application {
	state := statepkg.NewState(path, false)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	state.Window.Height = state.ListHeight()
	return &Application{
		state:    state,
		reducer:  statepkg.NewReducer(),
		actionCh: make(chan statepkg.Action, 4),
		exitPath: path,
	}
}
