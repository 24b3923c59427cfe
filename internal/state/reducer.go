package state

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/wend-cli/wend/internal/fileops"
	"github.com/wend-cli/wend/internal/fs"
	"github.com/wend-cli/wend/internal/logging"
	"github.com/wend-cli/wend/internal/store"
)

var userHomeDirFn = os.UserHomeDir

// Reducer applies actions to the state. It owns the cross-directory
// selection history; everything else lives in the State value.
type Reducer struct {
	history *store.History
}

func NewReducer() *Reducer {
	return &Reducer{history: store.NewHistory()}
}

// History exposes the selection cache, for picker output on exit.
func (r *Reducer) History() *store.History {
	return r.history
}

// Bootstrap lists the starting directory. Failure here is fatal; there is
// no previous listing to fall back to.
func (r *Reducer) Bootstrap(state *State) error {
	if err := fs.List(state.CurrentPath, state.ShowHidden, state.Entries); err != nil {
		return err
	}
	state.Selected.ResizeAndClear(state.Entries.Len())
	state.Window.Height = state.ListHeight()
	state.Window.Clamp(state.Entries.Len())
	return nil
}

func (r *Reducer) Reduce(state *State, action Action) (*State, error) {
	state.Status = ""

	switch a := action.(type) {

	// ===== CURSOR =====

	case MoveDownAction:
		total := state.VisibleCount()
		if total == 0 {
			return state, nil
		}
		if state.Cursor >= total-1 {
			state.Cursor = 0
		} else {
			state.Cursor++
		}
		state.Window.Advance(state.Cursor)
		return state, nil

	case MoveUpAction:
		total := state.VisibleCount()
		if total == 0 {
			return state, nil
		}
		if state.Cursor == 0 {
			state.Cursor = total - 1
		} else {
			state.Cursor--
		}
		state.Window.Advance(state.Cursor)
		return state, nil

	case JumpTopAction:
		if state.VisibleCount() == 0 {
			return state, nil
		}
		state.Cursor = 0
		state.Window.Advance(0)
		return state, nil

	case JumpBottomAction:
		total := state.VisibleCount()
		if total == 0 {
			return state, nil
		}
		state.Cursor = total - 1
		state.Window.Advance(state.Cursor)
		return state, nil

	case MouseSelectAction:
		pos := state.Window.Start + a.Row - headerRows
		if pos < 0 || pos >= state.VisibleCount() {
			return state, nil
		}
		state.Cursor = pos
		state.Window.Advance(state.Cursor)
		return state, nil

	// ===== SELECTION =====

	case ToggleSelectAction:
		entry := state.CursorEntry()
		if entry < 0 {
			return state, nil
		}
		state.Selected.Toggle(entry)
		// Advance so a run of toggles marks consecutive entries; stop at
		// the bottom instead of wrapping.
		if state.Cursor < state.VisibleCount()-1 {
			state.Cursor++
			state.Window.Advance(state.Cursor)
		}
		return state, nil

	case SelectAllAction:
		if state.Entries.Len() == 0 {
			return state, nil
		}
		state.Selected.SelectAll()
		return state, nil

	case InvertSelectionAction:
		if state.Entries.Len() == 0 {
			return state, nil
		}
		state.Selected.InvertAll()
		return state, nil

	// ===== NAVIGATION =====

	case EnterDirAction:
		entry := state.CursorEntry()
		if entry < 0 || !state.Entries.KindAt(entry).IsDir() {
			return state, nil
		}
		target := filepath.Join(state.CurrentPath, state.Entries.Name(entry))
		if err := r.navigateTo(state, target, ""); err != nil {
			state.LastError = err
		}
		return state, nil

	case LeaveDirAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return state, nil // already at the filesystem root
		}
		leavingName := filepath.Base(state.CurrentPath)
		if err := r.navigateTo(state, parent, leavingName); err != nil {
			state.LastError = err
		}
		return state, nil

	case GoHomeAction:
		home, err := userHomeDirFn()
		if err != nil {
			state.LastError = fmt.Errorf("cannot resolve home directory: %w", err)
			return state, nil
		}
		if home == state.CurrentPath {
			return state, nil
		}
		if err := r.navigateTo(state, home, ""); err != nil {
			state.LastError = err
		}
		return state, nil

	case RefreshAction:
		snap := store.CaptureSnapshot(state.Entries, state.Selected)
		cursorName := ""
		if entry := state.CursorEntry(); entry >= 0 {
			cursorName = state.Entries.Name(entry)
		}
		if err := r.relist(state, &snap, cursorName); err != nil {
			state.LastError = err
		}
		return state, nil

	// ===== HIDDEN FILES =====

	case ToggleHiddenAction:
		state.ShowHidden = !state.ShowHidden
		if err := r.relist(state, nil, ""); err != nil {
			state.ShowHidden = !state.ShowHidden
			state.LastError = err
		}
		return state, nil

	// ===== SEARCH =====

	case SearchStartAction:
		if state.Mode == ModeSearching {
			return state, nil
		}
		entry := state.CursorEntry()
		state.Mode = ModeSearching
		state.Query = ""
		state.recomputeMatches()
		// With an empty query every entry matches, so the store index is
		// also the visible position.
		if entry >= 0 {
			state.Cursor = entry
		} else {
			state.Cursor = 0
		}
		state.Window.Clamp(state.VisibleCount())
		state.Window.Advance(state.Cursor)
		return state, nil

	case SearchCharAction:
		if state.Mode != ModeSearching {
			return state, nil
		}
		state.Query += string(a.Char)
		state.recomputeMatches()
		state.Cursor = 0
		state.Window.Start = 0
		return state, nil

	case SearchBackspaceAction:
		if state.Mode != ModeSearching {
			return state, nil
		}
		if state.Query == "" {
			state.exitSearch()
			return state, nil
		}
		_, size := utf8.DecodeLastRuneInString(state.Query)
		state.Query = state.Query[:len(state.Query)-size]
		state.recomputeMatches()
		state.Cursor = 0
		state.Window.Start = 0
		return state, nil

	case SearchExitAction:
		state.exitSearch()
		return state, nil

	// ===== FILE OPERATIONS =====

	case DeleteSelectionAction:
		targets := r.drainTargets(state, true)
		if len(targets) == 0 {
			state.Status = "nothing selected"
			return state, nil
		}
		results, opErr := fileops.Delete(targets)
		logging.Debugf("delete: %d targets, err=%v", len(results), opErr)
		r.finishBatch(state, fmt.Sprintf("deleted %d", countDone(results)), opErr)
		return state, nil

	case MoveSelectionAction:
		sources := r.drainTargets(state, false)
		if len(sources) == 0 {
			state.Status = "no saved selection to move"
			return state, nil
		}
		results, opErr := fileops.MoveInto(state.CurrentPath, sources)
		logging.Debugf("move into %s: %d sources, err=%v", state.CurrentPath, len(results), opErr)
		r.finishBatch(state, fmt.Sprintf("moved %d here", countDone(results)), opErr)
		return state, nil

	case PasteSelectionAction:
		sources := r.drainTargets(state, false)
		if len(sources) == 0 {
			state.Status = "no saved selection to paste"
			return state, nil
		}
		results, opErr := fileops.CopyInto(state.CurrentPath, sources)
		logging.Debugf("copy into %s: %d sources, err=%v", state.CurrentPath, len(results), opErr)
		r.finishBatch(state, fmt.Sprintf("copied %d here", countDone(results)), opErr)
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.Window.Height = state.ListHeight()
		state.Window.Clamp(state.VisibleCount())
		state.Window.Advance(state.Cursor)
		return state, nil

	case ToggleHelpAction:
		state.ShowHelp = !state.ShowHelp
		return state, nil

	case QuitAction:
		state.Quitting = true
		return state, nil

	default:
		// Unrecognized actions are ignored, same as unrecognized keys.
		return state, nil
	}
}

// navigateTo switches the browser to path. The selection of the directory
// being left is snapshotted into the history when non-empty; the snapshot
// saved for the target directory, if any, is restored and removed. On a
// listing error nothing changes and the caller keeps the old directory.
func (r *Reducer) navigateTo(state *State, path, cursorName string) error {
	snap := store.CaptureSnapshot(state.Entries, state.Selected)
	prevPath := state.CurrentPath

	if err := fs.List(path, state.ShowHidden, state.Entries); err != nil {
		return err
	}

	if len(snap.Names) > 0 && prevPath != path {
		r.history.Save(prevPath, snap)
	}

	state.CurrentPath = path
	state.Selected.ResizeAndClear(state.Entries.Len())
	if restored, ok := r.history.Take(path); ok {
		store.RestoreSnapshot(state.Entries, state.Selected, restored)
	}

	state.Mode = ModeBrowsing
	state.Query = ""
	state.Matches = state.Matches[:0]

	cursor := 0
	if cursorName != "" {
		if idx := state.Entries.IndexOf(cursorName); idx >= 0 {
			cursor = idx
		}
	}
	state.Cursor = cursor
	state.Window.Clamp(state.Entries.Len())
	state.Window.Advance(state.Cursor)
	state.LastError = nil

	logging.Debugf("navigate: %s (%d entries, %d restored)", path, state.Entries.Len(), state.Selected.Count())
	return nil
}

// relist re-reads the current directory and re-establishes the listing
// invariants: selection resized and cleared, then restored from snap when
// given; search matches recomputed; cursor and window clamped. cursorName,
// when still present, keeps the cursor on that entry.
func (r *Reducer) relist(state *State, snap *store.Snapshot, cursorName string) error {
	if err := fs.List(state.CurrentPath, state.ShowHidden, state.Entries); err != nil {
		return err
	}
	state.Selected.ResizeAndClear(state.Entries.Len())
	if snap != nil {
		store.RestoreSnapshot(state.Entries, state.Selected, *snap)
	}
	if state.Mode == ModeSearching {
		state.recomputeMatches()
	}

	pos := state.Cursor
	if cursorName != "" {
		if found := state.visiblePositionOf(cursorName); found >= 0 {
			pos = found
		}
	}
	if n := state.VisibleCount(); pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	state.Cursor = pos
	state.Window.Clamp(state.VisibleCount())
	state.Window.Advance(state.Cursor)
	state.LastError = nil
	return nil
}

// drainTargets empties the selection history into absolute paths and, for
// deletions, appends the current directory's selected entries.
func (r *Reducer) drainTargets(state *State, includeCurrent bool) []string {
	var targets []string
	for _, ds := range r.history.Drain() {
		for _, name := range ds.Names {
			targets = append(targets, filepath.Join(ds.Dir, name))
		}
	}
	if includeCurrent {
		for _, idx := range state.Selected.Indices() {
			targets = append(targets, filepath.Join(state.CurrentPath, state.Entries.Name(idx)))
		}
	}
	return targets
}

// finishBatch re-lists after a batch operation and surfaces its outcome.
// A partial failure shows the aggregate error instead of the status text.
func (r *Reducer) finishBatch(state *State, okStatus string, opErr error) {
	if err := r.relist(state, nil, ""); err != nil {
		// The batch may have removed the directory we are standing in;
		// leaving stays possible, so surface the error and keep going.
		state.LastError = err
		return
	}
	if opErr != nil {
		state.LastError = opErr
	} else {
		state.Status = okStatus
	}
}

func countDone(results []fileops.Result) int {
	n := 0
	for _, res := range results {
		if res.Done {
			n++
		}
	}
	return n
}
