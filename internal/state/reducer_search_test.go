package state

import (
	"path/filepath"
	"testing"
)

func searchFor(t *testing.T, r *Reducer, s *State, query string) {
	t.Helper()
	reduceOrFail(t, r, s, SearchStartAction{})
	for _, ch := range query {
		reduceOrFail(t, r, s, SearchCharAction{Char: ch})
	}
}

func TestSearchFiltersListing(t *testing.T) {
	state := newTestState(10, []string{"music"}, []string{"alpha.txt", "beta.txt", "gamma.txt"})
	reducer := NewReducer()

	searchFor(t, reducer, state, "ta")

	if state.Mode != ModeSearching {
		t.Fatalf("Expected searching mode")
	}
	if len(state.Matches) != 1 || state.Matches[0] != 2 {
		t.Errorf("Expected matches [2] for 'ta', got %v", state.Matches)
	}
	if state.Cursor != 0 {
		t.Errorf("Expected cursor 0 over the matches, got %d", state.Cursor)
	}
	if got := state.CursorEntry(); got != 2 {
		t.Errorf("Expected cursor entry 2 (beta.txt), got %d", got)
	}
}

func TestSearchIsSmartCase(t *testing.T) {
	state := newTestState(10, nil, []string{"Makefile", "makeup.txt", "notes.txt"})
	reducer := NewReducer()

	// Lowercase query ignores case.
	searchFor(t, reducer, state, "make")
	if len(state.Matches) != 2 {
		t.Errorf("Expected 2 case-insensitive matches, got %v", state.Matches)
	}
	reduceOrFail(t, reducer, state, SearchExitAction{})

	// An uppercase rune makes the query exact.
	searchFor(t, reducer, state, "Make")
	if len(state.Matches) != 1 || state.Matches[0] != 0 {
		t.Errorf("Expected only Makefile for 'Make', got %v", state.Matches)
	}
}

func TestSearchCursorRangesOverMatches(t *testing.T) {
	state := newTestState(10, nil, []string{"log.1", "note.md", "log.2", "readme", "log.3"})
	reducer := NewReducer()

	searchFor(t, reducer, state, "log")
	if len(state.Matches) != 3 {
		t.Fatalf("Expected 3 matches, got %v", state.Matches)
	}

	reduceOrFail(t, reducer, state, JumpBottomAction{})
	if state.Cursor != 2 {
		t.Errorf("Expected cursor 2 (last match), got %d", state.Cursor)
	}
	if got := state.CursorEntry(); got != 4 {
		t.Errorf("Expected cursor entry 4 (log.3), got %d", got)
	}

	// Wrap applies to the filtered listing too.
	reduceOrFail(t, reducer, state, MoveDownAction{})
	if state.Cursor != 0 {
		t.Errorf("Expected wrap to first match, got %d", state.Cursor)
	}
}

func TestSearchBackspaceWidensAndExits(t *testing.T) {
	state := newTestState(10, nil, []string{"alpha.txt", "beta.txt", "gamma.txt"})
	reducer := NewReducer()

	searchFor(t, reducer, state, "ga")
	if len(state.Matches) != 1 {
		t.Fatalf("Expected 1 match for 'ga', got %v", state.Matches)
	}

	reduceOrFail(t, reducer, state, SearchBackspaceAction{})
	if state.Query != "g" {
		t.Errorf("Expected query 'g', got %q", state.Query)
	}
	if len(state.Matches) != 1 {
		t.Errorf("Expected 1 match for 'g', got %v", state.Matches)
	}

	reduceOrFail(t, reducer, state, SearchBackspaceAction{})
	if state.Query != "" || state.Mode != ModeSearching {
		t.Fatalf("Emptying the query should stay in search, got mode %v query %q", state.Mode, state.Query)
	}

	// One more backspace on the empty query leaves search.
	reduceOrFail(t, reducer, state, SearchBackspaceAction{})
	if state.Mode != ModeBrowsing {
		t.Errorf("Expected backspace on empty query to exit search")
	}
}

func TestSearchExitKeepsCursorOnEntry(t *testing.T) {
	state := newTestState(10, nil, []string{"alpha.txt", "beta.txt", "gamma.txt"})
	reducer := NewReducer()

	searchFor(t, reducer, state, "gam")
	if got := state.CursorEntry(); got != 2 {
		t.Fatalf("Expected cursor entry 2 while searching, got %d", got)
	}

	reduceOrFail(t, reducer, state, SearchExitAction{})
	if state.Mode != ModeBrowsing {
		t.Fatalf("Expected browsing mode after exit")
	}
	if state.Cursor != 2 {
		t.Errorf("Expected cursor to stay on gamma.txt (2), got %d", state.Cursor)
	}
	if state.Query != "" || len(state.Matches) != 0 {
		t.Errorf("Expected query state cleared, got %q %v", state.Query, state.Matches)
	}
}

func TestSearchWithNoMatchesExitsToTop(t *testing.T) {
	state := newTestState(10, nil, []string{"alpha.txt", "beta.txt"})
	state.Cursor = 1
	reducer := NewReducer()

	searchFor(t, reducer, state, "zzz")
	if len(state.Matches) != 0 {
		t.Fatalf("Expected no matches, got %v", state.Matches)
	}
	if got := state.CursorEntry(); got != -1 {
		t.Errorf("Expected no cursor entry over empty matches, got %d", got)
	}

	reduceOrFail(t, reducer, state, SearchExitAction{})
	if state.Cursor != 0 {
		t.Errorf("Expected cursor 0 after exiting an empty search, got %d", state.Cursor)
	}
}

func TestToggleSelectDuringSearchMarksStoreEntry(t *testing.T) {
	state := newTestState(10, nil, []string{"log.1", "note.md", "log.2"})
	reducer := NewReducer()

	searchFor(t, reducer, state, "log")
	reduceOrFail(t, reducer, state, MoveDownAction{})
	reduceOrFail(t, reducer, state, ToggleSelectAction{})

	if !state.Selected.IsSet(2) {
		t.Errorf("Expected store entry 2 (log.2) selected")
	}
	if state.Selected.IsSet(1) {
		t.Errorf("note.md must not be selected through the filter")
	}
}

func TestSelectAllDuringSearchCoversWholeListing(t *testing.T) {
	state := newTestState(10, nil, []string{"log.1", "note.md", "log.2"})
	reducer := NewReducer()

	searchFor(t, reducer, state, "log")
	reduceOrFail(t, reducer, state, SelectAllAction{})

	if state.Selected.Count() != 3 {
		t.Errorf("Expected select-all to cover all 3 entries, got %d", state.Selected.Count())
	}
}

func TestNavigationLeavesSearchMode(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "sub")
	makeEntries(t, tmpDir, []string{"sub"}, []string{"note.txt"})
	makeEntries(t, sub, nil, []string{"inner.txt"})

	reducer, state := setupBrowser(t, tmpDir, 10)
	searchFor(t, reducer, state, "su")
	if got := state.CursorEntry(); got < 0 || state.Entries.Name(got) != "sub" {
		t.Fatalf("Expected the search to land on sub, got %d", got)
	}

	reduceOrFail(t, reducer, state, EnterDirAction{})
	if state.Mode != ModeBrowsing {
		t.Errorf("Expected entering a directory to reset search mode")
	}
	if state.Query != "" {
		t.Errorf("Expected query cleared, got %q", state.Query)
	}
	if state.Entries.IndexOf("inner.txt") < 0 {
		t.Errorf("Expected the new listing, got %d entries", state.Entries.Len())
	}
}
