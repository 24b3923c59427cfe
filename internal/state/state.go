package state

import (
	"time"

	"github.com/wend-cli/wend/internal/store"
)

// Mode distinguishes plain browsing from incremental search. Search is a
// read-only restriction of the listing; entries and selection are untouched
// by entering or leaving it.
type Mode uint8

const (
	ModeBrowsing Mode = iota
	ModeSearching
)

const (
	headerRows = 1 // path header above the listing
	footerRows = 1 // status or search prompt below it
)

// State is the single source of truth
type State struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     *store.EntryStore
	Selected    *store.Selection
	Window      store.ScrollWindow
	Cursor      int // position in the visible listing
	ShowHidden  bool

	// Search
	Mode    Mode
	Query   string
	Matches []int // store indices matching Query, in listing order

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	ShowHelp bool

	// Status line
	LastError          error
	Status             string // transient message, cleared by the next action
	ClipboardAvailable bool
	LastYankTime       time.Time

	Quitting bool
}

func NewState(path string, showHidden bool) *State {
	return &State{
		CurrentPath: path,
		Entries:     store.NewEntryStore(),
		Selected:    store.NewSelection(0),
		ShowHidden:  showHidden,
	}
}

// ListHeight returns the number of listing rows the screen fits.
func (s *State) ListHeight() int {
	h := s.ScreenHeight - headerRows - footerRows
	if h < 0 {
		return 0
	}
	return h
}

// VisibleCount returns the number of entries the cursor ranges over:
// all of them while browsing, the matches while searching.
func (s *State) VisibleCount() int {
	if s.Mode == ModeSearching {
		return len(s.Matches)
	}
	return s.Entries.Len()
}

// EntryIndex maps a visible position to its store index, or -1.
func (s *State) EntryIndex(visible int) int {
	if s.Mode == ModeSearching {
		if visible < 0 || visible >= len(s.Matches) {
			return -1
		}
		return s.Matches[visible]
	}
	if visible < 0 || visible >= s.Entries.Len() {
		return -1
	}
	return visible
}

// CursorEntry returns the store index under the cursor, or -1 when the
// visible listing is empty.
func (s *State) CursorEntry() int {
	return s.EntryIndex(s.Cursor)
}

// visiblePositionOf returns the visible position of the entry with the
// given name, or -1.
func (s *State) visiblePositionOf(name string) int {
	idx := s.Entries.IndexOf(name)
	if idx < 0 {
		return -1
	}
	if s.Mode != ModeSearching {
		return idx
	}
	for pos, storeIdx := range s.Matches {
		if storeIdx == idx {
			return pos
		}
	}
	return -1
}

// recomputeMatches rebuilds Matches for the current Query.
func (s *State) recomputeMatches() {
	s.Matches = s.Matches[:0]
	for i := 0; i < s.Entries.Len(); i++ {
		if matchesQuery(s.Entries.Name(i), s.Query) {
			s.Matches = append(s.Matches, i)
		}
	}
}

// exitSearch returns to browsing, keeping the cursor on the entry it was
// on when possible.
func (s *State) exitSearch() {
	if s.Mode != ModeSearching {
		return
	}
	entry := s.CursorEntry()
	s.Mode = ModeBrowsing
	s.Query = ""
	s.Matches = s.Matches[:0]
	if entry >= 0 {
		s.Cursor = entry
	} else if s.Cursor >= s.Entries.Len() {
		s.Cursor = 0
	}
	s.Window.Clamp(s.Entries.Len())
	s.Window.Advance(s.Cursor)
}
