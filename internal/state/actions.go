package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== CURSOR ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}
type MouseSelectAction struct {
	Row int // screen row of the click
}

// ===== NAVIGATION ACTIONS =====

type EnterDirAction struct{}
type LeaveDirAction struct{}
type GoHomeAction struct{}
type RefreshAction struct{}

// ===== SELECTION ACTIONS =====

type ToggleSelectAction struct{}
type SelectAllAction struct{}
type InvertSelectionAction struct{}

// ===== FILE OPERATION ACTIONS =====

type DeleteSelectionAction struct{}
type MoveSelectionAction struct{}
type PasteSelectionAction struct{}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchExitAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenAction struct{}
type ToggleHelpAction struct{}
type YankPathAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

// SuspendAction is handled by the application loop, not the reducer; it
// stops the process and hands the terminal back to the shell.
type SuspendAction struct{}
