package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/wend-cli/wend/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.State // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.State) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	searching := ih.state != nil && ih.state.Mode == statepkg.ModeSearching
	helpVisible := ih.state != nil && ih.state.ShowHelp

	if helpVisible {
		// The overlay swallows everything except quit; any key closes it.
		if ev.Key() == tcell.KeyCtrlC {
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
		ih.actionChan <- statepkg.ToggleHelpAction{}
		return true
	}

	// Special keys work the same in both modes unless noted.
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyEscape:
		if searching {
			ih.actionChan <- statepkg.SearchExitAction{}
		}
		return true

	case tcell.KeyEnter:
		if searching {
			ih.actionChan <- statepkg.SearchExitAction{}
		} else {
			ih.actionChan <- statepkg.EnterDirAction{}
		}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.MoveUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.MoveDownAction{}
		return true

	case tcell.KeyLeft:
		if !searching {
			ih.actionChan <- statepkg.LeaveDirAction{}
		}
		return true

	case tcell.KeyRight:
		if !searching {
			ih.actionChan <- statepkg.EnterDirAction{}
		}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.JumpTopAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.JumpBottomAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if searching {
			ih.actionChan <- statepkg.SearchBackspaceAction{}
		}
		return true

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModShift != 0 {
			// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
			r = unicode.ToUpper(r)
		}

		// While searching every printable rune extends the query, so file
		// names containing command letters stay reachable.
		if searching {
			ih.actionChan <- statepkg.SearchCharAction{Char: r}
			return true
		}

		switch r {
		case 'q':
			ih.actionChan <- statepkg.QuitAction{}
			return false

		case 'h':
			ih.actionChan <- statepkg.LeaveDirAction{}
			return true

		case 'j':
			ih.actionChan <- statepkg.MoveDownAction{}
			return true

		case 'k':
			ih.actionChan <- statepkg.MoveUpAction{}
			return true

		case 'l':
			ih.actionChan <- statepkg.EnterDirAction{}
			return true

		case 'g':
			ih.actionChan <- statepkg.JumpTopAction{}
			return true

		case 'G':
			ih.actionChan <- statepkg.JumpBottomAction{}
			return true

		case ' ':
			ih.actionChan <- statepkg.ToggleSelectAction{}
			return true

		case 'a':
			ih.actionChan <- statepkg.SelectAllAction{}
			return true

		case 'A':
			ih.actionChan <- statepkg.InvertSelectionAction{}
			return true

		case 'd':
			ih.actionChan <- statepkg.DeleteSelectionAction{}
			return true

		case 'v':
			ih.actionChan <- statepkg.MoveSelectionAction{}
			return true

		case 'p':
			ih.actionChan <- statepkg.PasteSelectionAction{}
			return true

		case '/':
			ih.actionChan <- statepkg.SearchStartAction{}
			return true

		case '.':
			ih.actionChan <- statepkg.ToggleHiddenAction{}
			return true

		case 'r':
			ih.actionChan <- statepkg.RefreshAction{}
			return true

		case '~':
			ih.actionChan <- statepkg.GoHomeAction{}
			return true

		case 'y':
			ih.actionChan <- statepkg.YankPathAction{}
			return true

		case '?':
			ih.actionChan <- statepkg.ToggleHelpAction{}
			return true
		}

		return true

	default:
		return true
	}
}
