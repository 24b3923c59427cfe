package render

import (
	"strings"

	statepkg "github.com/wend-cli/wend/internal/state"
)

// buildFooterHints returns the key hint string shown while the footer has
// no status or error to display.
func buildFooterHints(state *statepkg.State) string {
	if state == nil {
		return ""
	}

	segments := []string{
		"j/k move",
		"h/l navigate",
		"space select",
		"d delete",
		"/ search",
	}
	if state.Selected.Count() > 0 {
		segments = []string{
			"space select",
			"d delete",
			"v move here",
			"p copy here",
			"A invert",
		}
	}
	if state.ClipboardAvailable {
		segments = append(segments, "y yank")
	}
	segments = append(segments, "? help")

	return strings.Join(segments, " · ")
}
