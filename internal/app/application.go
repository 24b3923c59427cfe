package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/wend-cli/wend/internal/state"
	"github.com/wend-cli/wend/internal/store"
	inputui "github.com/wend-cli/wend/internal/ui/input"
	renderui "github.com/wend-cli/wend/internal/ui/render"
	"github.com/wend-cli/wend/internal/watch"
)

// Application ties the screen, the state and the event loop together.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.State
	reducer  *statepkg.Reducer
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	actionCh chan statepkg.Action
	watcher  *watch.Watcher // nil when fsnotify is unavailable

	shouldQuit bool
	exitPath   string

	clipboardCmd   []string
	clipboardAvail bool

	lastClickRow  int
	lastClickTime time.Time
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		app.watcher.Close()
	}
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// ExitPath returns the directory the browser was in when it quit.
func (app *Application) ExitPath() string {
	return app.exitPath
}

// SelectionPaths returns every selected entry as an absolute path: the
// remembered selections of previously visited directories in path order,
// then the current directory's in listing order.
func (app *Application) SelectionPaths() []string {
	var paths []string
	app.reducer.History().Walk(func(dir string, snap store.Snapshot) {
		for _, name := range snap.Names {
			paths = append(paths, filepath.Join(dir, name))
		}
	})
	for _, idx := range app.state.Selected.Indices() {
		paths = append(paths, filepath.Join(app.state.CurrentPath, app.state.Entries.Name(idx)))
	}
	return paths
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
