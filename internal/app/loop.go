package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wend-cli/wend/internal/config"
	"github.com/wend-cli/wend/internal/logging"
	statepkg "github.com/wend-cli/wend/internal/state"
	inputui "github.com/wend-cli/wend/internal/ui/input"
	renderui "github.com/wend-cli/wend/internal/ui/render"
	"github.com/wend-cli/wend/internal/watch"
)

const doubleClickThreshold = 300 * time.Millisecond

func NewApplication(cfg *config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	cwd, err := GetCwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	clipboardCmd, clipboardAvail := detectClipboard()

	state := statepkg.NewState(cwd, cfg.ShowHidden)
	state.ClipboardAvailable = clipboardAvail
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	reducer := statepkg.NewReducer()
	if err := reducer.Bootstrap(state); err != nil {
		screen.Fini()
		return nil, err
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	watcher, err := watch.New()
	if err != nil {
		// Auto-refresh is an extra; the r key still re-lists by hand.
		logging.Debugf("app: directory watcher unavailable: %v", err)
		watcher = nil
	} else if err := watcher.Watch(cwd); err != nil {
		logging.Debugf("app: watch %s: %v", cwd, err)
	}

	app := &Application{
		screen:         screen,
		state:          state,
		reducer:        reducer,
		renderer:       renderui.NewRenderer(screen, cfg),
		input:          inputHandler,
		actionCh:       actionCh,
		watcher:        watcher,
		exitPath:       cwd,
		clipboardCmd:   clipboardCmd,
		clipboardAvail: clipboardAvail,
	}
	return app, nil
}

func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var watchCh <-chan struct{}
	if app.watcher != nil {
		watchCh = app.watcher.Changes()
	}

	const animationInterval = 50 * time.Millisecond
	var animationTimer *time.Timer
	var animationCh <-chan time.Time

	startAnimation := func() {
		if animationTimer == nil {
			animationTimer = time.NewTimer(animationInterval)
		} else {
			if !animationTimer.Stop() {
				select {
				case <-animationTimer.C:
				default:
				}
			}
			animationTimer.Reset(animationInterval)
		}
		animationCh = animationTimer.C
	}

	stopAnimation := func() {
		if animationTimer == nil {
			return
		}
		if !animationTimer.Stop() {
			select {
			case <-animationTimer.C:
			default:
			}
		}
		animationCh = nil
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		if app.shouldAnimate() {
			startAnimation()
		} else {
			stopAnimation()
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-watchCh:
			if app.handleAction(statepkg.RefreshAction{}) {
				renderPending = true
			}
		case <-animationCh:
			renderPending = true
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	stopAnimation()
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps the mouse onto the listing: the wheel moves the cursor,
// a click lands on a row, a double click enters it.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state == nil {
		return
	}
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		app.actionCh <- statepkg.MoveUpAction{}
		return
	}
	if buttons&tcell.WheelDown != 0 {
		app.actionCh <- statepkg.MoveDownAction{}
		return
	}
	if buttons&tcell.Button1 == 0 {
		return
	}

	if app.state.ShowHelp {
		app.actionCh <- statepkg.ToggleHelpAction{}
		return
	}

	_, y := ev.Position()
	if y < 1 || y >= app.state.ScreenHeight-1 {
		return // header or footer row
	}

	doubleClick := app.lastClickRow == y && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickRow = y
	app.lastClickTime = time.Now()

	app.actionCh <- statepkg.MouseSelectAction{Row: y}
	if doubleClick {
		app.actionCh <- statepkg.EnterDirAction{}
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) shouldAnimate() bool {
	if app.state == nil || app.state.LastYankTime.IsZero() {
		return false
	}
	return time.Since(app.state.LastYankTime) < 100*time.Millisecond
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.YankPathAction:
		return app.handleClipboard()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}

	if app.state.Quitting {
		app.exitPath = app.state.CurrentPath
		app.shouldQuit = true
		return false
	}

	if app.watcher != nil {
		// Re-pointing to the directory we already watch is a no-op.
		if err := app.watcher.Watch(app.state.CurrentPath); err != nil {
			logging.Debugf("app: watch %s: %v", app.state.CurrentPath, err)
		}
	}
	return true
}
