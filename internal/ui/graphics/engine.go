package graphics

import (
	"fmt"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Engine is the frame driver. ebiten calls Update at a fixed rate and Draw
// once per presented frame.
type Engine struct {
	width  int
	height int

	app    *app.App
	screen types.Screen
}

func NewEngine(application *app.App) *Engine {
	cfg := application.Config()
	return &Engine{
		width:  int(cfg.WindowWidth),
		height: int(cfg.WindowHeight),
		app:    application,
	}
}

func (e *Engine) RegisterScreen(screen types.Screen) {
	if e.screen != nil {
		e.screen.OnExit()
	}
	e.screen = screen
	if e.screen != nil {
		e.screen.OnEnter()
	}
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.app.Config().Title)
	ebiten.SetTPS(app.TicksPerSecond)
	ebiten.SetVsyncEnabled(true)

	log.Info("opening window",
		"session", e.app.ID(),
		"size", fmt.Sprintf("%dx%d", e.width, e.height))

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

func (e *Engine) Update() error {
	if e.screen != nil {
		for _, event := range e.screen.Update() {
			e.handleEvent(event)
		}
	}

	if e.app.ShouldQuit() {
		log.Debug("terminating frame loop", "session", e.app.ID())
		e.restoreDisplay()
		return ebiten.Termination
	}

	e.app.Update()
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	if e.screen == nil {
		return
	}

	if updater, ok := e.screen.(GameStateUpdater); ok {
		updater.SetState(e.app.GetState(), e.app.ShowGrid())
	}

	e.screen.Draw(screen)
}

// Layout keeps the logical resolution fixed; ebiten scales it to the window
// or the full screen.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) handleEvent(event types.UIEvent) {
	var input app.InputEvent

	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventSteer:
		data, ok := event.Payload.(types.SteerData)
		if !ok {
			return
		}
		input = app.InputEvent{Type: app.InputSteer, Payload: data.Direction}

	case types.UIEventToggleGrid:
		input = app.InputEvent{Type: app.InputToggleGrid}

	case types.UIEventToggleFullscreen:
		input = app.InputEvent{Type: app.InputToggleFullscreen}

	case types.UIEventQuit:
		input = app.InputEvent{Type: app.InputQuit}

	default:
		log.Warn("unhandled UI event", "type", event.Type)
		return
	}

	result := e.app.HandleInput(input)
	if result.Type == app.AppEventFullscreenToggled {
		setFullscreen(result.Payload.(bool))
	}
}

func (e *Engine) restoreDisplay() {
	if e.app.Fullscreen() {
		setFullscreen(false)
	}
}

func setFullscreen(on bool) {
	ebiten.SetFullscreen(on)
	ebiten.SetCursorMode(cursorModeFor(on))
}

// cursorModeFor hides the cursor in fullscreen and shows it in a window.
func cursorModeFor(fullscreen bool) ebiten.CursorModeType {
	if fullscreen {
		return ebiten.CursorModeHidden
	}
	return ebiten.CursorModeVisible
}

type GameStateUpdater interface {
	SetState(state *domain.GameState, showGrid bool)
}
