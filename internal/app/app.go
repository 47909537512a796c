package app

import (
	"fmt"

	"snake/internal/domain"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// TicksPerSecond is the rate at which the frame driver calls Update.
const TicksPerSecond = 60

// App owns the game state and the session flags around it. It is driven
// from a single goroutine: HandleInput for each input, then Update once
// per tick.
type App struct {
	id     string
	config *domain.GameConfig
	state  *domain.GameState

	showGrid   bool
	fullscreen bool
	quit       bool

	ticks        int
	ticksPerStep int
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventNone AppEventType = iota
	AppEventHeadingChanged
	AppEventGridToggled
	AppEventFullscreenToggled
	AppEventQuit
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputSteer InputEventType = iota
	InputToggleGrid
	InputToggleFullscreen
	InputQuit
)

func NewApp(config *domain.GameConfig, rng domain.Rand) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	a := &App{
		id:           uuid.NewString(),
		config:       config.Copy(),
		state:        domain.NewGameState(config, rng),
		ticksPerStep: StepTicks(config.StepDelayMs),
	}

	log.Info("session created",
		"session", a.id,
		"grid", fmt.Sprintf("%dx%d", a.state.Field.Width, a.state.Field.Height),
		"step", fmt.Sprintf("%dms", config.StepDelayMs))

	return a, nil
}

// StepTicks converts a step delay into a whole number of ticks, at least one.
func StepTicks(delayMs int32) int {
	ticks := int(delayMs) * TicksPerSecond / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func (a *App) ID() string {
	return a.id
}

func (a *App) Config() *domain.GameConfig {
	return a.config
}

func (a *App) GetState() *domain.GameState {
	return a.state
}

func (a *App) ShowGrid() bool {
	return a.showGrid
}

func (a *App) Fullscreen() bool {
	return a.fullscreen
}

func (a *App) ShouldQuit() bool {
	return a.quit
}

func (a *App) SendSteer(dir domain.Direction) bool {
	return a.state.Steer(dir)
}

func (a *App) ToggleGrid() bool {
	a.showGrid = !a.showGrid
	return a.showGrid
}

func (a *App) ToggleFullscreen() bool {
	a.fullscreen = !a.fullscreen
	return a.fullscreen
}

func (a *App) Quit() {
	if !a.quit {
		log.Info("quit requested", "session", a.id)
	}
	a.quit = true
}

// HandleInput applies one input and reports what changed.
func (a *App) HandleInput(input InputEvent) AppEvent {
	if a.quit {
		return AppEvent{Type: AppEventNone}
	}

	switch input.Type {
	case InputSteer:
		dir, ok := input.Payload.(domain.Direction)
		if !ok || !a.SendSteer(dir) {
			return AppEvent{Type: AppEventNone}
		}
		return AppEvent{Type: AppEventHeadingChanged, Payload: dir}

	case InputToggleGrid:
		return AppEvent{Type: AppEventGridToggled, Payload: a.ToggleGrid()}

	case InputToggleFullscreen:
		return AppEvent{Type: AppEventFullscreenToggled, Payload: a.ToggleFullscreen()}

	case InputQuit:
		a.Quit()
		return AppEvent{Type: AppEventQuit}
	}

	return AppEvent{Type: AppEventNone}
}

// Update counts one tick and runs a game step every ticksPerStep ticks.
// The returned result is nil on ticks without a step.
func (a *App) Update() *domain.TickResult {
	if a.quit {
		return nil
	}

	a.ticks++
	if a.ticks < a.ticksPerStep {
		return nil
	}
	a.ticks = 0

	result := a.state.Tick()
	if result.Ate {
		log.Debug("food eaten",
			"session", a.id,
			"head", result.Head,
			"length", result.Length,
			"food", a.state.Food.Pos)
	}
	return result
}

// Stop logs the session summary.
func (a *App) Stop() {
	log.Info("session finished",
		"session", a.id,
		"steps", a.state.StepCount,
		"eaten", a.state.FoodEaten,
		"length", a.state.Snake.Length())
}
