package graphics

import (
	"testing"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/exp/rand"
)

func newTestEngine(t *testing.T) (*Engine, *app.App) {
	t.Helper()
	a, err := app.NewApp(domain.DefaultGameConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return NewEngine(a), a
}

func TestCursorModeFor(t *testing.T) {
	if got := cursorModeFor(true); got != ebiten.CursorModeHidden {
		t.Errorf("fullscreen cursor mode = %v, want hidden", got)
	}
	if got := cursorModeFor(false); got != ebiten.CursorModeVisible {
		t.Errorf("windowed cursor mode = %v, want visible", got)
	}
}

func TestHandleEventAppliesToApp(t *testing.T) {
	e, a := newTestEngine(t)

	e.handleEvent(types.UIEvent{
		Type:    types.UIEventSteer,
		Payload: types.SteerData{Direction: domain.DirectionLeft},
	})
	if got := a.GetState().Snake.HeadDirection; got != domain.DirectionLeft {
		t.Errorf("heading = %v, want left", got)
	}

	e.handleEvent(types.UIEvent{
		Type:    types.UIEventSteer,
		Payload: types.SteerData{Direction: domain.DirectionRight},
	})
	if got := a.GetState().Snake.HeadDirection; got != domain.DirectionLeft {
		t.Errorf("reverse steer changed heading to %v", got)
	}

	e.handleEvent(types.UIEvent{Type: types.UIEventToggleGrid})
	if !a.ShowGrid() {
		t.Error("grid toggle did not reach the app")
	}

	e.handleEvent(types.UIEvent{Type: types.UIEventNone})
	e.handleEvent(types.UIEvent{Type: types.UIEventSteer, Payload: "bad"})
	if !a.ShowGrid() || a.ShouldQuit() {
		t.Error("ignored events changed app state")
	}

	e.handleEvent(types.UIEvent{Type: types.UIEventQuit})
	if !a.ShouldQuit() {
		t.Error("quit did not reach the app")
	}
}

func TestLayoutIsFixed(t *testing.T) {
	e, _ := newTestEngine(t)

	w, h := e.Layout(1920, 1080)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
}
