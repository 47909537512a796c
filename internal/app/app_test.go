package app

import (
	"bytes"
	"strings"
	"testing"

	"snake/internal/domain"

	"golang.org/x/exp/rand"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := NewApp(domain.DefaultGameConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return a
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.CellWidth = 0

	if _, err := NewApp(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected an error for a zero cell width")
	}
}

func TestTogglesAreIdempotentInPairs(t *testing.T) {
	tests := []struct {
		name  string
		input InputEventType
		event AppEventType
		flag  func(a *App) bool
	}{
		{"grid", InputToggleGrid, AppEventGridToggled, (*App).ShowGrid},
		{"fullscreen", InputToggleFullscreen, AppEventFullscreenToggled, (*App).Fullscreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			initial := tt.flag(a)

			ev := a.HandleInput(InputEvent{Type: tt.input})
			if ev.Type != tt.event || ev.Payload != !initial {
				t.Errorf("first toggle event = %+v", ev)
			}
			if tt.flag(a) == initial {
				t.Error("first toggle did not change the flag")
			}

			a.HandleInput(InputEvent{Type: tt.input})
			if tt.flag(a) != initial {
				t.Error("second toggle did not restore the flag")
			}
		})
	}
}

func TestSteerRejectsReverse(t *testing.T) {
	a := newTestApp(t)

	ev := a.HandleInput(InputEvent{Type: InputSteer, Payload: domain.DirectionDown})
	if ev.Type != AppEventNone {
		t.Errorf("reverse steer produced %+v", ev)
	}
	if a.GetState().Snake.HeadDirection != domain.DirectionUp {
		t.Errorf("heading = %v, want up", a.GetState().Snake.HeadDirection)
	}

	ev = a.HandleInput(InputEvent{Type: InputSteer, Payload: domain.DirectionLeft})
	if ev.Type != AppEventHeadingChanged || ev.Payload != domain.DirectionLeft {
		t.Errorf("left steer produced %+v", ev)
	}
}

func TestQueuedInputsApplyInOrder(t *testing.T) {
	a := newTestApp(t)

	// Left is accepted against Up, then Down is accepted against Left.
	a.HandleInput(InputEvent{Type: InputSteer, Payload: domain.DirectionLeft})
	a.HandleInput(InputEvent{Type: InputSteer, Payload: domain.DirectionDown})

	if got := a.GetState().Snake.HeadDirection; got != domain.DirectionDown {
		t.Errorf("heading = %v, want down", got)
	}
}

func TestSteerIgnoresBadPayload(t *testing.T) {
	a := newTestApp(t)

	ev := a.HandleInput(InputEvent{Type: InputSteer, Payload: "left"})
	if ev.Type != AppEventNone {
		t.Errorf("bad payload produced %+v", ev)
	}
}

func TestUpdateStepsAtConfiguredInterval(t *testing.T) {
	a := newTestApp(t)
	perStep := StepTicks(a.Config().StepDelayMs)
	if perStep != 6 {
		t.Fatalf("StepTicks(100) = %d, want 6", perStep)
	}

	for i := 1; i < perStep; i++ {
		if r := a.Update(); r != nil {
			t.Fatalf("tick %d stepped early", i)
		}
	}
	r := a.Update()
	if r == nil {
		t.Fatal("expected a step on the last tick of the interval")
	}
	if r.Head != (domain.Coord{X: 20, Y: 14}) {
		t.Errorf("head = %v, want (20,14)", r.Head)
	}
	if a.GetState().StepCount != 1 {
		t.Errorf("StepCount = %d, want 1", a.GetState().StepCount)
	}
}

func TestStepTicksFloor(t *testing.T) {
	tests := []struct {
		delay int32
		want  int
	}{
		{10, 1},
		{16, 1},
		{100, 6},
		{250, 15},
		{1000, 60},
	}
	for _, tt := range tests {
		if got := StepTicks(tt.delay); got != tt.want {
			t.Errorf("StepTicks(%d) = %d, want %d", tt.delay, got, tt.want)
		}
	}
}

func TestQuitIsTerminal(t *testing.T) {
	a := newTestApp(t)

	ev := a.HandleInput(InputEvent{Type: InputQuit})
	if ev.Type != AppEventQuit || !a.ShouldQuit() {
		t.Fatalf("quit event = %+v, ShouldQuit = %v", ev, a.ShouldQuit())
	}

	for i := 0; i < 20; i++ {
		if a.Update() != nil {
			t.Fatal("stepped after quit")
		}
	}
	if ev := a.HandleInput(InputEvent{Type: InputToggleGrid}); ev.Type != AppEventNone {
		t.Errorf("input after quit produced %+v", ev)
	}
	a.Stop()
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, b := newTestApp(t), newTestApp(t)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("ids %q and %q", a.ID(), b.ID())
	}
}

func TestPrintControls(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintControls(&buf); err != nil {
		t.Fatalf("PrintControls: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Controls", "WASD", "SPACE", "ESC", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("hint missing %q:\n%s", want, out)
		}
	}
}
