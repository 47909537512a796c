package input

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyDirections = map[ebiten.Key]domain.Direction{
	ebiten.KeyW:          domain.DirectionUp,
	ebiten.KeyArrowUp:    domain.DirectionUp,
	ebiten.KeyS:          domain.DirectionDown,
	ebiten.KeyArrowDown:  domain.DirectionDown,
	ebiten.KeyA:          domain.DirectionLeft,
	ebiten.KeyArrowLeft:  domain.DirectionLeft,
	ebiten.KeyD:          domain.DirectionRight,
	ebiten.KeyArrowRight: domain.DirectionRight,
}

type KeyboardHandler struct {
	keys []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns one event per recognised key pressed since the last tick,
// in the order ebiten reports them.
func (kh *KeyboardHandler) Update() []types.UIEvent {
	kh.keys = inpututil.AppendJustPressedKeys(kh.keys[:0])

	var events []types.UIEvent
	for _, key := range kh.keys {
		if ev, ok := MapKey(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func MapKey(key ebiten.Key) (types.UIEvent, bool) {
	if dir, ok := keyDirections[key]; ok {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}, true
	}

	switch key {
	case ebiten.KeyG:
		return types.UIEvent{Type: types.UIEventToggleGrid}, true
	case ebiten.KeySpace:
		return types.UIEvent{Type: types.UIEventToggleFullscreen}, true
	case ebiten.KeyEscape:
		return types.UIEvent{Type: types.UIEventQuit}, true
	}

	return types.UIEvent{}, false
}
