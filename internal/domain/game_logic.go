package domain

type TickResult struct {
	Ate    bool
	Head   Coord
	Length int
}

// Tick runs one game step: the snake advances, and if its head lands on
// the food it grows by one segment and new food is placed. Nothing here
// ends the game; the snake may cross itself freely.
func (gs *GameState) Tick() *TickResult {
	if gs.Snake.Length() == 0 {
		gs.StepCount++
		return &TickResult{}
	}

	tail := gs.Snake.Tail()

	gs.Snake.Advance(gs.Field)
	gs.StepCount++

	result := &TickResult{Head: gs.Snake.Head()}

	if gs.Snake.cells[0].Hit(gs.Food) {
		gs.Snake.Grow(tail)
		gs.FoodEaten++
		gs.Food = gs.spawnFood()
		result.Ate = true
	}

	result.Length = gs.Snake.Length()
	return result
}
