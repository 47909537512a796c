package domain

// GameState is everything the game mutates from frame to frame.
type GameState struct {
	StepCount int32
	FoodEaten int32
	Field     *Field
	Config    *GameConfig
	Snake     *Snake
	Food      Cell

	rng Rand
}

// NewGameState creates the starting position: a two-cell snake in the
// middle of the field heading up, and one piece of food.
func NewGameState(config *GameConfig, rng Rand) *GameState {
	field := NewField(config.GridWidth(), config.GridHeight())
	gs := &GameState{
		Field:  field,
		Config: config.Copy(),
		Snake:  NewSnake(field.Center(), DirectionDown, field),
		rng:    rng,
	}
	gs.Food = gs.spawnFood()
	return gs
}

func (gs *GameState) spawnFood() Cell {
	if gs.Config.FoodAvoidsSnake {
		return SpawnFoodAvoiding(gs.Field, gs.rng, gs.Snake.Occupies)
	}
	return SpawnFood(gs.Field, gs.rng)
}

func (gs *GameState) Steer(dir Direction) bool {
	return gs.Snake.SetDirection(dir)
}

// clone returns a snapshot that shares nothing mutable with gs.
func (gs *GameState) clone() *GameState {
	return &GameState{
		StepCount: gs.StepCount,
		FoodEaten: gs.FoodEaten,
		Field:     NewField(gs.Field.Width, gs.Field.Height),
		Config:    gs.Config.Copy(),
		Snake:     gs.Snake.clone(),
		Food:      gs.Food,
		rng:       gs.rng,
	}
}
