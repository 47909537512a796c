package domain

const maxFoodAttempts = 100

// SpawnFood draws a food cell uniformly over the field. The position may
// coincide with the snake.
func SpawnFood(field *Field, rng Rand) Cell {
	pos := Coord{
		X: rng.Int31n(field.Width),
		Y: rng.Int31n(field.Height),
	}
	return NewCell(pos, CellFood, rng)
}

// SpawnFoodAvoiding retries SpawnFood until it lands on a cell that
// occupied rejects. After maxFoodAttempts draws the last one is kept.
func SpawnFoodAvoiding(field *Field, rng Rand, occupied func(Coord) bool) Cell {
	var food Cell
	for attempts := 0; attempts < maxFoodAttempts; attempts++ {
		food = SpawnFood(field, rng)
		if !occupied(food.Pos) {
			break
		}
	}
	return food
}
