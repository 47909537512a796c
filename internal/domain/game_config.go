package domain

import (
	"errors"
	"fmt"
)

const GameVersion = "0.4"

type GameConfig struct {
	Title           string
	WindowWidth     int32
	WindowHeight    int32
	CellWidth       int32
	CellHeight      int32
	StepDelayMs     int32
	FoodAvoidsSnake bool
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Title:        "Snake " + GameVersion,
		WindowWidth:  640,
		WindowHeight: 480,
		CellWidth:    16,
		CellHeight:   16,
		StepDelayMs:  100,
	}
}

func (c *GameConfig) GridWidth() int32 {
	return c.WindowWidth / c.CellWidth
}

func (c *GameConfig) GridHeight() int32 {
	return c.WindowHeight / c.CellHeight
}

func (c *GameConfig) Validate() error {
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("invalid cell size %dx%d", c.CellWidth, c.CellHeight)
	}
	if c.WindowWidth < c.CellWidth || c.WindowHeight < c.CellHeight {
		return fmt.Errorf("window %dx%d smaller than one cell", c.WindowWidth, c.WindowHeight)
	}
	if c.WindowWidth%c.CellWidth != 0 || c.WindowHeight%c.CellHeight != 0 {
		return fmt.Errorf("window %dx%d is not a whole number of %dx%d cells",
			c.WindowWidth, c.WindowHeight, c.CellWidth, c.CellHeight)
	}
	// The starting snake needs a head and a body cell below it.
	if c.GridHeight() < 2 {
		return errors.New("grid must be at least two rows tall")
	}
	if c.StepDelayMs < 10 || c.StepDelayMs > 3000 {
		return fmt.Errorf("step delay %dms out of range [10,3000]", c.StepDelayMs)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
