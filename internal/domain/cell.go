package domain

import "image/color"

type CellKind int

const (
	CellBody CellKind = iota
	CellHead
	CellFood
)

func (k CellKind) String() string {
	switch k {
	case CellBody:
		return "body"
	case CellHead:
		return "head"
	case CellFood:
		return "food"
	}
	return "unknown"
}

var (
	ColorHead = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorBody = color.RGBA{0x7f, 0x7f, 0x7f, 0xff}
)

const (
	foodColorMin   = 32
	foodColorRange = 224
)

// Rand is the subset of a random number generator the game draws from.
type Rand interface {
	Int31n(n int32) int32
}

type Cell struct {
	Pos   Coord
	Color color.RGBA
	Kind  CellKind
}

// NewCell builds a cell of the given kind. Food cells get a random colour
// with every channel in [32,255]; rng may be nil for other kinds.
func NewCell(pos Coord, kind CellKind, rng Rand) Cell {
	c := Cell{Pos: pos, Kind: kind}
	switch kind {
	case CellHead:
		c.Color = ColorHead
	case CellBody:
		c.Color = ColorBody
	case CellFood:
		c.Color = color.RGBA{
			R: uint8(foodColorMin + rng.Int31n(foodColorRange)),
			G: uint8(foodColorMin + rng.Int31n(foodColorRange)),
			B: uint8(foodColorMin + rng.Int31n(foodColorRange)),
			A: 0xff,
		}
	}
	return c
}

// DisplayColor applies the kind colour rule: heads and bodies are fixed
// greys whatever colour they carry, food keeps its own.
func (c Cell) DisplayColor() color.RGBA {
	switch c.Kind {
	case CellHead:
		return ColorHead
	case CellBody:
		return ColorBody
	}
	return c.Color
}

func (c Cell) Hit(other Cell) bool {
	return c.Pos.Equals(other.Pos)
}
