package domain

// Snake is an ordered list of segments, head first.
// Segment 0 is always a head cell and every other segment a body cell.
type Snake struct {
	cells         []Cell
	HeadDirection Direction
}

// NewSnake places a two-segment snake with its head at head and its single
// body segment one step towards tailDirection. The snake faces away from
// its tail.
func NewSnake(head Coord, tailDirection Direction, field *Field) *Snake {
	return &Snake{
		cells: []Cell{
			NewCell(field.Normalize(head), CellHead, nil),
			NewCell(field.Move(head, tailDirection), CellBody, nil),
		},
		HeadDirection: tailDirection.Opposite(),
	}
}

func (s *Snake) Head() Coord {
	if len(s.cells) == 0 {
		return Coord{}
	}
	return s.cells[0].Pos
}

func (s *Snake) Tail() Cell {
	if len(s.cells) == 0 {
		return Cell{}
	}
	return s.cells[len(s.cells)-1]
}

func (s *Snake) Length() int {
	return len(s.cells)
}

// Cells returns a copy of the segments, head first.
func (s *Snake) Cells() []Cell {
	result := make([]Cell, len(s.cells))
	copy(result, s.cells)
	return result
}

func (s *Snake) Occupies(c Coord) bool {
	for _, cell := range s.cells {
		if cell.Pos.Equals(c) {
			return true
		}
	}
	return false
}

func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.HeadDirection) {
		return false
	}
	s.HeadDirection = dir
	return true
}

// Advance moves the snake one cell along its heading. Every segment takes
// the position and colour of the one in front of it, then the head steps
// forward and wraps around the field edges.
func (s *Snake) Advance(field *Field) {
	if len(s.cells) == 0 {
		return
	}

	for i := len(s.cells) - 1; i > 0; i-- {
		s.cells[i].Pos = s.cells[i-1].Pos
		s.cells[i].Color = s.cells[i-1].Color
		s.cells[i].Kind = CellBody
	}

	head := &s.cells[0]
	head.Kind = CellHead
	head.Color = ColorHead
	head.Pos = field.Move(head.Pos, s.HeadDirection)
}

// Grow appends a body segment holding tail's position and colour.
func (s *Snake) Grow(tail Cell) {
	tail.Kind = CellBody
	s.cells = append(s.cells, tail)
}

func (s *Snake) clone() *Snake {
	return &Snake{
		cells:         s.Cells(),
		HeadDirection: s.HeadDirection,
	}
}
