package entity

import "fmt"

const (
	BoardDim = 8
	MaxMoves = BoardDim * BoardDim
)

// Cell is a board coordinate. Row and column are zero based.
type Cell struct {
	Row int
	Col int
}

// OffBoard is returned by Cell.Plus when the result leaves the board.
var OffBoard = Cell{Row: -1, Col: -1}

func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardDim && that.Col >= 0 && that.Col < BoardDim
}

// Plus moves the cell one step in dir, or returns OffBoard.
func (that Cell) Plus(dir Direction) Cell {
	next := Cell{Row: that.Row + dir.DRow, Col: that.Col + dir.DCol}
	if !that.InBounds() || !next.InBounds() {
		return OffBoard
	}

	return next
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Direction struct {
	DRow int
	DCol int
}

var (
	Up        = Direction{DRow: -1, DCol: 0}
	UpRight   = Direction{DRow: -1, DCol: 1}
	Right     = Direction{DRow: 0, DCol: 1}
	DownRight = Direction{DRow: 1, DCol: 1}
	Down      = Direction{DRow: 1, DCol: 0}
	DownLeft  = Direction{DRow: 1, DCol: -1}
	Left      = Direction{DRow: 0, DCol: -1}
	UpLeft    = Direction{DRow: -1, DCol: -1}

	Directions = [8]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
)

var cells = func() [MaxMoves]Cell {
	var all [MaxMoves]Cell
	for row := 0; row < BoardDim; row++ {
		for col := 0; col < BoardDim; col++ {
			all[row*BoardDim+col] = Cell{Row: row, Col: col}
		}
	}
	return all
}()

// Cells returns every cell in row-major order. Move search and tie-breaks depend on this order.
func Cells() []Cell {
	all := cells
	return all[:]
}
