package board

import "fmt"

// NumSquares is the number of playable (dark) squares on the board.
const NumSquares = 32

const (
	squaresPerRow = 4
	numRows       = 8
	numCols       = 8
)

// A Square is an index from 1 to 32 into the playable squares, in reading
// order from the top-left of the board. 0 is never a valid square.
type Square int8

func (s Square) Valid() bool {
	return s >= 1 && s <= NumSquares
}

func (s Square) String() string {
	return fmt.Sprintf("%d", int(s))
}

// Direction is one of the four diagonals. "Down" is towards higher square
// numbers.
type Direction uint8

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

var AllDirections = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return "none"
}

func (d Direction) delta() (int, int) {
	switch d {
	case UpLeft:
		return -1, -1
	case UpRight:
		return -1, 1
	case DownLeft:
		return 1, -1
	default:
		return 1, 1
	}
}

// Row returns the physical row of the square, 1 through 8 from the top.
func Row(s Square) int {
	return (int(s)-1)/squaresPerRow + 1
}

// Column returns the physical column of the square, 1 through 8 from the
// left. Odd rows start on the second column; even rows on the first.
func Column(s Square) int {
	k := (int(s) - 1) % squaresPerRow
	if Row(s)%2 == 1 {
		return 2*k + 2
	}
	return 2*k + 1
}

// FromRowCol returns the square at the given physical row and column, or
// false if that position is off the board or is a light square.
func FromRowCol(row, col int) (Square, bool) {
	if row < 1 || row > numRows || col < 1 || col > numCols {
		return 0, false
	}
	if (row+col)%2 == 0 {
		return 0, false
	}
	return Square((row-1)*squaresPerRow + (col-1)/2 + 1), true
}

// neighbors[s][d] is the neighbor of s in direction d, or 0 if there is none.
var neighbors [NumSquares + 1][4]Square

func init() {
	for s := Square(1); s <= NumSquares; s++ {
		for _, d := range AllDirections {
			dr, dc := d.delta()
			if n, ok := FromRowCol(Row(s)+dr, Column(s)+dc); ok {
				neighbors[s][d] = n
			}
		}
	}
}

// Neighbor returns the diagonal neighbor of s in direction d. It returns
// false if s is invalid or the neighbor would be off the board.
func Neighbor(s Square, d Direction) (Square, bool) {
	if !s.Valid() || d > DownRight {
		return 0, false
	}
	n := neighbors[s][d]
	return n, n != 0
}
