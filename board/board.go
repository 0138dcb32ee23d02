// Package board contains the geometry of the 32-square draughts board and
// the board model itself. A Board is a plain value; copying it copies the
// position.
package board

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// A Board holds the state of all 32 playable squares. Index i of squares is
// square i+1.
type Board struct {
	squares [NumSquares]SquareState
}

// allSquares is 1..32, in order.
var allSquares = lo.Map(lo.Range(NumSquares), func(i int, _ int) Square {
	return Square(i + 1)
})

// AllSquares returns every square, in ascending order.
func AllSquares() []Square {
	return append([]Square(nil), allSquares...)
}

// EmptyBoard returns a board with no pieces. The first and last rows carry
// their back-rank markers.
func EmptyBoard() Board {
	var b Board
	for _, s := range allSquares {
		switch row := Row(s); row {
		case 1:
			b.squares[s-1].home = Black
		case numRows:
			b.squares[s-1].home = Red
		}
	}
	return b
}

// StartingPosition returns the standard setup: black pawns on 1-12, red
// pawns on 21-32.
func StartingPosition() Board {
	b := EmptyBoard()
	for s := Square(1); s <= 12; s++ {
		b.Put(s, Black, false)
	}
	for s := Square(21); s <= NumSquares; s++ {
		b.Put(s, Red, false)
	}
	return b
}

func mustBeValid(s Square) {
	if !s.Valid() {
		panic(fmt.Sprintf("square %d is out of range [1, %d]", s, NumSquares))
	}
}

// At returns the state of square s. An invalid square is a programming
// error and panics.
func (b *Board) At(s Square) SquareState {
	mustBeValid(s)
	return b.squares[s-1]
}

// SquareValue is At for an optional coordinate, as returned by Neighbor.
// It returns false if the coordinate is absent.
func (b *Board) SquareValue(s Square, ok bool) (SquareState, bool) {
	if !ok || !s.Valid() {
		return SquareState{}, false
	}
	return b.squares[s-1], true
}

// Put places a piece on s, replacing whatever was there. The square keeps
// its back-rank marker.
func (b *Board) Put(s Square, c Color, king bool) {
	mustBeValid(s)
	if c == NoColor {
		panic("cannot put a piece with no color")
	}
	b.squares[s-1].color = c
	b.squares[s-1].king = king
}

// Clear empties square s, keeping its back-rank marker.
func (b *Board) Clear(s Square) {
	mustBeValid(s)
	b.squares[s-1].color = NoColor
	b.squares[s-1].king = false
}

// SquaresOf returns all squares, in ascending order, whose state satisfies
// pred.
func (b *Board) SquaresOf(pred func(SquareState) bool) []Square {
	return lo.Filter(allSquares, func(s Square, _ int) bool {
		return pred(b.squares[s-1])
	})
}

func (b *Board) Occupied() []Square {
	return b.SquaresOf(func(st SquareState) bool { return !st.IsEmpty() })
}

// Pieces returns the squares holding pieces of color c, pawns and kings.
func (b *Board) Pieces(c Color) []Square {
	return b.SquaresOf(func(st SquareState) bool { return st.color == c && c != NoColor })
}

func (b *Board) Kings(c Color) []Square {
	return b.SquaresOf(func(st SquareState) bool { return st.color == c && st.IsKing() })
}

func (b *Board) Pawns(c Color) []Square {
	return b.SquaresOf(func(st SquareState) bool { return st.color == c && st.IsPawn() })
}

func (b *Board) Count(c Color) int {
	return lo.CountBy(b.squares[:], func(st SquareState) bool {
		return st.color == c && c != NoColor
	})
}

// Equals compares the pieces on two boards.
func (b *Board) Equals(other *Board) bool {
	return b.squares == other.squares
}

// ToDisplayText renders the board one physical row at a time. Light
// squares are shown as "=".
func (b *Board) ToDisplayText(color bool) string {
	var sb strings.Builder
	for row := 1; row <= numRows; row++ {
		rowStr := "|"
		for col := 1; col <= numCols; col++ {
			s, ok := FromRowCol(row, col)
			if !ok {
				rowStr += "=|"
				continue
			}
			rowStr += b.squares[s-1].displayString(color) + "|"
		}
		first := Square((row-1)*squaresPerRow + 1)
		numbers := fmt.Sprintf("  %2d-%2d", first, first+squaresPerRow-1)
		if color {
			sb.WriteString("\033[0;44m" + rowStr + "\033[0m" + numbers + "\n")
		} else {
			sb.WriteString(rowStr + numbers + "\n")
		}
	}
	return sb.String()
}
