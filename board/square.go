package board

import (
	"fmt"
	"os"
)

// ColorSupport can be turned off from the environment regardless of
// configuration.
var ColorSupport = os.Getenv("DRAUGHTS_DISABLE_COLOR") != "on"

// Color is the color of a piece. Black starts on squares 1-12 and moves
// down the board; Red starts on 21-32 and moves up.
type Color uint8

const (
	NoColor Color = iota
	Black
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	}
	return "none"
}

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return Red
	case Red:
		return Black
	}
	return NoColor
}

// Forward returns the two directions a pawn of this color may move in.
func (c Color) Forward() []Direction {
	if c == Red {
		return []Direction{UpLeft, UpRight}
	}
	return []Direction{DownLeft, DownRight}
}

// A SquareState is the contents of one square, plus the square's back-rank
// marker. The marker belongs to the square, not to the piece on it.
type SquareState struct {
	color Color
	king  bool
	// home is the color whose back rank this square is on, if any.
	home Color
}

func (s SquareState) IsEmpty() bool {
	return s.color == NoColor
}

func (s SquareState) Color() Color {
	return s.color
}

func (s SquareState) IsKing() bool {
	return s.color != NoColor && s.king
}

func (s SquareState) IsPawn() bool {
	return s.color != NoColor && !s.king
}

// IsOpponentOf returns true if the square holds a piece that c may capture.
func (s SquareState) IsOpponentOf(c Color) bool {
	return s.color != NoColor && c != NoColor && s.color != c
}

func (s SquareState) IsBackRank() bool {
	return s.home != NoColor
}

// IsPromotionSquareFor returns true if a pawn of color c arriving on this
// square becomes a king; that is, the square is on the opponent's back rank.
func (s SquareState) IsPromotionSquareFor(c Color) bool {
	return c != NoColor && s.home == c.Opponent()
}

// Directions returns the directions the piece on this square may move and
// jump in.
func (s SquareState) Directions() []Direction {
	if s.king {
		return AllDirections[:]
	}
	return s.color.Forward()
}

func (s SquareState) String() string {
	if s.IsEmpty() {
		return "<empty>"
	}
	rank := "pawn"
	if s.king {
		rank = "king"
	}
	return fmt.Sprintf("<%v %v>", s.color, rank)
}

// Letter is the one-character representation used for display and in
// position strings.
func (s SquareState) Letter() byte {
	switch {
	case s.color == Black && s.king:
		return 'B'
	case s.color == Black:
		return 'b'
	case s.color == Red && s.king:
		return 'R'
	case s.color == Red:
		return 'r'
	}
	return '.'
}

func (s SquareState) displayString(color bool) string {
	var ch string
	switch {
	case s.color == Black && s.king:
		ch = "O"
	case s.color == Black:
		ch = "o"
	case s.color == Red && s.king:
		ch = "X"
	case s.color == Red:
		ch = "x"
	default:
		return " "
	}
	if !color {
		return ch
	}
	if s.color == Black {
		return fmt.Sprintf("\033[30;44m%s\033[97;44m", ch)
	}
	return fmt.Sprintf("\033[31;44m%s\033[97;44m", ch)
}
