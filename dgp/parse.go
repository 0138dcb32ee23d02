// Package dgp reads and writes Draughts Game Position strings, a compact
// one-line description of a position used for debugging and tests:
//
//	bbbb/bbbb/bbbb/4/4/rrrr/rrrr/rrrr b
//
// Each of the eight rows lists its four playable squares from left to
// right: b and r are pawns, B and R kings, and a digit skips that many
// empty squares. The final field is the side to move.
package dgp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/game"
)

var (
	ErrBadPosition = errors.New("bad position string")
)

const rows = 8

// Position is a board plus the side to move.
type Position struct {
	Board  board.Board
	OnTurn board.Color
}

func Start() *Position {
	return &Position{Board: board.StartingPosition(), OnTurn: board.Black}
}

// FromGame captures the current position of g.
func FromGame(g *game.Game) *Position {
	return &Position{Board: g.Board(), OnTurn: g.PlayerOnTurn()}
}

// Parse returns the position described by s.
func Parse(s string) (*Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: must have 2 space-separated fields", ErrBadPosition)
	}
	rowStrs := strings.Split(fields[0], "/")
	if len(rowStrs) != rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadPosition, rows, len(rowStrs))
	}
	pos := &Position{Board: board.EmptyBoard()}
	for i, row := range rowStrs {
		if err := parseRow(&pos.Board, i, row); err != nil {
			return nil, err
		}
	}
	switch fields[1] {
	case "b", "B":
		pos.OnTurn = board.Black
	case "r", "R":
		pos.OnTurn = board.Red
	default:
		return nil, fmt.Errorf("%w: unknown side to move %q", ErrBadPosition, fields[1])
	}
	return pos, nil
}

func parseRow(b *board.Board, rowIdx int, row string) error {
	col := 0
	first := board.Square(rowIdx*4 + 1)
	for _, ch := range row {
		if col >= 4 {
			return fmt.Errorf("%w: row %d is too long", ErrBadPosition, rowIdx+1)
		}
		switch {
		case ch >= '1' && ch <= '4':
			col += int(ch - '0')
			if col > 4 {
				return fmt.Errorf("%w: row %d is too long", ErrBadPosition, rowIdx+1)
			}
			continue
		case ch == 'b':
			b.Put(first+board.Square(col), board.Black, false)
		case ch == 'B':
			b.Put(first+board.Square(col), board.Black, true)
		case ch == 'r':
			b.Put(first+board.Square(col), board.Red, false)
		case ch == 'R':
			b.Put(first+board.Square(col), board.Red, true)
		default:
			return fmt.Errorf("%w: unknown piece %q in row %d", ErrBadPosition, ch, rowIdx+1)
		}
		col++
	}
	if col != 4 {
		return fmt.Errorf("%w: row %d has %d squares", ErrBadPosition, rowIdx+1, col)
	}
	return nil
}

// String writes the position back out, compressing runs of empty squares.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empties := 0
		for c := 0; c < 4; c++ {
			st := p.Board.At(board.Square(r*4 + c + 1))
			if st.IsEmpty() {
				empties++
				continue
			}
			if empties > 0 {
				fmt.Fprintf(&sb, "%d", empties)
				empties = 0
			}
			sb.WriteByte(st.Letter())
		}
		if empties > 0 {
			fmt.Fprintf(&sb, "%d", empties)
		}
	}
	side := "b"
	if p.OnTurn == board.Red {
		side = "r"
	}
	return sb.String() + " " + side
}
