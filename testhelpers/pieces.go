// Package testhelpers has fixtures shared by tests in several packages.
package testhelpers

import (
	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
)

var DefaultConfig = config.DefaultConfig()

type Piece struct {
	Sq    board.Square
	Color board.Color
	King  bool
}

func BlackPawn(sq board.Square) Piece { return Piece{sq, board.Black, false} }
func BlackKing(sq board.Square) Piece { return Piece{sq, board.Black, true} }
func RedPawn(sq board.Square) Piece   { return Piece{sq, board.Red, false} }
func RedKing(sq board.Square) Piece   { return Piece{sq, board.Red, true} }

// BoardWith returns an otherwise empty board holding the given pieces.
func BoardWith(pieces ...Piece) board.Board {
	b := board.EmptyBoard()
	for _, p := range pieces {
		b.Put(p.Sq, p.Color, p.King)
	}
	return b
}
