package movegen

import (
	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

// SimpleMoves returns every non-capturing move for color c: one diagonal
// step to an empty square, forward only for pawns. Moves are ordered by
// origin square, then direction.
func SimpleMoves(b *board.Board, c board.Color) []*move.Move {
	var simples []*move.Move
	for _, sq := range b.Pieces(c) {
		for _, d := range b.At(sq).Directions() {
			dest, ok := board.Neighbor(sq, d)
			if !ok || !b.At(dest).IsEmpty() {
				continue
			}
			simples = append(simples, move.NewSimpleMove(c, sq, dest))
		}
	}
	return simples
}
