package movegen

import (
	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

// TryJump tests a single jump from `from` in direction d for a piece of
// color mover. The neighbor in that direction must hold an opposing piece
// and the square beyond it must exist. Whether the landing square is free
// is left to the caller, since a chain may land back on its own origin.
func TryJump(b *board.Board, from board.Square, d board.Direction,
	mover board.Color) (captured, landing board.Square, ok bool) {

	captured, ok = board.Neighbor(from, d)
	if !ok || !b.At(captured).IsOpponentOf(mover) {
		return 0, 0, false
	}
	landing, ok = board.Neighbor(captured, d)
	if !ok {
		return 0, 0, false
	}
	return captured, landing, true
}

// CapturePaths returns every maximal capture chain for the piece on from.
//
// The search runs over the board as given: jumped pieces stay where they
// are until the move is played, so they still block landings and cannot be
// jumped a second time. The one square treated as free besides empty ones
// is the chain's own origin, which a king may pass back through. Pawns
// only ever jump forward; a piece's rank does not change mid-chain.
//
// b is never modified.
func CapturePaths(b *board.Board, from board.Square) []move.CapturePath {
	piece := b.At(from)
	if piece.IsEmpty() {
		return nil
	}
	var finished []move.CapturePath
	extendPath(b, move.NewCapturePath(from), piece.Color(), piece.Directions(), &finished)
	return finished
}

func extendPath(b *board.Board, p move.CapturePath, mover board.Color,
	dirs []board.Direction, finished *[]move.CapturePath) {

	extended := false
	for _, d := range dirs {
		captured, landing, ok := TryJump(b, p.Destination(), d, mover)
		if !ok || p.HasCaptured(captured) {
			continue
		}
		if !b.At(landing).IsEmpty() && landing != p.Origin() {
			continue
		}
		extended = true
		extendPath(b, p.Extend(captured, landing), mover, dirs, finished)
	}
	if !extended && p.Len() > 0 {
		*finished = append(*finished, p)
	}
}
