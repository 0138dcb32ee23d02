package game

import (
	"errors"
	"fmt"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

var (
	// ErrInvalidMove is returned when a move is inconsistent with the board
	// it is applied to. It indicates a caller bug, not a game condition.
	ErrInvalidMove = errors.New("invalid move")
)

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMove, fmt.Sprintf(format, a...))
}

// Apply plays m on b. The move is checked against the board first; if it
// does not fit, b is left untouched and an error wrapping ErrInvalidMove is
// returned.
//
// The piece moves from its origin to its destination and is crowned if it
// is a pawn ending on the opponent's back rank. Squares passed through
// mid-chain never crown. Captured pieces are removed last.
func Apply(b *board.Board, m *move.Move) error {
	if err := validate(b, m); err != nil {
		return err
	}
	piece := b.At(m.Origin())
	dest := m.Destination()
	king := piece.IsKing() || b.At(dest).IsPromotionSquareFor(m.Color())

	b.Clear(m.Origin())
	b.Put(dest, m.Color(), king)
	for _, c := range m.Captures() {
		b.Clear(c)
	}
	return nil
}

func validate(b *board.Board, m *move.Move) error {
	if m == nil {
		return invalid("nil move")
	}
	origin := m.Origin()
	if !origin.Valid() || !m.Destination().Valid() {
		return invalid("%v: square out of range", m.ShortDescription())
	}
	piece := b.At(origin)
	if piece.IsEmpty() {
		return invalid("%v: origin square %v is empty", m.ShortDescription(), origin)
	}
	if piece.Color() != m.Color() {
		return invalid("%v: origin square %v holds a %v piece, not %v",
			m.ShortDescription(), origin, piece.Color(), m.Color())
	}
	switch m.Action() {
	case move.MoveTypeSimple:
		return validateSimple(b, m, piece)
	case move.MoveTypeCapture:
		return validateCapture(b, m, piece)
	}
	return invalid("unknown move type %v", m.Action())
}

func validateSimple(b *board.Board, m *move.Move, piece board.SquareState) error {
	dest := m.Destination()
	if !b.At(dest).IsEmpty() {
		return invalid("%v: destination %v is occupied", m.ShortDescription(), dest)
	}
	for _, d := range piece.Directions() {
		if n, ok := board.Neighbor(m.Origin(), d); ok && n == dest {
			return nil
		}
	}
	return invalid("%v: %v is not a step this piece can make", m.ShortDescription(), dest)
}

func validateCapture(b *board.Board, m *move.Move, piece board.SquareState) error {
	path := m.Path()
	captures := path.Captures()
	landings := path.Landings()
	if len(captures) == 0 {
		return invalid("%v: capture with nothing captured", m.ShortDescription())
	}
	seen := make(map[board.Square]bool, len(captures))
	from := m.Origin()
	for i, c := range captures {
		if !c.Valid() || !landings[i].Valid() {
			return invalid("%v: square out of range", m.ShortDescription())
		}
		if seen[c] {
			return invalid("%v: square %v captured twice", m.ShortDescription(), c)
		}
		seen[c] = true
		if !b.At(c).IsOpponentOf(m.Color()) {
			return invalid("%v: square %v does not hold an opposing piece", m.ShortDescription(), c)
		}
		landing := landings[i]
		if !isJump(from, c, landing, piece.Directions()) {
			return invalid("%v: %v over %v to %v is not a jump", m.ShortDescription(), from, c, landing)
		}
		if !b.At(landing).IsEmpty() && landing != m.Origin() {
			return invalid("%v: landing square %v is occupied", m.ShortDescription(), landing)
		}
		from = landing
	}
	if from != m.Destination() {
		return invalid("%v: chain ends on %v", m.ShortDescription(), from)
	}
	return nil
}

func isJump(from, over, to board.Square, dirs []board.Direction) bool {
	for _, d := range dirs {
		n, ok := board.Neighbor(from, d)
		if !ok || n != over {
			continue
		}
		l, ok := board.Neighbor(over, d)
		return ok && l == to
	}
	return false
}
