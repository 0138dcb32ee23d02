package move

import "github.com/domino14/draughts/board"

// step is one jump of a capture chain. Steps form a linked list from the
// most recent jump back to the first, so extending a path never copies or
// disturbs the paths it was extended from.
type step struct {
	captured board.Square
	landing  board.Square
	prev     *step
	n        int
}

// A CapturePath is a chain of jumps made by one piece in one turn. The zero
// value is not useful; start one with NewCapturePath.
type CapturePath struct {
	origin board.Square
	last   *step
}

// NewCapturePath returns a path with no jumps yet, for a piece on origin.
func NewCapturePath(origin board.Square) CapturePath {
	return CapturePath{origin: origin}
}

// Extend returns a new path with one more jump. p is unchanged.
func (p CapturePath) Extend(captured, landing board.Square) CapturePath {
	n := 1
	if p.last != nil {
		n = p.last.n + 1
	}
	return CapturePath{
		origin: p.origin,
		last:   &step{captured: captured, landing: landing, prev: p.last, n: n},
	}
}

func (p CapturePath) Origin() board.Square {
	return p.origin
}

// Destination is the current landing square; the origin if nothing has
// been jumped yet.
func (p CapturePath) Destination() board.Square {
	if p.last == nil {
		return p.origin
	}
	return p.last.landing
}

// Len returns the number of pieces captured.
func (p CapturePath) Len() int {
	if p.last == nil {
		return 0
	}
	return p.last.n
}

// HasCaptured returns true if sq was already jumped in this path.
func (p CapturePath) HasCaptured(sq board.Square) bool {
	for s := p.last; s != nil; s = s.prev {
		if s.captured == sq {
			return true
		}
	}
	return false
}

// Captures returns the captured squares in chain order.
func (p CapturePath) Captures() []board.Square {
	out := make([]board.Square, p.Len())
	for s := p.last; s != nil; s = s.prev {
		out[s.n-1] = s.captured
	}
	return out
}

// Landings returns the landing square of each jump in chain order. The last
// element is the destination.
func (p CapturePath) Landings() []board.Square {
	out := make([]board.Square, p.Len())
	for s := p.last; s != nil; s = s.prev {
		out[s.n-1] = s.landing
	}
	return out
}
