// Package move defines the moves a draughts engine generates and plays:
// simple one-step moves and capture chains.
package move

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domino14/draughts/board"
)

// MoveType is a type of move; a simple move or a capture.
type MoveType uint8

const (
	MoveTypeSimple MoveType = iota
	MoveTypeCapture
)

func (t MoveType) String() string {
	switch t {
	case MoveTypeSimple:
		return "simple"
	case MoveTypeCapture:
		return "capture"
	}
	return "unknown"
}

// Move is either a simple move from one square to an adjacent empty one,
// or a complete capture path.
type Move struct {
	action MoveType
	color  board.Color
	origin board.Square
	dest   board.Square
	path   CapturePath
}

// NewSimpleMove creates a non-capturing move.
func NewSimpleMove(color board.Color, origin, dest board.Square) *Move {
	return &Move{
		action: MoveTypeSimple,
		color:  color,
		origin: origin,
		dest:   dest,
	}
}

// NewCaptureMove creates a capture move from a finished path.
func NewCaptureMove(color board.Color, path CapturePath) *Move {
	return &Move{
		action: MoveTypeCapture,
		color:  color,
		origin: path.Origin(),
		dest:   path.Destination(),
		path:   path,
	}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) IsCapture() bool {
	return m.action == MoveTypeCapture
}

// Color is the color of the side making the move.
func (m *Move) Color() board.Color {
	return m.color
}

func (m *Move) Origin() board.Square {
	return m.origin
}

func (m *Move) Destination() board.Square {
	return m.dest
}

// Path returns the capture path. It is empty for simple moves.
func (m *Move) Path() CapturePath {
	return m.path
}

// Captures returns the captured squares in chain order, or nil for a
// simple move.
func (m *Move) Captures() []board.Square {
	if m.action != MoveTypeCapture {
		return nil
	}
	return m.path.Captures()
}

// ShortDescription renders the move the way it is shown to a player:
// "9-13" for a simple move, "9x18 [14]" for a capture.
func (m *Move) ShortDescription() string {
	if m.action == MoveTypeSimple {
		return fmt.Sprintf("%d-%d", m.origin, m.dest)
	}
	caps := make([]string, 0, m.path.Len())
	for _, c := range m.path.Captures() {
		caps = append(caps, fmt.Sprintf("%d", c))
	}
	return fmt.Sprintf("%dx%d [%s]", m.origin, m.dest, strings.Join(caps, ", "))
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%v %v %v>", m.color, m.action, m.ShortDescription())
}

// Equals compares two moves. Capture moves are equal if they start on the
// same square and capture the same pieces in the same order.
func (m *Move) Equals(o *Move) bool {
	if m.action != o.action || m.color != o.color ||
		m.origin != o.origin || m.dest != o.dest {
		return false
	}
	if m.action == MoveTypeCapture {
		return slices.Equal(m.path.Captures(), o.path.Captures())
	}
	return true
}
