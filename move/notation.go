package move

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/domino14/draughts/board"
)

var (
	ErrBadNotation = errors.New("bad move notation")

	reSimple  = regexp.MustCompile(`^(\d+)-(\d+)$`)
	reCapture = regexp.MustCompile(`^(\d+)x(\d+)(?:\s*\[([\d,\s]*)\])?$`)
)

// Notation is a move as typed by a user. It is resolved against a list of
// legal moves with Match.
type Notation struct {
	Capture  bool
	Origin   board.Square
	Dest     board.Square
	Captures []board.Square // optional; nil matches any chain
}

func parseSquare(s string) (board.Square, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a square", ErrBadNotation, s)
	}
	if n < 1 || n > board.NumSquares {
		return 0, fmt.Errorf("%w: square %d out of range", ErrBadNotation, n)
	}
	return board.Square(n), nil
}

// ParseShort parses "9-13", "9x18" or "9x18 [14, 23]".
func ParseShort(s string) (*Notation, error) {
	s = strings.TrimSpace(s)
	if m := reSimple.FindStringSubmatch(s); m != nil {
		o, err := parseSquare(m[1])
		if err != nil {
			return nil, err
		}
		d, err := parseSquare(m[2])
		if err != nil {
			return nil, err
		}
		return &Notation{Origin: o, Dest: d}, nil
	}
	m := reCapture.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	o, err := parseSquare(m[1])
	if err != nil {
		return nil, err
	}
	d, err := parseSquare(m[2])
	if err != nil {
		return nil, err
	}
	n := &Notation{Capture: true, Origin: o, Dest: d}
	if m[3] != "" {
		fields := strings.FieldsFunc(m[3], func(r rune) bool {
			return r == ',' || r == ' '
		})
		for _, f := range fields {
			sq, err := parseSquare(f)
			if err != nil {
				return nil, err
			}
			n.Captures = append(n.Captures, sq)
		}
	}
	return n, nil
}

// Matches returns true if m is described by the notation.
func (n *Notation) Matches(m *Move) bool {
	if n.Capture != m.IsCapture() || n.Origin != m.Origin() || n.Dest != m.Destination() {
		return false
	}
	if n.Captures == nil {
		return true
	}
	return slices.Equal(n.Captures, m.Captures())
}

// Match finds the single move in moves described by the notation. It is an
// error if none or more than one match.
func (n *Notation) Match(moves []*Move) (*Move, error) {
	var found *Move
	for _, m := range moves {
		if !n.Matches(m) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: ambiguous move, list the captured squares", ErrBadNotation)
		}
		found = m
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no legal move matches", ErrBadNotation)
	}
	return found, nil
}
