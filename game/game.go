// Package game encapsulates the turn-by-turn state of a draughts game: the
// board, whose turn it is, and whether the game is over. It does not care
// who is playing; choosing moves happens outside of it.
package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/move"
	"github.com/domino14/draughts/movegen"
)

var (
	ErrGameOver    = errors.New("the game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrMoveIndex   = errors.New("move number out of range")
)

// PlayState is whether the game is ongoing.
type PlayState uint8

const (
	StatePlaying PlayState = iota
	StateGameOver
)

// Game owns the board for the duration of a game. Engine calls receive it
// by pointer and never keep it.
type Game struct {
	cfg     *config.Config
	gen     movegen.MoveGenerator
	board   board.Board
	onturn  board.Color
	turnnum int
	playing PlayState
	winner  board.Color

	// legal moves for the side to move; recomputed after every move.
	legal []*move.Move
}

// NewGame starts a game from the standard position with Black to move.
func NewGame(cfg *config.Config) *Game {
	return NewGameFromPosition(cfg, board.StartingPosition(), board.Black)
}

// NewGameFromPosition starts a game from an arbitrary position.
func NewGameFromPosition(cfg *config.Config, b board.Board, onturn board.Color) *Game {
	g := &Game{
		cfg:    cfg,
		gen:    movegen.NewGenerator(cfg),
		board:  b,
		onturn: onturn,
	}
	g.refresh()
	return g
}

func (g *Game) refresh() {
	g.legal = g.gen.GenAll(&g.board, g.onturn)
	if len(g.legal) == 0 {
		g.playing = StateGameOver
		g.winner = g.onturn.Opponent()
		log.Debug().Str("winner", g.winner.String()).Int("turn", g.turnnum).
			Msg("no legal moves; game over")
	}
}

// Reconfigure picks up rule changes from the configuration and regenerates
// the legal moves for the side on turn.
func (g *Game) Reconfigure() {
	g.gen = movegen.NewGenerator(g.cfg)
	if g.playing == StatePlaying {
		g.refresh()
	}
}

// Board returns a copy of the current position.
func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Color {
	return g.onturn
}

// Turn returns the number of moves played so far.
func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// Winner returns the winning color, or NoColor while the game is on.
func (g *Game) Winner() board.Color {
	return g.winner
}

// LegalMoves returns the moves available to the side on turn, in the order
// they should be numbered for a player. It is empty once the game is over.
// The slice is a copy; changing it does not affect PlayMoveIndex.
func (g *Game) LegalMoves() []*move.Move {
	return slices.Clone(g.legal)
}

// PlayMove plays m, which must be one of the legal moves, and passes the
// turn. If the next side cannot move, the game ends.
func (g *Game) PlayMove(m *move.Move) error {
	if g.playing == StateGameOver {
		return ErrGameOver
	}
	if m == nil {
		return fmt.Errorf("%w: no move", ErrIllegalMove)
	}
	legal := false
	for _, lm := range g.legal {
		if lm.Equals(m) {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m.ShortDescription())
	}
	if err := Apply(&g.board, m); err != nil {
		return err
	}
	log.Debug().Str("color", g.onturn.String()).Str("move", m.ShortDescription()).
		Int("turn", g.turnnum).Msg("played move")
	g.turnnum++
	g.onturn = g.onturn.Opponent()
	g.refresh()
	return nil
}

// PlayMoveIndex plays the legal move with the given 1-based number, as
// shown in a numbered move list.
func (g *Game) PlayMoveIndex(i int) (*move.Move, error) {
	if g.playing == StateGameOver {
		return nil, ErrGameOver
	}
	if i < 1 || i > len(g.legal) {
		return nil, fmt.Errorf("%w: %d (1-%d)", ErrMoveIndex, i, len(g.legal))
	}
	m := g.legal[i-1]
	return m, g.PlayMove(m)
}

// ToDisplayText shows the board and whose turn it is.
func (g *Game) ToDisplayText() string {
	color := g.cfg == nil || g.cfg.Viper == nil || g.cfg.GetBool(config.ConfigColor)
	s := g.board.ToDisplayText(color && board.ColorSupport)
	if g.playing == StateGameOver {
		return s + fmt.Sprintf("\nGame over. %v wins!\n", g.winner)
	}
	return s + fmt.Sprintf("\nTurn %d: %v to move\n", g.turnnum+1, g.onturn)
}
