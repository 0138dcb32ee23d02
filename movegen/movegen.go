// Package movegen contains the legal-move generator: simple moves, single
// jumps, capture chains and the mandatory-capture rule that combines them.
package movegen

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/move"
)

// MoveGenerator is the interface the game and its callers use to obtain
// legal moves.
type MoveGenerator interface {
	GenAll(b *board.Board, c board.Color) []*move.Move
}

// Generator is the standard MoveGenerator.
type Generator struct {
	// LongestCaptureOnly keeps only the capture chains that take the most
	// pieces. English draughts does not require this; it is off by default.
	LongestCaptureOnly bool
}

// NewGenerator creates a generator configured from cfg. cfg may be nil.
func NewGenerator(cfg *config.Config) *Generator {
	g := &Generator{}
	if cfg != nil && cfg.Viper != nil {
		g.LongestCaptureOnly = cfg.GetBool(config.ConfigLongestCaptureOnly)
	}
	return g
}

// GenAll returns the legal moves for color c. If any piece of c can
// capture, only captures are returned; otherwise only simple moves. An
// empty result means c has no legal move and has lost.
func (g *Generator) GenAll(b *board.Board, c board.Color) []*move.Move {
	moves := g.Generate(b, c)
	log.Debug().Str("color", c.String()).Int("nmoves", len(moves)).
		Bool("captures", len(moves) > 0 && moves[0].IsCapture()).Msg("generated moves")
	return moves
}

// Generate is GenAll without the logging, for callers that generate moves
// at every node of a search.
func (g *Generator) Generate(b *board.Board, c board.Color) []*move.Move {
	captures := CaptureMoves(b, c)
	if len(captures) > 0 {
		if g.LongestCaptureOnly {
			captures = longestOnly(captures)
		}
		return captures
	}
	return SimpleMoves(b, c)
}

// LegalMoves returns the legal moves for c using the default rules.
func LegalMoves(b *board.Board, c board.Color) []*move.Move {
	return (&Generator{}).GenAll(b, c)
}

// CaptureMoves returns every maximal capture chain for every piece of c,
// ordered by origin square.
func CaptureMoves(b *board.Board, c board.Color) []*move.Move {
	var moves []*move.Move
	for _, sq := range b.Pieces(c) {
		for _, p := range CapturePaths(b, sq) {
			moves = append(moves, move.NewCaptureMove(c, p))
		}
	}
	return moves
}

func longestOnly(moves []*move.Move) []*move.Move {
	longest := lo.MaxBy(moves, func(a, b *move.Move) bool {
		return a.Path().Len() > b.Path().Len()
	})
	return lo.Filter(moves, func(m *move.Move, _ int) bool {
		return m.Path().Len() == longest.Path().Len()
	})
}
