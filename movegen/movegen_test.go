package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/move"
	th "github.com/domino14/draughts/testhelpers"
)

func descriptions(moves []*move.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.ShortDescription()
	}
	return out
}

func TestStartingPositionBlack(t *testing.T) {
	b := board.StartingPosition()
	moves := LegalMoves(&b, board.Black)
	assert.Equal(t, []string{
		"9-13", "9-14", "10-14", "10-15", "11-15", "11-16", "12-16",
	}, descriptions(moves))
}

func TestStartingPositionRed(t *testing.T) {
	b := board.StartingPosition()
	moves := LegalMoves(&b, board.Red)
	assert.ElementsMatch(t, []string{
		"21-17", "22-17", "22-18", "23-18", "23-19", "24-19", "24-20",
	}, descriptions(moves))
}

func TestSingleCapture(t *testing.T) {
	is := is.New(t)
	b := th.BoardWith(th.BlackPawn(9), th.RedPawn(14))
	moves := LegalMoves(&b, board.Black)
	is.Equal(descriptions(moves), []string{"9x18 [14]"})
	is.Equal(moves[0].Captures(), []board.Square{14})
}

func TestMandatoryCapture(t *testing.T) {
	is := is.New(t)
	// The pawn on 1 could move, but the pawn on 9 must capture.
	b := th.BoardWith(th.BlackPawn(1), th.BlackPawn(9), th.RedPawn(14))
	moves := LegalMoves(&b, board.Black)
	is.Equal(len(moves), 1)
	is.True(moves[0].IsCapture())

	simples := SimpleMoves(&b, board.Black)
	is.Equal(descriptions(simples), []string{"1-5", "1-6", "9-13"})
}

func TestKingBranchesAreSeparate(t *testing.T) {
	b := th.BoardWith(th.BlackKing(15), th.RedPawn(11), th.RedPawn(19))
	moves := LegalMoves(&b, board.Black)
	assert.ElementsMatch(t, []string{"15x8 [11]", "15x24 [19]"}, descriptions(moves))
}

func TestKingCannotLandOnOccupiedSquare(t *testing.T) {
	b := th.BoardWith(th.BlackKing(15), th.RedPawn(11), th.RedPawn(19), th.RedPawn(24))
	moves := LegalMoves(&b, board.Black)
	assert.Equal(t, []string{"15x8 [11]"}, descriptions(moves))
}

func TestKingReturnsToOrigin(t *testing.T) {
	b := th.BoardWith(th.BlackKing(15),
		th.RedPawn(9), th.RedPawn(10), th.RedPawn(17), th.RedPawn(18))
	moves := LegalMoves(&b, board.Black)
	assert.ElementsMatch(t, []string{
		"15x15 [10, 9, 17, 18]",
		"15x15 [18, 17, 9, 10]",
	}, descriptions(moves))
}

func TestPawnChainBranches(t *testing.T) {
	b := th.BoardWith(th.BlackPawn(6),
		th.RedPawn(10), th.RedPawn(11), th.RedPawn(18), th.RedPawn(19))
	moves := LegalMoves(&b, board.Black)
	// 6 can only jump 10 (11 is not adjacent); from 15 it can take 18 or 19.
	assert.ElementsMatch(t, []string{"6x22 [10, 18]", "6x24 [10, 19]"}, descriptions(moves))
}

func TestPawnDoesNotJumpBackwards(t *testing.T) {
	is := is.New(t)
	// Red moves up the board, so the black pawn on 14 is behind it.
	b := th.BoardWith(th.RedPawn(9), th.BlackPawn(14))
	moves := LegalMoves(&b, board.Red)
	is.Equal(descriptions(moves), []string{"9-5", "9-6"})
	// The same pieces as kings: the king jumps.
	b = th.BoardWith(th.RedKing(9), th.BlackPawn(14))
	moves = LegalMoves(&b, board.Red)
	is.Equal(descriptions(moves), []string{"9x18 [14]"})
}

func TestCaptureIntoBackRankStopsPawn(t *testing.T) {
	is := is.New(t)
	b := th.BoardWith(th.BlackPawn(15), th.RedPawn(19), th.RedPawn(27))
	moves := LegalMoves(&b, board.Black)
	is.Equal(descriptions(moves), []string{"15x31 [19, 27]"})
	is.Equal(moves[0].Path().Landings(), []board.Square{24, 31})
}

func TestNoPieces(t *testing.T) {
	is := is.New(t)
	b := th.BoardWith(th.RedPawn(30))
	is.Equal(len(LegalMoves(&b, board.Black)), 0)
	is.Equal(descriptions(LegalMoves(&b, board.Red)), []string{"30-25", "30-26"})
}

func TestBlockedPieces(t *testing.T) {
	is := is.New(t)
	// Black pawn on 4 is blocked by its own piece on 8; 8 is blocked by red
	// pieces whose landing squares are off the board or occupied.
	b := th.BoardWith(th.BlackPawn(4), th.BlackPawn(8), th.RedPawn(11), th.RedPawn(12),
		th.RedPawn(15))
	is.Equal(len(LegalMoves(&b, board.Black)), 0)
}

func TestTryJump(t *testing.T) {
	is := is.New(t)
	b := th.BoardWith(th.BlackPawn(9), th.RedPawn(14), th.BlackPawn(13), th.RedPawn(12))

	captured, landing, ok := TryJump(&b, 9, board.DownRight, board.Black)
	is.True(ok)
	is.Equal(captured, board.Square(14))
	is.Equal(landing, board.Square(18))

	// Own piece in the way.
	_, _, ok = TryJump(&b, 9, board.DownLeft, board.Black)
	is.True(!ok)

	// Opponent on the edge: there is no square beyond it.
	b2 := th.BoardWith(th.BlackPawn(8), th.RedPawn(12))
	_, _, ok = TryJump(&b2, 8, board.DownRight, board.Black)
	is.True(!ok)

	// Landing occupancy is not TryJump's concern.
	b3 := th.BoardWith(th.BlackPawn(9), th.RedPawn(14), th.RedPawn(18))
	_, landing, ok = TryJump(&b3, 9, board.DownRight, board.Black)
	is.True(ok)
	is.Equal(landing, board.Square(18))
}

func TestCapturePathsDoesNotMutate(t *testing.T) {
	is := is.New(t)
	b := th.BoardWith(th.BlackKing(15),
		th.RedPawn(9), th.RedPawn(10), th.RedPawn(17), th.RedPawn(18))
	before := b
	paths := CapturePaths(&b, 15)
	is.Equal(len(paths), 2)
	is.True(b.Equals(&before))
	is.Equal(len(CapturePaths(&b, 1)), 0) // empty square
}

func TestCapturedSquaresNeverRepeat(t *testing.T) {
	is := is.New(t)
	b := th.BoardWith(th.BlackKing(15),
		th.RedPawn(9), th.RedPawn(10), th.RedPawn(17), th.RedPawn(18),
		th.RedPawn(19), th.RedPawn(23), th.RedPawn(11))
	for _, m := range LegalMoves(&b, board.Black) {
		seen := map[board.Square]bool{}
		for _, c := range m.Captures() {
			is.True(!seen[c])
			seen[c] = true
		}
		for _, l := range m.Path().Landings() {
			is.True(b.At(l).IsEmpty() || l == m.Origin())
		}
	}
}

func TestLongestCaptureOnly(t *testing.T) {
	is := is.New(t)
	// The pawn on 1 takes one piece; the pawn on 7 takes two.
	b := th.BoardWith(th.BlackPawn(1), th.RedPawn(6),
		th.BlackPawn(7), th.RedPawn(11), th.RedPawn(19))
	permissive := LegalMoves(&b, board.Black)
	is.Equal(len(permissive), 2)

	cfg := config.DefaultConfig()
	cfg.Viper.Set(config.ConfigLongestCaptureOnly, true)
	gen := NewGenerator(cfg)
	is.True(gen.LongestCaptureOnly)
	strict := gen.GenAll(&b, board.Black)
	is.Equal(descriptions(strict), []string{"7x23 [11, 19]"})
}

func TestIdempotent(t *testing.T) {
	b := th.BoardWith(th.BlackKing(15),
		th.RedPawn(9), th.RedPawn(10), th.RedPawn(17), th.RedPawn(18))
	first := descriptions(LegalMoves(&b, board.Black))
	second := descriptions(LegalMoves(&b, board.Black))
	assert.ElementsMatch(t, first, second)
}

func BenchmarkGenAllStart(b *testing.B) {
	bd := board.StartingPosition()
	gen := NewGenerator(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.GenAll(&bd, board.Black)
	}
}
