package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

const bignum = 1<<63 - 2

// black pawn, black king, red pawn, red king
const pieceKinds = 4

// Zobrist hashes a draughts position: the pieces on the board plus the side
// to move. https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	redTurn  uint64
	posTable [board.NumSquares][pieceKinds]uint64
}

func (z *Zobrist) Initialize() {
	for i := 0; i < board.NumSquares; i++ {
		for j := 0; j < pieceKinds; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.redTurn = frand.Uint64n(bignum) + 1
}

func pieceIdx(color board.Color, king bool) int {
	idx := 0
	if color == board.Red {
		idx = 2
	}
	if king {
		idx++
	}
	return idx
}

func (z *Zobrist) piece(sq board.Square, color board.Color, king bool) uint64 {
	return z.posTable[sq-1][pieceIdx(color, king)]
}

func (z *Zobrist) Hash(b *board.Board, onturn board.Color) uint64 {
	key := uint64(0)
	for _, sq := range b.Occupied() {
		st := b.At(sq)
		key ^= z.piece(sq, st.Color(), st.IsKing())
	}
	if onturn == board.Red {
		key ^= z.redTurn
	}
	return key
}

// AddMove returns the hash of the position after m, given the hash of the
// position before it. before is the board m is played on; it is not
// modified.
func (z *Zobrist) AddMove(key uint64, before *board.Board, m *move.Move) uint64 {
	orig := before.At(m.Origin())
	color := orig.Color()
	king := orig.IsKing() || before.At(m.Destination()).IsPromotionSquareFor(color)

	key ^= z.piece(m.Origin(), color, orig.IsKing())
	key ^= z.piece(m.Destination(), color, king)
	for _, c := range m.Captures() {
		st := before.At(c)
		key ^= z.piece(c, st.Color(), st.IsKing())
	}
	// we always alternate
	key ^= z.redTurn
	return key
}
