// Package render draws a board as an SVG image.
package render

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/domino14/draughts/board"
)

const sqSize = 64

var (
	lightStyle = "fill:#f0d9b5"
	darkStyle  = "fill:#b58863"
	numStyle   = "font-family:sans-serif;font-size:11px;fill:#f0d9b5"
	crownStyle = "font-family:serif;font-size:24px;text-anchor:middle;dominant-baseline:central;fill:#d4af37"
)

func pieceStyle(c board.Color) string {
	if c == board.Red {
		return "fill:#c0392b;stroke:#641e16;stroke-width:2"
	}
	return "fill:#222222;stroke:#000000;stroke-width:2"
}

// WriteSVG writes an image of b to w. Playable squares carry their number;
// kings are marked with a crown.
func WriteSVG(w io.Writer, b *board.Board) error {
	if b == nil {
		return fmt.Errorf("nil board")
	}
	canvas := svg.New(w)
	canvas.Start(8*sqSize, 8*sqSize)
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			x, y := (col-1)*sqSize, (row-1)*sqSize
			sq, ok := board.FromRowCol(row, col)
			if !ok {
				canvas.Rect(x, y, sqSize, sqSize, lightStyle)
				continue
			}
			canvas.Rect(x, y, sqSize, sqSize, darkStyle)
			canvas.Text(x+3, y+12, strconv.Itoa(int(sq)), numStyle)

			st := b.At(sq)
			if st.IsEmpty() {
				continue
			}
			cx, cy := x+sqSize/2, y+sqSize/2
			canvas.Circle(cx, cy, sqSize*2/5, pieceStyle(st.Color()))
			if st.IsKing() {
				canvas.Text(cx, cy, "♔", crownStyle)
			}
		}
	}
	canvas.End()
	return nil
}
