// Package perft counts the leaf nodes of the legal-move tree to a fixed
// depth. The counts are well known for the starting position and make a
// good end-to-end check of move generation and application.
package perft

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/game"
	"github.com/domino14/draughts/move"
	"github.com/domino14/draughts/movegen"
	"github.com/domino14/draughts/zobrist"
)

var ErrBadDepth = errors.New("depth must be at least 1")

type ttKey struct {
	hash  uint64
	depth int
}

// DivideResult is the number of leaves under a single root move.
type DivideResult struct {
	Move  *move.Move
	Nodes uint64
}

// Counter runs perft searches. A Counter may be reused; its transposition
// table persists between searches.
type Counter struct {
	gen     *movegen.Generator
	z       *zobrist.Zobrist
	threads int

	ttMu sync.Mutex
	tt   map[ttKey]uint64
}

func NewCounter(cfg *config.Config) *Counter {
	threads := 1
	if cfg != nil && cfg.Viper != nil {
		threads = max(1, cfg.GetInt(config.ConfigPerftThreads))
	}
	z := &zobrist.Zobrist{}
	z.Initialize()
	return &Counter{
		gen:     movegen.NewGenerator(cfg),
		z:       z,
		threads: threads,
		tt:      make(map[ttKey]uint64),
	}
}

// Count returns the number of positions reachable in exactly depth plies.
func (c *Counter) Count(ctx context.Context, b *board.Board, onturn board.Color, depth int) (uint64, error) {
	results, err := c.Divide(ctx, b, onturn, depth)
	if err != nil {
		return 0, err
	}
	total := uint64(0)
	for _, r := range results {
		total += r.Nodes
	}
	return total, nil
}

// Divide returns the leaf count under each root move, in move order.
func (c *Counter) Divide(ctx context.Context, b *board.Board, onturn board.Color, depth int) ([]DivideResult, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, depth)
	}
	moves := c.gen.Generate(b, onturn)
	results := make([]DivideResult, len(moves))
	rootHash := c.z.Hash(b, onturn)

	log.Debug().Int("depth", depth).Int("threads", c.threads).Int("rootmoves", len(moves)).
		Msg("starting perft")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.threads)
	for i, m := range moves {
		g.Go(func() error {
			child := *b
			if err := game.Apply(&child, m); err != nil {
				return err
			}
			key := c.z.AddMove(rootHash, b, m)
			n, err := c.count(ctx, &child, onturn.Opponent(), key, depth-1)
			if err != nil {
				return err
			}
			results[i] = DivideResult{Move: m, Nodes: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Counter) count(ctx context.Context, b *board.Board, onturn board.Color, key uint64, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	tk := ttKey{key, depth}
	c.ttMu.Lock()
	n, ok := c.tt[tk]
	c.ttMu.Unlock()
	if ok {
		return n, nil
	}

	moves := c.gen.Generate(b, onturn)
	if depth == 1 {
		n = uint64(len(moves))
	} else {
		for _, m := range moves {
			child := *b
			if err := game.Apply(&child, m); err != nil {
				return 0, err
			}
			sub, err := c.count(ctx, &child, onturn.Opponent(), c.z.AddMove(key, b, m), depth-1)
			if err != nil {
				return 0, err
			}
			n += sub
		}
	}

	c.ttMu.Lock()
	c.tt[tk] = n
	c.ttMu.Unlock()
	return n, nil
}
