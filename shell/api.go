package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/dgp"
	"github.com/domino14/draughts/game"
	"github.com/domino14/draughts/move"
	"github.com/domino14/draughts/perft"
	"github.com/domino14/draughts/render"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.game = game.NewGame(sc.config)
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) list(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	moves := sc.game.LegalMoves()
	if len(moves) == 0 {
		return msg(fmt.Sprintf("%v has no legal moves", sc.game.PlayerOnTurn())), nil
	}
	var sb strings.Builder
	for i, m := range moves {
		fmt.Fprintf(&sb, "%3d: %s\n", i+1, m.ShortDescription())
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// play accepts either the number of a move from `list` or its notation,
// e.g. `play 3`, `play 9-13`, `play 15x15 [18, 17, 9, 10]`.
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("play <n> or play <move>")
	}
	if idx, err := strconv.Atoi(cmd.args[0]); err == nil && len(cmd.args) == 1 {
		if _, err := sc.game.PlayMoveIndex(idx); err != nil {
			return nil, err
		}
		return msg(sc.game.ToDisplayText()), nil
	}
	n, err := move.ParseShort(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	m, err := n.Match(sc.game.LegalMoves())
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("load <position>, e.g. load bbbb/bbbb/bbbb/4/4/rrrr/rrrr/rrrr b")
	}
	pos, err := dgp.Parse(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	sc.game = game.NewGameFromPosition(sc.config, pos.Board, pos.OnTurn)
	log.Debug().Str("position", pos.String()).Msg("loaded position")
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) currentPosition() (*dgp.Position, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return dgp.FromGame(sc.game), nil
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	pos, err := sc.currentPosition()
	if err != nil {
		return nil, err
	}
	return msg(pos.String()), nil
}

func (sc *ShellController) perft(cmd *shellcmd) (*Response, error) {
	pos, err := sc.currentPosition()
	if err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("perft <depth> [-divide true]")
	}
	depth, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	counter := perft.NewCounter(sc.config)
	ctx := context.Background()
	start := time.Now()

	if !cmd.options.Bool("divide") {
		n, err := counter.Count(ctx, &pos.Board, pos.OnTurn, depth)
		if err != nil {
			return nil, err
		}
		log.Info().Int("depth", depth).Dur("elapsed", time.Since(start)).Msg("perft done")
		return msg(fmt.Sprintf("perft(%d) = %d", depth, n)), nil
	}
	results, err := counter.Divide(ctx, &pos.Board, pos.OnTurn, depth)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	total := uint64(0)
	for _, r := range results {
		fmt.Fprintf(&sb, "%-24s %d\n", r.Move.ShortDescription(), r.Nodes)
		total += r.Nodes
	}
	fmt.Fprintf(&sb, "total: %d", total)
	log.Info().Int("depth", depth).Dur("elapsed", time.Since(start)).Msg("perft done")
	return msg(sb.String()), nil
}

func (sc *ShellController) hash(cmd *shellcmd) (*Response, error) {
	pos, err := sc.currentPosition()
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%016x", sc.z.Hash(&pos.Board, pos.OnTurn))), nil
}

func (sc *ShellController) svg(cmd *shellcmd) (*Response, error) {
	pos, err := sc.currentPosition()
	if err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("svg <filename>")
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := render.WriteSVG(f, &pos.Board); err != nil {
		return nil, err
	}
	return msg("wrote " + cmd.args[0]), nil
}

var settableKeys = []string{
	config.ConfigDebug,
	config.ConfigColor,
	config.ConfigLongestCaptureOnly,
	config.ConfigPerftThreads,
}

func (sc *ShellController) settingsText() string {
	var sb strings.Builder
	sb.WriteString("Settings:\n")
	for _, k := range settableKeys {
		fmt.Fprintf(&sb, "  %s: %v\n", k, sc.config.Get(k))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 0:
		return msg(sc.settingsText()), nil
	case 1:
		if !slices.Contains(settableKeys, cmd.args[0]) {
			return nil, errors.New("no such setting: " + cmd.args[0])
		}
		return msg(fmt.Sprintf("%v", sc.config.Get(cmd.args[0]))), nil
	case 2:
	default:
		return nil, errors.New("set <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	if err := sc.config.Set(key, value); err != nil {
		return nil, err
	}
	if key == config.ConfigDebug {
		if sc.config.GetBool(config.ConfigDebug) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	}
	if key == config.ConfigLongestCaptureOnly && sc.game != nil {
		sc.game.Reconfigure()
	}
	return msg(fmt.Sprintf("%s set to %v", key, sc.config.Get(key))), nil
}
