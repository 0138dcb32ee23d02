package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"perft 4 -divide true",
			&shellcmd{"perft", []string{"4"}, CmdOptions{"divide": {"true"}}},
			nil},
		{"play 9-13",
			&shellcmd{"play", []string{"9-13"}, CmdOptions{}},
			nil},
		{"play 15x15 [18, 17, 9, 10]",
			&shellcmd{"play", []string{"15x15", "[18,", "17,", "9,", "10]"}, CmdOptions{}},
			nil},
		{"svg '/tmp/my board.svg'",
			&shellcmd{"svg", []string{"/tmp/my board.svg"}, CmdOptions{}},
			nil},
		{"perft 4 -divide",
			nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func newTestController() *ShellController {
	cfg := config.DefaultConfig()
	cfg.Viper.Set(config.ConfigColor, false)
	return newController(cfg)
}

func TestNoGame(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	for _, line := range []string{"show", "list", "play 1", "position", "perft 1", "hash"} {
		_, err := sc.handle(line)
		is.Equal(err, errNoGame)
	}
	_, err := sc.handle("frobnicate")
	is.True(err != nil)
}

func TestPlayThroughShell(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	_, err := sc.handle("new")
	is.NoErr(err)

	resp, err := sc.handle("list")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "  1: 9-13"))
	is.Equal(strings.Count(resp.message, "\n"), 6)

	resp, err = sc.handle("play 1")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "red to move"))

	_, err = sc.handle("play 22-18")
	is.NoErr(err)
	is.Equal(sc.game.PlayerOnTurn(), board.Black)

	_, err = sc.handle("play 22-18")
	is.True(err != nil)
	_, err = sc.handle("play 99")
	is.True(err != nil)

	resp, err = sc.handle("position")
	is.NoErr(err)
	is.Equal(resp.message, "bbbb/bbbb/1bbb/b3/1r2/r1rr/rrrr/rrrr b")
}

func TestLoadAndCapture(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	resp, err := sc.handle("load 4/4/2B1/2rr/4/4/4/4 b")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "black to move"))

	resp, err = sc.handle("list")
	is.NoErr(err)
	is.Equal(resp.message, "  1: 11x18 [15]\n  2: 11x20 [16]")

	_, err = sc.handle("play 11x20")
	is.NoErr(err)
	resp, err = sc.handle("show")
	is.NoErr(err)
	is.True(!strings.Contains(resp.message, "Game over"))
	is.Equal(sc.game.PlayerOnTurn(), board.Red)

	_, err = sc.handle("load nonsense")
	is.True(err != nil)
}

func TestGameOverMessage(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	_, err := sc.handle("load 4/4/b3/1r2/4/4/4/4 b")
	is.NoErr(err)
	resp, err := sc.handle("play 9x18")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Game over. black wins!"))
}

func TestPerftCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	_, err := sc.handle("new")
	is.NoErr(err)
	resp, err := sc.handle("perft 3")
	is.NoErr(err)
	is.Equal(resp.message, "perft(3) = 302")

	resp, err = sc.handle("perft 2 -divide true")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "9-13"))
	is.True(strings.HasSuffix(resp.message, "total: 49"))
}

func TestHashCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	_, err := sc.handle("new")
	is.NoErr(err)
	h1, err := sc.handle("hash")
	is.NoErr(err)
	is.Equal(len(h1.message), 16)
	_, err = sc.handle("play 9-13")
	is.NoErr(err)
	h2, err := sc.handle("hash")
	is.NoErr(err)
	is.True(h1.message != h2.message)
}

func TestSVGCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	_, err := sc.handle("new")
	is.NoErr(err)
	path := filepath.Join(t.TempDir(), "board.svg")
	_, err = sc.handle("svg " + path)
	is.NoErr(err)
	dat, err := os.ReadFile(path)
	is.NoErr(err)
	is.True(strings.Contains(string(dat), "<svg"))
}

func TestSetCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	resp, err := sc.handle("set")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "longest-capture-only: false"))

	_, err = sc.handle("load 4/4/4/b3/4/4/4/4 b")
	is.NoErr(err)
	_, err = sc.handle("set perft-threads 0")
	is.True(err != nil)
	_, err = sc.handle("set nosuchkey 1")
	is.True(err != nil)
	_, err = sc.handle("set longest-capture-only true")
	is.NoErr(err)
	resp, err = sc.handle("set longest-capture-only")
	is.NoErr(err)
	is.Equal(resp.message, "true")
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	resp, err := sc.handle("help")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Commands:"))
	resp, err = sc.handle("help perft")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "36768"))
	resp, err = sc.handle("help nothing")
	is.NoErr(err)
	is.Equal(resp.message, "There is no help text for the topic nothing")
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "line.lua")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	path := writeScript(t, `
draughts_new()
draughts_play("9-13")
draughts_play("24-20")
local pos = draughts_position()
if pos ~= "bbbb/bbbb/1bbb/b3/3r/rrr1/rrrr/rrrr b" then
	error("unexpected position " .. pos)
end
local r = draughts_play("24-20")
if string.sub(r, 1, 6) ~= "ERROR:" then
	error("replaying a red move should fail, got " .. r)
end
local n = draughts_perft("1")
if string.find(n, "perft(1) = ", 1, true) ~= 1 then
	error("unexpected perft output " .. n)
end
draughts_set("longest-capture-only true")
`)
	resp, err := sc.handle("script " + path)
	is.NoErr(err)
	is.Equal(resp.message, "ran "+path)
	pos, err := sc.handle("position")
	is.NoErr(err)
	is.Equal(pos.message, "bbbb/bbbb/1bbb/b3/3r/rrr1/rrrr/rrrr b")
	is.True(sc.config.GetBool(config.ConfigLongestCaptureOnly))
}

func TestScriptErrors(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	_, err := sc.handle("script")
	is.True(err != nil)
	_, err = sc.handle("script " + filepath.Join(t.TempDir(), "missing.lua"))
	is.True(err != nil)
	_, err = sc.handle("script " + writeScript(t, `error("stop here")`))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "stop here"))
}

func TestPrompt(t *testing.T) {
	is := is.New(t)
	saved := board.ColorSupport
	defer func() { board.ColorSupport = saved }()

	cfg := config.DefaultConfig()
	board.ColorSupport = true
	is.True(strings.Contains(prompt(cfg), "\033["))
	board.ColorSupport = false
	is.Equal(prompt(cfg), "draughts> ")
	board.ColorSupport = true
	cfg.Viper.Set(config.ConfigColor, false)
	is.Equal(prompt(cfg), "draughts> ")
}
