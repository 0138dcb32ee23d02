package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("draughts_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

type handlerFunc func(sc *ShellController, cmd *shellcmd) (*Response, error)

// luaCommand exposes a shell command to scripts. The Lua function takes
// the rest of the command line as its one string argument and returns the
// command's output, or "ERROR: ..." if it failed.
func luaCommand(name string, h handlerFunc) lua.LGFunction {
	return func(L *lua.LState) int {
		line := name
		if L.GetTop() > 0 {
			line += " " + L.ToString(1)
		}
		sc := getShell(L)
		cmd, err := extractFields(line)
		if err != nil {
			log.Err(err).Str("cmd", name).Msg("error-parsing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		r, err := h(sc, cmd)
		if err != nil {
			log.Err(err).Str("cmd", name).Msg("error-executing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		if r == nil {
			L.Push(lua.LString(""))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

var scriptCommands = map[string]handlerFunc{
	"new":      (*ShellController).newGame,
	"show":     (*ShellController).show,
	"list":     (*ShellController).list,
	"play":     (*ShellController).play,
	"load":     (*ShellController).load,
	"position": (*ShellController).position,
	"perft":    (*ShellController).perft,
	"hash":     (*ShellController).hash,
	"set":      (*ShellController).set,
}

// script runs a Lua file. Each entry of scriptCommands is available as a
// global function draughts_<name>, e.g. draughts_play("9-13").
func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}
	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc
	L.SetGlobal("draughts_shell", lsc)
	for name, h := range scriptCommands {
		L.SetGlobal("draughts_"+name, L.NewFunction(luaCommand(name, h)))
	}

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Str("file", filepath).Msg("script failed")
		return nil, err
	}
	return msg("ran " + filepath), nil
}
