package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("liar_shell")
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

// luaCommand wraps a shell command so a script can call it with the rest of
// the command line as its one string argument. The command's message, or
// "ERROR: ..." on failure, is returned to the script.
func luaCommand(name string, run func(*ShellController, *shellcmd) (*Response, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		sc := getShell(L)
		cmd, err := extractFields(name + " " + L.OptString(1, ""))
		if err == nil {
			var r *Response
			r, err = run(sc, cmd)
			if err == nil {
				L.Push(lua.LString(r.message))
				return 1
			}
		}
		log.Err(err).Msg("error-executing-" + name)
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
}

// Best returns the word and score of the n-th move of the last generation
// (1 by default), or nil if there is no such move.
func Best(L *lua.LState) int {
	sc := getShell(L)
	idx := L.OptInt(1, 1) - 1
	if idx < 0 || idx >= len(sc.lastGen) {
		L.Push(lua.LNil)
		return 1
	}
	s := sc.lastGen[idx]
	L.Push(lua.LString(s.Coords() + " " + s.Word))
	L.Push(lua.LNumber(s.Score))
	return 2
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("liar_shell", lsc)
	L.SetGlobal("liar_load", L.NewFunction(luaCommand("load", (*ShellController).load)))
	L.SetGlobal("liar_dict", L.NewFunction(luaCommand("dict", (*ShellController).dict)))
	L.SetGlobal("liar_scoring", L.NewFunction(luaCommand("scoring", (*ShellController).setScoring)))
	L.SetGlobal("liar_rack", L.NewFunction(luaCommand("rack", (*ShellController).rack)))
	L.SetGlobal("liar_gen", L.NewFunction(luaCommand("gen", (*ShellController).generate)))
	L.SetGlobal("liar_set", L.NewFunction(luaCommand("set", (*ShellController).set)))
	L.SetGlobal("liar_add", L.NewFunction(luaCommand("add", (*ShellController).add)))
	L.SetGlobal("liar_best", L.NewFunction(Best))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg(""), nil
}
