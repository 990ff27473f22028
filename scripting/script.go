// This file is part of Nest.
//
// Nest is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nest is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nest.  If not, see <https://www.gnu.org/licenses/>.

package scripting

import (
	"os"

	"github.com/Astral-C/nest/curated"
	"github.com/Astral-C/nest/hardware"
	"github.com/Astral-C/nest/logger"
	lua "github.com/yuin/gopher-lua"
)

// the name of the function called at the end of every frame
const onFrame = "on_frame"

// Script is a Lua script attached to an NES.
type Script struct {
	nes   *hardware.NES
	state *lua.LState
}

// NewScript runs the source and attaches the script to the NES. If the
// script defines an on_frame function it will be called at the end of every
// frame.
func NewScript(source string, nes *hardware.NES) (*Script, error) {
	scr := &Script{
		nes:   nes,
		state: lua.NewState(),
	}

	scr.register()

	if err := scr.state.DoString(source); err != nil {
		scr.state.Close()
		return nil, curated.Errorf("scripting: %v", err)
	}

	nes.AddFrameHook(scr.frame)

	return scr, nil
}

// NewScriptFromFile is the same as NewScript but the source is read from the
// named file.
func NewScriptFromFile(filename string, nes *hardware.NES) (*Script, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("scripting: %v", err)
	}
	return NewScript(string(source), nes)
}

// Close the script. The on_frame function will no longer be called.
func (scr *Script) Close() {
	if scr.state != nil {
		scr.state.Close()
		scr.state = nil
	}
}

// frame is the frame hook added to the NES.
func (scr *Script) frame(nes *hardware.NES) error {
	if scr.state == nil {
		return nil
	}

	fn := scr.state.GetGlobal(onFrame)
	if fn.Type() != lua.LTFunction {
		return nil
	}

	err := scr.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(nes.Frame()))
	if err != nil {
		return curated.Errorf("scripting: %v", err)
	}

	return nil
}

// register the memory, cpu and emu tables.
func (scr *Script) register() {
	L := scr.state

	address := func(L *lua.LState, n int) uint16 {
		a := L.CheckInt(n)
		if a < 0 || a > 0xffff {
			L.ArgError(n, "address out of range")
		}
		return uint16(a)
	}

	L.SetGlobal("memory", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"read": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.nes.Mem.Read(address(L, 1))))
			return 1
		},
		"write": func(L *lua.LState) int {
			a := address(L, 1)
			v := L.CheckInt(2)
			if v < 0 || v > 0xff {
				L.ArgError(2, "value out of range")
			}
			scr.nes.Mem.Write(a, uint8(v))
			return 0
		},
	}))

	reg8 := func(f func() uint8) lua.LGFunction {
		return func(L *lua.LState) int {
			L.Push(lua.LNumber(f()))
			return 1
		}
	}

	L.SetGlobal("cpu", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"pc": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.nes.CPU.PC.Address()))
			return 1
		},
		"a":  reg8(func() uint8 { return scr.nes.CPU.A.Value() }),
		"x":  reg8(func() uint8 { return scr.nes.CPU.X.Value() }),
		"y":  reg8(func() uint8 { return scr.nes.CPU.Y.Value() }),
		"sp": reg8(func() uint8 { return scr.nes.CPU.SP.Value() }),
		"p":  reg8(func() uint8 { return scr.nes.CPU.Status.Value() }),
	}))

	L.SetGlobal("emu", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"frame": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.nes.Frame()))
			return 1
		},
		"cycles": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.nes.TotalCycles()))
			return 1
		},
		"log": func(L *lua.LState) int {
			logger.Log(logger.Allow, "scripting", L.CheckString(1))
			return 0
		},
	}))
}
