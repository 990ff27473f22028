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

package registers_test

import (
	"testing"

	"github.com/Astral-C/nest/hardware/cpu/registers"
	"github.com/Astral-C/nest/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 2)

	// page change
	pc.Load(0x80ff)
	test.ExpectEquality(t, pc.Add(1), true)
	test.ExpectEquality(t, pc.Address(), 0x8100)
	test.ExpectEquality(t, pc.Add(1), false)

	// wraps around
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0x0000)

	// signed offsets
	pc.Load(0x8002)
	test.ExpectEquality(t, pc.AddSigned(0x05), false)
	test.ExpectEquality(t, pc.Address(), 0x8007)
	test.ExpectEquality(t, pc.AddSigned(0xf9), false)
	test.ExpectEquality(t, pc.Address(), 0x8000)
	test.ExpectEquality(t, pc.AddSigned(0xff), true)
	test.ExpectEquality(t, pc.Address(), 0x7fff)

	test.ExpectEquality(t, pc.String(), "7FFF")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Address(), 0x01fd)

	test.ExpectEquality(t, sp.Push(), 0x01fd)
	test.ExpectEquality(t, sp.Value(), 0xfc)
	test.ExpectEquality(t, sp.Pull(), 0x01fd)
	test.ExpectEquality(t, sp.Value(), 0xfd)

	// stack pointer never leaves page one
	sp.Load(0x00)
	test.ExpectEquality(t, sp.Push(), 0x0100)
	test.ExpectEquality(t, sp.Address(), 0x01ff)
	test.ExpectEquality(t, sp.Pull(), 0x0100)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "nv--dizc")
	test.ExpectEquality(t, sr.Value(), 0x30)

	sr.Negative = true
	sr.Carry = 1
	test.ExpectEquality(t, sr.String(), "Nv--dizC")
	test.ExpectEquality(t, sr.Value(), 0xb1)

	// bits 4 and 5 are ignored on load
	sr.Load(0x34)
	test.ExpectEquality(t, sr.String(), "nv--dIzc")
	test.ExpectEquality(t, sr.Value(), 0x34)

	sr.SetNZ(0x00)
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Negative, false)
	sr.SetNZ(0x80)
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.Negative, true)
}

// packing then unpacking the flags reproduces the original flag set
func TestStatusRegisterRoundTrip(t *testing.T) {
	for v := 0; v <= 0xff; v++ {
		var sr registers.StatusRegister
		sr.Load(uint8(v))

		var rt registers.StatusRegister
		rt.Load(sr.Value())
		test.ExpectEquality(t, rt, sr)

		// the packed value always has bits 4 and 5 set
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x30)
	}
}
