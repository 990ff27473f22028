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

package disassembly

import (
	"github.com/Astral-C/nest/hardware/cpu/instructions"
	"github.com/Astral-C/nest/hardware/memory/cpubus"
)

// Disassemble the memory between origin and end inclusive. The last
// instruction is included even if its operand extends beyond end. The
// operand of an instruction at the top of memory wraps around to address
// zero.
func Disassemble(mem cpubus.Memory, origin uint16, end uint16) []Entry {
	var entries []Entry

	if end < origin {
		return entries
	}

	address := int(origin)
	for address <= int(end) {
		e := decode(mem, uint16(address))
		entries = append(entries, e)
		address += e.Result.ByteCount
	}

	return entries
}

// decode the instruction at address.
func decode(mem cpubus.Memory, address uint16) Entry {
	var e Entry

	e.Result.Address = address
	e.Result.Defn = instructions.Lookup(mem.Read(address))
	e.Result.ByteCount = e.Result.Defn.Bytes()
	e.Result.Cycles = e.Result.Defn.Cycles

	switch e.Result.ByteCount {
	case 2:
		e.Result.InstructionData = uint16(mem.Read(address + 1))
	case 3:
		e.Result.InstructionData = cpubus.Read16(mem, address+1)
	}

	e.Symbol = symbol(e.Result.Defn, e.Result.InstructionData)

	return e
}
