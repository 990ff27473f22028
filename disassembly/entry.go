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
	"fmt"

	"github.com/Astral-C/nest/hardware/cpu/execution"
	"github.com/Astral-C/nest/hardware/cpu/instructions"
	"github.com/Astral-C/nest/hardware/memory/addresses"
	"github.com/Astral-C/nest/hardware/memory/memorymap"
)

// Entry is a disassembled instruction.
type Entry struct {
	// the decoded instruction. the result has not been executed so the Final
	// field is false and the Cycles field is the cycle count of the
	// definition
	Result execution.Result

	// the canonical name of the register referred to by the operand. empty
	// if the operand does not refer to a register
	Symbol string
}

// Address of the instruction.
func (e Entry) Address() uint16 {
	return e.Result.Address
}

// Bytes returns the instruction as it appears in memory.
func (e Entry) Bytes() []uint8 {
	return e.Result.ByteCode()
}

// Mnemonic of the instruction's operator.
func (e Entry) Mnemonic() string {
	return e.Result.Defn.Mnemonic()
}

// Operand in assembler notation.
func (e Entry) Operand() string {
	if e.Result.ByteCount <= 1 && e.Result.Defn.AddressingMode != instructions.Accumulator {
		return ""
	}
	return e.Result.Defn.AddressingMode.Format(e.Result.Operand())
}

func (e Entry) String() string {
	if e.Symbol == "" {
		return e.Result.String()
	}
	return fmt.Sprintf("%-28s; %s", e.Result.String(), e.Symbol)
}

// symbol returns the canonical name of the register referred to by the
// operand.
func symbol(defn instructions.Definition, operand uint16) string {
	switch defn.AddressingMode {
	case instructions.Absolute, instructions.ZeroPage,
		instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
	default:
		return ""
	}

	if defn.Effect == instructions.Flow || defn.Effect == instructions.Subroutine {
		return ""
	}

	ma, area := memorymap.MapAddress(operand)
	if area != memorymap.PPU && area != memorymap.APU {
		return ""
	}

	var s string
	if defn.Effect == instructions.Write {
		s, _ = addresses.WriteSymbol(ma)
	} else {
		s, _ = addresses.ReadSymbol(ma)
	}
	return s
}
