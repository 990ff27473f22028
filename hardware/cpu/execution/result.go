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

package execution

import (
	"fmt"
	"strings"

	"github.com/Astral-C/nest/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the opcode found at Address
	Defn instructions.Definition

	// the number of bytes read during instruction decode, including the
	// opcode
	ByteCount int

	// instruction data is the operand as read from the program. for a branch
	// instruction it is the offset value and not the branch target
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and branches this value
	// may be different
	Cycles int

	// whether an extra cycle was required because indexing crossed a page
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether the result has been completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand in a form suitable for display. For branch
// instructions the operand is the branch target rather than the offset.
func (r Result) Operand() uint16 {
	if r.Defn.AddressingMode == instructions.Relative {
		return r.Address + 2 + uint16(int16(int8(r.InstructionData)))
	}
	return r.InstructionData
}

// ByteCode returns the bytes of the instruction as they appear in memory.
func (r Result) ByteCode() []uint8 {
	b := []uint8{r.Defn.OpCode}
	if r.ByteCount > 1 {
		b = append(b, uint8(r.InstructionData))
	}
	if r.ByteCount > 2 {
		b = append(b, uint8(r.InstructionData>>8))
	}
	return b
}

// Disasm returns the instruction in assembler notation.
func (r Result) Disasm() string {
	s := r.Defn.Mnemonic()
	if r.ByteCount <= 1 && r.Defn.AddressingMode != instructions.Accumulator {
		return s
	}
	return fmt.Sprintf("%s %s", s, r.Defn.AddressingMode.Format(r.Operand()))
}

// String returns the address, the byte code and the instruction in
// assembler notation. The columns are of fixed width.
func (r Result) String() string {
	var hex strings.Builder
	for i, b := range r.ByteCode() {
		if i > 0 {
			hex.WriteRune(' ')
		}
		hex.WriteString(fmt.Sprintf("%02X", b))
	}
	return fmt.Sprintf("%04X  %-8s  %s", r.Address, hex.String(), r.Disasm())
}
