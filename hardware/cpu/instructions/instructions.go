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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Cycles         int
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.IsUnknown() {
		return fmt.Sprintf("%02x unknown opcode", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes(), defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// Mnemonic returns the assembler mnemonic of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// Bytes returns the number of bytes used by the instruction, including the
// opcode.
func (defn Definition) Bytes() int {
	return 1 + defn.AddressingMode.OperandBytes()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsUnknown returns true if the opcode is not part of the documented
// instruction set.
func (defn Definition) IsUnknown() bool {
	return defn.Operator == Unknown
}

// GetDefinitions returns a copy of the instruction table. The table is
// indexed by opcode.
func GetDefinitions() [256]Definition {
	return table
}

// Lookup returns the definition for the opcode.
func Lookup(opcode uint8) Definition {
	return table[opcode]
}
