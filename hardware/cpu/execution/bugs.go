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

// Bug names an addressing quirk of the NMOS 6502 that the last instruction
// ran into. The CPU reproduces each quirk and notes it in Result.CPUBug so
// that a trace or disassembly can point it out.
//
// The quirks are a property of the silicon and are present in the 2A03.
type Bug string

// List of CPU bugs that are noted in the Result.
const (
	NoBug Bug = ""

	// JMP ($xxFF) reads the high byte of the target from $xx00.
	JmpIndirectAddressingBug Bug = "indirect addressing bug (JMP bug)"

	// (zp,X) where zp+X passes $FF. The pointer is read from page zero.
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// zp,X or zp,Y where the sum passes $FF. The address wraps to page zero.
	ZeroPageIndexBug Bug = "zero page index bug"
)

// String implements the fmt.Stringer interface.
func (b Bug) String() string {
	if b == NoBug {
		return "no bug"
	}
	return string(b)
}
