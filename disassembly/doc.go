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

// Package disassembly produces a linear disassembly of 6502 code. Every
// address in the range is decoded as though it were the start of an
// instruction and the sweep continues from the byte after the instruction's
// operand. No attempt is made to follow the flow of the program so data
// found amongst the code will be disassembled as code.
//
// Operands that refer to PPU or APU registers are annotated with the
// register's canonical name.
package disassembly
