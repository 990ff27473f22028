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

// Package instructions defines the instruction set of the 6502 core of the
// NES. Every one of the 256 opcodes has a Definition that describes the
// operator, the addressing mode, the base number of cycles, whether the
// instruction takes an extra cycle when indexing crosses a page boundary and
// the category of effect the instruction has.
//
// The table is generated from generator/instructions.csv with "go generate".
// Opcodes that are not listed in the CSV file are given the Unknown operator.
// The CPU treats these as two cycle, one byte instructions with no effect.
package instructions
