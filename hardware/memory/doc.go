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

// Package memory implements the memory buses that the CPU operates on.
//
// Flat is a plain 64K memory image with no mapping. It is useful for running
// processor tests that expect to be able to write anywhere in the address
// space.
//
// Bus is the memory map of the NES. It has 2K of internal RAM mirrored four
// times, latches for the PPU and APU registers, 8K of cartridge RAM and the
// cartridge ROM windows.
//
// Both types satisfy the cpubus.Memory interface and provide the addressing
// helper functions: Read16(), ReadIndexedIndirect(), ReadIndirectIndexed()
// and the write equivalents.
package memory
