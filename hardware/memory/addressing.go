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

package memory

import "github.com/Astral-C/nest/hardware/memory/cpubus"

// addressing implements the helper functions of the memory bus for any
// cpubus.Memory implementation.
type addressing struct {
	mem cpubus.Memory
}

// Read16 reads a little endian word. Each byte is fetched independently with
// 16 bit wraparound.
func (a addressing) Read16(address uint16) uint16 {
	return cpubus.Read16(a.mem, address)
}

// ReadIndexedIndirect reads the byte at the address found in the zero page
// pointer at zp+index. The zero page address wraps within page zero.
func (a addressing) ReadIndexedIndirect(zp uint8, index uint8) uint8 {
	return a.mem.Read(cpubus.IndexedIndirect(a.mem, zp, index))
}

// ReadIndirectIndexed reads the byte at the address found in the zero page
// pointer at zp, offset by index. The bool return value is true if the
// addition of the index crossed a page boundary.
func (a addressing) ReadIndirectIndexed(zp uint8, index uint8) (uint8, bool) {
	address, crossed := cpubus.IndirectIndexed(a.mem, zp, index)
	return a.mem.Read(address), crossed
}

// WriteIndexedIndirect is the write equivalent of ReadIndexedIndirect.
func (a addressing) WriteIndexedIndirect(zp uint8, index uint8, data uint8) {
	a.mem.Write(cpubus.IndexedIndirect(a.mem, zp, index), data)
}

// WriteIndirectIndexed is the write equivalent of ReadIndirectIndexed.
func (a addressing) WriteIndirectIndexed(zp uint8, index uint8, data uint8) bool {
	address, crossed := cpubus.IndirectIndexed(a.mem, zp, index)
	a.mem.Write(address, data)
	return crossed
}
