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

import (
	"strings"
)

// Flat is a 64K memory image with no mapping or mirroring. Every address is
// readable and writable.
type Flat struct {
	addressing
	data []uint8
}

// NewFlat is the preferred method of initialisation for the Flat type.
func NewFlat() *Flat {
	mem := &Flat{
		data: make([]uint8, 0x10000),
	}
	mem.addressing = addressing{mem: mem}
	return mem
}

// Dump returns a hex dump of the memory between origin and end inclusive.
func (mem *Flat) Dump(origin uint16, end uint16) string {
	s := strings.Builder{}
	if end < origin {
		return ""
	}
	dump(&s, mem.data[origin:int(end)+1], origin)
	return strings.TrimSuffix(s.String(), "\n")
}

// Read implements the cpubus.Memory interface.
func (mem *Flat) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Flat) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Peek returns the value at the address without side effects.
func (mem *Flat) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke sets the value at the address without side effects.
func (mem *Flat) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Load data into memory starting at origin. Data that would extend beyond
// the top of memory wraps around to address zero.
func (mem *Flat) Load(origin uint16, data []uint8) {
	for i, d := range data {
		mem.data[origin+uint16(i)] = d
	}
}

// Clear sets every byte of memory to zero.
func (mem *Flat) Clear() {
	clear(mem.data)
}
