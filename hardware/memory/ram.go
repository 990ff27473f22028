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
	"math/rand"
	"strings"

	"github.com/Astral-C/nest/hardware/memory/memorymap"
)

// RAM represents the 2K of internal RAM in the NES.
type RAM struct {
	memory [memorymap.MemtopRAM + 1]uint8
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	dump(&s, ram.memory[:], memorymap.OriginRAM)
	return strings.TrimSuffix(s.String(), "\n")
}

// Label returns the name of the memory area.
func (ram *RAM) Label() string {
	return "RAM"
}

// Read value from RAM. Mirrors are resolved by the RAM.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address&memorymap.MaskRAM]
}

// Write value to RAM. Mirrors are resolved by the RAM.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address&memorymap.MaskRAM] = data
}

// Reset contents of RAM. If a random source is supplied then the RAM is
// filled with random values. Otherwise the RAM is zeroed.
func (ram *RAM) Reset(rnd *rand.Rand) {
	for i := range ram.memory {
		if rnd != nil {
			ram.memory[i] = uint8(rnd.Intn(0x100))
		} else {
			ram.memory[i] = 0
		}
	}
}
