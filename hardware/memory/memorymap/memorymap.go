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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Expansion:
		return "Expansion"
	case SRAM:
		return "SRAM"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Expansion
	SRAM
	Cartridge
)

// The origin and memory top for each area of memory. The memtop of the RAM
// and PPU areas is the top of the primary mirror. The mirrors extend to the
// origin of the next area.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x07ff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x2007)
	OriginAPU       = uint16(0x4000)
	MemtopAPU       = uint16(0x401f)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x5fff)
	OriginSRAM      = uint16(0x6000)
	MemtopSRAM      = uint16(0x7fff)
	OriginCart      = uint16(0x8000)
	MemtopCart      = uint16(0xffff)
)

// Masks that force an address in a mirrored area into the primary mirror.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Memtop is the top most address of memory in the NES.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
//
// Addresses in the cartridge area are returned unchanged. How the cartridge
// windows mirror depends on the size of the inserted cartridge.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address >= OriginCart:
		return address, Cartridge
	case address >= OriginSRAM:
		return address, SRAM
	case address >= OriginExpansion:
		return address, Expansion
	case address >= OriginAPU:
		return address, APU
	case address >= OriginPPU:
		return OriginPPU | (address & MaskPPU), PPU
	}
	return address & MaskRAM, RAM
}
