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
	"github.com/Astral-C/nest/hardware/memory/memorymap"
	"github.com/Astral-C/nest/hardware/preferences"
	"github.com/Astral-C/nest/logger"
)

// Bus is the CPU memory map of the NES.
type Bus struct {
	addressing

	prefs *preferences.Preferences

	RAM  *RAM
	Cart *Cartridge

	// the PPU and APU registers are latches. there is no PPU or APU
	// behaviour behind them
	PPU [memorymap.MemtopPPU - memorymap.OriginPPU + 1]uint8
	APU [memorymap.MemtopAPU - memorymap.OriginAPU + 1]uint8

	// cartridge RAM
	SRAM [memorymap.MemtopSRAM - memorymap.OriginSRAM + 1]uint8
}

// NewBus is the preferred method of initialisation for the Bus type. A nil
// prefs argument is the same as the default preferences except that writes to
// the cartridge are not logged.
func NewBus(prefs *preferences.Preferences) *Bus {
	bus := &Bus{
		prefs: prefs,
		RAM:   &RAM{},
	}
	bus.addressing = addressing{mem: bus}
	return bus
}

// Snapshot creates a copy of the bus. The cartridge is shared with the copy.
func (bus *Bus) Snapshot() *Bus {
	n := *bus
	n.RAM = &RAM{}
	*n.RAM = *bus.RAM
	n.addressing = addressing{mem: &n}
	return &n
}

func (bus *Bus) String() string {
	return bus.RAM.String()
}

// Attach cartridge to the bus. A nil cartridge removes the current
// cartridge.
func (bus *Bus) Attach(cart *Cartridge) {
	bus.Cart = cart
}

// Reset the contents of the volatile memory. RAM is randomised if the
// RandomState preference is true.
func (bus *Bus) Reset() {
	if bus.prefs != nil && bus.prefs.RandomState.Get().(bool) {
		bus.RAM.Reset(bus.prefs.RandSrc)
	} else {
		bus.RAM.Reset(nil)
	}
	clear(bus.PPU[:])
	clear(bus.APU[:])
}

// Read implements the cpubus.Memory interface.
func (bus *Bus) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return bus.RAM.Read(ma)
	case memorymap.PPU:
		return bus.PPU[ma-memorymap.OriginPPU]
	case memorymap.APU:
		return bus.APU[ma-memorymap.OriginAPU]
	case memorymap.SRAM:
		return bus.SRAM[ma-memorymap.OriginSRAM]
	case memorymap.Cartridge:
		if bus.Cart != nil {
			return bus.Cart.Read(ma)
		}
	}

	// nothing drives the data bus. the last value on the bus is usually the
	// high byte of the address
	return uint8(address >> 8)
}

// Write implements the cpubus.Memory interface.
func (bus *Bus) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		bus.RAM.Write(ma, data)
	case memorymap.PPU:
		bus.PPU[ma-memorymap.OriginPPU] = data
	case memorymap.APU:
		bus.APU[ma-memorymap.OriginAPU] = data
	case memorymap.SRAM:
		bus.SRAM[ma-memorymap.OriginSRAM] = data
	case memorymap.Cartridge:
		logger.Logf(bus.prefs, "memory", "write to cartridge ROM ignored ($%04x = $%02x)", address, data)
	}
}

// Peek returns the value at the address. Identical to Read() because no area
// of the bus has read side effects.
func (bus *Bus) Peek(address uint16) uint8 {
	return bus.Read(address)
}

// Poke value into memory. Unlike Write(), Poke() can change the contents of
// the cartridge ROM.
func (bus *Bus) Poke(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)
	if area == memorymap.Cartridge {
		if bus.Cart != nil {
			bus.Cart.Poke(ma, data)
		}
		return
	}
	bus.Write(address, data)
}
