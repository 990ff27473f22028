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
	"fmt"

	"github.com/Astral-C/nest/curated"
	"github.com/Astral-C/nest/hardware/memory/memorymap"
	"github.com/cespare/xxhash"
)

// BankSize is the size of a PRG-ROM bank in an NES cartridge.
const BankSize = 0x4000

// Cartridge is the fixed window cartridge mapping known as NROM. The
// cartridge has either one or two 16K banks of PRG-ROM. A single bank is
// mirrored into both windows of the cartridge area.
type Cartridge struct {
	prg  []uint8
	mask uint16
	hash uint64
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data is copied and must be exactly 16K or 32K.
func NewCartridge(prg []uint8) (*Cartridge, error) {
	if len(prg) != BankSize && len(prg) != BankSize*2 {
		return nil, curated.Errorf("cartridge: PRG-ROM must be 16K or 32K (got %d bytes)", len(prg))
	}

	cart := &Cartridge{
		prg:  make([]uint8, len(prg)),
		mask: uint16(len(prg) - 1),
	}
	copy(cart.prg, prg)
	cart.hash = xxhash.Sum64(cart.prg)

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("NROM-%d (%016x)", len(cart.prg)/1024*8, cart.hash)
}

// Label returns the name of the memory area.
func (cart *Cartridge) Label() string {
	return "Cartridge"
}

// Size returns the number of bytes of PRG-ROM.
func (cart *Cartridge) Size() int {
	return len(cart.prg)
}

// Hash returns the xxhash of the PRG-ROM as it was when the cartridge was
// created.
func (cart *Cartridge) Hash() uint64 {
	return cart.hash
}

// Read value from the cartridge. The address should be in the cartridge area.
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.prg[(address-memorymap.OriginCart)&cart.mask]
}

// Poke value into the cartridge ROM. This is not possible on the real
// hardware.
func (cart *Cartridge) Poke(address uint16, data uint8) {
	cart.prg[(address-memorymap.OriginCart)&cart.mask] = data
}
