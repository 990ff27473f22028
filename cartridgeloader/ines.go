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

package cartridgeloader

import (
	"fmt"

	"github.com/Astral-C/nest/curated"
)

// Size of the iNES header and of the optional trainer that follows it.
const (
	HeaderSize  = 16
	TrainerSize = 512
)

// Units of the PRG-ROM and CHR-ROM sizes in the header.
const (
	PRGUnit = 0x4000
	CHRUnit = 0x2000
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// Header is the decoded iNES header.
type Header struct {
	// number of 16K PRG-ROM banks
	PRGBanks int

	// number of 8K CHR-ROM banks. zero means the cartridge uses CHR-RAM
	CHRBanks int

	Mapper uint8

	// nametable mirroring. false is horizontal mirroring
	VerticalMirroring bool

	// battery backed PRG-RAM at $6000-$7FFF
	Battery bool

	// a 512 byte trainer sits between the header and the PRG-ROM
	Trainer bool

	// the header is in the NES 2.0 format. only the iNES fields are used
	NES20 bool
}

func (h Header) String() string {
	mirroring := "horizontal"
	if h.VerticalMirroring {
		mirroring = "vertical"
	}
	return fmt.Sprintf("mapper %d, %dK PRG, %dK CHR, %s mirroring", h.Mapper,
		h.PRGBanks*PRGUnit/1024, h.CHRBanks*CHRUnit/1024, mirroring)
}

// IsINES returns true if data begins with the iNES magic number.
func IsINES(data []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i := range magic {
		if data[i] != magic[i] {
			return false
		}
	}
	return true
}

// ParseHeader decodes the iNES header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < HeaderSize {
		return h, curated.Errorf("ines: %v", "file too short for header")
	}
	if !IsINES(data) {
		return h, curated.Errorf("ines: %v", "missing magic number")
	}

	h.PRGBanks = int(data[4])
	h.CHRBanks = int(data[5])
	h.VerticalMirroring = data[6]&0x01 == 0x01
	h.Battery = data[6]&0x02 == 0x02
	h.Trainer = data[6]&0x04 == 0x04
	h.Mapper = data[7]&0xf0 | data[6]>>4
	h.NES20 = data[7]&0x0c == 0x08

	return h, nil
}

// prgOffset returns the offset of the PRG-ROM in the file.
func (h Header) prgOffset() int {
	if h.Trainer {
		return HeaderSize + TrainerSize
	}
	return HeaderSize
}
