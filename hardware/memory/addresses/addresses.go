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

package addresses

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored. Used by
// CPU.Reset() and the disassembly package.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. Also used by
// the BRK instruction.
const IRQ = uint16(0xfffe)

// StackOrigin is the address of the first byte of the stack page.
const StackOrigin = uint16(0x0100)

// CanonicalReadSymbols list all the readable register addresses along with
// the canonical names for those addresses.
var CanonicalReadSymbols = map[uint16]string{
	// PPU
	0x2002: "PPUSTATUS",
	0x2004: "OAMDATA",
	0x2007: "PPUDATA",

	// APU and I/O
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "JOY2",
}

// CanonicalWriteSymbols list all the writable register addresses along with
// the canonical names for those addresses.
var CanonicalWriteSymbols = map[uint16]string{
	// PPU
	0x2000: "PPUCTRL",
	0x2001: "PPUMASK",
	0x2003: "OAMADDR",
	0x2004: "OAMDATA",
	0x2005: "PPUSCROLL",
	0x2006: "PPUADDR",
	0x2007: "PPUDATA",

	// APU
	0x4000: "SQ1_VOL",
	0x4001: "SQ1_SWEEP",
	0x4002: "SQ1_LO",
	0x4003: "SQ1_HI",
	0x4004: "SQ2_VOL",
	0x4005: "SQ2_SWEEP",
	0x4006: "SQ2_LO",
	0x4007: "SQ2_HI",
	0x4008: "TRI_LINEAR",
	0x400a: "TRI_LO",
	0x400b: "TRI_HI",
	0x400c: "NOISE_VOL",
	0x400e: "NOISE_LO",
	0x400f: "NOISE_HI",
	0x4010: "DMC_FREQ",
	0x4011: "DMC_RAW",
	0x4012: "DMC_START",
	0x4013: "DMC_LEN",
	0x4014: "OAMDMA",
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "FRAMECTR",
}

// the highest register address in either of the canonical maps
const registerTop = 0x4017

// Read is a sparse array containing the canonical labels for NES read
// addresses. If the address is not named (empty string) then the address is
// not a readable register.
var Read []string

// Write is a sparse array containing the canonical labels for NES write
// addresses. If the address is not named (empty string) then the address is
// not a writable register.
var Write []string

func init() {
	Read = make([]string, registerTop+1)
	for k, v := range CanonicalReadSymbols {
		Read[k] = v
	}

	Write = make([]string, registerTop+1)
	for k, v := range CanonicalWriteSymbols {
		Write[k] = v
	}
}

// ReadSymbol returns the canonical name for a read of the address. The
// address should be mapped to its primary mirror.
func ReadSymbol(address uint16) (string, bool) {
	if int(address) >= len(Read) || Read[address] == "" {
		return "", false
	}
	return Read[address], true
}

// WriteSymbol returns the canonical name for a write to the address. The
// address should be mapped to its primary mirror.
func WriteSymbol(address uint16) (string, bool) {
	if int(address) >= len(Write) || Write[address] == "" {
		return "", false
	}
	return Write[address], true
}
