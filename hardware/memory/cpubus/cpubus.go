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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. There is no error path. Every 16 bit address is a valid address.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// PageCrossed returns true if adding index to base would change the high
// byte of the address. The low byte of base is masked before the addition.
func PageCrossed(base uint16, index uint8) bool {
	return (base&0x00ff)+uint16(index) > 0xff
}

// Read16 reads a little endian word. Each byte is fetched independently so a
// read at 0xffff takes its high byte from 0x0000.
func Read16(mem Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// Read16ZeroPage reads a little endian word from page zero. A pointer at 0xff
// takes its high byte from 0x00.
func Read16ZeroPage(mem Memory, zp uint8) uint16 {
	lo := mem.Read(uint16(zp))
	hi := mem.Read(uint16(zp + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// Read16Indirect reads a little endian word in the manner of the JMP
// (indirect) instruction. The NMOS 6502 does not carry into the high byte
// when fetching the second byte, so a pointer at 0x02ff takes its high byte
// from 0x0200. The bool return value is true when this quirk has affected the
// result.
func Read16Indirect(mem Memory, address uint16) (uint16, bool) {
	lo := mem.Read(address)
	hi := mem.Read((address & 0xff00) | uint16(uint8(address)+1))
	return (uint16(hi) << 8) | uint16(lo), address&0x00ff == 0x00ff
}

// ZeroPageIndexed returns the zero page address zp+index. The addition wraps
// within page zero.
func ZeroPageIndexed(zp uint8, index uint8) uint16 {
	return uint16(zp + index)
}

// Indexed returns the address base+index and whether the addition crossed a
// page boundary.
func Indexed(base uint16, index uint8) (uint16, bool) {
	return base + uint16(index), PageCrossed(base, index)
}

// IndexedIndirect resolves the (zp,X) addressing mode. The index is added to
// the zero page address, wrapping within page zero, and the word at that
// location is the effective address. There is never a page cross penalty for
// this mode.
func IndexedIndirect(mem Memory, zp uint8, index uint8) uint16 {
	return Read16ZeroPage(mem, zp+index)
}

// IndirectIndexed resolves the (zp),Y addressing mode. The word at the zero
// page address is fetched and the index added to it. The bool return value
// is true when the addition crossed a page boundary.
func IndirectIndexed(mem Memory, zp uint8, index uint8) (uint16, bool) {
	return Indexed(Read16ZeroPage(mem, zp), index)
}
