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

package registers

import (
	"strings"
)

// the two bits of the flags byte that have no flag behind them. bit 5 is
// always set when the status register is pushed to the stack. bit 4 is set
// when the push was caused by PHP or BRK and clear for hardware interrupts.
const (
	BreakBit  = uint8(0x10)
	UnusedBit = uint8(0x20)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The carry flag is stored as 0 or 1.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the flags as a string of letters. Upper case letters are set
// flags and lower case letters are clear flags. The two bits with no flag are
// shown as '-'.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(sr.Negative, 'N')
	flag(sr.Overflow, 'V')
	s.WriteString("--")
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry != 0, 'C')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// SetNZ sets the negative and zero flags according to the value.
func (sr *StatusRegister) SetNZ(v uint8) {
	sr.Negative = v&0x80 == 0x80
	sr.Zero = v == 0
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. Bits 4 and 5 are always set.
func (sr StatusRegister) Value() uint8 {
	v := BreakBit | UnusedBit

	if sr.Negative {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	v |= sr.Carry & 0x01

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to the
// StatusRegister struct receiver. Bits 4 and 5 are ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Negative = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v & 0x01
}
