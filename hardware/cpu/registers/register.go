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
	"fmt"
)

// Register is an 8 bit register. Operations that produce a carry return it as
// an integer value of 0 or 1.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%02X", r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a uint16. Useful when
// the register is being used as an index or as a zero page address.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of the second MSB.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value and carry to register. Returns the new carry and overflow states.
func (r *Register) Add(val uint8, carry uint8) (uint8, bool) {
	v := r.value

	// nine bit intermediate result
	sum := uint16(v) + uint16(val) + uint16(carry&0x01)
	r.value = uint8(sum)

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	overflow := ((r.value ^ v) & (r.value ^ val) & 0x80) != 0

	return uint8(sum >> 8), overflow
}

// Subtract value from register. A carry of 1 means there is no borrow.
// Returns the new carry and overflow states.
func (r *Register) Subtract(val uint8, carry uint8) (uint8, bool) {
	return r.Add(^val, carry)
}

// Compare value with the register without changing it. Returns the carry
// (1 if the register is greater than or equal to the value) and the result
// of the subtraction for the zero and negative flags.
func (r Register) Compare(val uint8) (uint8, uint8) {
	var carry uint8
	if r.value >= val {
		carry = 1
	}
	return carry, r.value - val
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA (non-exclusive or) value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift.
func (r *Register) ASL() uint8 {
	carry := r.value >> 7
	r.value <<= 1
	return carry
}

// LSR (logical shift right) shifts register one bit to the right. Returns the
// least significant bit as it was before the shift.
func (r *Register) LSR() uint8 {
	carry := r.value & 0x01
	r.value >>= 1
	return carry
}

// ROL rotates register 1 bit to the left. The carry is moved into bit zero.
// Returns the new carry.
func (r *Register) ROL(carry uint8) uint8 {
	rcarry := r.value >> 7
	r.value = (r.value << 1) | (carry & 0x01)
	return rcarry
}

// ROR rotates register 1 bit to the right. The carry is moved into bit seven.
// Returns the new carry.
func (r *Register) ROR(carry uint8) uint8 {
	rcarry := r.value & 0x01
	r.value = (r.value >> 1) | ((carry & 0x01) << 7)
	return rcarry
}

// Increment the register by one, wrapping around.
func (r *Register) Increment() {
	r.value++
}

// Decrement the register by one, wrapping around.
func (r *Register) Decrement() {
	r.value--
}
