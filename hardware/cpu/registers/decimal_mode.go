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

// the decimal mode operations follow the NMOS 6502 behaviour as described in
// "Decimal Mode" by Bruce Clark. the 2A03 in the NES has the decimal
// circuitry disabled so these functions are only used when the CPU has been
// configured to honour the D flag.

func addDecimal(a, b, carry uint8) (uint8, uint8) {
	r := a + b + carry
	if r > 9 {
		return r, 1
	}
	return r, 0
}

// AddDecimal adds value to register as though both are binary coded
// decimal. Returns new carry state, zero, overflow and sign bit information.
func (r *Register) AddDecimal(val uint8, carry uint8) (uint8, bool, bool, bool) {
	var zero, overflow, sign bool

	runits, ucarry := addDecimal(r.value&0x0f, val&0x0f, carry&0x01)
	rtens, tcarry := addDecimal(r.value>>4, val>>4, ucarry)

	// the Z flag is computed before performing any decimal adjust
	zero = (uint16(r.value)+uint16(val)+uint16(carry&0x01))&0xff == 0

	if ucarry == 1 {
		runits -= 10
	}

	// the N and V flags are computed after a decimal adjust of the low nibble
	// but before adjusting the high nibble
	t := rtens << 4
	overflow = ((r.value ^ t) & (val ^ t) & 0x80) != 0
	sign = t&0x80 == 0x80

	if tcarry == 1 {
		rtens -= 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return tcarry, zero, overflow, sign
}

func subtractDecimal(a, b, borrow uint8) (uint8, uint8) {
	r := a - b - borrow
	if b > a || (borrow == 1 && b == a) {
		return r, 1
	}
	return r, 0
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal. A carry of 1 means there is no borrow. Returns the new carry.
//
// The flags other than carry are the same as for binary subtraction so the
// caller should take them from a binary Subtract().
func (r *Register) SubtractDecimal(val uint8, carry uint8) uint8 {
	borrow := ^carry & 0x01

	runits, uborrow := subtractDecimal(r.value&0x0f, val&0x0f, borrow)
	rtens, tborrow := subtractDecimal(r.value>>4, val>>4, uborrow)

	if uborrow == 1 {
		runits += 10
	}
	if tborrow == 1 {
		rtens += 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return ^tborrow & 0x01
}
