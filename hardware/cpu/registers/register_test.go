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

package registers_test

import (
	"testing"

	"github.com/Astral-C/nest/hardware/cpu/registers"
	"github.com/Astral-C/nest/test"
)

func TestRegister(t *testing.T) {
	var carry uint8
	var overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, 0)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectEquality(t, carry, 0)
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, 0)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, 1)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	r8.Load(255)
	carry, _ = r8.Add(1, 1)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, r8.Value(), 1)

	// subtraction. a carry of 1 means no borrow
	r8.Load(11)
	r8.Subtract(1, 1)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, 0)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, 0)
	test.ExpectEquality(t, r8.Value(), 0xfa)
	test.ExpectEquality(t, carry, 0)

	r8.Load(0)
	r8.Subtract(1, 1)
	test.ExpectEquality(t, r8.Value(), 255)

	// overflow on subtraction
	r8.Load(0x80)
	carry, overflow = r8.Subtract(0x01, 1)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, overflow, true)

	// logical operations
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectEquality(t, r8.IsBitV(), true)

	// increment and decrement wrap
	r8.Increment()
	test.ExpectEquality(t, r8.Value(), 0x00)
	r8.Decrement()
	test.ExpectEquality(t, r8.Value(), 0xff)
}

func TestShifts(t *testing.T) {
	var carry uint8

	r8 := registers.NewRegister(0x81, "test")

	carry = r8.ASL()
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, r8.Value(), 0x02)

	carry = r8.LSR()
	test.ExpectEquality(t, carry, 0)
	test.ExpectEquality(t, r8.Value(), 0x01)

	carry = r8.LSR()
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, r8.Value(), 0x00)

	// previous carry is moved into the vacated bit
	r8.Load(0x80)
	carry = r8.ROL(1)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, r8.Value(), 0x01)

	carry = r8.ROR(1)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, r8.Value(), 0x80)

	carry = r8.ROR(0)
	test.ExpectEquality(t, carry, 0)
	test.ExpectEquality(t, r8.Value(), 0x40)
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x40, "test")

	carry, result := r8.Compare(0x40)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, result, 0)

	carry, result = r8.Compare(0x41)
	test.ExpectEquality(t, carry, 0)
	test.ExpectEquality(t, result, 0xff)

	carry, result = r8.Compare(0x01)
	test.ExpectEquality(t, carry, 1)
	test.ExpectEquality(t, result, 0x3f)

	// register is unchanged
	test.ExpectEquality(t, r8.Value(), 0x40)
}

// add then subtract with the same operand restores the original value when
// the carry-in of the addition is used as the borrow of the subtraction
func TestAddSubtractIdentity(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for c := uint8(0); c <= 1; c++ {
				r8 := registers.NewRegister(uint8(a), "A")
				r8.Add(uint8(b), c)

				// the borrow of the subtraction is the carry-in of the addition
				r8.Subtract(uint8(b), c^1)
				if !test.ExpectEquality(t, r8.Value(), uint8(a)) {
					t.Logf("a=%02x b=%02x c=%d", a, b, c)
					return
				}
			}
		}
	}
}
