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

func TestDecimalModeCarry(t *testing.T) {
	var rcarry uint8

	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry, _, _, _ = r8.AddDecimal(1, 0)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectEquality(t, rcarry, 0)

	// addition with carry
	rcarry, _, _, _ = r8.AddDecimal(1, 1)
	test.ExpectEquality(t, r8.Value(), 0x03)
	test.ExpectEquality(t, rcarry, 0)

	// subtraction with carry (subtract value)
	r8.Load(9)
	r8.SubtractDecimal(1, 1)
	test.ExpectEquality(t, r8.Value(), 0x08)

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, 0)
	test.ExpectEquality(t, r8.Value(), 0x06)

	// addition on tens boundary
	r8.Load(9)
	r8.AddDecimal(1, 0)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// subtraction on tens boundary
	r8.SubtractDecimal(1, 1)
	test.ExpectEquality(t, r8.Value(), 0x09)

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, 0)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, rcarry, 1)

	// subtraction on hundreds boundary
	rcarry = r8.SubtractDecimal(1, 1)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectEquality(t, rcarry, 0)
}

func TestDecimalModeFlags(t *testing.T) {
	r8 := registers.NewRegister(0x99, "test")

	// zero flag comes from the binary result. 0x99 + 0x01 is 0x9a in binary
	_, zero, _, _ := r8.AddDecimal(0x01, 0)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, zero, false)

	// 0x79 + 0x01 is 0x80 after adjusting the units. the sign and overflow
	// flags are taken from that intermediate
	r8.Load(0x79)
	_, _, overflow, sign := r8.AddDecimal(0x01, 0)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, sign, true)
}
