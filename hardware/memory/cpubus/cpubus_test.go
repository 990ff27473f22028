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

package cpubus_test

import (
	"testing"

	"github.com/Astral-C/nest/hardware/memory/cpubus"
	"github.com/Astral-C/nest/test"
)

type mockMem [0x10000]uint8

func (mem *mockMem) Read(address uint16) uint8 {
	return mem[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem[address] = data
}

func TestPageCrossed(t *testing.T) {
	test.ExpectEquality(t, cpubus.PageCrossed(0x00ff, 0x01), true)
	test.ExpectEquality(t, cpubus.PageCrossed(0x0100, 0x01), false)
	test.ExpectEquality(t, cpubus.PageCrossed(0x12f0, 0x0f), false)
	test.ExpectEquality(t, cpubus.PageCrossed(0x12f0, 0x10), true)
	test.ExpectEquality(t, cpubus.PageCrossed(0x1201, 0xff), true)
	test.ExpectEquality(t, cpubus.PageCrossed(0x10ff, 0x00), false)

	// an expression that masks the sum of the address and the index would get
	// this wrong
	test.ExpectEquality(t, cpubus.PageCrossed(0x1080, 0x80), true)
}

func TestRead16(t *testing.T) {
	var mem mockMem

	mem.Write(0x1234, 0xcd)
	mem.Write(0x1235, 0xab)
	test.ExpectEquality(t, cpubus.Read16(&mem, 0x1234), 0xabcd)

	// each byte fetched independently with 16 bit wraparound
	mem.Write(0xffff, 0x34)
	mem.Write(0x0000, 0x12)
	test.ExpectEquality(t, cpubus.Read16(&mem, 0xffff), 0x1234)
}

func TestRead16ZeroPage(t *testing.T) {
	var mem mockMem

	mem.Write(0x00ff, 0x34)
	mem.Write(0x0000, 0x12)
	mem.Write(0x0100, 0x56)
	test.ExpectEquality(t, cpubus.Read16ZeroPage(&mem, 0xff), 0x1234)
}

func TestRead16Indirect(t *testing.T) {
	var mem mockMem

	mem.Write(0x02ff, 0x34)
	mem.Write(0x0300, 0x56)
	mem.Write(0x0200, 0x12)

	v, bug := cpubus.Read16Indirect(&mem, 0x02ff)
	test.ExpectEquality(t, v, 0x1234)
	test.ExpectEquality(t, bug, true)

	v, bug = cpubus.Read16Indirect(&mem, 0x02fe)
	test.ExpectEquality(t, v, 0x3400)
	test.ExpectEquality(t, bug, false)
}

func TestIndexing(t *testing.T) {
	var mem mockMem

	test.ExpectEquality(t, cpubus.ZeroPageIndexed(0x80, 0x0f), 0x008f)
	test.ExpectEquality(t, cpubus.ZeroPageIndexed(0xff, 0x02), 0x0001)

	a, crossed := cpubus.Indexed(0xffff, 0x01)
	test.ExpectEquality(t, a, 0x0000)
	test.ExpectEquality(t, crossed, true)

	// (zp,x) with the index wrapping around page zero
	mem.Write(0x0001, 0x00)
	mem.Write(0x0002, 0x80)
	test.ExpectEquality(t, cpubus.IndexedIndirect(&mem, 0xff, 0x02), 0x8000)

	// (zp),y
	mem.Write(0x0010, 0xf0)
	mem.Write(0x0011, 0x12)
	a, crossed = cpubus.IndirectIndexed(&mem, 0x10, 0x0f)
	test.ExpectEquality(t, a, 0x12ff)
	test.ExpectEquality(t, crossed, false)
	a, crossed = cpubus.IndirectIndexed(&mem, 0x10, 0x10)
	test.ExpectEquality(t, a, 0x1300)
	test.ExpectEquality(t, crossed, true)
}
