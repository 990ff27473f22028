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

package memory_test

import (
	"strings"
	"testing"

	"github.com/Astral-C/nest/hardware/memory"
	"github.com/Astral-C/nest/hardware/preferences"
	"github.com/Astral-C/nest/test"
)

func TestFlat(t *testing.T) {
	mem := memory.NewFlat()

	mem.Write(0x1234, 0x56)
	test.ExpectEquality(t, mem.Read(0x1234), 0x56)
	test.ExpectEquality(t, mem.Peek(0x1234), 0x56)

	// no mirroring in flat memory
	test.ExpectEquality(t, mem.Read(0x0034), 0x00)

	// load wraps around the top of memory
	mem.Load(0xffff, []uint8{0x01, 0x02})
	test.ExpectEquality(t, mem.Read(0xffff), 0x01)
	test.ExpectEquality(t, mem.Read(0x0000), 0x02)
	test.ExpectEquality(t, mem.Read16(0xffff), 0x0201)

	mem.Clear()
	test.ExpectEquality(t, mem.Read(0xffff), 0x00)
}

func TestFlatHelpers(t *testing.T) {
	mem := memory.NewFlat()

	// pointer at zero page 0x20
	mem.Load(0x0020, []uint8{0xf0, 0x12})
	mem.Write(0x12f5, 0xaa)
	mem.Write(0x1300, 0xbb)

	// ($1b,x) with x=5 reads the pointer at $20
	mem.Write(0x12f0, 0xcc)
	test.ExpectEquality(t, mem.ReadIndexedIndirect(0x1b, 0x05), 0xcc)

	v, crossed := mem.ReadIndirectIndexed(0x20, 0x05)
	test.ExpectEquality(t, v, 0xaa)
	test.ExpectEquality(t, crossed, false)

	v, crossed = mem.ReadIndirectIndexed(0x20, 0x10)
	test.ExpectEquality(t, v, 0xbb)
	test.ExpectEquality(t, crossed, true)

	// write variants resolve addresses in the same way
	mem.WriteIndexedIndirect(0x1b, 0x05, 0x11)
	test.ExpectEquality(t, mem.Read(0x12f0), 0x11)
	crossed = mem.WriteIndirectIndexed(0x20, 0x10, 0x22)
	test.ExpectEquality(t, mem.Read(0x1300), 0x22)
	test.ExpectEquality(t, crossed, true)

	// zero page pointer wraps within page zero
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x13)
	mem.Write(0x0100, 0x99)
	test.ExpectEquality(t, mem.ReadIndexedIndirect(0xfe, 0x01), 0x22)
}

func TestFlatDump(t *testing.T) {
	mem := memory.NewFlat()
	mem.Load(0x0200, []uint8{0x01, 0x02, 0x03})

	d := mem.Dump(0x0200, 0x020f)
	lines := strings.Split(d, "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[2], "0200 | 01 02 03 00 00 00 00 00 00 00 00 00 00 00 00 00")

	test.ExpectEquality(t, mem.Dump(0x0201, 0x0200), "")
}

func newBus(t *testing.T) *memory.Bus {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	return memory.NewBus(prefs)
}

func TestBusMirrors(t *testing.T) {
	bus := newBus(t)

	// internal RAM is mirrored four times
	bus.Write(0x0801, 0x42)
	test.ExpectEquality(t, bus.Read(0x0001), 0x42)
	test.ExpectEquality(t, bus.Read(0x1001), 0x42)
	test.ExpectEquality(t, bus.Read(0x1801), 0x42)

	// PPU registers are mirrored every eight bytes
	bus.Write(0x3ff9, 0x17)
	test.ExpectEquality(t, bus.Read(0x2001), 0x17)
	test.ExpectEquality(t, bus.PPU[1], 0x17)

	bus.Write(0x4015, 0x0f)
	test.ExpectEquality(t, bus.Read(0x4015), 0x0f)

	bus.Write(0x6000, 0x99)
	test.ExpectEquality(t, bus.Read(0x6000), 0x99)

	// open bus
	test.ExpectEquality(t, bus.Read(0x5123), 0x51)
	test.ExpectEquality(t, bus.Read(0xc123), 0xc1)

	bus.Reset()
	test.ExpectEquality(t, bus.Read(0x0001), 0x00)
	test.ExpectEquality(t, bus.Read(0x2001), 0x00)
}

func TestCartridge(t *testing.T) {
	bus := newBus(t)

	_, err := memory.NewCartridge(make([]uint8, 100))
	test.ExpectFailure(t, err)

	// a 16K cartridge is mirrored into both windows
	prg := make([]uint8, memory.BankSize)
	prg[0x0000] = 0x11
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	cart, err := memory.NewCartridge(prg)
	test.DemandSuccess(t, err)
	bus.Attach(cart)

	test.ExpectEquality(t, bus.Read(0x8000), 0x11)
	test.ExpectEquality(t, bus.Read(0xc000), 0x11)
	test.ExpectEquality(t, bus.Read16(0xfffc), 0x8000)
	test.ExpectEquality(t, cart.String()[:8], "NROM-128")

	// writes to ROM are ignored
	bus.Write(0x8000, 0x22)
	test.ExpectEquality(t, bus.Read(0x8000), 0x11)

	// but a poke will change the ROM
	bus.Poke(0xc000, 0x33)
	test.ExpectEquality(t, bus.Peek(0x8000), 0x33)

	// cartridge data is a copy
	test.ExpectEquality(t, prg[0], 0x11)

	// a 32K cartridge fills both windows
	prg = make([]uint8, memory.BankSize*2)
	prg[0x0000] = 0x44
	prg[0x4000] = 0x55
	cart, err = memory.NewCartridge(prg)
	test.DemandSuccess(t, err)
	bus.Attach(cart)
	test.ExpectEquality(t, bus.Read(0x8000), 0x44)
	test.ExpectEquality(t, bus.Read(0xc000), 0x55)
	test.ExpectEquality(t, cart.Size(), 0x8000)

	// the same data always hashes to the same value
	dup, err := memory.NewCartridge(prg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dup.Hash(), cart.Hash())
}

func TestBusRandomState(t *testing.T) {
	bus := newBus(t)

	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.RandomState.Set(true))
	prefs.Reseed(1)

	a := memory.NewBus(prefs)
	a.Reset()

	prefs.Reseed(1)
	b := memory.NewBus(prefs)
	b.Reset()

	// the same seed produces the same power on state
	for i := uint16(0); i < 0x800; i++ {
		if !test.ExpectEquality(t, a.Read(i), b.Read(i)) {
			t.Logf("address %04x", i)
			break
		}
	}

	// the default preferences zero the RAM
	bus.Write(0x0000, 0xff)
	bus.Reset()
	test.ExpectEquality(t, bus.Read(0x0000), 0x00)
}

func TestBusSnapshot(t *testing.T) {
	bus := newBus(t)
	bus.Write(0x0010, 0x01)
	bus.Write(0x6000, 0x02)

	snap := bus.Snapshot()
	bus.Write(0x0010, 0xff)
	bus.Write(0x6000, 0xff)

	test.ExpectEquality(t, snap.Read(0x0010), 0x01)
	test.ExpectEquality(t, snap.Read(0x6000), 0x02)

	// the helper methods of the snapshot read from the snapshot
	snap.Write(0x0011, 0x80)
	test.ExpectEquality(t, snap.Read16(0x0010), 0x8001)
	test.ExpectEquality(t, bus.Read16(0x0010), 0x00ff)
}

func TestBusNilPreferences(t *testing.T) {
	bus := memory.NewBus(nil)

	cart, err := memory.NewCartridge(make([]uint8, 0x4000))
	test.DemandSuccess(t, err)
	bus.Attach(cart)

	bus.Write(0x0000, 0xff)
	bus.Write(0x2000, 0x80)
	bus.Reset()
	test.ExpectEquality(t, bus.Read(0x0000), 0x00)
	test.ExpectEquality(t, bus.Read(0x2000), 0x00)

	// writes to ROM are ignored without being logged
	bus.Write(0x8000, 0xea)
	test.ExpectEquality(t, bus.Read(0x8000), 0x00)
}
