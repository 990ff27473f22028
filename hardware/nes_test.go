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

package hardware_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Astral-C/nest/cartridgeloader"
	"github.com/Astral-C/nest/govern"
	"github.com/Astral-C/nest/hardware"
	"github.com/Astral-C/nest/test"
)

// makeCartridge writes a headerless 16K PRG image to a temporary file. The
// program is placed at the start of the image, which is address $8000. The
// reset vector points to $8000 and the NMI vector points to $8010.
func makeCartridge(t *testing.T, program ...uint8) cartridgeloader.Loader {
	t.Helper()

	prg := make([]uint8, cartridgeloader.PRGUnit)
	copy(prg, program)

	// NMI handler is a single RTI
	prg[0x0010] = 0x40

	prg[0x3ffa] = 0x10
	prg[0x3ffb] = 0x80
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, prg, 0o644))

	return cartridgeloader.NewLoader(fn)
}

// JMP $8000
var trapProgram = []uint8{0x4c, 0x00, 0x80}

// INC $00; JMP $8000
var incProgram = []uint8{0xe6, 0x00, 0x4c, 0x00, 0x80}

func newNES(t *testing.T, program []uint8) *hardware.NES {
	t.Helper()

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, nes.Prefs.CyclesPerFrame.Set(10))
	test.DemandSuccess(t, nes.AttachCartridge(makeCartridge(t, program...)))

	return nes
}

func TestAttach(t *testing.T) {
	nes := newNES(t, trapProgram)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, nes.TotalCycles(), uint64(7))
	test.ExpectEquality(t, nes.Frame(), 0)

	err := nes.AttachCartridge(cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes")))
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "short.bin")
	test.DemandSuccess(t, os.WriteFile(fn, make([]uint8, 100), 0o644))
	test.ExpectFailure(t, nes.AttachCartridge(cartridgeloader.NewLoader(fn)))
}

func TestFrameBudget(t *testing.T) {
	nes := newNES(t, trapProgram)

	// the trap loop takes three cycles. the first frame overshoots the budget
	// of ten cycles by two, so the budget of the next frame is eight
	expected := []int{12, 9, 9, 12}
	for i, e := range expected {
		cycles, err := nes.RunFrame()
		test.DemandSuccess(t, err)
		if !test.ExpectEquality(t, cycles, e) {
			t.Logf("frame %d", i)
		}
		test.ExpectEquality(t, nes.Frame(), i+1)
	}

	test.ExpectEquality(t, nes.TotalCycles(), uint64(7+12+9+9+12))

	// over a long run the average frame length is the budget
	start := nes.TotalCycles()
	test.DemandSuccess(t, nes.RunForFrameCount(300, nil))
	test.ExpectEquality(t, nes.Frame(), 304)
	test.ExpectApproximate(t, int(nes.TotalCycles()-start), 3000, 0.01)

	nes.Reset()
	test.ExpectEquality(t, nes.Frame(), 0)
	test.ExpectEquality(t, nes.TotalCycles(), uint64(7))
}

func TestFrameHooks(t *testing.T) {
	nes := newNES(t, trapProgram)

	var order []int
	nes.AddFrameHook(func(n *hardware.NES) error {
		order = append(order, n.Frame())
		return nil
	})
	nes.AddFrameHook(func(n *hardware.NES) error {
		order = append(order, -n.Frame())
		return nil
	})

	test.DemandSuccess(t, nes.RunForFrameCount(2, nil))
	test.DemandEquality(t, len(order), 4)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], -1)
	test.ExpectEquality(t, order[2], 2)
	test.ExpectEquality(t, order[3], -2)

	hookErr := errors.New("hook error")
	nes.AddFrameHook(func(n *hardware.NES) error {
		return hookErr
	})
	_, err := nes.RunFrame()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, hookErr), true)
}

func TestRun(t *testing.T) {
	nes := newNES(t, trapProgram)

	var checks int
	err := nes.Run(func() (govern.State, error) {
		checks++
		if checks == 3 {
			return govern.Paused, nil
		}
		if checks >= 5 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)

	// one of the checks paused the emulation so only four frames have run
	test.ExpectEquality(t, checks, 5)
	test.ExpectEquality(t, nes.Frame(), 4)

	err = nes.RunForFrameCount(100, func(frame int) (govern.State, error) {
		if frame == 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.Frame(), 10)

	err = nes.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectFailure(t, err)
}

func TestNMI(t *testing.T) {
	nes := newNES(t, trapProgram)
	nes.Step()
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))

	test.ExpectEquality(t, nes.NMI(), 7)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8010))

	// RTI returns to the trap loop
	test.ExpectEquality(t, nes.Step(), 6)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))

	// interrupts are disabled after reset
	test.ExpectEquality(t, nes.IRQ(), 0)
}

func TestSnapshot(t *testing.T) {
	nes := newNES(t, incProgram)

	test.DemandSuccess(t, nes.RunForFrameCount(2, nil))
	state := nes.Snapshot()

	test.DemandSuccess(t, nes.RunForFrameCount(5, nil))
	frame := nes.Frame()
	cycles := nes.TotalCycles()
	counter := nes.Mem.Read(0x0000)
	cpu := nes.CPU.String()

	nes.Plumb(state)
	test.ExpectEquality(t, nes.Frame(), 2)
	test.DemandSuccess(t, nes.RunForFrameCount(5, nil))

	test.ExpectEquality(t, nes.Frame(), frame)
	test.ExpectEquality(t, nes.TotalCycles(), cycles)
	test.ExpectEquality(t, nes.Mem.Read(0x0000), counter)
	test.ExpectEquality(t, nes.CPU.String(), cpu)

	// the state is unchanged by running the plumbed emulation
	nes.Plumb(state)
	test.ExpectEquality(t, nes.Frame(), 2)
}
