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

package digest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Astral-C/nest/cartridgeloader"
	"github.com/Astral-C/nest/digest"
	"github.com/Astral-C/nest/hardware"
	"github.com/Astral-C/nest/test"
)

func newNES(t *testing.T, program ...uint8) (*hardware.NES, *digest.State) {
	t.Helper()

	prg := make([]uint8, cartridgeloader.PRGUnit)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, prg, 0o644))

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, nes.Prefs.CyclesPerFrame.Set(100))
	test.DemandSuccess(t, nes.AttachCartridge(cartridgeloader.NewLoader(fn)))

	return nes, digest.NewState(nes)
}

// INC $00; JMP $8000
var incProgram = []uint8{0xe6, 0x00, 0x4c, 0x00, 0x80}

// INC $01; JMP $8000
var otherProgram = []uint8{0xe6, 0x01, 0x4c, 0x00, 0x80}

func TestDigest(t *testing.T) {
	nesA, digA := newNES(t, incProgram...)
	nesB, digB := newNES(t, incProgram...)
	nesC, digC := newNES(t, otherProgram...)

	test.ExpectEquality(t, digA.Hash(), "0000000000000000")

	test.DemandSuccess(t, nesA.RunForFrameCount(1, nil))
	first := digA.Hash()
	test.ExpectEquality(t, digA.Frame(), 1)

	test.DemandSuccess(t, nesA.RunForFrameCount(9, nil))
	test.DemandSuccess(t, nesB.RunForFrameCount(10, nil))
	test.DemandSuccess(t, nesC.RunForFrameCount(10, nil))

	test.ExpectInequality(t, digA.Hash(), first)
	test.ExpectEquality(t, digA.Hash(), digB.Hash())
	test.ExpectInequality(t, digA.Hash(), digC.Hash())
	test.ExpectEquality(t, digA.Frame(), 10)

	digA.ResetDigest()
	test.ExpectEquality(t, digA.Hash(), "0000000000000000")
	test.ExpectEquality(t, digA.Frame(), 0)
}
