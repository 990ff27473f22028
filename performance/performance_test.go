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

package performance

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/Astral-C/nest/hardware"
	"github.com/Astral-C/nest/hardware/memory"
	"github.com/Astral-C/nest/test"
)

// a cartridge that loops forever at the reset address.
func newNES(t *testing.T) *hardware.NES {
	t.Helper()

	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{0x4c, 0x00, 0x80})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)

	cart, err := memory.NewCartridge(prg)
	test.DemandSuccess(t, err)
	nes.Mem.Attach(cart)
	nes.Reset()

	return nes
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(600, 10)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectApproximate(t, accuracy, 99.8, 0.001)

	fps, accuracy = CalcFPS(100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU)

	p, err = ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)

	_, err = ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	leadTime = 10 * time.Millisecond
	defer func() { leadTime = 2 * time.Second }()

	report := regexp.MustCompile(`^[0-9]+\.[0-9]{2} fps \([0-9]+ frames in 0\.05 seconds\) [0-9]+\.[0-9]%\n$`)

	var out strings.Builder
	err := Check(&out, ProfileNone, newNES(t), true, "50ms")
	test.ExpectSuccess(t, err)
	if !test.ExpectSuccess(t, report.MatchString(out.String())) {
		t.Logf("uncapped report: %q", out.String())
	}

	out.Reset()
	err = Check(&out, ProfileNone, newNES(t), false, "50ms")
	test.ExpectSuccess(t, err)
	if !test.ExpectSuccess(t, report.MatchString(out.String())) {
		t.Logf("capped report: %q", out.String())
	}

	out.Reset()
	err = Check(&out, ProfileNone, newNES(t), true, "soon")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, out.Len(), 0)
}
