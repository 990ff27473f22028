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

package clocks_test

import (
	"testing"

	"github.com/Astral-C/nest/hardware/clocks"
	"github.com/Astral-C/nest/test"
)

func TestCyclesPerFrame(t *testing.T) {
	test.ExpectEquality(t, clocks.CyclesPerFrame(clocks.NTSC, clocks.NTSCFramesPerSecond), 29781)
	test.ExpectEquality(t, clocks.CyclesPerFrame(clocks.PAL, clocks.PALFramesPerSecond), 33247)
}
