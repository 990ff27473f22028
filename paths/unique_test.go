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

package paths

import (
	"testing"
	"time"

	"github.com/Astral-C/nest/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 13, 4, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("screenshot", "nestest", n), "screenshot_nestest_20240305_130409")
	test.ExpectEquality(t, uniqueFilename("screenshot", "  ", n), "screenshot_20240305_130409")
}
