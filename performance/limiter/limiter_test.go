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

package limiter_test

import (
	"testing"
	"time"

	"github.com/Astral-C/nest/performance/limiter"
	"github.com/Astral-C/nest/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)

	time.Sleep(25 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
}
