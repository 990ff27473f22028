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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Astral-C/nest/curated"
	"github.com/Astral-C/nest/govern"
	"github.com/Astral-C/nest/hardware"
	"github.com/Astral-C/nest/performance/limiter"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// period of time allowed for the frame rate to settle before measurement
// begins.
var leadTime = 2 * time.Second

// Check the performance of the emulator. The NES should have a cartridge
// attached.
//
// Emulation will run for the specified duration and will create a cpu and/or
// memory profile as defined by the Profile argument. If uncapped is false the
// emulation is limited to the NTSC refresh rate.
func Check(output io.Writer, profile Profile, nes *hardware.NES, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim = limiter.NewFPSLimiter(FramesPerSecond)
		defer lim.Stop()
	}

	startFrame := nes.Frame()

	runner := func() error {
		// false is sent once the lead time has elapsed. true is sent at the
		// end of the measurement period
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return nes.Run(func() (govern.State, error) {
			if lim != nil {
				lim.Wait()
			}

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = nes.Frame()
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := nes.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	_, err = io.WriteString(output, fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy))
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
