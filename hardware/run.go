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

package hardware

import (
	"github.com/Astral-C/nest/curated"
	"github.com/Astral-C/nest/govern"
)

// RunFrame steps the CPU until the cycle budget of the frame has been
// consumed. Returns the number of cycles executed during the frame.
//
// Frame hooks are called once the frame is complete. The first hook to
// return an error stops the remaining hooks from running.
func (nes *NES) RunFrame() (int, error) {
	budget := nes.Prefs.CyclesPerFrame.Get().(int) - nes.overshoot

	var cycles int
	for cycles < budget {
		cycles += nes.Step()
	}

	nes.overshoot = cycles - budget
	nes.frame++

	for _, hook := range nes.frameHooks {
		if err := hook(nes); err != nil {
			return cycles, curated.Errorf("nes: %v", err)
		}
	}

	return cycles, nil
}

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called at the end of every frame and the emulation runs until
// it returns govern.Ending. A continueCheck of nil runs forever.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			_, err = nes.RunFrame()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("nes: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for regression tests. The continueCheck() function is called at
// the end of every frame with the number of the frame just completed and
// can end the emulation early.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := nes.frame + numFrames

	state := govern.Running
	for nes.frame < targetFrame && state != govern.Ending {
		_, err := nes.RunFrame()
		if err != nil {
			return err
		}

		state, err = continueCheck(nes.frame)
		if err != nil {
			return err
		}
	}

	return nil
}
