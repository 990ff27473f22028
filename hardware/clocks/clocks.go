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

// Package clocks defines the constant values that define the speed of the
// CPU clock in the NES console and the rate at which frames are produced.
//
// The CPU clock is the master clock divided by 12 for NTSC consoles and by 16
// for PAL consoles.
package clocks

// CPU clock speeds in MHz.
const (
	NTSC = 1.789773
	PAL  = 1.662607
)

// Frames per second.
const (
	NTSCFramesPerSecond = 60.0988
	PALFramesPerSecond  = 50.0070
)

// CyclesPerFrame returns the whole number of CPU cycles in a frame for the
// clock speed (in MHz) and frame rate.
func CyclesPerFrame(clock float64, framesPerSecond float64) int {
	return int(clock*1000000/framesPerSecond + 0.5)
}
