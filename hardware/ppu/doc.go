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

// Package ppu is a stand-in for the picture processing unit of the NES. It
// provides the framebuffer that a real PPU would draw into but there is no
// pixel pipeline. The framebuffer is useful for checking that the emulation
// remains deterministic from frame to frame, through Digest(), and for
// making screenshots with WriteBMP().
package ppu
