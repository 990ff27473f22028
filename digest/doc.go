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

// Package digest creates a fingerprint of the emulated machine at the end of
// every frame. The fingerprint of a frame includes the fingerprint of the
// previous frame so the final value summarises the entire run. Two runs of
// the same cartridge with the same preferences will produce the same
// fingerprint.
//
// The fingerprint covers the framebuffer, the CPU registers and the internal
// RAM of the NES.
package digest
