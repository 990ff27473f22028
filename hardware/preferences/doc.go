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

// Package preferences contains the configuration of the emulated hardware.
// Every value has a default suitable for an NTSC NES and can be changed from
// the command line through the prefs package:
//
//	cpu.decimal         honour the D flag in ADC and SBC (default false)
//	cpu.validate        check every instruction result (default false)
//	frame.cycles        CPU cycles per frame (default 29781)
//	hardware.randstate  randomise RAM and registers at power on (default false)
//	log.enabled         log unknown opcodes and ignored writes (default true)
package preferences
