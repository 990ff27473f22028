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

// Package scripting allows Lua scripts to observe and alter a running NES
// emulation. A script is run once when it is loaded and can then define a
// function named on_frame, which is called at the end of every frame with
// the frame number as the argument.
//
// The following tables are available to scripts:
//
//	memory.read(addr)         read a byte from the CPU bus
//	memory.write(addr, v)     write a byte to the CPU bus
//	cpu.pc() cpu.a() cpu.x()  register values
//	cpu.y() cpu.sp() cpu.p()
//	emu.frame()               number of frames since reset
//	emu.cycles()              number of CPU cycles since reset
//	emu.log(msg)              add an entry to the central log
//
// Writes through memory.write() behave as writes from the CPU. In
// particular, writes to the cartridge ROM are ignored.
package scripting
