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

// Package cpubus defines the Memory interface through which the CPU accesses
// memory, along with helper functions that resolve the 6502 indexed and
// indirect addressing modes.
//
// All address arithmetic is 16 bit and wraps around. Zero page addressing
// wraps within page zero and never reaches page one.
package cpubus
