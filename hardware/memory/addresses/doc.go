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

// Package addresses contains information about NES addresses: the location of
// the interrupt vectors and the canonical symbols for the PPU, APU and I/O
// registers.
//
// In addition to the canonical symbol maps, there are two sparse arrays Read
// and Write, created from the canonical maps at run time. Addresses should be
// mapped to their primary mirror with the memorymap package before being used
// to index the arrays.
package addresses
