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

// Package registers implements the registers of the 6502 core of the NES:
// the 8 bit register (A, X and Y), the 16 bit program counter, the stack
// pointer and the status register.
//
// The Register type does not set the status flags itself. Each operation
// returns the information the CPU needs to update the StatusRegister, which
// is then done directly. For instance, in the CPU, we might have this
// sequence of function calls:
//
//	carry, overflow := a.Add(val, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.SetNZ(a.Value())
//
// The carry is represented by a uint8 of value 0 or 1 throughout the package
// because the arithmetic operations use it as an addend.
package registers
