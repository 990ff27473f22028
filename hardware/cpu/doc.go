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

// Package cpu emulates the 6502 core of the NES 2A03. The CPU type executes
// one complete instruction at a time with the ExecuteInstruction() or Step()
// functions. Unlike a cycle accurate emulation, memory is accessed as the
// instruction requires and the number of cycles the instruction would have
// taken on the real hardware is accumulated and returned.
//
// The instruction set is defined by the instructions package. Each opcode
// has an addressing mode which is resolved into an effective address before
// the operator is performed. Resolution of the addressing mode also
// determines whether a page boundary was crossed, which may cost an
// additional cycle.
//
// Opcodes that are not part of the documented instruction set are treated as
// two cycle NOP instructions. Each occurrence is logged with the "cpu" tag.
//
// The 2A03 has no decimal mode. The D flag can be set and cleared but has no
// effect on ADC or SBC unless the cpu.decimal preference is set, in which
// case the CPU performs the BCD arithmetic of the NMOS 6502.
//
// Indirect JMP reproduces the page wrap of the NMOS part. A pointer at $xxFF
// takes its low byte from $xxFF and its high byte from $xx00, not from the
// start of the next page. When this happens the Result records it with the
// execution.JmpIndirectAddressingBug value in the CPUBug field. Traces
// recorded on other emulators that do not model the wrap will diverge at
// that instruction.
//
// Memory is accessed through the cpubus.Memory interface. The CPU does not
// own memory; the memory is passed to every function that requires it. A
// simple 64k memory is available in the memory package for testing.
package cpu
