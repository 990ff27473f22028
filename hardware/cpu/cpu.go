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

package cpu

import (
	"fmt"

	"github.com/Astral-C/nest/hardware/cpu/execution"
	"github.com/Astral-C/nest/hardware/cpu/instructions"
	"github.com/Astral-C/nest/hardware/cpu/registers"
	"github.com/Astral-C/nest/hardware/memory/addresses"
	"github.com/Astral-C/nest/hardware/memory/cpubus"
	"github.com/Astral-C/nest/hardware/preferences"
	"github.com/Astral-C/nest/logger"
)

// ResetCycles is the number of cycles taken by the reset sequence.
const ResetCycles = 7

// InterruptCycles is the number of cycles taken to enter an interrupt
// handler.
const InterruptCycles = 7

// CPU implements the 6502 core found in the NES 2A03. Register logic is
// implemented by the Register types in the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	instructions [256]instructions.Definition

	// last result. the Final field is false only when the CPU has just been
	// reset
	LastResult execution.Result

	// the number of cycles since the last reset, including the cycles taken
	// by the reset sequence
	Cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// preferences argument can be nil, in which case the CPU behaves as though
// all preferences are at their default value.
func NewCPU(prefs *preferences.Preferences) *CPU {
	return &CPU{
		prefs:        prefs,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.prefs == nil || mc.prefs.AllowLogging()
}

func (mc *CPU) decimal() bool {
	return mc.prefs != nil && mc.prefs.DecimalMode.Get().(bool)
}

// Reset reinitialises all registers to their power-on state and loads the PC
// with the address in the reset vector.
//
// If the RandomState preference is set then the A, X and Y registers are
// given random values.
func (mc *CPU) Reset(mem cpubus.Memory) {
	mc.LastResult.Reset()

	if mc.prefs != nil && mc.prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.X.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.Y.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}

	// the reset sequence performs three stack pushes with the write line
	// disabled, leaving the stack pointer at 0xfd
	mc.SP.Load(0xfd)

	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	mc.LoadPCIndirect(mem, addresses.Reset)
	mc.Cycles = ResetCycles
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(mem cpubus.Memory, indirectAddress uint16) {
	mc.PC.Load(cpubus.Read16(mem, indirectAddress))
}

// LoadPC loads the contents of directAddress into the PC. Intended for test
// harnesses that need to start execution at a fixed address.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. The bool return value is false if there is nothing on the
// stack that could be a return address.
func (mc *CPU) PredictRTS(mem cpubus.Memory) (uint16, bool) {
	sp := mc.SP.Value()
	if sp >= 0xfe {
		return 0, false
	}
	lo := mem.Read(registers.StackOrigin | uint16(sp+1))
	hi := mem.Read(registers.StackOrigin | uint16(sp+2))
	return (uint16(hi) << 8) | uint16(lo), true
}

// read8BitPC reads 8 bits from the memory location pointed to by PC and
// advances the PC. The byte count of the LastResult is updated.
func (mc *CPU) read8BitPC(mem cpubus.Memory) uint8 {
	v := mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC and
// advances the PC. Each byte is read separately so the operand of an
// instruction at the top of memory is taken from the start of memory.
func (mc *CPU) read16BitPC(mem cpubus.Memory) uint16 {
	lo := mc.read8BitPC(mem)
	hi := mc.read8BitPC(mem)
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) push(mem cpubus.Memory, v uint8) {
	mem.Write(mc.SP.Push(), v)
}

func (mc *CPU) pull(mem cpubus.Memory) uint8 {
	return mem.Read(mc.SP.Pull())
}

func (mc *CPU) pushPC(mem cpubus.Memory) {
	mc.push(mem, uint8(mc.PC.Address()>>8))
	mc.push(mem, uint8(mc.PC.Address()))
}

func (mc *CPU) pullPC(mem cpubus.Memory) {
	lo := mc.pull(mem)
	hi := mc.pull(mem)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// interrupt pushes the PC and the status register and jumps through the
// vector. the break bit of the pushed status register is set only for BRK.
func (mc *CPU) interrupt(mem cpubus.Memory, vector uint16, brk bool) {
	mc.pushPC(mem)
	if brk {
		mc.push(mem, mc.Status.Value())
	} else {
		mc.push(mem, mc.Status.Value()&^registers.BreakBit)
	}
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(mem, vector)
}

// NMI runs the non-maskable interrupt sequence. Returns the number of cycles
// taken.
func (mc *CPU) NMI(mem cpubus.Memory) int {
	mc.interrupt(mem, addresses.NMI, false)
	mc.Cycles += InterruptCycles
	return InterruptCycles
}

// IRQ runs the interrupt request sequence if interrupts are not disabled.
// Returns the number of cycles taken, which will be zero if the interrupt
// was masked.
func (mc *CPU) IRQ(mem cpubus.Memory) int {
	if mc.Status.InterruptDisable {
		return 0
	}
	mc.interrupt(mem, addresses.IRQ, false)
	mc.Cycles += InterruptCycles
	return InterruptCycles
}

// Step executes the next instruction and returns the number of cycles it
// took. Any error from the validity check is logged.
func (mc *CPU) Step(mem cpubus.Memory) int {
	if err := mc.ExecuteInstruction(mem); err != nil {
		logger.Log(mc, "cpu", err)
	}
	return mc.LastResult.Cycles
}
