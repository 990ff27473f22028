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
	"github.com/Astral-C/nest/hardware/memory/addresses"
	"github.com/Astral-C/nest/hardware/memory/cpubus"
	"github.com/Astral-C/nest/logger"
)

// resolve the effective address of the instruction according to its
// addressing mode. the PC is advanced past the operand. the bool return value
// indicates whether indexing crossed a page boundary or, for branch
// instructions, whether the branch target is on a different page.
//
// for the immediate addressing mode the address is the location of the
// operand in the program.
func (mc *CPU) resolve(mem cpubus.Memory, defn instructions.Definition) (uint16, bool) {
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return 0, false

	case instructions.Immediate:
		address := mc.PC.Address()
		mc.LastResult.InstructionData = uint16(mc.read8BitPC(mem))
		return address, false

	case instructions.Relative:
		// relative addressing is only used for branch instructions. the
		// address is an offset from the PC after the operand has been read
		offset := mc.read8BitPC(mem)
		mc.LastResult.InstructionData = uint16(offset)
		pc := mc.PC.Address()
		target := pc + uint16(int16(int8(offset)))
		return target, pc&0xff00 != target&0xff00

	case instructions.Absolute:
		mc.LastResult.InstructionData = mc.read16BitPC(mem)
		return mc.LastResult.InstructionData, false

	case instructions.ZeroPage:
		mc.LastResult.InstructionData = uint16(mc.read8BitPC(mem))
		return mc.LastResult.InstructionData, false

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command
		mc.LastResult.InstructionData = mc.read16BitPC(mem)
		address, bug := cpubus.Read16Indirect(mem, mc.LastResult.InstructionData)
		if bug {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		return address, false

	case instructions.IndexedIndirect: // x indexing
		zp := mc.read8BitPC(mem)
		mc.LastResult.InstructionData = uint16(zp)
		if uint16(zp)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		// never a page fault with pre-indexed indirect addressing
		return cpubus.IndexedIndirect(mem, zp, mc.X.Value()), false

	case instructions.IndirectIndexed: // y indexing
		zp := mc.read8BitPC(mem)
		mc.LastResult.InstructionData = uint16(zp)
		return cpubus.IndirectIndexed(mem, zp, mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		mc.LastResult.InstructionData = mc.read16BitPC(mem)
		return cpubus.Indexed(mc.LastResult.InstructionData, mc.X.Value())

	case instructions.AbsoluteIndexedY:
		mc.LastResult.InstructionData = mc.read16BitPC(mem)
		return cpubus.Indexed(mc.LastResult.InstructionData, mc.Y.Value())

	case instructions.ZeroPageIndexedX:
		zp := mc.read8BitPC(mem)
		mc.LastResult.InstructionData = uint16(zp)
		if uint16(zp)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		return cpubus.ZeroPageIndexed(zp, mc.X.Value()), false

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX and STX
		zp := mc.read8BitPC(mem)
		mc.LastResult.InstructionData = uint16(zp)
		if uint16(zp)+mc.Y.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		return cpubus.ZeroPageIndexed(zp, mc.Y.Value()), false
	}

	panic(fmt.Sprintf("cpu: unknown addressing mode for %s", defn.Operator))
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. resolve the effective address according to the addressing mode,
//     reading any operand bytes
//  3. using the operator as a guide, perform the instruction on the data
//
// The number of cycles taken is in LastResult.Cycles. The only error
// returned is the result of the validity check, which is performed only if
// the cpu.validate preference is set.
func (mc *CPU) ExecuteInstruction(mem cpubus.Memory) error {
	// the register state before the instruction is required for the trace
	var trace string
	if mc.prefs != nil && mc.prefs.Trace != nil {
		trace = fmt.Sprintf("A:%s X:%s Y:%s P:%02X SP:%s CYC:%d",
			mc.A, mc.X, mc.Y, mc.Status.Value()&^0x10, mc.SP, mc.Cycles)
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	opcode := mc.read8BitPC(mem)
	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	if defn.IsUnknown() {
		logger.Logf(mc, "cpu", "unknown opcode (%#02x) at (%#04x)", opcode, mc.LastResult.Address)
	}

	address, pageCrossed := mc.resolve(mem, defn)

	// branch instructions pay the page penalty only when the branch is taken
	if defn.PageSensitive && pageCrossed && !defn.IsBranch() {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	// value is read from memory for Read and RMW instructions. for the
	// immediate addressing mode the address is the location of the operand
	// so the read is the same
	var value uint8
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mem.Read(address)
		}
	}

	// for RMW instructions, the register to operate on. the accumulator
	// addressing mode operates on A directly
	r := &mc.acc8
	if defn.AddressingMode == instructions.Accumulator {
		r = &mc.A
	} else {
		r.Load(value)
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Unknown:
		// treated as a NOP

	case instructions.NOP:
		// does nothing

	case instructions.CLI:
		mc.Status.InterruptDisable = false

	case instructions.SEI:
		mc.Status.InterruptDisable = true

	case instructions.CLC:
		mc.Status.Carry = 0

	case instructions.SEC:
		mc.Status.Carry = 1

	case instructions.CLD:
		mc.Status.DecimalMode = false

	case instructions.SED:
		mc.Status.DecimalMode = true

	case instructions.CLV:
		mc.Status.Overflow = false

	case instructions.PHA:
		mc.push(mem, mc.A.Value())

	case instructions.PLA:
		mc.A.Load(mc.pull(mem))
		mc.Status.SetNZ(mc.A.Value())

	case instructions.PHP:
		mc.push(mem, mc.Status.Value())

	case instructions.PLP:
		mc.Status.Load(mc.pull(mem))

	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.Status.SetNZ(mc.A.Value())

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.Status.SetNZ(mc.X.Value())

	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetNZ(mc.A.Value())

	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetNZ(mc.X.Value())

	case instructions.TXS:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.EOR:
		mc.A.EOR(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.ORA:
		mc.A.ORA(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.AND:
		mc.A.AND(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.LDA:
		mc.A.Load(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.LDX:
		mc.X.Load(value)
		mc.Status.SetNZ(mc.X.Value())

	case instructions.LDY:
		mc.Y.Load(value)
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.STA:
		mem.Write(address, mc.A.Value())

	case instructions.STX:
		mem.Write(address, mc.X.Value())

	case instructions.STY:
		mem.Write(address, mc.Y.Value())

	case instructions.INX:
		mc.X.Increment()
		mc.Status.SetNZ(mc.X.Value())

	case instructions.INY:
		mc.Y.Increment()
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.DEX:
		mc.X.Decrement()
		mc.Status.SetNZ(mc.X.Value())

	case instructions.DEY:
		mc.Y.Decrement()
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.ASL:
		mc.Status.Carry = r.ASL()
		mc.Status.SetNZ(r.Value())

	case instructions.LSR:
		mc.Status.Carry = r.LSR()
		mc.Status.SetNZ(r.Value())

	case instructions.ROL:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.SetNZ(r.Value())

	case instructions.ROR:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.SetNZ(r.Value())

	case instructions.INC:
		r.Increment()
		mc.Status.SetNZ(r.Value())

	case instructions.DEC:
		r.Decrement()
		mc.Status.SetNZ(r.Value())

	case instructions.ADC:
		if mc.Status.DecimalMode && mc.decimal() {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Negative = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.SetNZ(mc.A.Value())
		}

	case instructions.SBC:
		if mc.Status.DecimalMode && mc.decimal() {
			// the flags other than carry are as they would be for binary
			// subtraction
			mc.acc8.Load(mc.A.Value())
			_, mc.Status.Overflow = mc.acc8.Subtract(value, mc.Status.Carry)
			mc.Status.SetNZ(mc.acc8.Value())
			mc.Status.Carry = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.SetNZ(mc.A.Value())
		}

	case instructions.CMP:
		var result uint8
		mc.Status.Carry, result = mc.A.Compare(value)
		mc.Status.SetNZ(result)

	case instructions.CPX:
		var result uint8
		mc.Status.Carry, result = mc.X.Compare(value)
		mc.Status.SetNZ(result)

	case instructions.CPY:
		var result uint8
		mc.Status.Carry, result = mc.Y.Compare(value)
		mc.Status.SetNZ(result)

	case instructions.BIT:
		mc.acc8.Load(value)
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.JMP:
		mc.PC.Load(address)

	case instructions.BCC:
		mc.branch(mc.Status.Carry == 0, address, pageCrossed)

	case instructions.BCS:
		mc.branch(mc.Status.Carry == 1, address, pageCrossed)

	case instructions.BEQ:
		mc.branch(mc.Status.Zero, address, pageCrossed)

	case instructions.BMI:
		mc.branch(mc.Status.Negative, address, pageCrossed)

	case instructions.BNE:
		mc.branch(!mc.Status.Zero, address, pageCrossed)

	case instructions.BPL:
		mc.branch(!mc.Status.Negative, address, pageCrossed)

	case instructions.BVC:
		mc.branch(!mc.Status.Overflow, address, pageCrossed)

	case instructions.BVS:
		mc.branch(mc.Status.Overflow, address, pageCrossed)

	case instructions.JSR:
		// the PC is the address of the instruction following the JSR. RTS
		// restores it without adjustment
		mc.pushPC(mem)
		mc.PC.Load(address)

	case instructions.RTS:
		mc.pullPC(mem)

	case instructions.BRK:
		// BRK is unusual in that it increases the PC by two bytes despite
		// being an implied addressing instruction. the second byte is not
		// recorded in the byte count
		mc.PC.Add(1)
		mc.interrupt(mem, addresses.IRQ, true)

	case instructions.RTI:
		mc.Status.Load(mc.pull(mem))
		mc.pullPC(mem)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.RMW && defn.AddressingMode != instructions.Accumulator {
		mem.Write(address, r.Value())
	}

	// finalise result
	mc.LastResult.Final = true
	mc.Cycles += uint64(mc.LastResult.Cycles)

	if trace != "" {
		fmt.Fprintf(mc.prefs.Trace, "%-28s%s\n", mc.LastResult.String(), trace)
	}

	if mc.prefs != nil && mc.prefs.Validate.Get().(bool) {
		return mc.LastResult.IsValid()
	}

	return nil
}

// branch to address if flag is true. a taken branch costs one extra cycle
// and a further cycle if the target is on a different page.
func (mc *CPU) branch(flag bool, address uint16, pageCrossed bool) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	mc.LastResult.Cycles++
	if pageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
	mc.PC.Load(address)
}
