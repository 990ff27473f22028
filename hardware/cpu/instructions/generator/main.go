//go:generate go run main.go

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

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Astral-C/nest/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const licenceHeader = `// This file is part of Nest.
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

`

const leadingBoilerPlate = licenceHeader +
	"// Code generated by generator/main.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// the instruction table. opcodes with no definition have the Unknown operator\n" +
	"var table = [256]Definition{"

const trailingBoilerPlate = "\n}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"ACCUMULATOR":         instructions.Accumulator,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"RMW":        instructions.RMW,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

func parseCSV() (map[uint8]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(rec[0]), "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if _, ok := deftable[newDef.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		var ok bool
		newDef.Operator, ok = instructions.ParseOperator(strings.ToUpper(rec[1]))
		if !ok {
			return nil, fmt.Errorf("invalid operator for %#02x (%s) [line %d]", newDef.OpCode, rec[1], line)
		}

		newDef.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}

		newDef.AddressingMode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		}

		switch strings.ToUpper(rec[4]) {
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		case "TRUE":
			newDef.PageSensitive = true
		case "FALSE":
			newDef.PageSensitive = false
		}

		if len(rec) == 5 {
			newDef.Effect = instructions.Read
		} else {
			newDef.Effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
			}
		}

		deftable[newDef.OpCode] = newDef
	}

	return deftable, nil
}

func generate(deftable map[uint8]instructions.Definition) string {
	var s strings.Builder
	s.WriteString(leadingBoilerPlate)

	for opcode := 0; opcode < 256; opcode++ {
		def, found := deftable[uint8(opcode)]
		if !found {
			def = instructions.Definition{
				OpCode:         uint8(opcode),
				Operator:       instructions.Unknown,
				AddressingMode: instructions.Implied,
				Cycles:         2,
				Effect:         instructions.Read,
			}
		}

		op := def.Operator.String()
		if def.IsUnknown() {
			op = "Unknown"
		}

		s.WriteString(fmt.Sprintf("\n{OpCode: 0x%02x, Operator: %s, AddressingMode: %s, Cycles: %d, PageSensitive: %t, Effect: %s},",
			def.OpCode, op, def.AddressingMode, def.Cycles, def.PageSensitive, def.Effect))
	}

	s.WriteString(trailingBoilerPlate)
	return s.String()
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	fmt.Printf("%d defined opcodes, %d unknown\n", len(deftable), 256-len(deftable))

	formattedOutput, err := format.Source([]byte(generate(deftable)))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
