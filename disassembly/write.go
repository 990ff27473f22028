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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// Write the entries to io.Writer, one entry per line.
func Write(output io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep writes the entries that contain the search string to io.Writer.
func Grep(output io.Writer, entries []Entry, scope GrepScope, search string, caseSensitive bool) error {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	for _, e := range entries {
		var s string

		line := e.String()

		// limit scope of grep to the correct field
		switch scope {
		case GrepMnemonic:
			s = e.Mnemonic()
		case GrepOperand:
			s = e.Operand()
		case GrepAll:
			s = line
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			if _, err := fmt.Fprintln(output, line); err != nil {
				return err
			}
		}
	}

	return nil
}
