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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a 16 bit address flag. It implements the flag.Value interface.
type Address struct {
	Value uint16

	// whether the flag was set on the command line
	Changed bool
}

func (a *Address) String() string {
	if a == nil {
		return "$0000"
	}
	return fmt.Sprintf("$%04x", a.Value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	a.Value = v
	a.Changed = true
	return nil
}

// ParseAddress converts a hexadecimal string to a 16 bit address. The string
// may be prefixed with $ or 0x.
func ParseAddress(s string) (uint16, error) {
	h := strings.TrimPrefix(s, "$")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	v, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("not a 16 bit address: %s", s)
	}
	return uint16(v), nil
}
