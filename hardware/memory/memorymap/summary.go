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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var sa int

	s := strings.Builder{}

	_, current = MapAddress(0)

	// int loop counter because Memtop is at the very edge of uint16
	for a := 1; a <= int(Memtop); a++ {
		_, area = MapAddress(uint16(a))

		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current.String()))
			current = area
			sa = a
		}
	}

	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, int(Memtop), area.String()))

	return s.String()
}
