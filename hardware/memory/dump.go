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

package memory

import (
	"fmt"
	"strings"
)

// dump writes a hex dump of data to the builder. Each line is sixteen bytes
// and is prefixed with the address of the first byte.
func dump(s *strings.Builder, data []uint8, origin uint16) {
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(data); y += 16 {
		s.WriteString(fmt.Sprintf("%04X |", int(origin)+y))
		for x := y; x < y+16 && x < len(data); x++ {
			s.WriteString(fmt.Sprintf(" %02x", data[x]))
		}
		s.WriteString("\n")
	}
}
