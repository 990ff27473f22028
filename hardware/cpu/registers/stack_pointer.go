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

package registers

import "fmt"

// StackOrigin is the address of the stack page. The stack pointer is an 8 bit
// offset into this page.
const StackOrigin = uint16(0x0100)

// StackPointer is the SP register. The value is an offset into the stack
// page and movement of the stack pointer never leaves that page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02X", sp.value)
}

// Value returns the stack page offset.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full address pointed to by the stack pointer.
func (sp StackPointer) Address() uint16 {
	return StackOrigin | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address the next pushed byte should be written to and
// moves the stack pointer down by one.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the stack pointer up by one and returns the address the next
// byte should be read from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
