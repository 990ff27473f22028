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

package hardware

import (
	"github.com/Astral-C/nest/hardware/cpu"
	"github.com/Astral-C/nest/hardware/memory"
)

// State stores the NES sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
//
// The framebuffer is not part of the snapshot. Frame hooks are not part of
// the snapshot either.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Bus

	frame     int
	overshoot int
}

// Snapshot creates a copy of a previously snapshotted NES State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:       s.CPU.Snapshot(),
		Mem:       s.Mem.Snapshot(),
		frame:     s.frame,
		overshoot: s.overshoot,
	}
}

// Snapshot the state of the NES sub-systems.
func (nes *NES) Snapshot() *State {
	return &State{
		CPU:       nes.CPU.Snapshot(),
		Mem:       nes.Mem.Snapshot(),
		frame:     nes.frame,
		overshoot: nes.overshoot,
	}
}

// Plumb a previously snapshotted system.
func (nes *NES) Plumb(state *State) {
	if state == nil {
		panic("nes: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in the state
	s := state.Snapshot()
	nes.CPU = s.CPU
	nes.Mem = s.Mem
	nes.frame = s.frame
	nes.overshoot = s.overshoot
}
