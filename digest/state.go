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

package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/Astral-C/nest/hardware"
	"github.com/Astral-C/nest/hardware/memory/memorymap"
	"github.com/cespare/xxhash"
)

// State is a chained fingerprint of the NES.
type State struct {
	digest   uint64
	data     []byte
	frameNum int
}

// NewState attaches a new State to the NES. The fingerprint is updated at
// the end of every frame.
func NewState(nes *hardware.NES) *State {
	dig := &State{}
	nes.AddFrameHook(dig.frame)
	return dig
}

// Hash returns the current fingerprint.
func (dig *State) Hash() string {
	return fmt.Sprintf("%016x", dig.digest)
}

// Frame returns the number of the frame last included in the fingerprint.
func (dig *State) Frame() int {
	return dig.frameNum
}

// ResetDigest clears the fingerprint.
func (dig *State) ResetDigest() {
	dig.digest = 0
	dig.frameNum = 0
}

func (dig *State) frame(nes *hardware.NES) error {
	// chain fingerprints by placing the value of the last fingerprint at the
	// head of the data
	dig.data = dig.data[:0]
	dig.data = binary.LittleEndian.AppendUint64(dig.data, dig.digest)
	dig.data = binary.LittleEndian.AppendUint64(dig.data, nes.PPU.Digest())
	dig.data = binary.LittleEndian.AppendUint16(dig.data, nes.CPU.PC.Address())
	dig.data = append(dig.data,
		nes.CPU.A.Value(), nes.CPU.X.Value(), nes.CPU.Y.Value(),
		nes.CPU.SP.Value(), nes.CPU.Status.Value())

	for a := memorymap.OriginRAM; a <= memorymap.MemtopRAM; a++ {
		dig.data = append(dig.data, nes.Mem.RAM.Read(a))
	}

	dig.digest = xxhash.Sum64(dig.data)
	dig.frameNum = nes.Frame()

	return nil
}
