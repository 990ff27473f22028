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
	"github.com/Astral-C/nest/cartridgeloader"
	"github.com/Astral-C/nest/curated"
	"github.com/Astral-C/nest/hardware/cpu"
	"github.com/Astral-C/nest/hardware/memory"
	"github.com/Astral-C/nest/hardware/ppu"
	"github.com/Astral-C/nest/hardware/preferences"
	"github.com/Astral-C/nest/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Bus
	PPU *ppu.Framebuffer

	// the number of completed frames since reset
	frame int

	// the number of cycles consumed by the last frame beyond its budget
	overshoot int

	frameHooks []func(*NES) error
}

// NewNES creates a new NES and everything associated with the hardware. If
// prefs is nil then a new instance of the preferences is created.
func NewNES(prefs *preferences.Preferences) (*NES, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("nes: %v", err)
		}
	}

	nes := &NES{
		Prefs: prefs,
		CPU:   cpu.NewCPU(prefs),
		Mem:   memory.NewBus(prefs),
		PPU:   ppu.NewFramebuffer(),
	}

	return nes, nil
}

func (nes *NES) String() string {
	return nes.CPU.String()
}

// AttachCartridge loads the cartridge specified by the loader and inserts it
// into the NES. The NES is reset after the cartridge has been inserted.
func (nes *NES) AttachCartridge(cl cartridgeloader.Loader) error {
	err := cl.Load()
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}

	cart, err := memory.NewCartridge(cl.PRG())
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}
	nes.Mem.Attach(cart)

	if cl.Header != nil {
		logger.Logf(nes.Prefs, "nes", "attached %s [%s]", cl.ShortName(), cl.Header)
	} else {
		logger.Logf(nes.Prefs, "nes", "attached %s [headerless]", cl.ShortName())
	}

	nes.Reset()

	return nil
}

// Reset emulates the reset line of the console. Memory is reinitialised and
// the CPU starts from the address in the reset vector.
func (nes *NES) Reset() {
	if nes.Prefs.RandomState.Get().(bool) {
		logger.Logf(nes.Prefs, "nes", "reset with random state (seed %d)", nes.Prefs.RandSeed)
	}

	nes.Mem.Reset()
	nes.CPU.Reset(nes.Mem)
	nes.PPU.Clear()
	nes.frame = 0
	nes.overshoot = 0
}

// Step the emulation by one CPU instruction. Returns the number of cycles
// the instruction took.
func (nes *NES) Step() int {
	return nes.CPU.Step(nes.Mem)
}

// NMI triggers a non-maskable interrupt. The emulation never does this by
// itself because there is no PPU to generate the vertical blank.
func (nes *NES) NMI() int {
	return nes.CPU.NMI(nes.Mem)
}

// IRQ triggers a maskable interrupt. Returns zero if the interrupt was
// masked.
func (nes *NES) IRQ() int {
	return nes.CPU.IRQ(nes.Mem)
}

// Frame returns the number of frames completed since the last reset.
func (nes *NES) Frame() int {
	return nes.frame
}

// TotalCycles returns the number of CPU cycles since the last reset,
// including the cycles taken by the reset sequence.
func (nes *NES) TotalCycles() uint64 {
	return nes.CPU.Cycles
}

// AddFrameHook adds a function to be called at the end of every frame. Hooks
// are called in the order they were added.
func (nes *NES) AddFrameHook(hook func(*NES) error) {
	nes.frameHooks = append(nes.frameHooks, hook)
}
