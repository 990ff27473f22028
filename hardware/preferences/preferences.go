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

package preferences

import (
	"io"
	"math/rand"
	"time"

	"github.com/Astral-C/nest/prefs"
)

// NTSCCyclesPerFrame is the number of CPU cycles in one NTSC video frame.
// The true value is 29780.5.
const NTSCCyclesPerFrame = 29781

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	grp *prefs.Group

	// the 2A03 has the decimal mode circuitry of the 6502 disabled. setting
	// DecimalMode to true makes the CPU behave like an NMOS 6502
	DecimalMode prefs.Bool

	// check the result of every instruction against the instruction
	// definition
	Validate prefs.Bool

	// the cycle budget for each frame
	CyclesPerFrame prefs.Int

	// initialise hardware to unknown state after reset
	RandomState prefs.Bool

	// whether to log unknown opcodes and writes to ROM
	Logging prefs.Bool

	// random values generated in the hardware package should use the
	// following number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64

	// if not nil, every executed instruction is written as a single line to
	// Trace
	Trace io.Writer
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values found in the current command line group of the
// prefs package are applied after the defaults have been set.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.Reseed(0)
	p.SetDefaults()

	if err := p.grp.Add("cpu.decimal", &p.DecimalMode); err != nil {
		return nil, err
	}
	if err := p.grp.Add("cpu.validate", &p.Validate); err != nil {
		return nil, err
	}
	if err := p.grp.Add("frame.cycles", &p.CyclesPerFrame); err != nil {
		return nil, err
	}
	if err := p.grp.Add("hardware.randstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.grp.Add("log.enabled", &p.Logging); err != nil {
		return nil, err
	}

	if err := p.grp.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.DecimalMode.Set(false)
	_ = p.Validate.Set(false)
	_ = p.CyclesPerFrame.Set(NTSCCyclesPerFrame)
	_ = p.RandomState.Set(false)
	_ = p.Logging.Set(true)
}

// Set the value of a preference by key. See the package documentation for
// the list of keys.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = time.Now().UnixNano()
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p != nil && p.Logging.Get().(bool)
}
