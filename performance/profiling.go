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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/Astral-C/nest/curated"
)

// Profile specifies which profiles are to be generated by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ParseProfileString converts a comma separated list of profile names into
// a Profile value. Valid names are "cpu", "mem", "all" and "none".
func ParseProfileString(profile string) (Profile, error) {
	p := ProfileNone

	if strings.TrimSpace(profile) == "" {
		return p, nil
	}

	for _, s := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "NONE":
			p = ProfileNone
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "ALL":
			p = ProfileCPU | ProfileMem
		default:
			return ProfileNone, curated.Errorf("performance: unknown profile type (%s)", s)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function, creating the requested profiles.
// Profile files are named with the supplied prefix.
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(filenameHeader + "_cpu.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		f, ferr := os.Create(filenameHeader + "_mem.profile")
		if ferr != nil {
			return curated.Errorf("performance: %v", ferr)
		}
		defer f.Close()

		runtime.GC()
		ferr = pprof.WriteHeapProfile(f)
		if ferr != nil {
			return curated.Errorf("performance: %v", ferr)
		}
	}

	return err
}
