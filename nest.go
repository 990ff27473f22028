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

package main

import (
	"fmt"
	"os"

	"github.com/Astral-C/nest/cartridgeloader"
	"github.com/Astral-C/nest/digest"
	"github.com/Astral-C/nest/disassembly"
	"github.com/Astral-C/nest/hardware"
	"github.com/Astral-C/nest/hardware/preferences"
	"github.com/Astral-C/nest/logger"
	"github.com/Astral-C/nest/modalflag"
	"github.com/Astral-C/nest/paths"
	"github.com/Astral-C/nest/performance"
	"github.com/Astral-C/nest/prefs"
	"github.com/Astral-C/nest/scripting"
	"github.com/Astral-C/nest/statsview"
	"github.com/Astral-C/nest/version"
	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(10)
	}
}

// echo the central log to stdout. the tags are coloured if stdout is a
// terminal
func setLogEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(os.Stdout, false)
	}
}

// create the NES and attach the cartridge named on the command line
func newNES(md *modalflag.Modes, prefsOverride string) (*hardware.NES, cartridgeloader.Loader, error) {
	var cl cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, cl, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return nil, cl, fmt.Errorf("too many arguments for %s mode", md)
	}

	if prefsOverride != "" {
		prefs.PushCommandLineStack(prefsOverride)
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return nil, cl, err
	}

	nes, err := hardware.NewNES(prf)
	if err != nil {
		return nil, cl, err
	}

	cl = cartridgeloader.NewLoader(md.GetArg(0))
	if err := cl.Load(); err != nil {
		return nil, cl, err
	}

	if err := nes.AttachCartridge(cl); err != nil {
		return nil, cl, err
	}

	return nes, cl, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")
	trace := md.AddBool("trace", false, "write a trace line for every instruction to stdout")
	pc := md.AddAddress("pc", 0x0000, "start execution at address instead of the reset vector")
	bcd := md.AddBool("bcd", false, "honour the decimal flag in ADC and SBC")
	prefsOverride := md.AddString("prefs", "", "preference overrides (eg. \"frame.cycles::1000; cpu.validate::true\")")
	script := md.AddString("script", "", "lua script to run alongside the emulation")
	screenshot := md.AddBool("screenshot", false, "save the framebuffer as a BMP file after the last frame")
	memvizFile := md.AddString("memviz", "", "write a graphviz description of the CPU to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.URL()))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	nes, cl, err := newNES(md, *prefsOverride)
	if err != nil {
		return err
	}

	if *bcd {
		if err := nes.Prefs.DecimalMode.Set(true); err != nil {
			return err
		}
	}

	if *trace {
		nes.Prefs.Trace = os.Stdout
	}

	if pc.Changed {
		nes.CPU.LoadPC(pc.Value)
	}

	if *script != "" {
		scr, err := scripting.NewScriptFromFile(*script, nes)
		if err != nil {
			return err
		}
		defer scr.Close()
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	dig := digest.NewState(nes)

	if err := nes.RunForFrameCount(*frames, nil); err != nil {
		return err
	}

	fmt.Println(nes.CPU.String())
	fmt.Printf("frames: %d cycles: %d\n", nes.Frame(), nes.TotalCycles())
	fmt.Printf("framebuffer: %016x\n", nes.PPU.Digest())
	fmt.Printf("digest: %s\n", dig.Hash())

	if *screenshot {
		fn, err := paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", cl.ShortName())+".bmp")
		if err != nil {
			return err
		}

		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := nes.PPU.WriteBMP(f); err != nil {
			return err
		}
		fmt.Printf("screenshot: %s\n", fn)
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()

		memviz.Map(f, nes.CPU)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x8000, "first address to disassemble")
	end := md.AddAddress("end", 0xffff, "last address to disassemble")
	grep := md.AddString("grep", "", "only show instructions containing the string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, _, err := newNES(md, "")
	if err != nil {
		return err
	}

	entries := disassembly.Disassemble(nes.Mem, origin.Value, end.Value)

	if *grep != "" {
		return disassembly.Grep(os.Stdout, entries, disassembly.GrepAll, *grep, false)
	}

	return disassembly.Write(os.Stdout, entries)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	uncapped := md.AddBool("uncapped", true, "run performance with no FPS cap")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, all (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	nes, _, err := newNES(md, "")
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, nes, *uncapped, *duration)
}
