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

// Package modalflag wraps the flag package from the standard library and adds
// the concept of program modes. Each mode can have its own set of flags.
//
// Arguments are first given to NewArgs() and then processed in layers with
// repeated calls to Parse(). A layer can declare sub-modes with
// AddSubModes(). After parsing, the selected sub-mode is returned by Mode()
// and the next layer can be prepared with NewMode():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 1, "number of frames to run")
//		origin := md.AddAddress("pc", 0, "override reset vector")
//		...
//	}
//
// The first sub-mode in the list is the default mode and is selected if the
// next argument is not a recognised mode. Sub-mode comparisons are case
// insensitive.
//
// Help messages are printed automatically when the -help flag is seen.
// Parse() returns ParseHelp in that case and the caller should exit without
// printing anything further.
package modalflag
