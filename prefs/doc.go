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

// Package prefs implements the typed preference values used to configure the
// emulation. Each value type has a Set() function that accepts either a value
// of the native type or a string, which means values can be set from the
// command line as easily as from code.
//
// Values are registered with a Group under a key. Calling
// Group.ApplyCommandLine() sets every registered value that has a matching
// key in the current command line group (see PushCommandLineStack()). For
// example:
//
//	prefs.PushCommandLineStack("cpu.decimal::true; frame.cycles::20000")
//	defer prefs.PopCommandLineStack()
//
//	p, _ := preferences.NewPreferences()
//
// The order in which things happen is important. A group should only apply
// the command line values after the default values have been set.
package prefs
