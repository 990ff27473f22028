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

// Package logger is the central log for the emulation. Entries are made up of
// a tag and a detail string and are written out as "tag: detail" lines.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. This is useful for the CPU which will log the same unknown
// opcode every time it is executed, possibly thousands of times a frame.
//
// The package level functions operate on a central logger. Private instances
// can be created with NewLogger(), which is mainly useful for testing.
//
// Every log request must be accompanied by a Permission. The Allow value can
// be used when an entry should always be made.
package logger
