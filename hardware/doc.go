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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains external references
// to all the NES sub-systems. From here, the emulation can either be started
// to run continuously, through Run() or RunForFrameCount(), or one frame at
// a time with RunFrame(). For finer control, Step() executes a single CPU
// instruction.
//
// There is no PPU timing so the frame is a fixed budget of CPU cycles. The
// budget is set by the frame.cycles preference. A frame ends on the first
// instruction boundary at or beyond the budget and the cycles that overshoot
// the budget are taken from the budget of the next frame.
package hardware
