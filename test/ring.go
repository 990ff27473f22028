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

package test

import (
	"fmt"
	"strings"
)

// RingWriter implements io.Writer and keeps only the most recent lines
// written to it. Text after the last newline is held until the line is
// completed.
type RingWriter struct {
	lines   []string
	next    int
	full    bool
	partial strings.Builder
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size argument is the number of lines to keep.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		lines: make([]string, size),
	}, nil
}

func (r *RingWriter) push(l string) {
	r.lines[r.next] = l
	r.next = (r.next + 1) % len(r.lines)
	if r.next == 0 {
		r.full = true
	}
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	s := string(p)
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			r.partial.WriteString(s)
			break
		}
		r.partial.WriteString(s[:i])
		r.push(r.partial.String())
		r.partial.Reset()
		s = s[i+1:]
	}
	return len(p), nil
}

// Lines returns the complete lines held by the ring, oldest first.
func (r *RingWriter) Lines() []string {
	if !r.full {
		return append([]string{}, r.lines[:r.next]...)
	}
	l := append([]string{}, r.lines[r.next:]...)
	return append(l, r.lines[:r.next]...)
}

// String returns the lines held by the ring followed by any incomplete line.
func (r *RingWriter) String() string {
	var s strings.Builder
	for _, l := range r.Lines() {
		s.WriteString(l)
		s.WriteRune('\n')
	}
	s.WriteString(r.partial.String())
	return s.String()
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.next = 0
	r.full = false
	r.partial.Reset()
}
