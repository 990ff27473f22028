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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Astral-C/nest/curated"
)

// Group collates preference values under unique keys.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

func (grp *Group) String() string {
	keys := grp.Keys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, grp.entries[k]))
	}
	return s.String()
}

// Keys returns the sorted list of keys in the group.
func (grp *Group) Keys() []string {
	keys := make([]string, 0, len(grp.entries))
	for k := range grp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the group. The key must be unique.
func (grp *Group) Add(key string, p pref) error {
	if _, ok := grp.entries[key]; ok {
		return curated.Errorf("prefs: %s already in group", key)
	}
	grp.entries[key] = p
	return nil
}

// Set the value of the preference with the specified key.
func (grp *Group) Set(key string, v Value) error {
	p, ok := grp.entries[key]
	if !ok {
		return curated.Errorf("prefs: no such preference (%s)", key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf("prefs: %s: %v", key, err)
	}
	return nil
}

// Get the value of the preference with the specified key.
func (grp *Group) Get(key string) (Value, bool) {
	p, ok := grp.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// ApplyCommandLine sets every preference in the group that has a value in
// the current command line group.
func (grp *Group) ApplyCommandLine() error {
	for _, k := range grp.Keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := grp.Set(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}
