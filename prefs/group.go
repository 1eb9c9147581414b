// This file is part of stm32f1.
//
// stm32f1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// stm32f1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with stm32f1.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group collects preference values under string keys.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the group. Keys must be unique and can not
// contain the command line separators.
func (g *Group) Add(key string, p pref) error {
	if strings.Contains(key, "::") || strings.Contains(key, ";") {
		return fmt.Errorf("prefs: illegal characters in key (%s)", key)
	}
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: key already exists (%s)", key)
	}
	g.entries[key] = p
	return nil
}

// ApplyCommandLine sets the value of any key in the group that appears in the
// top group of the command line stack.
func (g *Group) ApplyCommandLine() error {
	for _, k := range g.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := g.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Get returns the preference value for key.
func (g *Group) Get(key string) (Value, bool) {
	p, ok := g.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// Set the preference value for key.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return fmt.Errorf("prefs: no such key (%s)", key)
	}
	return p.Set(v)
}

func (g *Group) keys() []string {
	k := make([]string, 0, len(g.entries))
	for key := range g.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// String returns the group as key/value pairs, one per line, sorted by key.
func (g *Group) String() string {
	s := strings.Builder{}
	for _, k := range g.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, g.entries[k].String()))
	}
	return s.String()
}
