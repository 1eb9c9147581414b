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

package interrupts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/stm32f1/curated"
)

// Error patterns returned by NewRouter() and Connect().
const (
	OutOfRange       = "interrupts: %s: line %d out of range (0 to %d)"
	SourceConnected  = "interrupts: %s: already connected to line %d"
	LineConnected    = "interrupts: %s: line %d already connected to %s"
	InvalidWidth     = "interrupts: router must have at least one line"
	EmptySourceLabel = "interrupts: source must be named"
)

// Line is a single interrupt input of the controller.
type Line struct {
	number   int
	source   string
	asserted bool
}

// Number returns the IRQ number of the line.
func (l *Line) Number() int {
	return l.number
}

// Source returns the name of the peripheral connected to the line.
func (l *Line) Source() string {
	return l.source
}

// Raise asserts the line.
func (l *Line) Raise() {
	l.asserted = true
}

// Lower deasserts the line.
func (l *Line) Lower() {
	l.asserted = false
}

// Asserted returns true if the line is currently raised.
func (l *Line) Asserted() bool {
	return l.asserted
}

func (l *Line) String() string {
	if l.asserted {
		return fmt.Sprintf("%3d %s (asserted)", l.number, l.source)
	}
	return fmt.Sprintf("%3d %s", l.number, l.source)
}

// Router holds the connections between named sources and IRQ numbers.
type Router struct {
	lines   []*Line
	sources map[string]*Line
}

// NewRouter is the preferred method of initialisation for the Router type.
// The width is the number of external interrupt lines of the controller.
func NewRouter(width int) (*Router, error) {
	if width <= 0 {
		return nil, curated.Errorf(InvalidWidth)
	}
	return &Router{
		lines:   make([]*Line, width),
		sources: make(map[string]*Line),
	}, nil
}

// Width returns the number of lines in the router.
func (rtr *Router) Width() int {
	return len(rtr.lines)
}

// Connect allocates the numbered line to the named source. A source can be
// connected to only one line and a line can be connected to only one source.
func (rtr *Router) Connect(source string, irq int) (*Line, error) {
	if source == "" {
		return nil, curated.Errorf(EmptySourceLabel)
	}
	if irq < 0 || irq >= len(rtr.lines) {
		return nil, curated.Errorf(OutOfRange, source, irq, len(rtr.lines)-1)
	}
	if l, ok := rtr.sources[source]; ok {
		return nil, curated.Errorf(SourceConnected, source, l.number)
	}
	if l := rtr.lines[irq]; l != nil {
		return nil, curated.Errorf(LineConnected, source, irq, l.source)
	}

	l := &Line{
		number: irq,
		source: source,
	}
	rtr.lines[irq] = l
	rtr.sources[source] = l

	return l, nil
}

// Lookup returns the line connected to the named source.
func (rtr *Router) Lookup(source string) (*Line, bool) {
	l, ok := rtr.sources[source]
	return l, ok
}

// Table returns every connected line, in IRQ order.
func (rtr *Router) Table() []*Line {
	t := make([]*Line, 0, len(rtr.sources))
	for _, l := range rtr.lines {
		if l != nil {
			t = append(t, l)
		}
	}
	return t
}

// Pending returns the IRQ numbers of every asserted line, lowest first.
func (rtr *Router) Pending() []int {
	var p []int
	for _, l := range rtr.lines {
		if l != nil && l.asserted {
			p = append(p, l.number)
		}
	}
	return p
}

// Sources returns the names of every connected source, sorted by name.
func (rtr *Router) Sources() []string {
	s := make([]string, 0, len(rtr.sources))
	for k := range rtr.sources {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

func (rtr *Router) String() string {
	s := strings.Builder{}
	for _, l := range rtr.Table() {
		s.WriteString(l.String())
		s.WriteString("\n")
	}
	return s.String()
}
