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

package soc

import (
	"github.com/jetsetilly/stm32f1/hardware/clocks"
)

// RegionInfo describes a single region of the address space.
type RegionInfo struct {
	Name   string
	Kind   string
	Origin uint32
	Memtop uint32

	// Target is the name of the region being aliased. Empty for regions that
	// are not aliases
	Target string
}

// IRQInfo describes a single connected interrupt line.
type IRQInfo struct {
	Number int
	Source string
}

// ClockInfo describes a single node of the clock graph.
type ClockInfo struct {
	Name      string
	Frequency uint64
	Source    string
	Mul       uint64
	Div       uint64
}

// Topology is a description of a realized SoC. It contains only plain values
// and is suitable for use by tools that need to walk the structure of the
// SoC.
type Topology struct {
	Density   string
	FlashSize uint32
	CPU       string
	Regions   []RegionInfo
	IRQs      []IRQInfo
	Clocks    []ClockInfo
}

func clockInfo(clk *clocks.Clock) ClockInfo {
	mul, div := clk.Ratio()
	ci := ClockInfo{
		Name:      clk.Name(),
		Frequency: clk.Frequency(),
		Mul:       mul,
		Div:       div,
	}
	if clk.HasSource() {
		ci.Source = clk.Source().Name()
	}
	return ci
}

// Topology returns a description of the SoC. The Regions and IRQs fields will
// be empty if the SoC has not been realized.
func (s *SoC) Topology() Topology {
	top := Topology{
		Density: s.density.String(),
		CPU:     s.cpuType,
		Clocks: []ClockInfo{
			clockInfo(s.sysclk),
			clockInfo(s.refclk),
		},
	}

	if !s.realized {
		return top
	}

	top.FlashSize = s.params.FlashSize

	for _, r := range s.mem.Regions() {
		ri := RegionInfo{
			Name:   r.Name(),
			Kind:   r.Kind().String(),
			Origin: r.Origin(),
			Memtop: r.Memtop(),
		}
		if t, _ := r.Target(); t != nil {
			ri.Target = t.Name()
		}
		top.Regions = append(top.Regions, ri)
	}

	for _, l := range s.nvic.Table() {
		top.IRQs = append(top.IRQs, IRQInfo{
			Number: l.Number(),
			Source: l.Source(),
		})
	}

	return top
}
