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

// Package clocks models the clock tree of the SoC as a graph of Clock nodes.
//
// A clock is either a root, with a frequency assigned by the board with
// SetHz(), or it is derived from a single source clock by a multiplier and a
// divisor. A clock can never be both and a clock with neither is considered to
// be unwired, with a frequency of zero.
//
// The graph is acyclic by construction: SetSource() refuses a source that is
// the clock itself or that is derived (directly or indirectly) from the clock.
//
// Frequencies are not cached. Frequency() walks up to the root every time so
// a change to a root is seen immediately by every derived clock.
package clocks

import (
	"fmt"

	"github.com/jetsetilly/stm32f1/curated"
)

// List of error patterns returned by clock functions.
const (
	AlreadyRoot    = "clocks: %s: has an assigned frequency and cannot be given a source"
	AlreadySourced = "clocks: %s: has a source and cannot be given a frequency"
	SelfSource     = "clocks: %s: cannot be its own source"
	CyclicSource   = "clocks: %s: source %s is derived from it"
	ZeroRatio      = "clocks: %s: multiplier and divisor must be non-zero"
	ZeroHz         = "clocks: %s: frequency must be non-zero"
)

// Clock is a single node in the clock graph.
type Clock struct {
	name string

	// hz is only meaningful for root clocks
	hz    uint64
	hasHz bool

	source *Clock
	mul    uint64
	div    uint64
}

// NewClock is the preferred method of initialisation for the Clock type. The
// new clock is unwired with a ratio of 1:1.
func NewClock(name string) *Clock {
	return &Clock{
		name: name,
		mul:  1,
		div:  1,
	}
}

// Name returns the name of the clock.
func (clk *Clock) Name() string {
	return clk.name
}

// SetHz makes the clock a root clock running at the specified frequency.
func (clk *Clock) SetHz(hz uint64) error {
	if clk.source != nil {
		return curated.Errorf(AlreadySourced, clk.name)
	}
	if hz == 0 {
		return curated.Errorf(ZeroHz, clk.name)
	}
	clk.hz = hz
	clk.hasHz = true
	return nil
}

// SetSource derives the clock from the src clock. Any previous source is
// replaced.
func (clk *Clock) SetSource(src *Clock) error {
	if clk.hasHz {
		return curated.Errorf(AlreadyRoot, clk.name)
	}
	if src == clk {
		return curated.Errorf(SelfSource, clk.name)
	}
	if src.DependsOn(clk) {
		return curated.Errorf(CyclicSource, clk.name, src.name)
	}
	clk.source = src
	return nil
}

// SetMulDiv sets the ratio applied to the source frequency. For example, a
// multiplier of 1 and a divisor of 8 makes the clock one eighth of the speed
// of its source.
func (clk *Clock) SetMulDiv(mul uint64, div uint64) error {
	if mul == 0 || div == 0 {
		return curated.Errorf(ZeroRatio, clk.name)
	}
	clk.mul = mul
	clk.div = div
	return nil
}

// DependsOn returns true if the clock is other or if the clock is derived
// from other somewhere along its chain of sources.
func (clk *Clock) DependsOn(other *Clock) bool {
	for c := clk; c != nil; c = c.source {
		if c == other {
			return true
		}
	}
	return false
}

// Frequency returns the frequency of the clock in Hz. Unwired clocks, and
// clocks derived from unwired clocks, return zero.
func (clk *Clock) Frequency() uint64 {
	if clk.hasHz {
		return clk.hz
	}
	if clk.source == nil {
		return 0
	}
	return clk.source.Frequency() * clk.mul / clk.div
}

// HasSource returns true if the clock is derived from another clock.
func (clk *Clock) HasSource() bool {
	return clk.source != nil
}

// HasHz returns true if the clock has an assigned frequency.
func (clk *Clock) HasHz() bool {
	return clk.hasHz
}

// Wired returns true if the clock has either an assigned frequency or a
// source.
func (clk *Clock) Wired() bool {
	return clk.hasHz || clk.source != nil
}

// Source returns the source clock. Returns nil for root and unwired clocks.
func (clk *Clock) Source() *Clock {
	return clk.source
}

// Ratio returns the multiplier and divisor of the clock.
func (clk *Clock) Ratio() (uint64, uint64) {
	return clk.mul, clk.div
}

func (clk *Clock) String() string {
	switch {
	case clk.hasHz:
		return fmt.Sprintf("%s: %d Hz", clk.name, clk.hz)
	case clk.source != nil:
		return fmt.Sprintf("%s: %d Hz (%s x %d/%d)", clk.name, clk.Frequency(), clk.source.name, clk.mul, clk.div)
	}
	return fmt.Sprintf("%s: unwired", clk.name)
}
