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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/hardware/clocks"
	"github.com/jetsetilly/stm32f1/test"
)

func TestRootAndDerived(t *testing.T) {
	sysclk := clocks.NewClock("sysclk")
	refclk := clocks.NewClock("refclk")

	test.ExpectFailure(t, sysclk.Wired())
	test.ExpectEquality(t, sysclk.Frequency(), uint64(0))
	test.ExpectEquality(t, sysclk.String(), "sysclk: unwired")

	test.DemandSuccess(t, sysclk.SetHz(24000000))
	test.DemandSuccess(t, refclk.SetMulDiv(1, 8))
	test.DemandSuccess(t, refclk.SetSource(sysclk))

	test.ExpectEquality(t, refclk.Frequency(), uint64(3000000))
	test.ExpectEquality(t, refclk.String(), "refclk: 3000000 Hz (sysclk x 1/8)")
	test.ExpectSuccess(t, refclk.HasSource())
	test.ExpectFailure(t, refclk.HasHz())

	// frequency is not cached
	test.DemandSuccess(t, sysclk.SetHz(8000000))
	test.ExpectEquality(t, refclk.Frequency(), uint64(1000000))
}

func TestRootCannotBeSourced(t *testing.T) {
	a := clocks.NewClock("a")
	b := clocks.NewClock("b")
	test.DemandSuccess(t, a.SetHz(1000))

	err := a.SetSource(b)
	test.ExpectSuccess(t, curated.Is(err, clocks.AlreadyRoot))
	test.ExpectFailure(t, a.HasSource())
}

func TestSourcedCannotBeRoot(t *testing.T) {
	a := clocks.NewClock("a")
	b := clocks.NewClock("b")
	test.DemandSuccess(t, b.SetSource(a))

	err := b.SetHz(1000)
	test.ExpectSuccess(t, curated.Is(err, clocks.AlreadySourced))
	test.ExpectFailure(t, b.HasHz())
}

func TestCycles(t *testing.T) {
	a := clocks.NewClock("a")
	b := clocks.NewClock("b")
	c := clocks.NewClock("c")

	test.ExpectSuccess(t, curated.Is(a.SetSource(a), clocks.SelfSource))

	test.DemandSuccess(t, b.SetSource(a))
	test.DemandSuccess(t, c.SetSource(b))
	test.ExpectSuccess(t, curated.Is(a.SetSource(c), clocks.CyclicSource))
	test.ExpectSuccess(t, curated.Is(a.SetSource(b), clocks.CyclicSource))
	test.ExpectFailure(t, a.HasSource())

	test.ExpectSuccess(t, c.DependsOn(a))
	test.ExpectFailure(t, a.DependsOn(c))
}

func TestRatio(t *testing.T) {
	a := clocks.NewClock("a")
	b := clocks.NewClock("b")
	test.ExpectSuccess(t, curated.Is(b.SetMulDiv(0, 1), clocks.ZeroRatio))
	test.ExpectSuccess(t, curated.Is(b.SetMulDiv(1, 0), clocks.ZeroRatio))
	test.ExpectSuccess(t, curated.Is(a.SetHz(0), clocks.ZeroHz))

	test.DemandSuccess(t, a.SetHz(8000000))
	test.DemandSuccess(t, b.SetSource(a))
	test.DemandSuccess(t, b.SetMulDiv(9, 1))
	test.ExpectEquality(t, b.Frequency(), uint64(72000000))

	mul, div := b.Ratio()
	test.ExpectEquality(t, mul, uint64(9))
	test.ExpectEquality(t, div, uint64(1))
}

// a derived clock with an unwired source has no frequency
func TestUnwiredSource(t *testing.T) {
	a := clocks.NewClock("a")
	b := clocks.NewClock("b")
	test.DemandSuccess(t, b.SetSource(a))
	test.ExpectSuccess(t, b.Wired())
	test.ExpectEquality(t, b.Frequency(), uint64(0))
}
