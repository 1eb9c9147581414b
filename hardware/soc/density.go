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
	"strings"

	"github.com/jetsetilly/stm32f1/curated"
)

// Density is the variant of the STM32F100 part.
type Density int

// List of valid Density values.
const (
	Low Density = iota
	Medium
	High
)

// DensityNames is the list of strings accepted by ParseDensity(), in Density
// order.
var DensityNames = []string{"low", "medium", "high"}

func (d Density) String() string {
	if d < Low || d > High {
		return "unknown"
	}
	return DensityNames[d]
}

// ParseDensity converts the string to a Density value. Only the exact values
// in DensityNames are accepted.
func ParseDensity(s string) (Density, error) {
	for i, n := range DensityNames {
		if s == n {
			return Density(i), nil
		}
	}
	return Low, curated.Errorf(InvalidDensity, s, validDensities())
}

func validDensities() string {
	q := make([]string, len(DensityNames))
	for i, n := range DensityNames {
		q[i] = "'" + n + "'"
	}
	return strings.Join(q, ", ")
}

// Parameters are the features of the SoC that differ between density
// variants.
type Parameters struct {
	Density   Density
	FlashSize uint32
	NumSPIs   int
	HasFSMC   bool
}

// from the STM32F100 datasheets. the medium and low density parts have 2 SPI
// devices and no FSMC
var parameterTable = [...]Parameters{
	Low: {
		Density:   Low,
		FlashSize: 32 * 1024,
		NumSPIs:   2,
		HasFSMC:   false,
	},
	Medium: {
		Density:   Medium,
		FlashSize: 128 * 1024,
		NumSPIs:   2,
		HasFSMC:   false,
	},
	High: {
		Density:   High,
		FlashSize: 512 * 1024,
		NumSPIs:   3,
		HasFSMC:   true,
	},
}

// LookupParameters returns the Parameters for the density variant.
func LookupParameters(d Density) (Parameters, bool) {
	if d < Low || d > High {
		return Parameters{}, false
	}
	return parameterTable[d], true
}
