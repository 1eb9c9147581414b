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

// Package rcc implements the register surface of the reset and clock control
// unit of the STM32F1 series.
//
// The register layout and reset values can be found in the STM32F100xx
// reference manual (RM0041), section 6.3 "RCC registers".
//
// Only the registers are modelled. Writing to the clock configuration
// registers has no effect on the frequencies in the clock graph of the SoC.
package rcc
