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

// Package preferences holds the values that configure the board and the SoC.
// Every value can be overridden from the command line stack of the prefs
// package with the keys listed below.
//
//	soc.density    low, medium or high
//	soc.cputype    the core type. eg. cortex-m3
//	board.sysclk   frequency of the board clock in Hz
//	board.ramsize  size of the external PSRAM in bytes (high density only)
package preferences
