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

// Package fsmc implements the register surface of the flexible static memory
// controller found in the high density STM32F1 devices.
//
// Each of the four NOR/PSRAM banks has a chip-select control register (BCR),
// a chip-select timing register (BTR) and a write timing register (BWTR). The
// layout and reset values are from the STM32F100xx reference manual (RM0041),
// section 20.5.6 "NOR/PSRAM controller registers".
//
// The timing of the external memory is not modelled.
package fsmc
