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

// Package hardware is the base package for the STM32F100 model. It and its
// sub-packages contain everything required to compose the SoC.
//
// The soc package is the root of the model and assembles the components in
// the other sub-packages. The board package puts the SoC on a generic board
// with a fixed frequency clock and optional external RAM.
package hardware
