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

// Package interrupts routes the interrupt outputs of peripherals to numbered
// input lines of the interrupt controller.
//
// Lines are allocated by the SoC composer with Connect(). Once connected, a
// peripheral holds on to its Line and can Raise() and Lower() it. The state
// of every line can be inspected with the Pending() function.
package interrupts
