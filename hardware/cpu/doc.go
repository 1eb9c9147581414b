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

// Package cpu is the handle to the processor core of the SoC. Instruction
// execution is not part of this module. The Core type records how the
// processor is wired into the SoC: the core variant, the number of external
// interrupt lines, the clocks driving the core and SysTick, and the address
// space the core sees.
//
// An execution engine is expected to take the Core and use the Memory() and
// NVIC() functions to drive the system. The InitialSP() and ResetVector()
// functions read the first two entries of the vector table, which is what an
// ARMv7-M core does when it comes out of reset.
package cpu
