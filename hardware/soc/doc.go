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

// Package soc assembles the STM32F100 value-line system-on-chip from its
// components.
//
// The SoC is created with NewSoC(). The board code must then wire the sysclk
// clock returned by Sysclk() and can optionally override the density variant
// with SetDensity(). Realize() builds the address space, the interrupt wiring
// and the peripherals. Realize() either succeeds completely or leaves the SoC
// without any components.
//
//	s := soc.NewSoC()
//	_ = s.Sysclk().SetHz(24000000)
//	_ = s.SetDensity("medium")
//	err := s.Realize()
//
// The Compose() function does all of the above from a Config value.
//
// The density variant selects the size of the flash memory, the number of SPI
// devices and whether the FSMC is present. See the Parameters type.
package soc
