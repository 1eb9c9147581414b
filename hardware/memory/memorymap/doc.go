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

// Package memorymap implements the address space of the SoC. The address
// space is a list of regions. Each region has an origin and a size and is
// backed by one of:
//
//	RAM	read/write storage
//	ROM	read-only storage (writable only with Program())
//	Alias	a window onto another region. not a copy
//	IO	a Device, usually a peripheral register bank
//
// Regions never overlap. The Add() function checks every new region against
// every existing region and refuses the region if there is any overlap,
// regardless of the order in which the regions were added.
//
// Storage is little-endian.
package memorymap
