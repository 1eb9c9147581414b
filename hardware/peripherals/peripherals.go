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

package peripherals

import (
	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/memory/memorymap"
)

// Peripheral defines the operations required of every memory-mapped device.
type Peripheral interface {
	memorymap.Device

	// Label is the name of the peripheral instance. eg. "usart1"
	Label() string

	// Size of the IO region required by the peripheral
	Size() uint32

	// Reset the peripheral to its power-on state
	Reset()
}

// Interrupter is implemented by peripherals that have an interrupt output.
type Interrupter interface {
	ConnectIRQ(line *interrupts.Line)
}

// Factory defines the function signature for creating a new peripheral
// instance. The SoC uses factories for devices that are provided by the
// board, such as the USART and SPI devices.
//
// A factory that returns nil, or a nil pointer of a type that implements
// Peripheral, causes composition of the SoC to fail.
type Factory func(label string) Peripheral
