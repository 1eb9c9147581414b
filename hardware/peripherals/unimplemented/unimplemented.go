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

// Package unimplemented is a placeholder peripheral for devices that are
// present in the address map but not otherwise modelled. Accesses are logged
// and otherwise ignored. Reads always return zero.
package unimplemented

import (
	"fmt"

	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/peripherals"
	"github.com/jetsetilly/stm32f1/logger"
)

// DefaultSize is the span of the register block of most STM32F1 devices.
const DefaultSize = 0x400

// Device implements the peripherals.Peripheral interface.
type Device struct {
	label string
	size  uint32
	irq   *interrupts.Line
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(label string, size uint32) *Device {
	return &Device{
		label: label,
		size:  size,
	}
}

// Factory returns a peripherals.Factory that creates devices of DefaultSize.
func Factory() peripherals.Factory {
	return func(label string) peripherals.Peripheral {
		return NewDevice(label, DefaultSize)
	}
}

// Label implements the peripherals.Peripheral interface.
func (dev *Device) Label() string {
	return dev.label
}

// Size implements the peripherals.Peripheral interface.
func (dev *Device) Size() uint32 {
	return dev.size
}

// Reset implements the peripherals.Peripheral interface.
func (dev *Device) Reset() {
}

// Read implements the memorymap.Device interface.
func (dev *Device) Read(offset uint32) uint32 {
	logger.Logf(logger.Allow, dev.label, "unimplemented read: offset %#02x", offset)
	return 0
}

// Write implements the memorymap.Device interface.
func (dev *Device) Write(offset uint32, data uint32) {
	logger.Logf(logger.Allow, dev.label, "unimplemented write: offset %#02x (value %#08x)", offset, data)
}

// ConnectIRQ implements the peripherals.Interrupter interface. The line is
// never raised.
func (dev *Device) ConnectIRQ(line *interrupts.Line) {
	dev.irq = line
}

// IRQ returns the interrupt line connected to the device, if any.
func (dev *Device) IRQ() *interrupts.Line {
	return dev.irq
}

func (dev *Device) String() string {
	return fmt.Sprintf("%s (unimplemented)", dev.label)
}
