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

package soc

import (
	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/hardware/clocks"
	"github.com/jetsetilly/stm32f1/hardware/cpu"
	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/memory/memorymap"
	"github.com/jetsetilly/stm32f1/hardware/peripherals"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/fsmc"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/rcc"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/unimplemented"
)

// List of error patterns returned by the SoC.
const (
	UnwiredSysclk   = "soc: sysclk clock must be wired up by the board code"
	WiredRefclk     = "soc: refclk clock must not be wired up by the board code"
	InvalidDensity  = "soc: invalid density value '%s' (valid values are %s)"
	DensityLocked   = "soc: density cannot be changed (%s)"
	CPUTypeLocked   = "soc: cpu type cannot be changed after realization"
	AlreadyRealized = "soc: already realized"
	ComposeError    = "soc: %v"
	NoPeripheral    = "soc: %s: factory did not create a peripheral"
)

// DefaultCPUType is the core type used unless SetCPUType() is called.
const DefaultCPUType = "cortex-m3"

// NumIRQ is the number of external interrupt lines of the NVIC.
const NumIRQ = 61

// Origins of the memory regions.
const (
	FlashOrigin = 0x08000000
	AliasOrigin = 0x00000000
	SRAMOrigin  = 0x20000000
	SRAMSize    = 32 * 1024
	RCCOrigin   = 0x40021000
	FSMCOrigin  = 0xa0000000
)

// FSMCIRQ is the interrupt line of the FSMC.
const FSMCIRQ = 48

// Placement is a peripheral instance and its position in the SoC.
type Placement struct {
	Peripheral peripherals.Peripheral
	Origin     uint32

	// IRQ is nil if the peripheral has no interrupt output
	IRQ *interrupts.Line
}

// SoC is the STM32F100 system-on-chip.
type SoC struct {
	density    Density
	densitySet bool
	cpuType    string

	// realizing is set at the start of Realize() and prevents the density
	// from being changed, even if realization fails
	realizing bool
	realized  bool

	sysclk *clocks.Clock
	refclk *clocks.Clock

	usart peripherals.Factory
	spi   peripherals.Factory

	// the following are only valid after a successful Realize()
	params      Parameters
	mem         *memorymap.AddressSpace
	nvic        *interrupts.Router
	core        *cpu.Core
	rcc         *rcc.RCC
	fsmc        *fsmc.FSMC
	peripherals []Placement
}

// NewSoC is the preferred method of initialisation for the SoC type. The SoC
// defaults to the high density variant with a cortex-m3 core. The USART and
// SPI devices default to unimplemented placeholders.
func NewSoC() *SoC {
	return &SoC{
		density: High,
		cpuType: DefaultCPUType,
		sysclk:  clocks.NewClock("sysclk"),
		refclk:  clocks.NewClock("refclk"),
		usart:   unimplemented.Factory(),
		spi:     unimplemented.Factory(),
	}
}

// SetDensity overrides the default density. The density can be set only once
// and only before Realize() is called.
func (s *SoC) SetDensity(density string) error {
	if s.realizing {
		return curated.Errorf(DensityLocked, "realization has started")
	}
	if s.densitySet {
		return curated.Errorf(DensityLocked, "already set to "+s.density.String())
	}
	d, err := ParseDensity(density)
	if err != nil {
		return err
	}
	s.density = d
	s.densitySet = true
	return nil
}

// Density returns the density variant.
func (s *SoC) Density() Density {
	return s.density
}

// SetCPUType overrides the default core type. The type is validated during
// Realize().
func (s *SoC) SetCPUType(cpuType string) error {
	if s.realized {
		return curated.Errorf(CPUTypeLocked)
	}
	s.cpuType = cpuType
	return nil
}

// CPUType returns the core type.
func (s *SoC) CPUType() string {
	return s.cpuType
}

// SetUSARTFactory sets the factory used to create the USART devices. A nil
// factory restores the default.
func (s *SoC) SetUSARTFactory(f peripherals.Factory) {
	if f == nil {
		f = unimplemented.Factory()
	}
	s.usart = f
}

// SetSPIFactory sets the factory used to create the SPI devices. A nil
// factory restores the default.
func (s *SoC) SetSPIFactory(f peripherals.Factory) {
	if f == nil {
		f = unimplemented.Factory()
	}
	s.spi = f
}

// Sysclk returns the system clock input. It must be wired by the board before
// Realize() is called.
func (s *SoC) Sysclk() *clocks.Clock {
	return s.sysclk
}

// Refclk returns the SysTick reference clock. It is derived from sysclk by
// Realize() and must not be wired by the board.
func (s *SoC) Refclk() *clocks.Clock {
	return s.refclk
}

// Realized returns true if Realize() has completed successfully.
func (s *SoC) Realized() bool {
	return s.realized
}

// Parameters returns the density dependent parameters used to build the SoC.
func (s *SoC) Parameters() Parameters {
	return s.params
}

// Memory returns the system address space. Returns nil before realization.
func (s *SoC) Memory() *memorymap.AddressSpace {
	return s.mem
}

// Interrupts returns the interrupt router. Returns nil before realization.
func (s *SoC) Interrupts() *interrupts.Router {
	return s.nvic
}

// CPU returns the handle to the processor core. Returns nil before
// realization.
func (s *SoC) CPU() *cpu.Core {
	return s.core
}

// RCC returns the reset and clock control unit. Returns nil before
// realization.
func (s *SoC) RCC() *rcc.RCC {
	return s.rcc
}

// FSMC returns the static memory controller. Returns nil before realization
// and for density variants without an FSMC.
func (s *SoC) FSMC() *fsmc.FSMC {
	return s.fsmc
}

// Peripherals returns every peripheral in the SoC, in the order they were
// added to the address space.
func (s *SoC) Peripherals() []Placement {
	p := make([]Placement, len(s.peripherals))
	copy(p, s.peripherals)
	return p
}

// Peripheral returns the placement of the labelled peripheral.
func (s *SoC) Peripheral(label string) (Placement, bool) {
	for _, p := range s.peripherals {
		if p.Peripheral.Label() == label {
			return p, true
		}
	}
	return Placement{}, false
}

// Reset every peripheral in the SoC. Memory contents and interrupt wiring are
// not affected.
func (s *SoC) Reset() {
	for _, p := range s.peripherals {
		p.Peripheral.Reset()
	}
}
