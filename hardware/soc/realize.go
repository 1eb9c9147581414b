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
	"reflect"

	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/hardware/clocks"
	"github.com/jetsetilly/stm32f1/hardware/cpu"
	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/memory/memorymap"
	"github.com/jetsetilly/stm32f1/hardware/peripherals"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/fsmc"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/rcc"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/unimplemented"
	"github.com/jetsetilly/stm32f1/logger"
)

// refclk is one eighth of sysclk
const (
	refclkMul = 1
	refclkDiv = 8
)

type device struct {
	label  string
	origin uint32
	irq    int
}

var usartDevices = []device{
	{label: "usart1", origin: 0x40013800, irq: 37},
	{label: "usart2", origin: 0x40004400, irq: 38},
	{label: "usart3", origin: 0x40004800, irq: 39},
}

// spi3 is only present in the high density variant
var spiDevices = []device{
	{label: "spi1", origin: 0x40013000, irq: 35},
	{label: "spi2", origin: 0x40003800, irq: 36},
	{label: "spi3", origin: 0x40003c00, irq: 51},
}

// devices that are in the memory map but which are not modelled. accesses to
// these are logged
var unimplementedDevices = []device{
	{label: "timer[2]", origin: 0x40000000},
	{label: "timer[3]", origin: 0x40000400},
	{label: "timer[4]", origin: 0x40000800},
	{label: "timer[6]", origin: 0x40001000},
	{label: "timer[7]", origin: 0x40001400},
	{label: "timer[12]", origin: 0x40001800},
	{label: "timer[13]", origin: 0x40001c00},
	{label: "timer[14]", origin: 0x40002000},
	{label: "rtc", origin: 0x40002800},
	{label: "wwdg", origin: 0x40002c00},
	{label: "iwdg", origin: 0x40003000},
	{label: "uart4", origin: 0x40004c00},
	{label: "uart5", origin: 0x40005000},
	{label: "i2c1", origin: 0x40005400},
	{label: "i2c2", origin: 0x40005800},
	{label: "bkp", origin: 0x40006c00},
	{label: "pwr", origin: 0x40007000},
	{label: "dac", origin: 0x40007400},
	{label: "cec", origin: 0x40007800},
	{label: "afio", origin: 0x40010000},
	{label: "exti", origin: 0x40010400},
	{label: "gpioa", origin: 0x40010800},
	{label: "gpiob", origin: 0x40010c00},
	{label: "gpioc", origin: 0x40011000},
	{label: "gpiod", origin: 0x40011400},
	{label: "gpioe", origin: 0x40011800},
	{label: "gpiof", origin: 0x40011c00},
	{label: "gpiog", origin: 0x40012000},
	{label: "adc1", origin: 0x40012400},
	{label: "timer[1]", origin: 0x40012c00},
	{label: "timer[15]", origin: 0x40014000},
	{label: "timer[16]", origin: 0x40014400},
	{label: "timer[17]", origin: 0x40014800},
	{label: "dma1", origin: 0x40020000},
	{label: "dma2", origin: 0x40020400},
	{label: "flashint", origin: 0x40022000},
	{label: "crc", origin: 0x40023000},
}

// composition collects the components of the SoC as they are created. the
// components are only given to the SoC once everything has been created
// without error
type composition struct {
	mem         *memorymap.AddressSpace
	nvic        *interrupts.Router
	peripherals []Placement
}

func (c *composition) place(p peripherals.Peripheral, origin uint32) (*Placement, error) {
	err := c.mem.Add(origin, memorymap.NewIO(p.Label(), p.Size(), p))
	if err != nil {
		return nil, err
	}
	c.peripherals = append(c.peripherals, Placement{
		Peripheral: p,
		Origin:     origin,
	})
	return &c.peripherals[len(c.peripherals)-1], nil
}

func (c *composition) placeWithIRQ(p peripherals.Peripheral, origin uint32, irq int) error {
	line, err := c.nvic.Connect(p.Label(), irq)
	if err != nil {
		return err
	}
	pl, err := c.place(p, origin)
	if err != nil {
		return err
	}
	pl.IRQ = line
	if i, ok := p.(peripherals.Interrupter); ok {
		i.ConnectIRQ(line)
	}
	return nil
}

func (c *composition) placeFromFactory(f peripherals.Factory, dev device) error {
	p := f(dev.label)
	if isNil(p) {
		return curated.Errorf(NoPeripheral, dev.label)
	}
	return c.placeWithIRQ(p, dev.origin, dev.irq)
}

// isNil returns true if the peripheral is nil or is an interface holding a
// nil pointer
func isNil(p peripherals.Peripheral) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Realize builds the SoC. The sysclk clock must have been wired by the board
// and the refclk clock must not have been wired.
//
// If an error is returned then none of the components of the SoC will have
// been created and Realize() can be called again once the board has corrected
// the problem. The density cannot be changed once Realize() has been called,
// whether it succeeds or not.
func (s *SoC) Realize() error {
	if s.realized {
		return curated.Errorf(AlreadyRealized)
	}
	s.realizing = true

	if !s.sysclk.Wired() || s.sysclk.Frequency() == 0 {
		return curated.Errorf(UnwiredSysclk)
	}
	if s.refclk.Wired() {
		return curated.Errorf(WiredRefclk)
	}

	params, ok := LookupParameters(s.density)
	if !ok {
		return curated.Errorf(InvalidDensity, s.density.String(), validDensities())
	}

	nvic, err := interrupts.NewRouter(NumIRQ)
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}

	c := composition{
		mem:  memorymap.NewAddressSpace("system"),
		nvic: nvic,
	}

	// flash and the alias of flash at address zero, from where the core
	// fetches the vector table on reset
	flash := memorymap.NewROM("flash", params.FlashSize)
	err = c.mem.Add(FlashOrigin, flash)
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}
	alias, err := memorymap.NewAlias("flash.alias", flash, 0, flash.Size())
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}
	err = c.mem.Add(AliasOrigin, alias)
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}

	err = c.mem.Add(SRAMOrigin, memorymap.NewRAM("sram", SRAMSize))
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}

	core, err := cpu.NewCore(cpu.Config{
		Type:     s.cpuType,
		NumIRQ:   NumIRQ,
		BitBand:  true,
		CPUClock: s.sysclk,
		RefClock: s.refclk,
		Memory:   c.mem,
		NVIC:     c.nvic,
	})
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}

	for _, dev := range usartDevices {
		err = c.placeFromFactory(s.usart, dev)
		if err != nil {
			return curated.Errorf(ComposeError, err)
		}
	}

	for _, dev := range spiDevices[:params.NumSPIs] {
		err = c.placeFromFactory(s.spi, dev)
		if err != nil {
			return curated.Errorf(ComposeError, err)
		}
	}

	clkctrl := rcc.NewRCC()
	_, err = c.place(clkctrl, RCCOrigin)
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}

	var memctrl *fsmc.FSMC
	if params.HasFSMC {
		memctrl = fsmc.NewFSMC()
		err = c.placeWithIRQ(memctrl, FSMCOrigin, FSMCIRQ)
		if err != nil {
			return curated.Errorf(ComposeError, err)
		}
	}

	for _, dev := range unimplementedDevices {
		_, err = c.place(unimplemented.NewDevice(dev.label, unimplemented.DefaultSize), dev.origin)
		if err != nil {
			return curated.Errorf(ComposeError, err)
		}
	}

	err = wireRefclk(s.refclk, s.sysclk)
	if err != nil {
		return curated.Errorf(ComposeError, err)
	}

	s.params = params
	s.mem = c.mem
	s.nvic = c.nvic
	s.core = core
	s.rcc = clkctrl
	s.fsmc = memctrl
	s.peripherals = c.peripherals
	s.realized = true

	logger.Logf(logger.Allow, "soc", "%s density: %d KiB flash, %d SPI, fsmc: %v", params.Density, params.FlashSize/1024, params.NumSPIs, params.HasFSMC)
	logger.Logf(logger.Allow, "soc", "%s", core)

	return nil
}

func wireRefclk(refclk *clocks.Clock, sysclk *clocks.Clock) error {
	err := refclk.SetSource(sysclk)
	if err != nil {
		return err
	}
	return refclk.SetMulDiv(refclkMul, refclkDiv)
}

// Config is used with Compose() to create and realize a SoC in one step.
type Config struct {
	// an empty Density string leaves the SoC with the default density.
	// likewise for an empty CPUType
	Density string
	CPUType string

	// Sysclk is the clock from the board that drives the SoC
	Sysclk *clocks.Clock

	// factories for the USART and SPI devices. nil factories result in
	// unimplemented placeholders
	USART peripherals.Factory
	SPI   peripherals.Factory
}

// Compose creates a new SoC from the Config and realizes it.
func Compose(cfg Config) (*SoC, error) {
	s := NewSoC()

	if cfg.Density != "" {
		err := s.SetDensity(cfg.Density)
		if err != nil {
			return nil, err
		}
	}

	if cfg.CPUType != "" {
		err := s.SetCPUType(cfg.CPUType)
		if err != nil {
			return nil, err
		}
	}

	s.SetUSARTFactory(cfg.USART)
	s.SetSPIFactory(cfg.SPI)

	if cfg.Sysclk != nil {
		err := s.sysclk.SetSource(cfg.Sysclk)
		if err != nil {
			return nil, curated.Errorf(ComposeError, err)
		}
	}

	err := s.Realize()
	if err != nil {
		return nil, err
	}

	return s, nil
}
