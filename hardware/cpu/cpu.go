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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/hardware/clocks"
	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/memory/memorymap"
)

// List of error patterns returned by NewCore().
const (
	UnknownType     = "cpu: unknown core type (%s)"
	InvalidNumIRQ   = "cpu: number of interrupt lines must be between 1 and %d (%d)"
	MissingClock    = "cpu: %s clock not connected"
	MissingMemory   = "cpu: address space not connected"
	MissingNVIC     = "cpu: interrupt router not connected"
	NVICMismatch    = "cpu: interrupt router has %d lines, core expects %d"
	VectorReadError = "cpu: vector table: %v"
)

// MaxIRQ is the largest number of external interrupts supported by the NVIC
// of an M-profile core.
const MaxIRQ = 496

// Types is the list of core types recognised by NewCore().
var Types = []string{"cortex-m0", "cortex-m3", "cortex-m4", "cortex-m7", "cortex-m33", "cortex-m55"}

// location of the initial stack pointer and reset vector in the vector table
const (
	vectorSP    = 0x00000000
	vectorReset = 0x00000004
)

// Config describes how the core is wired into the SoC.
type Config struct {
	Type    string
	NumIRQ  int
	BitBand bool

	// CPUClock drives the core. RefClock is the external reference clock of
	// the SysTick timer
	CPUClock *clocks.Clock
	RefClock *clocks.Clock

	Memory *memorymap.AddressSpace
	NVIC   *interrupts.Router
}

// Core is the handle to the processor core.
type Core struct {
	cfg Config
}

// NewCore is the preferred method of initialisation for the Core type.
func NewCore(cfg Config) (*Core, error) {
	if !isKnownType(cfg.Type) {
		return nil, curated.Errorf(UnknownType, cfg.Type)
	}
	if cfg.NumIRQ < 1 || cfg.NumIRQ > MaxIRQ {
		return nil, curated.Errorf(InvalidNumIRQ, MaxIRQ, cfg.NumIRQ)
	}
	if cfg.CPUClock == nil {
		return nil, curated.Errorf(MissingClock, "cpu")
	}
	if cfg.RefClock == nil {
		return nil, curated.Errorf(MissingClock, "reference")
	}
	if cfg.Memory == nil {
		return nil, curated.Errorf(MissingMemory)
	}
	if cfg.NVIC == nil {
		return nil, curated.Errorf(MissingNVIC)
	}
	if cfg.NVIC.Width() != cfg.NumIRQ {
		return nil, curated.Errorf(NVICMismatch, cfg.NVIC.Width(), cfg.NumIRQ)
	}

	return &Core{cfg: cfg}, nil
}

func isKnownType(t string) bool {
	for _, k := range Types {
		if k == t {
			return true
		}
	}
	return false
}

// Type returns the core type. eg. "cortex-m3"
func (c *Core) Type() string {
	return c.cfg.Type
}

// NumIRQ returns the number of external interrupt lines.
func (c *Core) NumIRQ() int {
	return c.cfg.NumIRQ
}

// BitBand returns true if the bit-band regions are enabled.
func (c *Core) BitBand() bool {
	return c.cfg.BitBand
}

// CPUClock returns the clock that drives the core.
func (c *Core) CPUClock() *clocks.Clock {
	return c.cfg.CPUClock
}

// RefClock returns the SysTick reference clock.
func (c *Core) RefClock() *clocks.Clock {
	return c.cfg.RefClock
}

// Memory returns the address space seen by the core.
func (c *Core) Memory() *memorymap.AddressSpace {
	return c.cfg.Memory
}

// NVIC returns the interrupt router feeding the core.
func (c *Core) NVIC() *interrupts.Router {
	return c.cfg.NVIC
}

// InitialSP returns the initial value of the stack pointer as stored in the
// vector table.
func (c *Core) InitialSP() (uint32, error) {
	v, err := c.cfg.Memory.Read32(vectorSP)
	if err != nil {
		return 0, curated.Errorf(VectorReadError, err)
	}
	return v, nil
}

// ResetVector returns the address of the reset handler as stored in the
// vector table. The low bit, which indicates thumb mode, is cleared.
func (c *Core) ResetVector() (uint32, error) {
	v, err := c.cfg.Memory.Read32(vectorReset)
	if err != nil {
		return 0, curated.Errorf(VectorReadError, err)
	}
	return v &^ 0x01, nil
}

func (c *Core) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %d irqs", c.cfg.Type, c.cfg.NumIRQ))
	if c.cfg.BitBand {
		s.WriteString(", bitband")
	}
	s.WriteString(fmt.Sprintf(", cpuclk %d Hz, refclk %d Hz", c.cfg.CPUClock.Frequency(), c.cfg.RefClock.Frequency()))
	return s.String()
}
