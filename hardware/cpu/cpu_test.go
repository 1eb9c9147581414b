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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/hardware/clocks"
	"github.com/jetsetilly/stm32f1/hardware/cpu"
	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/memory/memorymap"
	"github.com/jetsetilly/stm32f1/test"
)

func config(t *testing.T) cpu.Config {
	t.Helper()

	sysclk := clocks.NewClock("sysclk")
	test.DemandSuccess(t, sysclk.SetHz(24000000))
	refclk := clocks.NewClock("refclk")
	test.DemandSuccess(t, refclk.SetSource(sysclk))
	test.DemandSuccess(t, refclk.SetMulDiv(1, 8))

	nvic, err := interrupts.NewRouter(61)
	test.DemandSuccess(t, err)

	return cpu.Config{
		Type:     "cortex-m3",
		NumIRQ:   61,
		BitBand:  true,
		CPUClock: sysclk,
		RefClock: refclk,
		Memory:   memorymap.NewAddressSpace("system"),
		NVIC:     nvic,
	}
}

func TestNewCore(t *testing.T) {
	c, err := cpu.NewCore(config(t))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Type(), "cortex-m3")
	test.ExpectEquality(t, c.NumIRQ(), 61)
	test.ExpectSuccess(t, c.BitBand())
	test.ExpectEquality(t, c.CPUClock().Frequency(), uint64(24000000))
	test.ExpectEquality(t, c.RefClock().Frequency(), uint64(3000000))
	test.ExpectEquality(t, c.String(), "cortex-m3: 61 irqs, bitband, cpuclk 24000000 Hz, refclk 3000000 Hz")
}

func TestConfigErrors(t *testing.T) {
	cfg := config(t)
	cfg.Type = "6507"
	_, err := cpu.NewCore(cfg)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownType))

	cfg = config(t)
	cfg.NumIRQ = 0
	_, err = cpu.NewCore(cfg)
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidNumIRQ))

	cfg = config(t)
	cfg.RefClock = nil
	_, err = cpu.NewCore(cfg)
	test.ExpectSuccess(t, curated.Is(err, cpu.MissingClock))
	test.ExpectEquality(t, err.Error(), "cpu: reference clock not connected")

	cfg = config(t)
	cfg.Memory = nil
	_, err = cpu.NewCore(cfg)
	test.ExpectSuccess(t, curated.Is(err, cpu.MissingMemory))

	cfg = config(t)
	cfg.NumIRQ = 60
	_, err = cpu.NewCore(cfg)
	test.ExpectSuccess(t, curated.Is(err, cpu.NVICMismatch))
}

func TestVectorTable(t *testing.T) {
	cfg := config(t)
	c, err := cpu.NewCore(cfg)
	test.DemandSuccess(t, err)

	// nothing mapped at address zero
	_, err = c.InitialSP()
	test.ExpectSuccess(t, curated.Is(err, cpu.VectorReadError))
	test.ExpectSuccess(t, curated.Has(err, memorymap.Unmapped))

	flash := memorymap.NewROM("flash", 0x8000)
	test.DemandSuccess(t, cfg.Memory.Add(0x00000000, flash))
	test.DemandSuccess(t, cfg.Memory.Program(0x00000000, []byte{
		0x00, 0x20, 0x00, 0x20,
		0x05, 0x01, 0x00, 0x08,
	}))

	sp, err := c.InitialSP()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sp, uint32(0x20002000))

	pc, err := c.ResetVector()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pc, uint32(0x08000104))
}
