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

package fsmc

import (
	"fmt"

	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/memory/registers"
)

// Size of the FSMC register block in the address space.
const Size = 0x400

// NumBanks is the number of NOR/PSRAM banks controlled by the FSMC.
const NumBanks = 4

// Register offsets. BCR and BTR registers are interleaved. The BWTR registers
// are in a separate block.
const (
	BCR1  = 0x000
	BTR1  = 0x004
	BCR2  = 0x008
	BTR2  = 0x00c
	BCR3  = 0x010
	BTR3  = 0x014
	BCR4  = 0x018
	BTR4  = 0x01c
	BWTR1 = 0x104
	BWTR2 = 0x10c
	BWTR3 = 0x114
	BWTR4 = 0x11c
)

// bank 1 is enabled at reset (MBKEN) and is configured for NOR flash
const (
	resetBCR1   = 0x000030db
	resetBCRx   = 0x000030d2
	resetTiming = 0xffffffff
)

var layout = []registers.Register{
	{Name: "BCR1", Offset: BCR1, Reset: resetBCR1},
	{Name: "BTR1", Offset: BTR1, Reset: resetTiming},
	{Name: "BCR2", Offset: BCR2, Reset: resetBCRx},
	{Name: "BTR2", Offset: BTR2, Reset: resetTiming},
	{Name: "BCR3", Offset: BCR3, Reset: resetBCRx},
	{Name: "BTR3", Offset: BTR3, Reset: resetTiming},
	{Name: "BCR4", Offset: BCR4, Reset: resetBCRx},
	{Name: "BTR4", Offset: BTR4, Reset: resetTiming},
	{Name: "BWTR1", Offset: BWTR1, Reset: resetTiming},
	{Name: "BWTR2", Offset: BWTR2, Reset: resetTiming},
	{Name: "BWTR3", Offset: BWTR3, Reset: resetTiming},
	{Name: "BWTR4", Offset: BWTR4, Reset: resetTiming},
}

// FSMC implements the peripherals.Peripheral and peripherals.Interrupter
// interfaces.
type FSMC struct {
	*registers.Bank

	// the interrupt line is connected but never raised
	irq *interrupts.Line
}

// NewFSMC is the preferred method of initialisation for the FSMC type. The
// register values are reset before the function returns.
func NewFSMC() *FSMC {
	bnk, err := registers.NewBank("fsmc", layout)
	if err != nil {
		panic(fmt.Sprintf("fsmc: %v", err))
	}
	return &FSMC{Bank: bnk}
}

// Size implements the peripherals.Peripheral interface.
func (f *FSMC) Size() uint32 {
	return Size
}

// ConnectIRQ implements the peripherals.Interrupter interface.
func (f *FSMC) ConnectIRQ(line *interrupts.Line) {
	f.irq = line
}

// IRQ returns the connected interrupt line. Returns nil if ConnectIRQ() has
// not been called.
func (f *FSMC) IRQ() *interrupts.Line {
	return f.irq
}

// Control returns the value of the BCR register for the bank. Banks are
// numbered 1 to 4. Returns false if the bank does not exist.
func (f *FSMC) Control(bank int) (uint32, bool) {
	if bank < 1 || bank > NumBanks {
		return 0, false
	}
	return f.Read(uint32(bank-1) * 8), true
}

// Timing returns the value of the BTR register for the bank.
func (f *FSMC) Timing(bank int) (uint32, bool) {
	if bank < 1 || bank > NumBanks {
		return 0, false
	}
	return f.Read(uint32(bank-1)*8 + 4), true
}

// WriteTiming returns the value of the BWTR register for the bank.
func (f *FSMC) WriteTiming(bank int) (uint32, bool) {
	if bank < 1 || bank > NumBanks {
		return 0, false
	}
	return f.Read(uint32(bank-1)*8 + BWTR1), true
}
