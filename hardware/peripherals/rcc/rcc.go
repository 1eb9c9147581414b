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

package rcc

import (
	"fmt"

	"github.com/jetsetilly/stm32f1/hardware/memory/registers"
)

// Size of the RCC register block in the address space.
const Size = 0x400

// Register offsets.
const (
	CR       = 0x00
	CFGR     = 0x04
	CIR      = 0x08
	APB2RSTR = 0x0c
	APB1RSTR = 0x10
	AHBENR   = 0x14
	APB2ENR  = 0x18
	APB1ENR  = 0x1c
	BDCR     = 0x20
	CSR      = 0x24
	CFGR2    = 0x2c
)

// the reset values of CR and CSR reflect the internal oscillator being on and
// ready (HSION and HSIRDY) and the reset flags PORRSTF and PINRSTF. SRAM and
// FLITF clocks are enabled in AHBENR at reset
var layout = []registers.Register{
	{Name: "CR", Offset: CR, Reset: 0x00000083},
	{Name: "CFGR", Offset: CFGR},
	{Name: "CIR", Offset: CIR},
	{Name: "APB2RSTR", Offset: APB2RSTR},
	{Name: "APB1RSTR", Offset: APB1RSTR},
	{Name: "AHBENR", Offset: AHBENR, Reset: 0x00000014},
	{Name: "APB2ENR", Offset: APB2ENR},
	{Name: "APB1ENR", Offset: APB1ENR},
	{Name: "BDCR", Offset: BDCR},
	{Name: "CSR", Offset: CSR, Reset: 0x0c000000},
	{Name: "CFGR2", Offset: CFGR2},
}

// RCC implements the peripherals.Peripheral interface.
type RCC struct {
	*registers.Bank
}

// NewRCC is the preferred method of initialisation for the RCC type. The
// register values are reset before the function returns.
func NewRCC() *RCC {
	bnk, err := registers.NewBank("rcc", layout)
	if err != nil {
		panic(fmt.Sprintf("rcc: %v", err))
	}
	return &RCC{Bank: bnk}
}

// Size implements the peripherals.Peripheral interface.
func (r *RCC) Size() uint32 {
	return Size
}
