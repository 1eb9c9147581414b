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

package unimplemented_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/peripherals"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/unimplemented"
	"github.com/jetsetilly/stm32f1/logger"
	"github.com/jetsetilly/stm32f1/test"
)

func TestDevice(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	var p peripherals.Peripheral = unimplemented.NewDevice("gpioa", unimplemented.DefaultSize)
	test.ExpectEquality(t, p.Label(), "gpioa")
	test.ExpectEquality(t, p.Size(), uint32(0x400))

	p.Write(0x0c, 0x1234)
	test.ExpectEquality(t, p.Read(0x0c), uint32(0))

	entries := logger.Entries()
	test.DemandEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[0].Tag, "gpioa")
	test.ExpectEquality(t, entries[0].Detail, "unimplemented write: offset 0x0c (value 0x00001234)")
	test.ExpectEquality(t, entries[1].Detail, "unimplemented read: offset 0x0c")
}

func TestFactory(t *testing.T) {
	f := unimplemented.Factory()
	p := f("usart1")
	test.ExpectEquality(t, p.Label(), "usart1")
	test.ExpectEquality(t, p.Size(), uint32(unimplemented.DefaultSize))

	irq, ok := p.(peripherals.Interrupter)
	test.DemandSuccess(t, ok)

	rtr, _ := interrupts.NewRouter(61)
	l, _ := rtr.Connect("usart1", 37)
	irq.ConnectIRQ(l)
	test.ExpectEquality(t, p.(*unimplemented.Device).IRQ(), l)
	test.ExpectSuccess(t, strings.HasSuffix(p.(*unimplemented.Device).String(), "(unimplemented)"))
}
