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

package fsmc_test

import (
	"testing"

	"github.com/jetsetilly/stm32f1/hardware/interrupts"
	"github.com/jetsetilly/stm32f1/hardware/peripherals"
	"github.com/jetsetilly/stm32f1/hardware/peripherals/fsmc"
	"github.com/jetsetilly/stm32f1/logger"
	"github.com/jetsetilly/stm32f1/test"
)

var resetValues = []struct {
	offset uint32
	value  uint32
}{
	{fsmc.BCR1, 0x000030db},
	{fsmc.BTR1, 0xffffffff},
	{fsmc.BCR2, 0x000030d2},
	{fsmc.BTR2, 0xffffffff},
	{fsmc.BCR3, 0x000030d2},
	{fsmc.BTR3, 0xffffffff},
	{fsmc.BCR4, 0x000030d2},
	{fsmc.BTR4, 0xffffffff},
	{fsmc.BWTR1, 0xffffffff},
	{fsmc.BWTR2, 0xffffffff},
	{fsmc.BWTR3, 0xffffffff},
	{fsmc.BWTR4, 0xffffffff},
}

func TestReset(t *testing.T) {
	var p peripherals.Peripheral = fsmc.NewFSMC()
	test.ExpectEquality(t, p.Label(), "fsmc")
	test.ExpectEquality(t, p.Size(), uint32(0x400))
	test.ExpectEquality(t, len(p.(*fsmc.FSMC).Registers()), 12)

	for _, r := range resetValues {
		test.ExpectEquality(t, p.Read(r.offset), r.value, r.offset)
	}

	for _, r := range resetValues {
		p.Write(r.offset, 0x00000000)
	}
	p.Reset()

	for _, r := range resetValues {
		test.ExpectEquality(t, p.Read(r.offset), r.value, r.offset)
	}
}

func TestIsolation(t *testing.T) {
	f := fsmc.NewFSMC()

	for i, w := range resetValues {
		f.Reset()
		v := uint32(0x5a5a0000) | uint32(i)
		f.Write(w.offset, v)

		for _, o := range resetValues {
			if o.offset == w.offset {
				test.ExpectEquality(t, f.Read(o.offset), v, w.offset)
			} else {
				test.ExpectEquality(t, f.Read(o.offset), o.value, w.offset, o.offset)
			}
		}
	}
}

func TestBadOffset(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	f := fsmc.NewFSMC()

	// the gap between the BCR/BTR block and the BWTR block
	for _, o := range []uint32{0x020, 0x100, 0x108, 0x120, 0x3fc} {
		f.Write(o, 0x12345678)
		test.ExpectEquality(t, f.Read(o), uint32(0), o)
	}

	for _, o := range resetValues {
		test.ExpectEquality(t, f.Read(o.offset), o.value, o.offset)
	}

	entries := logger.Entries()
	test.DemandEquality(t, len(entries), 10)
	test.ExpectEquality(t, entries[0].Tag, "fsmc")
	test.ExpectEquality(t, entries[0].Detail, "write: bad offset 0x20 (value 0x12345678)")
	test.ExpectEquality(t, entries[1].Detail, "read: bad offset 0x20")
}

func TestBanks(t *testing.T) {
	f := fsmc.NewFSMC()

	v, ok := f.Control(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(0x000030db))

	f.Write(fsmc.BCR3, 0x00001011)
	f.Write(fsmc.BTR3, 0x0fff0f0f)
	f.Write(fsmc.BWTR3, 0x00000f0f)

	v, _ = f.Control(3)
	test.ExpectEquality(t, v, uint32(0x00001011))
	v, _ = f.Timing(3)
	test.ExpectEquality(t, v, uint32(0x0fff0f0f))
	v, _ = f.WriteTiming(3)
	test.ExpectEquality(t, v, uint32(0x00000f0f))

	v, _ = f.WriteTiming(4)
	test.ExpectEquality(t, v, uint32(0xffffffff))

	_, ok = f.Control(0)
	test.ExpectFailure(t, ok)
	_, ok = f.Timing(5)
	test.ExpectFailure(t, ok)
	_, ok = f.WriteTiming(5)
	test.ExpectFailure(t, ok)
}

func TestIRQ(t *testing.T) {
	f := fsmc.NewFSMC()
	test.ExpectEquality(t, f.IRQ(), (*interrupts.Line)(nil))

	rtr, _ := interrupts.NewRouter(61)
	l, _ := rtr.Connect("fsmc", 48)

	var irq peripherals.Interrupter = f
	irq.ConnectIRQ(l)
	test.ExpectEquality(t, f.IRQ(), l)

	// reset does not disconnect or raise the line
	f.Reset()
	test.ExpectEquality(t, f.IRQ(), l)
	test.ExpectFailure(t, l.Asserted())
}
