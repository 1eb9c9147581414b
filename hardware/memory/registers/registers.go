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

// Package registers implements the register bank that backs the memory
// mapped interface of a peripheral.
//
// A Bank is built from a list of Register definitions. Each definition names a
// 32bit register, its byte offset from the origin of the peripheral and its
// reset value. Once built, the offset decode of the bank never changes.
//
// Accessing an offset that does not decode to a register is not an error as
// far as the caller is concerned. Reads return zero and writes are ignored. A
// "bad offset" entry is added to the log so that the access can be seen by
// the user.
package registers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/logger"
)

// List of error patterns returned by NewBank().
const (
	DuplicateOffset = "registers: %s: duplicate offset %#02x (%s and %s)"
	DuplicateName   = "registers: %s: duplicate register name (%s)"
	Misaligned      = "registers: %s: register %s at misaligned offset %#02x"
)

// Register is the definition of a single register in a Bank.
type Register struct {
	Name   string
	Offset uint32
	Reset  uint32
}

// Bank is an address decoded collection of 32bit registers.
type Bank struct {
	label string

	// register definitions sorted by offset
	defs []Register

	// map offset to index in defs and values
	decode map[uint32]int

	values []uint32
}

// NewBank is the preferred method of initialisation for the Bank type. The
// label is used to tag log entries. The register values are reset before the
// function returns.
func NewBank(label string, defs []Register) (*Bank, error) {
	bnk := &Bank{
		label:  label,
		defs:   make([]Register, len(defs)),
		decode: make(map[uint32]int, len(defs)),
		values: make([]uint32, len(defs)),
	}

	copy(bnk.defs, defs)
	sort.SliceStable(bnk.defs, func(i, j int) bool {
		return bnk.defs[i].Offset < bnk.defs[j].Offset
	})

	names := make(map[string]bool, len(defs))
	for i, r := range bnk.defs {
		if r.Offset&0x03 != 0 {
			return nil, curated.Errorf(Misaligned, label, r.Name, r.Offset)
		}
		if j, ok := bnk.decode[r.Offset]; ok {
			return nil, curated.Errorf(DuplicateOffset, label, r.Offset, bnk.defs[j].Name, r.Name)
		}
		if names[r.Name] {
			return nil, curated.Errorf(DuplicateName, label, r.Name)
		}
		names[r.Name] = true
		bnk.decode[r.Offset] = i
	}

	bnk.Reset()

	return bnk, nil
}

// Label returns the label of the bank.
func (bnk *Bank) Label() string {
	return bnk.label
}

// Reset every register to its reset value.
func (bnk *Bank) Reset() {
	for i, r := range bnk.defs {
		bnk.values[i] = r.Reset
	}
}

// Read the register at offset. Reading an offset that does not decode to a
// register returns zero.
func (bnk *Bank) Read(offset uint32) uint32 {
	if i, ok := bnk.decode[offset]; ok {
		return bnk.values[i]
	}
	logger.Logf(logger.Allow, bnk.label, "read: bad offset %#02x", offset)
	return 0
}

// Write the register at offset. Writing an offset that does not decode to a
// register has no effect.
func (bnk *Bank) Write(offset uint32, data uint32) {
	if i, ok := bnk.decode[offset]; ok {
		bnk.values[i] = data
		return
	}
	logger.Logf(logger.Allow, bnk.label, "write: bad offset %#02x (value %#08x)", offset, data)
}

// Lookup returns the definition of the register at offset.
func (bnk *Bank) Lookup(offset uint32) (Register, bool) {
	if i, ok := bnk.decode[offset]; ok {
		return bnk.defs[i], true
	}
	return Register{}, false
}

// Registers returns the register definitions in offset order.
func (bnk *Bank) Registers() []Register {
	r := make([]Register, len(bnk.defs))
	copy(r, bnk.defs)
	return r
}

// Value returns the current value of the named register. Unlike Read() a
// miss is not logged.
func (bnk *Bank) Value(name string) (uint32, bool) {
	for i, r := range bnk.defs {
		if r.Name == name {
			return bnk.values[i], true
		}
	}
	return 0, false
}

// String returns a table of the registers in the bank, one per line.
func (bnk *Bank) String() string {
	s := strings.Builder{}
	for i, r := range bnk.defs {
		s.WriteString(fmt.Sprintf("%03x %-10s %08x\n", r.Offset, r.Name, bnk.values[i]))
	}
	return s.String()
}
