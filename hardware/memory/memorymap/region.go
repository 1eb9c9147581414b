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

package memorymap

import (
	"fmt"

	"github.com/jetsetilly/stm32f1/curated"
)

// Kind indicates how a region is backed.
type Kind int

// List of valid Kind values.
const (
	RAM Kind = iota
	ROM
	Alias
	IO
)

func (k Kind) String() string {
	switch k {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	case Alias:
		return "Alias"
	case IO:
		return "IO"
	}
	return "undefined"
}

// Device is the interface to the memory mapped registers of a peripheral.
// Offsets are relative to the origin of the region the device is mapped to.
type Device interface {
	Read(offset uint32) uint32
	Write(offset uint32, data uint32)
}

// Region is a contiguous range of addresses in the address space.
type Region struct {
	name string
	kind Kind
	size uint32

	// origin is set when the region is added to an address space
	origin uint32
	mapped bool

	// RAM and ROM
	data []byte

	// Alias
	target       *Region
	targetOffset uint32

	// IO
	device Device
}

// NewRAM creates a new RAM region of the specified size.
func NewRAM(name string, size uint32) *Region {
	return &Region{
		name: name,
		kind: RAM,
		size: size,
		data: make([]byte, size),
	}
}

// NewROM creates a new ROM region of the specified size. The contents of the
// ROM are zero until they are set with AddressSpace.Program().
func NewROM(name string, size uint32) *Region {
	return &Region{
		name: name,
		kind: ROM,
		size: size,
		data: make([]byte, size),
	}
}

// NewAlias creates a region that is a view onto the target region, starting
// at offset in the target.
func NewAlias(name string, target *Region, offset uint32, size uint32) (*Region, error) {
	if uint64(offset)+uint64(size) > uint64(target.size) {
		return nil, curated.Errorf(AliasOutOfRange, name, target.name)
	}
	return &Region{
		name:         name,
		kind:         Alias,
		size:         size,
		target:       target,
		targetOffset: offset,
	}, nil
}

// NewIO creates a region that forwards accesses to a Device.
func NewIO(name string, size uint32, dev Device) *Region {
	return &Region{
		name:   name,
		kind:   IO,
		size:   size,
		device: dev,
	}
}

// Name returns the name of the region.
func (r *Region) Name() string {
	return r.name
}

// Kind returns the kind of region.
func (r *Region) Kind() Kind {
	return r.kind
}

// Size returns the size of the region in bytes.
func (r *Region) Size() uint32 {
	return r.size
}

// Origin returns the address of the first byte of the region. Only
// meaningful once the region has been added to an address space.
func (r *Region) Origin() uint32 {
	return r.origin
}

// Memtop returns the address of the last byte of the region.
func (r *Region) Memtop() uint32 {
	return r.origin + r.size - 1
}

// Mapped returns true if the region has been added to an address space.
func (r *Region) Mapped() bool {
	return r.mapped
}

// Contains returns true if the address is within the region.
func (r *Region) Contains(addr uint32) bool {
	return r.mapped && addr >= r.origin && addr-r.origin < r.size
}

// Target returns the aliased region and the offset into it. Returns nil for
// regions that are not aliases.
func (r *Region) Target() (*Region, uint32) {
	return r.target, r.targetOffset
}

// Device returns the device of an IO region. Returns nil for other regions.
func (r *Region) Device() Device {
	return r.device
}

func (r *Region) String() string {
	switch r.kind {
	case Alias:
		return fmt.Sprintf("%s (%s of %s+%#x)", r.name, r.kind, r.target.name, r.targetOffset)
	}
	return fmt.Sprintf("%s (%s)", r.name, r.kind)
}

// resolve follows aliases until a RAM, ROM or IO region is found. The width
// argument is the number of bytes that will be accessed and is used to check
// that the access is wholly inside every region along the way.
func (r *Region) resolve(offset uint32, width uint32) (*Region, uint32, error) {
	for r.kind == Alias {
		if uint64(offset)+uint64(width) > uint64(r.size) {
			return nil, 0, curated.Errorf(Straddle, r.name, r.origin+offset)
		}
		offset += r.targetOffset
		r = r.target
	}

	if r.kind != IO && uint64(offset)+uint64(width) > uint64(r.size) {
		return nil, 0, curated.Errorf(Straddle, r.name, r.origin+offset)
	}

	return r, offset, nil
}
