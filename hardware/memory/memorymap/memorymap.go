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
	"encoding/binary"
	"sort"

	"github.com/jetsetilly/stm32f1/curated"
)

// List of error patterns returned by memorymap functions.
const (
	ZeroSize        = "memorymap: %s: region has zero size"
	Overflow        = "memorymap: %s: region extends beyond the 32bit address space"
	AlreadyMapped   = "memorymap: %s: region is already mapped"
	Overlap         = "memorymap: %s: overlaps %s (%#08x -> %#08x)"
	AliasOutOfRange = "memorymap: %s: alias extends beyond target region %s"
	Unmapped        = "memorymap: unmapped address %#08x"
	ReadOnly        = "memorymap: %s: region is read-only (%#08x)"
	Straddle        = "memorymap: %s: access straddles end of region (%#08x)"
	NotStorage      = "memorymap: %s: region has no storage"
)

// AddressSpace is the collection of regions that make up the memory map.
type AddressSpace struct {
	name string

	// regions sorted by origin
	regions []*Region
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type.
func NewAddressSpace(name string) *AddressSpace {
	return &AddressSpace{
		name: name,
	}
}

// Name returns the name of the address space.
func (mem *AddressSpace) Name() string {
	return mem.name
}

// Add the region to the address space at the specified origin. The region
// must not overlap any existing region.
func (mem *AddressSpace) Add(origin uint32, r *Region) error {
	if r.mapped {
		return curated.Errorf(AlreadyMapped, r.name)
	}
	if r.size == 0 {
		return curated.Errorf(ZeroSize, r.name)
	}

	end := uint64(origin) + uint64(r.size)
	if end > 1<<32 {
		return curated.Errorf(Overflow, r.name)
	}

	for _, o := range mem.regions {
		if uint64(origin) <= uint64(o.Memtop()) && uint64(o.origin) < end {
			return curated.Errorf(Overlap, r.name, o.name, o.origin, o.Memtop())
		}
	}

	r.origin = origin
	r.mapped = true

	i := sort.Search(len(mem.regions), func(i int) bool {
		return mem.regions[i].origin > origin
	})
	mem.regions = append(mem.regions, nil)
	copy(mem.regions[i+1:], mem.regions[i:])
	mem.regions[i] = r

	return nil
}

// Regions returns the regions in the address space in address order.
func (mem *AddressSpace) Regions() []*Region {
	r := make([]*Region, len(mem.regions))
	copy(r, mem.regions)
	return r
}

// Find the region containing the address. Returns the region and the offset
// of the address within the region.
func (mem *AddressSpace) Find(addr uint32) (*Region, uint32, bool) {
	i := sort.Search(len(mem.regions), func(i int) bool {
		return mem.regions[i].origin > addr
	}) - 1

	if i < 0 || !mem.regions[i].Contains(addr) {
		return nil, 0, false
	}

	r := mem.regions[i]
	return r, addr - r.origin, true
}

// Lookup returns the region with the specified name.
func (mem *AddressSpace) Lookup(name string) (*Region, bool) {
	for _, r := range mem.regions {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// access finds and resolves the region for an access of width bytes.
func (mem *AddressSpace) access(addr uint32, width uint32) (*Region, *Region, uint32, error) {
	r, offset, ok := mem.Find(addr)
	if !ok {
		return nil, nil, 0, curated.Errorf(Unmapped, addr)
	}
	res, offset, err := r.resolve(offset, width)
	if err != nil {
		return nil, nil, 0, err
	}
	return r, res, offset, nil
}

// Read8 reads a single byte. Reads from IO regions return the low byte of the
// device register at the address.
func (mem *AddressSpace) Read8(addr uint32) (uint8, error) {
	_, res, offset, err := mem.access(addr, 1)
	if err != nil {
		return 0, err
	}
	if res.kind == IO {
		return uint8(res.device.Read(offset)), nil
	}
	return res.data[offset], nil
}

// Write8 writes a single byte.
func (mem *AddressSpace) Write8(addr uint32, data uint8) error {
	r, res, offset, err := mem.access(addr, 1)
	if err != nil {
		return err
	}
	switch res.kind {
	case IO:
		res.device.Write(offset, uint32(data))
	case ROM:
		return curated.Errorf(ReadOnly, r.name, addr)
	default:
		res.data[offset] = data
	}
	return nil
}

// Read32 reads a little-endian 32bit value.
func (mem *AddressSpace) Read32(addr uint32) (uint32, error) {
	_, res, offset, err := mem.access(addr, 4)
	if err != nil {
		return 0, err
	}
	if res.kind == IO {
		return res.device.Read(offset), nil
	}
	return binary.LittleEndian.Uint32(res.data[offset:]), nil
}

// Write32 writes a little-endian 32bit value.
func (mem *AddressSpace) Write32(addr uint32, data uint32) error {
	r, res, offset, err := mem.access(addr, 4)
	if err != nil {
		return err
	}
	switch res.kind {
	case IO:
		res.device.Write(offset, data)
	case ROM:
		return curated.Errorf(ReadOnly, r.name, addr)
	default:
		binary.LittleEndian.PutUint32(res.data[offset:], data)
	}
	return nil
}

// Program copies data into memory starting at addr. Unlike the Write
// functions, ROM can be written to. This is how firmware images are loaded.
// The data must fit entirely inside one region.
func (mem *AddressSpace) Program(addr uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	r, res, offset, err := mem.access(addr, uint32(len(data)))
	if err != nil {
		return err
	}
	if res.kind == IO {
		return curated.Errorf(NotStorage, r.name)
	}
	copy(res.data[offset:], data)
	return nil
}
