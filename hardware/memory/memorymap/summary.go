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
	"strings"
)

// Summary returns a single multiline string detailing all the regions in the
// address space. Useful for reference.
func (mem *AddressSpace) Summary() string {
	s := strings.Builder{}
	for _, r := range mem.regions {
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%-5s\t%s", r.origin, r.Memtop(), r.kind, r.name))
		if r.kind == Alias {
			s.WriteString(fmt.Sprintf(" -> %s", r.target.name))
		}
		s.WriteString("\n")
	}
	return s.String()
}
