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

package logger

import (
	"io"
	"strings"
)

const (
	penNormal = "\033[0m"
	penTag    = "\033[2;36m"
	penRepeat = "\033[2;31m"
)

// Colorizer applies basic coloring rules to logging output. It's intended to
// sit between SetEcho() and a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Each line is expected to be in the
// format produced by Entry.String().
func (c Colorizer) Write(p []byte) (int, error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			if _, err := io.WriteString(c.out, l); err != nil {
				return 0, err
			}
			continue
		}

		s := strings.Builder{}
		s.WriteString(penTag)
		s.WriteString(tag)
		s.WriteString(penNormal)
		s.WriteString(": ")

		if i := strings.LastIndex(detail, " (repeat x"); i >= 0 {
			s.WriteString(detail[:i])
			s.WriteString(penRepeat)
			s.WriteString(strings.TrimSuffix(detail[i:], "\n"))
			s.WriteString(penNormal)
			s.WriteString("\n")
		} else {
			s.WriteString(detail)
		}

		if _, err := io.WriteString(c.out, s.String()); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
