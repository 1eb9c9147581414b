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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf()
// but the pattern is kept with the error so that the type of the error can be
// recovered later without string matching on the formatted message:
//
//	e := curated.Errorf("memorymap: overlapping region (%s)", name)
//
//	if curated.Is(e, "memorymap: overlapping region (%s)") {
//		...
//	}
//
// In practice, packages export the patterns they use as constants and callers
// compare against those:
//
//	if curated.Is(err, memorymap.Overlap) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in the
// chain of wrapped curated errors.
//
// When a curated error is wrapped by another curated error, adjacent message
// parts that are identical are collapsed. So:
//
//	e := curated.Errorf("soc: %v", curated.Errorf("soc: %v", "bad density"))
//
// reads as "soc: bad density" and not "soc: soc: bad density".
//
// Curated errors also implement Unwrap() so the standard library errors
// package works as expected with them.
package curated
