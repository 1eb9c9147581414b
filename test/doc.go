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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. Currently supported types are bool and
// error. The nil value is considered a success, because of how errors work
// in Go (nil to indicate no error).
//
// The ExpectEquality() function compares like-typed values. The Demand
// variations of the functions are fatal to the test when they fail and are
// useful when the value being tested is used in further tests and so must be
// correct. For example, testing the length of a slice before indexing it.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for later comparison.
package test
