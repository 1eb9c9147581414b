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

// Package prefs facilitates the storage of preferences. Preference values are
// typed (Bool, String, Int) and each type supports hooks that are called just
// before and just after a new value is set. The pre hook can reject a value by
// returning an error, which is how validation of a preference is done.
//
// Preference values are collected under string keys in a Group. A Group can
// take values from the command line stack, which is a list of key/value
// strings of the form:
//
//	soc.density::low; board.sysclk::8000000
//
// Pushing a string onto the stack with PushCommandLineStack() and then calling
// Group.ApplyCommandLine() overrides the values of the keys named in the
// string. Keys that are not used remain on the stack and are reported by
// PopCommandLineStack().
package prefs
