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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/stm32f1/test"
)

func TestFromSettings(t *testing.T) {
	v, r := fromSettings("", nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "4d1c2a9"},
		{Key: "vcs.modified", Value: "true"},
	}

	v, r = fromSettings("", settings)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "4d1c2a9+dirty")

	settings[2].Value = "false"
	v, r = fromSettings("v0.3.0", settings)
	test.ExpectEquality(t, v, "v0.3.0")
	test.ExpectEquality(t, r, "4d1c2a9")
}
