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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/stm32f1/prefs"
	"github.com/jetsetilly/stm32f1/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestHooks(t *testing.T) {
	var s prefs.String
	var post string

	s.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "invalid" {
			return fmt.Errorf("invalid value")
		}
		return nil
	})
	s.SetHookPost(func(v prefs.Value) error {
		post = v.(string)
		return nil
	})

	test.ExpectSuccess(t, s.Set("low"))
	test.ExpectEquality(t, s.String(), "low")
	test.ExpectEquality(t, post, "low")

	// rejected values leave the preference unchanged
	test.ExpectFailure(t, s.Set("invalid"))
	test.ExpectEquality(t, s.String(), "low")
	test.ExpectEquality(t, post, "low")
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectSuccess(t, i.Set(24000000))
	test.ExpectEquality(t, i.Get().(int64), int64(24000000))
	test.ExpectSuccess(t, i.Set("0x10000000"))
	test.ExpectEquality(t, i.Get().(int64), int64(0x10000000))
	test.ExpectFailure(t, i.Set("fast"))
	test.ExpectFailure(t, i.Set(1.5))
	test.ExpectEquality(t, i.String(), "268435456")
}

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("nope"))
	test.ExpectEquality(t, b.Get().(bool), false)
}

func TestGroup(t *testing.T) {
	var density prefs.String
	var sysclk prefs.Int

	g := prefs.NewGroup()
	test.DemandSuccess(t, g.Add("soc.density", &density))
	test.DemandSuccess(t, g.Add("board.sysclk", &sysclk))
	test.ExpectFailure(t, g.Add("soc.density", &density))
	test.ExpectFailure(t, g.Add("bad::key", &density))

	test.ExpectSuccess(t, density.Set("high"))

	prefs.PushCommandLineStack("soc.density::medium; unused::value")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, density.String(), "medium")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::value")

	test.ExpectEquality(t, g.String(), "board.sysclk :: 0\nsoc.density :: medium\n")

	v, ok := g.Get("soc.density")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "medium")
	test.ExpectFailure(t, g.Set("missing", 1))
}
