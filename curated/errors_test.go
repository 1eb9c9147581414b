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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/test"
)

const (
	testError      = "test error: %s"
	testErrorWrap  = "wrapped: %v"
	testErrorOther = "other error"
)

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("soc: %v", curated.Errorf("soc: %v", "bad density"))
	test.ExpectEquality(t, e.Error(), "soc: bad density")

	e = curated.Errorf("a: %v", curated.Errorf("b: %v", curated.Errorf("b: c")))
	test.ExpectEquality(t, e.Error(), "a: b: c")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorOther))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(testErrorWrap, e)

	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorWrap))
	test.ExpectFailure(t, curated.Has(f, testErrorOther))
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf(testErrorWrap, sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
}
