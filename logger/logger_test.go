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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/stm32f1/logger"
	"github.com/jetsetilly/stm32f1/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "rcc", "read: bad offset %#02x", 0x28)
	log.Logf(logger.Allow, "rcc", "read: bad offset %#02x", 0x28)
	log.Logf(logger.Allow, "rcc", "read: bad offset %#02x", 0x28)
	test.ExpectEquality(t, log.Len(), 1)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "rcc: read: bad offset 0x28 (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(10)
	for i := range 25 {
		log.Logf(logger.Allow, "tag", "entry %d", i)
	}
	test.ExpectEquality(t, log.Len(), 10)

	w := &strings.Builder{}
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "tag: entry 24\n")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}
	log.SetEcho(w)

	log.Log(logger.Allow, "fsmc", "write: bad offset 0x100")
	test.ExpectSuccess(t, w.Compare("fsmc: write: bad offset 0x100\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "fsmc", "silent")
	test.ExpectSuccess(t, w.Compare("fsmc: write: bad offset 0x100\n"))
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("rcc: read: bad offset 0x28\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("rcc: read: bad offset 0x28\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "read: bad offset 0x28\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "rcc"))
}

func TestConcurrentLogging(t *testing.T) {
	log := logger.NewLogger(1000)

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				log.Logf(logger.Allow, "usart", "goroutine %d: entry %d", g, i)
			}
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, log.Len(), 400)
	test.ExpectEquality(t, len(log.Entries()), 400)
}
