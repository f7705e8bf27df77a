// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestWidthLRU(t *testing.T) {
	c := newWidthCache()
	put := func(i int) {
		c.Put(widthKey{str: strconv.Itoa(i)}, fixed.I(i))
	}
	get := func(i int) bool {
		v, ok := c.Get(widthKey{str: strconv.Itoa(i)})
		return ok && v == fixed.I(i)
	}
	testLRU(t, maxWidths, put, get)
}

func TestEvict(t *testing.T) {
	var evicted []int
	c := &lru[int, int]{size: 2, evict: func(v int) {
		evicted = append(evicted, v)
	}}
	c.Put(1, 10)
	c.Put(2, 20)
	c.Get(1)
	c.Put(3, 30)
	if len(evicted) != 1 || evicted[0] != 20 {
		t.Fatalf("evicted %v, want [20]", evicted)
	}
	c.Put(3, 31)
	if len(evicted) != 2 || evicted[1] != 30 {
		t.Fatalf("replaced value not evicted: %v", evicted)
	}
	c.Clear()
	if c.Len() != 0 || len(evicted) != 4 {
		t.Fatalf("after Clear: len %d, evicted %v", c.Len(), evicted)
	}
	if _, ok := c.Get(1); ok {
		t.Error("value survived Clear")
	}
}

func testLRU(t *testing.T, size int, put func(i int), get func(i int) bool) {
	for i := 0; i < size; i++ {
		put(i)
	}
	for i := 0; i < size; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(size)
	for i := 1; i < size+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
