// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// lru is a fixed size least recently used cache.
type lru[K comparable, V any] struct {
	m          map[K]*lruElem[K, V]
	head, tail *lruElem[K, V]
	size       int
	// evict, if set, is called with every value dropped from the
	// cache.
	evict func(V)
}

type lruElem[K comparable, V any] struct {
	next, prev *lruElem[K, V]
	key        K
	val        V
}

// widthKey identifies a measured string.
type widthKey struct {
	ppem fixed.Int26_6
	str  string
}

const (
	maxWidths = 1000
	maxFaces  = 32
)

func newWidthCache() *lru[widthKey, fixed.Int26_6] {
	return &lru[widthKey, fixed.Int26_6]{size: maxWidths}
}

func newFaceCache() *lru[fixed.Int26_6, font.Face] {
	return &lru[fixed.Int26_6, font.Face]{
		size: maxFaces,
		evict: func(f font.Face) {
			f.Close()
		},
	}
}

func (l *lru[K, V]) Get(k K) (V, bool) {
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.insert(e)
		return e.val, true
	}
	var zero V
	return zero, false
}

func (l *lru[K, V]) Put(k K, v V) {
	if l.m == nil {
		l.m = make(map[K]*lruElem[K, V])
		l.head = new(lruElem[K, V])
		l.tail = new(lruElem[K, V])
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.drop(e.val)
	}
	e := &lruElem[K, V]{key: k, val: v}
	l.m[k] = e
	l.insert(e)
	if len(l.m) > l.size {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
		l.drop(oldest.val)
	}
}

// Len returns the number of cached values.
func (l *lru[K, V]) Len() int {
	return len(l.m)
}

// Clear drops every value.
func (l *lru[K, V]) Clear() {
	for _, e := range l.m {
		l.drop(e.val)
	}
	l.m = nil
	l.head, l.tail = nil, nil
}

func (l *lru[K, V]) drop(v V) {
	if l.evict != nil {
		l.evict(v)
	}
}

func (l *lru[K, V]) remove(e *lruElem[K, V]) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (l *lru[K, V]) insert(e *lruElem[K, V]) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}
