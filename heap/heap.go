// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary heap stored in a slice.
// A heap is a tree with the property that no node should sit
// nearer the root than its parent, according to the heap's
// ordering function.
//
// The tree is complete and laid out in level order, so the root
// is at index 0 and the parent and children of any node are found
// by index arithmetic alone; see [Parent] and [Children].
//
// Whether the heap yields the smallest or the largest element first
// depends only on the ordering function: [Ascending] gives a min-heap
// and [Descending] a max-heap.
//
// A Heap is not safe for concurrent use.
package heap

import (
	"cmp"
	"errors"
)

// ErrEmpty is returned by Pop, Peek and Replace on a heap with no elements.
var ErrEmpty = errors.New("heap is empty")

// Ascending orders a heap so that the smallest element is at the root.
func Ascending[E cmp.Ordered](a, b E) bool {
	return cmp.Less(a, b)
}

// Descending orders a heap so that the largest element is at the root.
func Descending[E cmp.Ordered](a, b E) bool {
	return cmp.Less(b, a)
}

// New returns a binary heap holding the given items, using less to compare.
// less(a, b) reports whether a must sit nearer the root than b.
//
// Items are pushed one at a time in slice order, so the resulting
// layout is the one produced by pushing them individually.
// The items slice itself is not retained.
func New[E any](items []E, less func(E, E) bool) *Heap[E] {
	h := &Heap[E]{
		items: make([]E, 0, len(items)),
		less:  less,
	}
	for _, x := range items {
		h.Push(x)
	}
	return h
}

// Heap implements a binary heap.
type Heap[E any] struct {
	// items holds the complete tree in level order.
	// The first item sits nearer the root than all the others.
	items []E
	less  func(E, E) bool
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.items)
}

// Items returns the backing slice in level order.
// The caller must not modify it.
func (h *Heap[E]) Items() []E {
	return h.items
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the root element.
// It returns ErrEmpty if the heap has no elements.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Pop() (E, error) {
	n := len(h.items) - 1
	if n < 0 {
		return *new(E), ErrEmpty
	}
	x := h.items[0]
	h.items[0] = h.items[n]
	h.items[n] = *new(E)
	h.items = h.items[:n]
	h.down(0)
	return x, nil
}

// Peek returns the root element without removing it.
// It returns ErrEmpty if the heap has no elements.
func (h *Heap[E]) Peek() (E, error) {
	if len(h.items) == 0 {
		return *new(E), ErrEmpty
	}
	return h.items[0], nil
}

// Replace returns the current root and pushes x onto the heap.
//
// Note that the root is not removed: x enters at the bottom of the
// tree like any other pushed element and the heap grows by one.
// If the heap is empty, Replace returns ErrEmpty and x is not pushed.
func (h *Heap[E]) Replace(x E) (E, error) {
	root, err := h.Peek()
	if err != nil {
		return root, err
	}
	h.Push(x)
	return root, nil
}

// ReplaceAt overwrites the element at index i with x and moves it
// towards the root as far as the ordering requires.
// It panics if i is out of range.
//
// The caller must ensure that x does not need to move further from
// the root; if it might, use a Pop and Push instead.
func (h *Heap[E]) ReplaceAt(i int, x E) {
	if i < 0 || i >= len(h.items) {
		panic("(*Heap).ReplaceAt index out of range")
	}
	h.items[i] = x
	h.up(i)
}

func (h *Heap[E]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Heap[E]) up(j int) {
	for j > 0 {
		i := Parent(j)
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[E]) down(i int) {
	n := len(h.items)
	for {
		j1, j2 := Children(i)
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 < n && h.less(h.items[j2], h.items[j1]) {
			j = j2 // right child
		}
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
}
