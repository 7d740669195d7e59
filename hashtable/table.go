// Package hashtable implements a hash table that resolves collisions
// by chaining and doubles its bucket count when too many buckets
// are in use.
//
// The load of a table is the fraction of its buckets that hold at
// least one entry. This is not the same as entries per bucket: a
// bucket holding five colliding entries counts once.
package hashtable

import (
	"iter"
	"strings"
)

const (
	// DefaultSize is a reasonable initial bucket count.
	DefaultSize = 256

	// DefaultMaxLoad is a reasonable maximum load.
	DefaultMaxLoad = 0.7
)

// Table is a hash table mapping keys K to values V.
//
// Just as with map[K]V, a nil *Table is a valid empty table
// for reading.
//
// A Table is not safe for concurrent use.
type Table[K, V any] struct {
	hasher  Hasher[K]
	maxLoad float64
	buckets []chain[K, V]
	used    int // buckets with at least one entry
	length  int
}

// New returns an empty table of comparable keys with the given
// initial bucket count and maximum load, hashing keys with a
// [ComparableHasher].
//
// It panics if size is less than 1 or maxLoad is not positive.
func New[K comparable, V any](size int, maxLoad float64) *Table[K, V] {
	return NewWithHasher[K, V](NewComparableHasher[K](), size, maxLoad)
}

// NewWithHasher is like [New] but hashes and compares keys with h.
func NewWithHasher[K, V any](h Hasher[K], size int, maxLoad float64) *Table[K, V] {
	if size < 1 {
		panic("hashtable: size must be at least 1")
	}
	if !(maxLoad > 0) {
		panic("hashtable: maxLoad must be positive")
	}
	return &Table[K, V]{
		hasher:  h,
		maxLoad: maxLoad,
		buckets: make([]chain[K, V], size),
	}
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Load returns the number of buckets in use, the total number of
// buckets, and the ratio between them.
func (t *Table[K, V]) Load() (used, size int, ratio float64) {
	if t == nil {
		return 0, 0, 0
	}
	return t.used, len(t.buckets), float64(t.used) / float64(len(t.buckets))
}

func (t *Table[K, V]) bucket(k K) *chain[K, V] {
	return &t.buckets[t.hasher.Hash(k)%uint64(len(t.buckets))]
}

// Get returns the value for key k and reports whether it was found.
// If k is not present, it returns the zero value of V and false.
func (t *Table[K, V]) Get(k K) (V, bool) {
	if t == nil || len(t.buckets) == 0 {
		return *new(V), false
	}
	return t.bucket(k).lookup(k, t.hasher.Equal)
}

// Set sets the value for k to v. If this brings the load above the
// table's maximum, the bucket count is doubled, repeatedly if need be,
// before Set returns.
func (t *Table[K, V]) Set(k K, v V) {
	if t == nil {
		panic("(*Table).Set called on nil *Table")
	}
	t.insert(k, v)
	for t.overloaded() {
		t.resize()
	}
}

func (t *Table[K, V]) insert(k K, v V) {
	newBucket, replaced := t.bucket(k).push(k, v, t.hasher.Equal)
	if newBucket {
		t.used++
	}
	if !replaced {
		t.length++
	}
}

func (t *Table[K, V]) overloaded() bool {
	return float64(t.used)/float64(len(t.buckets)) > t.maxLoad
}

// resize doubles the bucket count and rehashes every entry,
// visiting the old buckets in order and each chain from its head.
// It does not check the load while rehashing.
func (t *Table[K, V]) resize() {
	old := t.buckets
	t.buckets = make([]chain[K, V], 2*len(old))
	t.used = 0
	t.length = 0
	for i := range old {
		for k, v := range old[i].all() {
			t.insert(k, v)
		}
	}
}

// All returns an iterator over (key, value) pairs in bucket order.
// The order changes when the table is resized.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for i := range t.buckets {
			for k, v := range t.buckets[i].all() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// String renders each non-empty bucket's values on its own line.
func (t *Table[K, V]) String() string {
	if t == nil {
		return ""
	}
	var lines []string
	for i := range t.buckets {
		if t.buckets[i].len() > 0 {
			lines = append(lines, t.buckets[i].String())
		}
	}
	return strings.Join(lines, "\n")
}
