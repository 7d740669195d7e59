package hashtable

import (
	"fmt"
	"iter"
	"strings"
)

// entry is an association in a chain.
type entry[K, V any] struct {
	key K
	val V
}

// chain holds the entries whose keys fall in one bucket,
// in insertion order.
type chain[K, V any] struct {
	entries []entry[K, V]
}

// push sets the value for k. An existing entry for k is replaced
// where it stands; otherwise the new entry goes at the tail.
// It reports whether the chain was empty beforehand and whether
// an existing entry was replaced.
func (c *chain[K, V]) push(k K, v V, equal func(x, y K) bool) (newBucket, replaced bool) {
	if len(c.entries) == 0 {
		c.entries = append(c.entries, entry[K, V]{key: k, val: v})
		return true, false
	}
	for i := range c.entries {
		if equal(k, c.entries[i].key) {
			c.entries[i] = entry[K, V]{key: k, val: v}
			return false, true
		}
	}
	c.entries = append(c.entries, entry[K, V]{key: k, val: v})
	return false, false
}

// lookup returns the value of the first entry whose key is equal to k.
func (c *chain[K, V]) lookup(k K, equal func(x, y K) bool) (V, bool) {
	for i := range c.entries {
		if equal(k, c.entries[i].key) {
			return c.entries[i].val, true
		}
	}
	return *new(V), false
}

func (c *chain[K, V]) len() int {
	return len(c.entries)
}

func (c *chain[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range c.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// String renders the chain's values in order, as in "[1, 2, 3]".
func (c *chain[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range c.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e.val)
	}
	sb.WriteByte(']')
	return sb.String()
}
