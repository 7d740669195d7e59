package hashtable

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// A Hasher defines a hash function and an equivalence relation over
// values of type T. Values that are Equal must have the same Hash.
type Hasher[T any] interface {
	Hash(T) uint64
	Equal(x, y T) bool
}

// ComparableHasher is an implementation of [Hasher] for comparable types.
// Its Equal(x, y) method is consistent with x == y.
//
// Hashes are seeded per hasher, so bucket layout differs between
// hashers and between runs.
type ComparableHasher[T comparable] struct {
	_    [0]func(T) // disallow conversion between ComparableHasher[X] and ComparableHasher[Y]
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a fresh random seed.
func NewComparableHasher[T comparable]() ComparableHasher[T] {
	return ComparableHasher[T]{seed: maphash.MakeSeed()}
}

func (h ComparableHasher[T]) Hash(v T) uint64 { return maphash.Comparable(h.seed, v) }
func (ComparableHasher[T]) Equal(x, y T) bool { return x == y }

// StringHasher hashes strings with 64-bit xxHash.
// Unlike [ComparableHasher], its hashes are stable across runs.
type StringHasher struct{}

func (StringHasher) Hash(s string) uint64   { return xxhash.Sum64String(s) }
func (StringHasher) Equal(x, y string) bool { return x == y }

// BytesHasher hashes byte slices by content with 64-bit xxHash.
// It allows []byte, which is not comparable, to be used as a key.
type BytesHasher struct{}

func (BytesHasher) Hash(b []byte) uint64   { return xxhash.Sum64(b) }
func (BytesHasher) Equal(x, y []byte) bool { return bytes.Equal(x, y) }
