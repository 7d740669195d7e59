package hashtable

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestComparableHasher(t *testing.T) {
	h := NewComparableHasher[string]()
	qt.Assert(t, qt.Equals(h.Hash("abc"), h.Hash("abc")))
	qt.Assert(t, qt.IsTrue(h.Equal("abc", "abc")))
	qt.Assert(t, qt.IsFalse(h.Equal("abc", "abd")))

	type point struct{ x, y int }
	ph := NewComparableHasher[point]()
	qt.Assert(t, qt.Equals(ph.Hash(point{1, 2}), ph.Hash(point{1, 2})))
}

func TestXXHashersAreStable(t *testing.T) {
	// Known xxHash64 values with seed 0.
	qt.Assert(t, qt.Equals(StringHasher{}.Hash(""), uint64(0xef46db3751d8e999)))
	qt.Assert(t, qt.Equals(BytesHasher{}.Hash(nil), uint64(0xef46db3751d8e999)))
	qt.Assert(t, qt.Equals(StringHasher{}.Hash("hello"), BytesHasher{}.Hash([]byte("hello"))))

	qt.Assert(t, qt.IsTrue(BytesHasher{}.Equal([]byte("a"), []byte("a"))))
	qt.Assert(t, qt.IsFalse(BytesHasher{}.Equal([]byte("a"), []byte("b"))))
	qt.Assert(t, qt.IsFalse(StringHasher{}.Equal("a", "b")))
}
