package hashtable

import (
	"testing"

	quicktest "github.com/frankban/quicktest"
)

func eqString(x, y string) bool { return x == y }

func chainKeys[V any](c *chain[string, V]) []string {
	var keys []string
	for k := range c.all() {
		keys = append(keys, k)
	}
	return keys
}

func TestChainPush(t *testing.T) {
	c := quicktest.New(t)
	var ch chain[string, int]

	newBucket, replaced := ch.push("a", 1, eqString)
	c.Assert(newBucket, quicktest.IsTrue)
	c.Assert(replaced, quicktest.IsFalse)

	newBucket, replaced = ch.push("b", 2, eqString)
	c.Assert(newBucket, quicktest.IsFalse)
	c.Assert(replaced, quicktest.IsFalse)

	ch.push("c", 3, eqString)
	c.Assert(chainKeys(&ch), quicktest.DeepEquals, []string{"a", "b", "c"})
	c.Assert(ch.String(), quicktest.Equals, "[1, 2, 3]")
}

func TestChainPushReplacesInPlace(t *testing.T) {
	c := quicktest.New(t)
	var ch chain[string, int]
	for i, k := range []string{"a", "b", "c", "d"} {
		ch.push(k, i, eqString)
	}

	// Head.
	newBucket, replaced := ch.push("a", 10, eqString)
	c.Assert(newBucket, quicktest.IsFalse)
	c.Assert(replaced, quicktest.IsTrue)

	// Middle and tail.
	ch.push("c", 12, eqString)
	ch.push("d", 13, eqString)

	c.Assert(ch.len(), quicktest.Equals, 4)
	c.Assert(chainKeys(&ch), quicktest.DeepEquals, []string{"a", "b", "c", "d"})
	c.Assert(ch.String(), quicktest.Equals, "[10, 1, 12, 13]")
}

func TestChainLookup(t *testing.T) {
	c := quicktest.New(t)
	var ch chain[string, int]

	v, ok := ch.lookup("a", eqString)
	c.Assert(ok, quicktest.IsFalse)
	c.Assert(v, quicktest.Equals, 0)
	c.Assert(ch.String(), quicktest.Equals, "[]")

	ch.push("a", 1, eqString)
	ch.push("b", 0, eqString)

	v, ok = ch.lookup("a", eqString)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(v, quicktest.Equals, 1)

	// A zero value is still found.
	v, ok = ch.lookup("b", eqString)
	c.Assert(ok, quicktest.IsTrue)
	c.Assert(v, quicktest.Equals, 0)

	_, ok = ch.lookup("z", eqString)
	c.Assert(ok, quicktest.IsFalse)
}

func TestChainAllEarlyExit(t *testing.T) {
	c := quicktest.New(t)
	var ch chain[string, int]
	ch.push("a", 1, eqString)
	ch.push("b", 2, eqString)

	count := 0
	for range ch.all() {
		count++
		break
	}
	c.Assert(count, quicktest.Equals, 1)
}
