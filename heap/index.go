// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "math/bits"

// Row returns the row of the tree that holds index i,
// counting the root as row 0. Row r holds indexes
// 2^r-1 through 2^(r+1)-2.
func Row(i int) int {
	return bits.Len(uint(i)+1) - 1
}

// rowStart returns the index of the first element in row r.
func rowStart(r int) int {
	return 1<<r - 1
}

// Parent returns the index of the parent of index i,
// or -1 if i is the root.
//
// It agrees with the usual (i-1)/2, but is derived from
// the position of i within its row.
func Parent(i int) int {
	if i <= 0 {
		return -1
	}
	r := Row(i)
	pos := i - rowStart(r)
	return rowStart(r-1) + pos/2
}

// Children returns the indexes of the left and right children
// of index i. Either may be beyond the end of the heap.
//
// They agree with the usual 2i+1 and 2i+2.
func Children(i int) (left, right int) {
	r := Row(i)
	pos := i - rowStart(r)
	left = rowStart(r+1) + 2*pos
	return left, left + 1
}
