package heap

import (
	"fmt"
	"strings"
)

// String renders the heap one tree row per line,
// for example:
//
//	[1]
//	[3 2]
//	[5 9 8]
//
// An empty heap renders as "[]".
func (h *Heap[E]) String() string {
	n := len(h.items)
	if n == 0 {
		return "[]"
	}
	var sb strings.Builder
	for r := 0; rowStart(r) < n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, h.items[rowStart(r):min(rowStart(r+1), n)])
	}
	return sb.String()
}
