// Package partname computes the zero-padded partition file names spec.md
// §4.8 specifies: width = max(2, ceil(log10(N))), recovered purely by
// directory iteration rather than by parsing the name back.
package partname

import (
	"fmt"
	"strconv"
)

// Width returns the zero-padding width for total partitions. This is
// equivalent to max(2, ceil(log10(total))): the number of digits needed to
// print the highest partition index, total-1.
func Width(total int) int {
	if total <= 1 {
		return 2
	}
	w := len(strconv.Itoa(total - 1))
	if w < 2 {
		return 2
	}
	return w
}

// Name returns the "part-<padded idx>" file name for idx out of total
// partitions.
func Name(idx, total int) string {
	return fmt.Sprintf("part-%0*d", Width(total), idx)
}
