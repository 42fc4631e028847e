package partname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{9, 2},
		{10, 2},
		{99, 2},
		{100, 2},
		{101, 3},
		{999, 3},
		{1000, 3},
		{1001, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Width(c.total), "total=%d", c.total)
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "part-00", Name(0, 3))
	assert.Equal(t, "part-02", Name(2, 3))
	assert.Equal(t, "part-099", Name(99, 101))
}

func TestName_IterationOrderIsLexicographic(t *testing.T) {
	// part-<k> names, zero-padded for the given total, must sort the same
	// lexicographically as numerically — directory iteration relies on this
	// (spec.md §4.8, §9 Open Questions).
	total := 12
	var names []string
	for i := 0; i < total; i++ {
		names = append(names, Name(i, total))
	}
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
