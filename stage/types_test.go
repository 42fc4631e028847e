package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderedCounts_SortsKeys(t *testing.T) {
	oc := NewOrderedCounts(map[Word]int{"the": 2, "cat": 1, "mat": 1, "sat": 1})
	require.True(t, oc.IsSorted())
	assert.Equal(t, OrderedCounts{
		{Word: "cat", Count: 1},
		{Word: "mat", Count: 1},
		{Word: "sat", Count: 1},
		{Word: "the", Count: 2},
	}, oc)
}

func TestOrderedCounts_Sum(t *testing.T) {
	oc := NewOrderedCounts(map[Word]int{"a": 3, "b": 5})
	assert.Equal(t, 8, oc.Sum())
}

func TestOrderedCounts_Merge(t *testing.T) {
	a := NewOrderedCounts(map[Word]int{"red": 1, "green": 1})
	b := NewOrderedCounts(map[Word]int{"green": 1, "blue": 1})

	merged := a.Merge(b)
	require.True(t, merged.IsSorted())
	assert.Equal(t, OrderedCounts{
		{Word: "blue", Count: 1},
		{Word: "green", Count: 2},
		{Word: "red", Count: 1},
	}, merged)
}

func TestOrderedCounts_IsSorted_DetectsOutOfOrder(t *testing.T) {
	oc := OrderedCounts{{Word: "b", Count: 1}, {Word: "a", Count: 1}}
	assert.False(t, oc.IsSorted())
}

func TestOrderedCounts_IsSorted_EmptyAndSingleton(t *testing.T) {
	assert.True(t, OrderedCounts(nil).IsSorted())
	assert.True(t, OrderedCounts{{Word: "a", Count: 1}}.IsSorted())
}
