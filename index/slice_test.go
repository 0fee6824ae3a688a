package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/label"
)

func TestIndex_SliceLocs_Sorted(t *testing.T) {
	idx := MustFromValues("a", "c", "e", "g")
	require.True(t, idx.IsSorted())

	tests := []struct {
		name        string
		start, stop *label.Label
		want        []int
	}{
		{"both bounds present, inclusive", lp("c"), lp("e"), []int{1, 2}},
		{"bounds absent from index", lp("b"), lp("f"), []int{1, 2}},
		{"open start", nil, lp("c"), []int{0, 1}},
		{"open stop", lp("e"), nil, []int{2, 3}},
		{"fully open", nil, nil, []int{0, 1, 2, 3}},
		{"below range", nil, lp("0"), []int{}},
		{"above range", lp("z"), nil, []int{}},
		{"inverted bounds", lp("g"), lp("a"), []int{}},
		{"single label", lp("g"), lp("g"), []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.SliceLocs(tt.start, tt.stop)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIndex_SliceLocs_Unsorted(t *testing.T) {
	idx := MustFromValues("foo", "bar", "f", "g")
	require.False(t, idx.IsSorted())

	tests := []struct {
		name        string
		start, stop *label.Label
		want        []int
	}{
		{"open start through bar", nil, lp("bar"), []int{1}},
		{"f through g includes foo", lp("f"), lp("g"), []int{0, 2, 3}},
		{"non contiguous", lp("bar"), lp("f"), []int{1, 2}},
		{"everything from b", lp("b"), nil, []int{0, 1, 2, 3}},
		{"nothing matches", lp("x"), lp("y"), []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.SliceLocs(tt.start, tt.stop)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// A sorted and an unsorted index over the same labels must resolve a label
// slice to the same set of labels.
func TestIndex_SliceLocs_SortedMatchesScan(t *testing.T) {
	unsorted := MustFromValues(5, 1, 9, 3, 7)
	sorted, _, err := unsorted.Sorted()
	require.NoError(t, err)

	for _, bounds := range [][2]*label.Label{
		{lp(2), lp(7)}, {nil, lp(5)}, {lp(4), nil}, {lp(10), lp(20)}, {nil, nil},
	} {
		fast, err := sorted.SliceLocs(bounds[0], bounds[1])
		require.NoError(t, err)
		slow, err := unsorted.SliceLocs(bounds[0], bounds[1])
		require.NoError(t, err)

		fastLabels := sorted.Take(fast).Values()
		slowLabels, _, err := unsorted.Take(slow).Sorted()
		require.NoError(t, err)
		require.Equal(t, fastLabels, slowLabels.Values())
	}
}

func TestIndex_SliceLocs_KindMismatch(t *testing.T) {
	_, err := Range(3).SliceLocs(lp("a"), nil)
	require.ErrorIs(t, err, errs.ErrUnorderableLabels)

	_, err = MustFromValues("b", "a").SliceLocs(nil, lp(1))
	require.ErrorIs(t, err, errs.ErrUnorderableLabels)
}

func TestIndex_SliceLocs_Empty(t *testing.T) {
	got, err := MustFromValues().SliceLocs(lp("a"), lp("b"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestIndex_SliceBounds(t *testing.T) {
	lo, hi, ok, err := MustFromValues(1, 2, 3, 4).SliceBounds(lp(2), lp(3))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, lo)
	require.Equal(t, 3, hi)

	_, _, ok, err = MustFromValues(2, 1).SliceBounds(nil, nil)
	require.NoError(t, err)
	require.False(t, ok)
}
