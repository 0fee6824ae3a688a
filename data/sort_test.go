package data

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ixdata/errs"
)

func TestSingleData_SortIndex(t *testing.T) {
	sd := MustNewSingle(Values([]float64{1, 2, 3, 4, 5}), WithIndex("e", "b", "d", "a", "c"))

	before := map[string]float64{}
	for _, l := range sd.Index().Values() {
		v, err := sd.Loc().At(l)
		require.NoError(t, err)
		before[l.(string)] = v
	}

	require.NoError(t, sd.SortIndex())
	require.Equal(t, []any{"a", "b", "c", "d", "e"}, sd.Index().Values())
	require.True(t, sd.Index().IsSorted())
	require.Equal(t, []float64{4, 2, 5, 3, 1}, sd.Values())

	for l, want := range before {
		got, err := sd.Loc().At(l)
		require.NoError(t, err)
		require.Equal(t, want, got, "label %s", l)
	}
}

func TestSingleData_SortIndex_ThenSlice(t *testing.T) {
	sd := MustNewSingle(Values([]float64{1, 2, 3, 4}), WithIndex("d", "a", "c", "b"))
	require.NoError(t, sd.SortIndex())

	upToC, err := sd.Loc().Slice(nil, "c")
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b", "c"}, upToC.Index().Values())
	require.Equal(t, []float64{2, 4, 3}, upToC.Values())
}

func TestSingleData_SortIndex_MixedKinds(t *testing.T) {
	sd := MustNewSingle(Values([]float64{1, 2, 3}), WithIndex(3, "a", 1))

	err := sd.SortIndex()
	require.ErrorIs(t, err, errs.ErrUnorderableLabels)
	require.Equal(t, []float64{1, 2, 3}, sd.Values(), "container must be unchanged")
	require.False(t, sd.Index().IsSorted())
}

func TestSingleData_SortIndex_Empty(t *testing.T) {
	sd := MustNewSingle(Empty())
	require.NoError(t, sd.SortIndex())
	require.True(t, sd.Empty())
}

func TestMultiData_SortIndex(t *testing.T) {
	md := MustNewMulti(
		Grid([][]float64{{1, 2, 3}, {4, 5, 6}}),
		WithIndex("r2", "r1"),
		WithColumns("c", "a", "b"),
	)

	require.NoError(t, md.SortIndex(AxisRows))
	require.Equal(t, []any{"r1", "r2"}, md.Index().Values())
	require.Equal(t, [][]float64{{4, 5, 6}, {1, 2, 3}}, md.Values())

	require.NoError(t, md.SortIndex(AxisColumns))
	require.Equal(t, []any{"a", "b", "c"}, md.Columns().Values())
	require.Equal(t, [][]float64{{5, 6, 4}, {2, 3, 1}}, md.Values())

	v, err := md.Loc().At("r2", "c")
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	require.ErrorIs(t, md.SortIndex(Axis(7)), errs.ErrInvalidAxis)
}

func TestMultiData_SortRows_ThenSlice(t *testing.T) {
	md := MustNewMulti(
		Grid([][]float64{{1}, {2}, {3}, {4}}),
		WithIndex("d", "b", "a", "c"),
		WithColumns("x"),
	)
	require.NoError(t, md.SortRows())

	sub, err := md.Loc().Slice(nil, "c", nil, nil)
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b", "c"}, sub.Index().Values())
	require.Equal(t, [][]float64{{3}, {2}, {4}}, sub.Values())
}
