package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/label"
)

func lp(v any) *label.Label {
	l := label.MustOf(v)
	return &l
}

func TestNew(t *testing.T) {
	idx, err := FromValues("foo", "bar", "f", "g")
	require.NoError(t, err)
	require.Equal(t, 4, idx.Len())
	require.False(t, idx.IsSorted())
	require.False(t, idx.IsDefault())
	require.Equal(t, []any{"foo", "bar", "f", "g"}, idx.Values())

	for i, v := range []string{"foo", "bar", "f", "g"} {
		pos, err := idx.PositionOfValue(v)
		require.NoError(t, err)
		require.Equal(t, i, pos)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	labels := []label.Label{label.Str("a"), label.Str("b")}
	idx, err := New(labels)
	require.NoError(t, err)

	labels[0] = label.Str("z")
	l, err := idx.LabelAt(0)
	require.NoError(t, err)
	require.Equal(t, label.Str("a"), l)

	out := idx.Labels()
	out[1] = label.Str("z")
	require.True(t, idx.Contains(label.Str("b")))
}

func TestNew_DuplicateLabel(t *testing.T) {
	_, err := FromValues("a", "b", "a")
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)

	_, err = FromValues(1, int64(1))
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)

	// same text, different kinds are distinct labels
	_, err = FromValues(1, "1")
	require.NoError(t, err)
}

func TestNew_InvalidLabel(t *testing.T) {
	_, err := FromValues("a", 1.5)
	require.ErrorIs(t, err, errs.ErrInvalidLabel)
}

func TestNew_DetectsSorted(t *testing.T) {
	require.True(t, MustFromValues("a", "b", "c").IsSorted())
	require.True(t, MustFromValues(-3, 0, 10).IsSorted())
	require.False(t, MustFromValues("b", "a").IsSorted())
	require.False(t, MustFromValues(1, "a").IsSorted())
	require.True(t, MustFromValues().IsSorted())
}

func TestRange(t *testing.T) {
	idx := Range(3)
	require.True(t, idx.IsDefault())
	require.True(t, idx.IsSorted())
	require.Equal(t, []any{int64(0), int64(1), int64(2)}, idx.Values())

	require.Equal(t, 0, Range(-1).Len())
}

func TestIndex_PositionOf_Missing(t *testing.T) {
	idx := MustFromValues("foo", "bar")

	_, err := idx.PositionOf(label.Int(1))
	require.ErrorIs(t, err, errs.ErrLabelNotFound)

	var empty *Index
	_, err = empty.PositionOf(label.Str("foo"))
	require.ErrorIs(t, err, errs.ErrLabelNotFound)
}

func TestIndex_LabelAt(t *testing.T) {
	idx := MustFromValues("foo", "bar")

	l, err := idx.LabelAt(1)
	require.NoError(t, err)
	require.Equal(t, label.Str("bar"), l)

	for _, pos := range []int{-1, 2, 100} {
		_, err := idx.LabelAt(pos)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	}
}

func TestIndex_Equal(t *testing.T) {
	t.Run("independent empty indexes", func(t *testing.T) {
		a := MustFromValues()
		b := MustFromValues()
		require.True(t, a.Equal(b))
		require.True(t, Range(0).Equal(a))

		var nilIdx *Index
		require.True(t, nilIdx.Equal(a))
		require.True(t, a.Equal(nilIdx))
	})

	t.Run("order sensitive", func(t *testing.T) {
		a := MustFromValues("a", "b")
		b := MustFromValues("b", "a")
		require.False(t, a.Equal(b))
		require.True(t, a.Equal(MustFromValues("a", "b")))
	})

	t.Run("length mismatch", func(t *testing.T) {
		require.False(t, MustFromValues("a").Equal(MustFromValues("a", "b")))
	})

	t.Run("default equals explicit range", func(t *testing.T) {
		require.True(t, Range(3).Equal(MustFromValues(0, 1, 2)))
		require.False(t, Range(3).Equal(MustFromValues(0, 2, 1)))
	})

	t.Run("fingerprint agrees with equality", func(t *testing.T) {
		a := MustFromValues("x", 1)
		b := MustFromValues("x", 1)
		require.Equal(t, a.Fingerprint(), b.Fingerprint())
		require.NotEqual(t, a.Fingerprint(), MustFromValues(1, "x").Fingerprint())
	})
}

func TestIndex_Take(t *testing.T) {
	idx := MustFromValues("foo", "bar", "f", "g")

	sub := idx.Take([]int{3, 0})
	require.Equal(t, []any{"g", "foo"}, sub.Values())
	pos, err := sub.PositionOfValue("foo")
	require.NoError(t, err)
	require.Equal(t, 1, pos)

	r := idx.TakeRange(1, 3)
	require.Equal(t, []any{"bar", "f"}, r.Values())
	require.Equal(t, 0, idx.TakeRange(2, 2).Len())
}

func TestIndex_Clone(t *testing.T) {
	idx := MustFromValues("b", "a")
	c := idx.Clone()
	require.NotSame(t, idx, c)
	require.True(t, idx.Equal(c))

	d := Range(2).Clone()
	require.True(t, d.IsDefault())

	var nilIdx *Index
	require.Equal(t, 0, nilIdx.Clone().Len())
}

func TestIndex_Union(t *testing.T) {
	t.Run("left order then right novel labels", func(t *testing.T) {
		left := MustFromValues("c", "a")
		right := MustFromValues("b", "a", "d")

		u := left.Union(right)
		require.Equal(t, []any{"c", "a", "b", "d"}, u.Values())
	})

	t.Run("asymmetric", func(t *testing.T) {
		left := MustFromValues("c", "a")
		right := MustFromValues("b", "a", "d")

		u := right.Union(left)
		require.Equal(t, []any{"b", "a", "d", "c"}, u.Values())
	})

	t.Run("identical", func(t *testing.T) {
		a := MustFromValues(3, 1, 2)
		require.True(t, a.Union(MustFromValues(3, 1, 2)).Equal(a))
	})

	t.Run("empty operands", func(t *testing.T) {
		a := MustFromValues("x")
		require.Equal(t, []any{"x"}, a.Union(MustFromValues()).Values())
		require.Equal(t, []any{"x"}, MustFromValues().Union(a).Values())
	})
}

func TestIndex_Indexer(t *testing.T) {
	src := MustFromValues("a", "b", "c")
	target := MustFromValues("c", "z", "a")

	require.Equal(t, []int{2, -1, 0}, src.Indexer(target))

	dst := []int{9, 9, 9}
	src.IndexerInto(dst, target)
	require.Equal(t, []int{2, -1, 0}, dst)
}

func TestIndex_String(t *testing.T) {
	require.Equal(t, "Index[foo 1]", MustFromValues("foo", 1).String())
}
