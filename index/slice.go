package index

import (
	"fmt"
	"sort"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/label"
)

// SliceLocs resolves the label slice [start, stop] into positions.
//
// Both bounds are inclusive; a nil bound means "from the first label" or
// "through the last label". The bounds do not need to be present in the
// index.
//
// On a sorted index the bounds are located by binary search and the result
// is one contiguous run. Otherwise every label is compared against the
// bounds and the positions of all labels inside [start, stop] are returned
// in index order, which may not be contiguous.
//
// Returns errs.ErrUnorderableLabels if a bound has a different kind than the
// labels it is compared against.
func (ix *Index) SliceLocs(start, stop *label.Label) ([]int, error) {
	if ix.Len() == 0 {
		return []int{}, nil
	}
	if ix.IsSorted() {
		lo, hi, err := ix.searchRange(start, stop)
		if err != nil {
			return nil, err
		}

		return seq(lo, hi), nil
	}

	return ix.scanRange(start, stop)
}

// SliceBounds resolves a label slice on a sorted index into the half-open
// position range [lo, hi). ok is false when the index is not sorted.
func (ix *Index) SliceBounds(start, stop *label.Label) (lo, hi int, ok bool, err error) {
	if !ix.IsSorted() {
		return 0, 0, false, nil
	}
	if ix.Len() == 0 {
		return 0, 0, true, nil
	}
	lo, hi, err = ix.searchRange(start, stop)

	return lo, hi, err == nil, err
}

func (ix *Index) searchRange(start, stop *label.Label) (int, int, error) {
	n := len(ix.labels)
	kind := ix.labels[0].Kind()

	lo, hi := 0, n
	if start != nil {
		if err := checkBoundKind(*start, kind); err != nil {
			return 0, 0, err
		}
		lo = sort.Search(n, func(i int) bool { return !label.Less(ix.labels[i], *start) })
	}
	if stop != nil {
		if err := checkBoundKind(*stop, kind); err != nil {
			return 0, 0, err
		}
		hi = sort.Search(n, func(i int) bool { return label.Less(*stop, ix.labels[i]) })
	}
	if hi < lo {
		hi = lo
	}

	return lo, hi, nil
}

func (ix *Index) scanRange(start, stop *label.Label) ([]int, error) {
	out := make([]int, 0, len(ix.labels))
	for i, l := range ix.labels {
		if start != nil {
			c, err := label.Compare(l, *start)
			if err != nil {
				return nil, fmt.Errorf("slice start: %w", err)
			}
			if c < 0 {
				continue
			}
		}
		if stop != nil {
			c, err := label.Compare(l, *stop)
			if err != nil {
				return nil, fmt.Errorf("slice stop: %w", err)
			}
			if c > 0 {
				continue
			}
		}
		out = append(out, i)
	}

	return out, nil
}

func checkBoundKind(bound label.Label, kind label.Kind) error {
	if bound.Kind() != kind {
		return fmt.Errorf("%w: %s bound %q on %s index", errs.ErrUnorderableLabels, bound.Kind(), bound, kind)
	}

	return nil
}

func seq(lo, hi int) []int {
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}

	return out
}
