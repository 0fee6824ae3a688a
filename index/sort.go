package index

import (
	"fmt"
	"slices"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/label"
)

// Argsort returns the stable ascending permutation of the labels: perm[i] is
// the current position of the i-th smallest label.
//
// All labels must share one kind. A mixed int/string index cannot be totally
// ordered and returns errs.ErrUnorderableLabels.
func (ix *Index) Argsort() ([]int, error) {
	n := ix.Len()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if n == 0 || ix.sorted {
		return perm, nil
	}

	kind := ix.labels[0].Kind()
	for i, l := range ix.labels {
		if l.Kind() != kind {
			return nil, fmt.Errorf("%w: %s label %q at position %d in %s index",
				errs.ErrUnorderableLabels, l.Kind(), l, i, kind)
		}
	}

	slices.SortStableFunc(perm, func(a, b int) int {
		// same kind checked above
		c, _ := label.Compare(ix.labels[a], ix.labels[b])
		return c
	})

	return perm, nil
}

// Sorted returns a sorted copy of ix together with the permutation that
// produced it, so callers can reorder their values in lockstep.
func (ix *Index) Sorted() (*Index, []int, error) {
	perm, err := ix.Argsort()
	if err != nil {
		return nil, nil, err
	}

	sorted := ix.Take(perm)
	sorted.sorted = true
	sorted.isDefault = ix.IsDefault()

	return sorted, perm, nil
}
