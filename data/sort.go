package data

import (
	"github.com/arloliu/ixdata/internal/pool"
)

// SortIndex sorts the labels ascending and reorders the values in lockstep,
// in place. The sort is stable and keeps every value with its label.
//
// All labels must be mutually ordered. A mixed int/string index returns
// errs.ErrUnorderableLabels and leaves the container unchanged.
func (sd *SingleData) SortIndex() error {
	sorted, perm, err := sd.index.Sorted()
	if err != nil {
		return err
	}

	permuteInPlace(sd.values, perm)
	sd.index = sorted

	return nil
}

// permuteInPlace sets values[i] = old values[perm[i]].
func permuteInPlace(values []float64, perm []int) {
	scratch, release := pool.GetFloat64Slice(len(values))
	defer release()

	copy(scratch, values)
	for i, p := range perm {
		values[i] = scratch[p]
	}
}

// SortIndex sorts the labels of axis ascending and reorders the grid rows
// (AxisRows) or columns (AxisColumns) in lockstep, in place.
//
// Returns errs.ErrInvalidAxis for an unknown axis and
// errs.ErrUnorderableLabels for mixed-kind labels; on error the container is
// unchanged.
func (md *MultiData) SortIndex(axis Axis) error {
	if err := axis.validate(); err != nil {
		return err
	}

	if axis == AxisRows {
		sorted, perm, err := md.rows.Sorted()
		if err != nil {
			return err
		}
		md.permuteRows(perm)
		md.rows = sorted

		return nil
	}

	sorted, perm, err := md.cols.Sorted()
	if err != nil {
		return err
	}
	md.permuteColumns(perm)
	md.cols = sorted

	return nil
}

// SortRows sorts the row labels; it is SortIndex(AxisRows).
func (md *MultiData) SortRows() error {
	return md.SortIndex(AxisRows)
}

func (md *MultiData) permuteRows(perm []int) {
	nc := md.cols.Len()

	scratch, release := pool.GetFloat64Slice(len(md.values))
	defer release()

	copy(scratch, md.values)
	for i, p := range perm {
		copy(md.values[i*nc:(i+1)*nc], scratch[p*nc:(p+1)*nc])
	}
}

func (md *MultiData) permuteColumns(perm []int) {
	nc := md.cols.Len()
	for i := range md.rows.Len() {
		permuteInPlace(md.values[i*nc:(i+1)*nc], perm)
	}
}
