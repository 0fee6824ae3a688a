package data

import (
	"fmt"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/index"
)

// Concat stacks SingleData values into a MultiData.
//
// With AxisColumns every item becomes a column and the rows are the union of
// the item indexes. With AxisRows every item becomes a row and the columns are
// the union. Labels for the new axis come from WithColumns (AxisColumns) or
// WithIndex (AxisRows) and default to a range.
func Concat(axis Axis, items []*SingleData, opts ...Option) (*MultiData, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if axis == AxisColumns {
		return newMultiFromColumns(nil, items, &config{columns: cfg.columns})
	}

	byCols, err := newMultiFromColumns(nil, items, &config{columns: cfg.index})
	if err != nil {
		return nil, err
	}

	return byCols.Transpose(), nil
}

// Transpose returns a copy with rows and columns swapped.
func (md *MultiData) Transpose() *MultiData {
	nr, nc := md.Shape()
	values := make([]float64, len(md.values))
	for i := range nr {
		for j := range nc {
			values[j*nr+i] = md.values[i*nc+j]
		}
	}

	return &MultiData{rows: md.cols.Clone(), cols: md.rows.Clone(), values: values}
}

// SumByIndex reindexes every item onto idx, treats missing cells as fill and
// adds them up. With no items the result is all fill.
func SumByIndex(idx *index.Index, fill float64, items ...*SingleData) (*SingleData, error) {
	if idx == nil {
		return nil, fmt.Errorf("%w: nil index", errs.ErrInvalidInput)
	}

	out := newSingleFilled(idx.Clone(), fill)
	if len(items) == 0 {
		return out, nil
	}
	for i := range out.values {
		out.values[i] = 0
	}

	buf := make([]float64, idx.Len())
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: nil item %d", errs.ErrInvalidInput, i)
		}
		reindexInto(buf, item.values, item.index.Indexer(idx), fill)
		fillNaN(buf, fill)
		OpAdd.kernel(out.values, out.values, buf)
	}

	return out, nil
}
