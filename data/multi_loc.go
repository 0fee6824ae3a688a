package data

import (
	"github.com/arloliu/ixdata/index"
	"github.com/arloliu/ixdata/label"
)

// MultiLoc resolves label-based requests against a MultiData.
type MultiLoc struct {
	md *MultiData
}

// MultiILoc resolves position-based requests against a MultiData.
type MultiILoc struct {
	md *MultiData
}

// Loc returns the label-based accessor.
func (md *MultiData) Loc() MultiLoc {
	return MultiLoc{md: md}
}

// ILoc returns the position-based accessor.
func (md *MultiData) ILoc() MultiILoc {
	return MultiILoc{md: md}
}

// At returns the cell at (row, col).
//
// Returns errs.ErrLabelNotFound if either label is absent.
func (l MultiLoc) At(row, col any) (float64, error) {
	i, err := l.md.rows.PositionOfValue(row)
	if err != nil {
		return 0, err
	}
	j, err := l.md.cols.PositionOfValue(col)
	if err != nil {
		return 0, err
	}

	return l.md.values[i*l.md.cols.Len()+j], nil
}

// Row returns one row as a SingleData indexed by the columns.
func (l MultiLoc) Row(row any) (*SingleData, error) {
	i, err := l.md.rows.PositionOfValue(row)
	if err != nil {
		return nil, err
	}

	return l.md.row(i), nil
}

// Col returns one column as a SingleData indexed by the rows.
func (l MultiLoc) Col(col any) (*SingleData, error) {
	j, err := l.md.cols.PositionOfValue(col)
	if err != nil {
		return nil, err
	}

	return l.md.col(j), nil
}

// Slice returns the sub-grid of rows in [rowStart, rowStop] and columns in
// [colStart, colStop]. Each axis is resolved independently, both bounds are
// inclusive and a nil bound is open.
func (l MultiLoc) Slice(rowStart, rowStop, colStart, colStop any) (*MultiData, error) {
	rlo, rhi, err := sliceBounds(rowStart, rowStop)
	if err != nil {
		return nil, err
	}
	clo, chi, err := sliceBounds(colStart, colStop)
	if err != nil {
		return nil, err
	}

	rows, rowPos, err := resolveAxisSlice(l.md.rows, rlo, rhi)
	if err != nil {
		return nil, err
	}
	cols, colPos, err := resolveAxisSlice(l.md.cols, clo, chi)
	if err != nil {
		return nil, err
	}

	return l.md.take(rows, rowPos, cols, colPos), nil
}

// Rows returns the rows with the given labels, in that order.
func (l MultiLoc) Rows(keys ...any) (*MultiData, error) {
	rowPos, err := resolveLabels(l.md.rows, keys)
	if err != nil {
		return nil, err
	}

	return l.md.take(l.md.rows.Take(rowPos), rowPos, l.md.cols.Clone(), seq(l.md.cols.Len())), nil
}

// Cols returns the columns with the given labels, in that order.
func (l MultiLoc) Cols(keys ...any) (*MultiData, error) {
	colPos, err := resolveLabels(l.md.cols, keys)
	if err != nil {
		return nil, err
	}

	return l.md.take(l.md.rows.Clone(), seq(l.md.rows.Len()), l.md.cols.Take(colPos), colPos), nil
}

// RowMask keeps the rows where m is true and every column.
func (l MultiLoc) RowMask(m *Mask) (*MultiData, error) {
	return maskRows(l.md, m)
}

// ColMask keeps the columns where m is true and every row.
func (l MultiLoc) ColMask(m *Mask) (*MultiData, error) {
	return maskCols(l.md, m)
}

// At returns the cell at row i, column j.
//
// Returns errs.ErrOutOfBounds if either position is out of range.
func (l MultiILoc) At(i, j int) (float64, error) {
	nr, nc := l.md.Shape()
	if err := checkPosition(i, nr); err != nil {
		return 0, err
	}
	if err := checkPosition(j, nc); err != nil {
		return 0, err
	}

	return l.md.values[i*nc+j], nil
}

// Row returns row i as a SingleData indexed by the columns.
func (l MultiILoc) Row(i int) (*SingleData, error) {
	if err := checkPosition(i, l.md.rows.Len()); err != nil {
		return nil, err
	}

	return l.md.row(i), nil
}

// Col returns column j as a SingleData indexed by the rows.
func (l MultiILoc) Col(j int) (*SingleData, error) {
	if err := checkPosition(j, l.md.cols.Len()); err != nil {
		return nil, err
	}

	return l.md.col(j), nil
}

// Slice returns the half-open sub-grid [rowStart, rowStop) × [colStart,
// colStop). Bounds are clamped to the grid.
func (l MultiILoc) Slice(rowStart, rowStop, colStart, colStop int) *MultiData {
	nr, nc := l.md.Shape()
	r0, r1 := clampRange(rowStart, rowStop, nr)
	c0, c1 := clampRange(colStart, colStop, nc)

	return l.md.take(
		l.md.rows.TakeRange(r0, r1), rangePositions(r0, r1),
		l.md.cols.TakeRange(c0, c1), rangePositions(c0, c1),
	)
}

// RowMask keeps the rows where m is true.
func (l MultiILoc) RowMask(m *Mask) (*MultiData, error) {
	return maskRows(l.md, m)
}

// ColMask keeps the columns where m is true.
func (l MultiILoc) ColMask(m *Mask) (*MultiData, error) {
	return maskCols(l.md, m)
}

func resolveAxisSlice(idx *index.Index, lo, hi *label.Label) (*index.Index, []int, error) {
	if start, stop, ok, err := idx.SliceBounds(lo, hi); ok || err != nil {
		if err != nil {
			return nil, nil, err
		}

		return idx.TakeRange(start, stop), rangePositions(start, stop), nil
	}

	positions, err := idx.SliceLocs(lo, hi)
	if err != nil {
		return nil, nil, err
	}

	return idx.Take(positions), positions, nil
}

func maskRows(md *MultiData, m *Mask) (*MultiData, error) {
	if err := checkMask(m, md.rows.Len()); err != nil {
		return nil, err
	}
	rowPos := m.Positions()

	return md.take(md.rows.Take(rowPos), rowPos, md.cols.Clone(), seq(md.cols.Len())), nil
}

func maskCols(md *MultiData, m *Mask) (*MultiData, error) {
	if err := checkMask(m, md.cols.Len()); err != nil {
		return nil, err
	}
	colPos := m.Positions()

	return md.take(md.rows.Clone(), seq(md.rows.Len()), md.cols.Take(colPos), colPos), nil
}

func seq(n int) []int {
	return rangePositions(0, n)
}

func rangePositions(lo, hi int) []int {
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}

	return out
}
