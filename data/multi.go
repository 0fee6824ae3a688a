package data

import (
	"fmt"
	"math"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/index"
)

// MultiData is a two-dimensional float64 grid with a row Index and a column
// Index. Values are stored row-major.
//
// Invariant: len(values) == rows.Len() * cols.Len().
type MultiData struct {
	rows   *index.Index
	cols   *index.Index
	values []float64
}

// NewMulti builds a MultiData from one input variant.
//
// Supported inputs:
//   - Empty: 0×0, or an all-NaN grid over the labels given
//   - Scalar: broadcast to every cell; an omitted axis has length 1
//   - Grid: one slice per row, shape must be (len(index), len(columns))
//   - FromMulti: copy of another MultiData, reindexed onto any labels given
//   - Columns: SingleData columns aligned on the union of their indexes
//
// Returns errs.ErrShapeMismatch when the data does not match the labels,
// including 1-D sequences, and errs.ErrInvalidInput for mappings.
func NewMulti(in Input, opts ...Option) (*MultiData, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	switch in.kind {
	case InputEmpty:
		return newMultiFilled(orRange(cfg.index, 0), orRange(cfg.columns, 0), math.NaN()), nil

	case InputScalar:
		return newMultiFilled(orRange(cfg.index, 1), orRange(cfg.columns, 1), in.scalar), nil

	case InputGrid:
		return newMultiFromGrid(in.grid, cfg.index, cfg.columns)

	case InputSequence:
		return nil, fmt.Errorf("%w: 1-D data of length %d for 2-D container", errs.ErrShapeMismatch, len(in.seq))

	case InputMulti:
		if in.multi == nil {
			return nil, fmt.Errorf("%w: nil MultiData", errs.ErrInvalidInput)
		}
		md := in.multi.Copy()
		if cfg.index != nil {
			md = md.ReindexRows(cfg.index, math.NaN())
		}
		if cfg.columns != nil {
			md = md.ReindexColumns(cfg.columns, math.NaN())
		}

		return md, nil

	case InputColumns:
		return newMultiFromColumns(in.keys, in.columns, cfg)

	default:
		return nil, fmt.Errorf("%w: %s input for two-axis data", errs.ErrInvalidInput, in.kind)
	}
}

// MustNewMulti is like NewMulti but panics on error.
func MustNewMulti(in Input, opts ...Option) *MultiData {
	md, err := NewMulti(in, opts...)
	if err != nil {
		panic(err)
	}

	return md
}

func orRange(idx *index.Index, n int) *index.Index {
	if idx != nil {
		return idx
	}

	return index.Range(n)
}

func newMultiFilled(rows, cols *index.Index, v float64) *MultiData {
	values := make([]float64, rows.Len()*cols.Len())
	for i := range values {
		values[i] = v
	}

	return &MultiData{rows: rows, cols: cols, values: values}
}

func newMultiFromGrid(grid [][]float64, rows, cols *index.Index) (*MultiData, error) {
	if rows == nil {
		rows = index.Range(len(grid))
	}
	if cols == nil {
		width := 0
		if len(grid) > 0 {
			width = len(grid[0])
		}
		cols = index.Range(width)
	}

	if len(grid) != rows.Len() {
		return nil, fmt.Errorf("%w: %d rows for %d labels", errs.ErrShapeMismatch, len(grid), rows.Len())
	}

	nc := cols.Len()
	values := make([]float64, 0, rows.Len()*nc)
	for i, row := range grid {
		if len(row) != nc {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", errs.ErrShapeMismatch, i, len(row), nc)
		}
		values = append(values, row...)
	}

	return &MultiData{rows: rows, cols: cols, values: values}, nil
}

func newMultiFromColumns(keys []any, columns []*SingleData, cfg *config) (*MultiData, error) {
	cols := cfg.columns
	if keys != nil {
		if cols != nil {
			return nil, fmt.Errorf("%w: column keys given twice", errs.ErrInvalidInput)
		}
		var err error
		if cols, err = index.FromValues(keys...); err != nil {
			return nil, fmt.Errorf("columns: %w", err)
		}
	}
	if cols == nil {
		cols = index.Range(len(columns))
	}
	if cols.Len() != len(columns) {
		return nil, fmt.Errorf("%w: %d column labels for %d columns", errs.ErrShapeMismatch, cols.Len(), len(columns))
	}

	rows := cfg.index
	if rows == nil {
		rows = index.Range(0)
		for i, col := range columns {
			if col == nil {
				return nil, fmt.Errorf("%w: nil column %d", errs.ErrInvalidInput, i)
			}
			if i == 0 {
				rows = col.index.Clone()
				continue
			}
			rows = rows.Union(col.index)
		}
	}

	nr, nc := rows.Len(), len(columns)
	values := make([]float64, nr*nc)
	colBuf := make([]float64, nr)
	for j, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("%w: nil column %d", errs.ErrInvalidInput, j)
		}
		reindexInto(colBuf, col.values, col.index.Indexer(rows), math.NaN())
		for i, v := range colBuf {
			values[i*nc+j] = v
		}
	}

	return &MultiData{rows: rows, cols: cols, values: values}, nil
}

// Shape returns the number of rows and columns.
func (md *MultiData) Shape() (int, int) {
	return md.rows.Len(), md.cols.Len()
}

// Len returns the number of rows.
func (md *MultiData) Len() int {
	return md.rows.Len()
}

// Empty reports whether the grid has no cells.
func (md *MultiData) Empty() bool {
	return len(md.values) == 0
}

// Index returns the row labels.
func (md *MultiData) Index() *index.Index {
	return md.rows
}

// Columns returns the column labels.
func (md *MultiData) Columns() *index.Index {
	return md.cols
}

// Values returns a copy of the grid, one slice per row.
func (md *MultiData) Values() [][]float64 {
	nr, nc := md.Shape()
	out := make([][]float64, nr)
	for i := range out {
		out[i] = cloneValues(md.values[i*nc : (i+1)*nc])
	}

	return out
}

// Copy returns a deep copy with its own Index instances.
func (md *MultiData) Copy() *MultiData {
	return &MultiData{rows: md.rows.Clone(), cols: md.cols.Clone(), values: cloneValues(md.values)}
}

// Equal reports whether both grids have equal labels and values, treating
// NaN as equal to NaN.
func (md *MultiData) Equal(other *MultiData) bool {
	return md.rows.Equal(other.rows) && md.cols.Equal(other.cols) && sameValues(md.values, other.values)
}

// ReindexRows conforms the rows to idx; new rows are filled with fill.
func (md *MultiData) ReindexRows(idx *index.Index, fill float64) *MultiData {
	nc := md.cols.Len()
	values := make([]float64, idx.Len()*nc)
	for i, p := range md.rows.Indexer(idx) {
		dst := values[i*nc : (i+1)*nc]
		if p < 0 {
			for j := range dst {
				dst[j] = fill
			}

			continue
		}
		copy(dst, md.values[p*nc:(p+1)*nc])
	}

	return &MultiData{rows: idx.Clone(), cols: md.cols.Clone(), values: values}
}

// ReindexColumns conforms the columns to idx; new columns are filled with fill.
func (md *MultiData) ReindexColumns(idx *index.Index, fill float64) *MultiData {
	nr, nc := md.Shape()
	indexer := md.cols.Indexer(idx)
	values := make([]float64, nr*idx.Len())
	for i := range nr {
		reindexInto(values[i*idx.Len():(i+1)*idx.Len()], md.values[i*nc:(i+1)*nc], indexer, fill)
	}

	return &MultiData{rows: md.rows.Clone(), cols: idx.Clone(), values: values}
}

// Replace rewrites, in place, every cell found as a key of mapping.
func (md *MultiData) Replace(mapping map[float64]float64) {
	replaceValues(md.values, mapping)
}

// IsNA returns a grid mask that is true wherever the cell is missing.
func (md *MultiData) IsNA() *MultiMask {
	out := make([]bool, len(md.values))
	for i, v := range md.values {
		out[i] = math.IsNaN(v)
	}

	return &MultiMask{rows: md.rows, cols: md.cols, values: out}
}

// FillNA returns a copy with missing cells replaced by v.
func (md *MultiData) FillNA(v float64) *MultiData {
	values := cloneValues(md.values)
	fillNaN(values, v)

	return &MultiData{rows: md.rows, cols: md.cols, values: values}
}

// Map applies fn to every cell. The result shares the receiver's indexes.
func (md *MultiData) Map(fn func(float64) float64) *MultiData {
	values := make([]float64, len(md.values))
	for i, v := range md.values {
		values[i] = fn(v)
	}

	return &MultiData{rows: md.rows, cols: md.cols, values: values}
}

// Abs returns the absolute values.
func (md *MultiData) Abs() *MultiData {
	return md.Map(math.Abs)
}

// SumAll adds every non-missing cell.
func (md *MultiData) SumAll() float64 {
	return nanSum(md.values)
}

// Sum reduces along axis, skipping missing cells. AxisRows collapses the rows
// and returns one value per column; AxisColumns returns one value per row.
func (md *MultiData) Sum(axis Axis) (*SingleData, error) {
	return md.reduce(axis, nanSum)
}

// Mean averages along axis, skipping missing cells.
func (md *MultiData) Mean(axis Axis) (*SingleData, error) {
	return md.reduce(axis, nanMean)
}

// Count counts non-missing cells along axis.
func (md *MultiData) Count(axis Axis) (*SingleData, error) {
	return md.reduce(axis, func(vs []float64) float64 { return float64(nanCount(vs)) })
}

func (md *MultiData) reduce(axis Axis, fn func([]float64) float64) (*SingleData, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}

	nr, nc := md.Shape()
	if axis == AxisColumns {
		out := make([]float64, nr)
		for i := range nr {
			out[i] = fn(md.values[i*nc : (i+1)*nc])
		}

		return &SingleData{index: md.rows.Clone(), values: out}, nil
	}

	out := make([]float64, nc)
	col := make([]float64, nr)
	for j := range nc {
		for i := range nr {
			col[i] = md.values[i*nc+j]
		}
		out[j] = fn(col)
	}

	return &SingleData{index: md.cols.Clone(), values: out}, nil
}

// Compare returns the grid mask of cells satisfying op against c.
func (md *MultiData) Compare(op CompareOp, c float64) *MultiMask {
	return &MultiMask{rows: md.rows, cols: md.cols, values: compareValues(md.values, op, c)}
}

// row returns a copy of row i as a SingleData over the columns.
func (md *MultiData) row(i int) *SingleData {
	nc := md.cols.Len()
	return &SingleData{index: md.cols.Clone(), values: cloneValues(md.values[i*nc : (i+1)*nc])}
}

// col returns a copy of column j as a SingleData over the rows.
func (md *MultiData) col(j int) *SingleData {
	nr, nc := md.Shape()
	values := make([]float64, nr)
	for i := range values {
		values[i] = md.values[i*nc+j]
	}

	return &SingleData{index: md.rows.Clone(), values: values}
}

// take builds a sub-grid from row and column positions.
func (md *MultiData) take(rows *index.Index, rowPos []int, cols *index.Index, colPos []int) *MultiData {
	nc := md.cols.Len()
	values := make([]float64, 0, len(rowPos)*len(colPos))
	for _, i := range rowPos {
		for _, j := range colPos {
			values = append(values, md.values[i*nc+j])
		}
	}

	return &MultiData{rows: rows, cols: cols, values: values}
}

func (md *MultiData) String() string {
	nr, nc := md.Shape()
	return fmt.Sprintf("MultiData(%dx%d)", nr, nc)
}
