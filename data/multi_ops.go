package data

import (
	"github.com/arloliu/ixdata/index"
	"github.com/arloliu/ixdata/internal/pool"
)

// gridOperand lays one MultiData operand out on the merged row and column
// indexes, pooling the scratch grid when a copy is required.
func gridOperand(md *MultiData, rows, cols *index.Index, same bool, policy fillPolicy) ([]float64, func()) {
	if same && !policy.enabled {
		return md.values, func() {}
	}

	nr, nc := rows.Len(), cols.Len()
	scratch, release := pool.GetFloat64Slice(nr * nc)
	if same {
		copy(scratch, md.values)
	} else {
		srcCols := md.cols.Len()
		colIdx, releaseCols := pool.GetIntSlice(nc)
		defer releaseCols()
		md.cols.IndexerInto(colIdx, cols)
		rowIdx, releaseRows := pool.GetIntSlice(nr)
		defer releaseRows()
		md.rows.IndexerInto(rowIdx, rows)

		missing := policy.missing()
		for i, p := range rowIdx {
			dst := scratch[i*nc : (i+1)*nc]
			if p < 0 {
				for j := range dst {
					dst[j] = missing
				}

				continue
			}
			reindexInto(dst, md.values[p*srcCols:(p+1)*srcCols], colIdx, missing)
		}
	}
	if policy.enabled {
		fillNaN(scratch, policy.value)
	}

	return scratch, release
}

// binaryMulti aligns rows and columns independently, then applies op cell-wise.
func binaryMulti(a, b *MultiData, op Op, policy fillPolicy) *MultiData {
	rows, sameRows := alignIndex(a.rows, b.rows)
	cols, sameCols := alignIndex(a.cols, b.cols)
	same := sameRows && sameCols

	av, releaseA := gridOperand(a, rows, cols, same, policy)
	defer releaseA()
	bv, releaseB := gridOperand(b, rows, cols, same, policy)
	defer releaseB()

	out := make([]float64, rows.Len()*cols.Len())
	op.kernel(out, av, bv)

	return &MultiData{rows: rows, cols: cols, values: out}
}

// Apply combines the receiver with other using op after aligning both axes.
// Missing cells produce NaN.
func (md *MultiData) Apply(op Op, other *MultiData) *MultiData {
	return binaryMulti(md, other, op, strict)
}

// ApplyFill is Apply with every missing cell replaced by fill first.
func (md *MultiData) ApplyFill(op Op, other *MultiData, fill float64) *MultiData {
	return binaryMulti(md, other, op, fillWith(fill))
}

// Add returns md + other, aligned on both axes.
func (md *MultiData) Add(other *MultiData) *MultiData { return md.Apply(OpAdd, other) }

// Sub returns md - other, aligned on both axes.
func (md *MultiData) Sub(other *MultiData) *MultiData { return md.Apply(OpSub, other) }

// Mul returns md * other, aligned on both axes.
func (md *MultiData) Mul(other *MultiData) *MultiData { return md.Apply(OpMul, other) }

// Div returns md / other, aligned on both axes.
func (md *MultiData) Div(other *MultiData) *MultiData { return md.Apply(OpDiv, other) }

// AddFill returns md + other with missing cells treated as fill.
func (md *MultiData) AddFill(other *MultiData, fill float64) *MultiData {
	return md.ApplyFill(OpAdd, other, fill)
}

// ApplySeries combines every row (axis AxisColumns) or every column (axis
// AxisRows) with sd. With AxisColumns, sd is aligned against the column
// labels; with AxisRows, against the row labels.
func (md *MultiData) ApplySeries(op Op, sd *SingleData, axis Axis) (*MultiData, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}

	if axis == AxisColumns {
		cols, _ := alignIndex(md.cols, sd.index)
		rows := md.rows.Clone()
		nr, nc := rows.Len(), cols.Len()

		series := make([]float64, nc)
		reindexInto(series, sd.values, sd.index.Indexer(cols), strict.missing())
		left := md.ReindexColumns(cols, strict.missing())

		out := make([]float64, nr*nc)
		for i := range nr {
			op.kernel(out[i*nc:(i+1)*nc], left.values[i*nc:(i+1)*nc], series)
		}

		return &MultiData{rows: rows, cols: cols, values: out}, nil
	}

	rows, _ := alignIndex(md.rows, sd.index)
	cols := md.cols.Clone()
	nr, nc := rows.Len(), cols.Len()

	series := make([]float64, nr)
	reindexInto(series, sd.values, sd.index.Indexer(rows), strict.missing())
	left := md.ReindexRows(rows, strict.missing())

	out := make([]float64, nr*nc)
	for i := range nr {
		for j := range nc {
			out[i*nc+j] = op.Eval(left.values[i*nc+j], series[i])
		}
	}

	return &MultiData{rows: rows, cols: cols, values: out}, nil
}

// ApplyScalar evaluates op(v, c) for every cell. The result shares the
// receiver's indexes.
func (md *MultiData) ApplyScalar(op Op, c float64) *MultiData {
	out := make([]float64, len(md.values))
	op.scalarKernel(out, md.values, c, false)

	return &MultiData{rows: md.rows, cols: md.cols, values: out}
}

// AddScalar returns md + c.
func (md *MultiData) AddScalar(c float64) *MultiData { return md.ApplyScalar(OpAdd, c) }

// SubScalar returns md - c.
func (md *MultiData) SubScalar(c float64) *MultiData { return md.ApplyScalar(OpSub, c) }

// MulScalar returns md * c.
func (md *MultiData) MulScalar(c float64) *MultiData { return md.ApplyScalar(OpMul, c) }

// DivScalar returns md / c.
func (md *MultiData) DivScalar(c float64) *MultiData { return md.ApplyScalar(OpDiv, c) }
