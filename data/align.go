package data

import (
	"math"

	"github.com/arloliu/ixdata/index"
	"github.com/arloliu/ixdata/internal/pool"
)

// fillPolicy says what an operand contributes for a missing cell: NaN
// (strict) or a fill value that also replaces the operand's own NaNs.
type fillPolicy struct {
	enabled bool
	value   float64
}

var strict = fillPolicy{}

func fillWith(v float64) fillPolicy {
	return fillPolicy{enabled: true, value: v}
}

func (p fillPolicy) missing() float64 {
	if p.enabled {
		return p.value
	}

	return math.NaN()
}

// alignIndex returns the merged index of two axes and whether both already
// match, in which case no reindexing is needed.
func alignIndex(left, right *index.Index) (*index.Index, bool) {
	if left.Equal(right) {
		return left.Clone(), true
	}

	return left.Union(right), false
}

// reindexInto writes src[indexer[i]] into dst[i], or fill where indexer[i] < 0.
func reindexInto(dst, src []float64, indexer []int, fill float64) {
	for i, p := range indexer {
		if p < 0 {
			dst[i] = fill
			continue
		}
		dst[i] = src[p]
	}
}

// operand returns the values of one side of a binary op laid out on the
// merged index. The slice is either the operand's own buffer (read only) or
// a pooled scratch slice released by the returned cleanup.
func operand(values []float64, own, merged *index.Index, same bool, policy fillPolicy) ([]float64, func()) {
	if same && !policy.enabled {
		return values, func() {}
	}

	scratch, cleanup := pool.GetFloat64Slice(merged.Len())
	if same {
		copy(scratch, values)
	} else {
		positions, releasePositions := pool.GetIntSlice(merged.Len())
		own.IndexerInto(positions, merged)
		reindexInto(scratch, values, positions, policy.missing())
		releasePositions()
	}
	if policy.enabled {
		fillNaN(scratch, policy.value)
	}

	return scratch, cleanup
}

// binarySingle is the single shared executor behind every SingleData binary
// operation.
func binarySingle(a, b *SingleData, op Op, policy fillPolicy) *SingleData {
	merged, same := alignIndex(a.index, b.index)

	av, releaseA := operand(a.values, a.index, merged, same, policy)
	defer releaseA()
	bv, releaseB := operand(b.values, b.index, merged, same, policy)
	defer releaseB()

	out := make([]float64, merged.Len())
	op.kernel(out, av, bv)

	return &SingleData{index: merged, values: out}
}

// Apply combines the receiver with other using op after aligning both
// indexes. Missing cells produce NaN.
func (sd *SingleData) Apply(op Op, other *SingleData) *SingleData {
	return binarySingle(sd, other, op, strict)
}

// ApplyFill is Apply with every missing cell, absent or NaN, replaced by fill
// before op is evaluated.
func (sd *SingleData) ApplyFill(op Op, other *SingleData, fill float64) *SingleData {
	return binarySingle(sd, other, op, fillWith(fill))
}

// Add returns sd + other, aligned. NaN propagates: a label missing on either
// side or a NaN operand gives NaN, so [1 2 NA 4] + [1 2 3 NA] sums to 6.
//
// AddFill(other, 0) is the NaN-skipping addition, where missing cells count
// as zero and the same operands sum to 13.
func (sd *SingleData) Add(other *SingleData) *SingleData { return sd.Apply(OpAdd, other) }

// Sub returns sd - other, aligned. NaN propagates.
func (sd *SingleData) Sub(other *SingleData) *SingleData { return sd.Apply(OpSub, other) }

// Mul returns sd * other, aligned. NaN propagates.
func (sd *SingleData) Mul(other *SingleData) *SingleData { return sd.Apply(OpMul, other) }

// Div returns sd / other, aligned. NaN propagates and division by zero
// yields ±Inf or NaN.
func (sd *SingleData) Div(other *SingleData) *SingleData { return sd.Apply(OpDiv, other) }

// AddFill returns sd + other with missing cells, absent labels or NaN,
// treated as fill. A cell missing on both sides becomes fill + fill.
func (sd *SingleData) AddFill(other *SingleData, fill float64) *SingleData {
	return sd.ApplyFill(OpAdd, other, fill)
}

// SubFill returns sd - other with missing cells treated as fill.
func (sd *SingleData) SubFill(other *SingleData, fill float64) *SingleData {
	return sd.ApplyFill(OpSub, other, fill)
}

// MulFill returns sd * other with missing cells treated as fill.
func (sd *SingleData) MulFill(other *SingleData, fill float64) *SingleData {
	return sd.ApplyFill(OpMul, other, fill)
}

// DivFill returns sd / other with missing cells treated as fill.
func (sd *SingleData) DivFill(other *SingleData, fill float64) *SingleData {
	return sd.ApplyFill(OpDiv, other, fill)
}

// ApplyScalar evaluates op(v, c) for every value. The result shares the
// receiver's Index.
func (sd *SingleData) ApplyScalar(op Op, c float64) *SingleData {
	out := make([]float64, len(sd.values))
	op.scalarKernel(out, sd.values, c, false)

	return &SingleData{index: sd.index, values: out}
}

// ApplyScalarReversed evaluates op(c, v) for every value. The result shares
// the receiver's Index.
func (sd *SingleData) ApplyScalarReversed(op Op, c float64) *SingleData {
	out := make([]float64, len(sd.values))
	op.scalarKernel(out, sd.values, c, true)

	return &SingleData{index: sd.index, values: out}
}

// AddScalar returns sd + c.
func (sd *SingleData) AddScalar(c float64) *SingleData { return sd.ApplyScalar(OpAdd, c) }

// SubScalar returns sd - c.
func (sd *SingleData) SubScalar(c float64) *SingleData { return sd.ApplyScalar(OpSub, c) }

// MulScalar returns sd * c.
func (sd *SingleData) MulScalar(c float64) *SingleData { return sd.ApplyScalar(OpMul, c) }

// DivScalar returns sd / c.
func (sd *SingleData) DivScalar(c float64) *SingleData { return sd.ApplyScalar(OpDiv, c) }

// RSubScalar returns c - sd.
func (sd *SingleData) RSubScalar(c float64) *SingleData { return sd.ApplyScalarReversed(OpSub, c) }

// RDivScalar returns c / sd.
func (sd *SingleData) RDivScalar(c float64) *SingleData { return sd.ApplyScalarReversed(OpDiv, c) }
