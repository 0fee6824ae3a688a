package data

import (
	"fmt"
	"math"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/index"
	"github.com/arloliu/ixdata/label"
)

// SingleData is a one-dimensional float64 buffer paired with one Index.
//
// Invariant: len(values) == index.Len().
type SingleData struct {
	index  *index.Index
	values []float64
}

// NewSingle builds a SingleData from one input variant.
//
// Supported inputs:
//   - Empty: zero length, or NaN for every label given with WithIndex
//   - Scalar: broadcast to every label, or a single default position
//   - Values/Ints: must have exactly one value per label
//   - Map/MapOf: keys become the index; with WithIndex the mapping is looked
//     up for each given label and absent keys become NaN
//   - FromSingle: copy of another SingleData; with WithIndex it is reindexed
//
// Returns errs.ErrShapeMismatch when the data length differs from the index
// length and errs.ErrInvalidInput for 2-D inputs or column options.
func NewSingle(in Input, opts ...Option) (*SingleData, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.columns != nil {
		return nil, fmt.Errorf("%w: columns given for single-axis data", errs.ErrInvalidInput)
	}

	switch in.kind {
	case InputEmpty:
		idx := cfg.index
		if idx == nil {
			idx = index.Range(0)
		}

		return newSingleFilled(idx, math.NaN()), nil

	case InputScalar:
		idx := cfg.index
		if idx == nil {
			idx = index.Range(1)
		}

		return newSingleFilled(idx, in.scalar), nil

	case InputSequence:
		idx := cfg.index
		if idx == nil {
			idx = index.Range(len(in.seq))
		}
		if idx.Len() != len(in.seq) {
			return nil, fmt.Errorf("%w: %d values for %d labels", errs.ErrShapeMismatch, len(in.seq), idx.Len())
		}

		return &SingleData{index: idx, values: cloneValues(in.seq)}, nil

	case InputMapping:
		return newSingleFromMapping(in.keys, in.seq, cfg.index)

	case InputSingle:
		if in.single == nil {
			return nil, fmt.Errorf("%w: nil SingleData", errs.ErrInvalidInput)
		}
		if cfg.index != nil {
			return in.single.Reindex(cfg.index, math.NaN()), nil
		}

		return in.single.Copy(), nil

	default:
		return nil, fmt.Errorf("%w: %s input for single-axis data", errs.ErrInvalidInput, in.kind)
	}
}

// MustNewSingle is like NewSingle but panics on error.
func MustNewSingle(in Input, opts ...Option) *SingleData {
	sd, err := NewSingle(in, opts...)
	if err != nil {
		panic(err)
	}

	return sd
}

func newSingleFromMapping(keys []any, vals []float64, want *index.Index) (*SingleData, error) {
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("%w: %d keys for %d values", errs.ErrShapeMismatch, len(keys), len(vals))
	}

	idx, err := index.FromValues(keys...)
	if err != nil {
		return nil, fmt.Errorf("mapping keys: %w", err)
	}

	sd := &SingleData{index: idx, values: cloneValues(vals)}
	if want != nil {
		return sd.Reindex(want, math.NaN()), nil
	}

	return sd, nil
}

func newSingleFilled(idx *index.Index, v float64) *SingleData {
	values := make([]float64, idx.Len())
	for i := range values {
		values[i] = v
	}

	return &SingleData{index: idx, values: values}
}

func cloneValues(vs []float64) []float64 {
	out := make([]float64, len(vs))
	copy(out, vs)

	return out
}

// Len returns the number of values.
func (sd *SingleData) Len() int {
	return len(sd.values)
}

// Empty reports whether the container holds no values.
func (sd *SingleData) Empty() bool {
	return len(sd.values) == 0
}

// Index returns the labels. The Index is immutable and must not be modified.
func (sd *SingleData) Index() *index.Index {
	return sd.index
}

// Values returns a copy of the value buffer.
func (sd *SingleData) Values() []float64 {
	return cloneValues(sd.values)
}

// Copy returns a deep copy with its own Index instance.
func (sd *SingleData) Copy() *SingleData {
	return &SingleData{index: sd.index.Clone(), values: cloneValues(sd.values)}
}

// Equal reports whether both containers have equal indexes and values,
// treating NaN as equal to NaN.
func (sd *SingleData) Equal(other *SingleData) bool {
	return sd.index.Equal(other.index) && sameValues(sd.values, other.values)
}

// Items calls fn for each label/value pair in index order.
func (sd *SingleData) Items(fn func(l label.Label, v float64) bool) {
	for i, v := range sd.values {
		l, _ := sd.index.LabelAt(i)
		if !fn(l, v) {
			return
		}
	}
}

// Reindex conforms the data to idx. Labels of idx missing from the receiver
// get fill.
func (sd *SingleData) Reindex(idx *index.Index, fill float64) *SingleData {
	values := make([]float64, idx.Len())
	reindexInto(values, sd.values, sd.index.Indexer(idx), fill)

	return &SingleData{index: idx.Clone(), values: values}
}

// Replace rewrites, in place, every value found as a key of mapping with the
// mapped value. Unmatched values and the index are left unchanged. Each value
// is replaced at most once, so {1: 2, 2: 3} turns [1, 2] into [2, 3].
func (sd *SingleData) Replace(mapping map[float64]float64) {
	replaceValues(sd.values, mapping)
}

// Sum adds all non-missing values. An all-missing or empty container sums to 0.
func (sd *SingleData) Sum() float64 {
	return nanSum(sd.values)
}

// Count returns the number of non-missing values.
func (sd *SingleData) Count() int {
	return nanCount(sd.values)
}

// Mean averages the non-missing values; it is NaN when there are none.
func (sd *SingleData) Mean() float64 {
	return nanMean(sd.values)
}

// IsNA returns a mask that is true wherever the value is missing.
func (sd *SingleData) IsNA() *Mask {
	out := make([]bool, len(sd.values))
	for i, v := range sd.values {
		out[i] = math.IsNaN(v)
	}

	return &Mask{index: sd.index, values: out}
}

// NotNA returns a mask that is true wherever the value is present.
func (sd *SingleData) NotNA() *Mask {
	return sd.IsNA().Not()
}

// ToMask converts the values to a mask explicitly: non-zero values are true,
// zero and missing values are false.
func (sd *SingleData) ToMask() *Mask {
	out := make([]bool, len(sd.values))
	for i, v := range sd.values {
		out[i] = v != 0 && !math.IsNaN(v)
	}

	return &Mask{index: sd.index, values: out}
}

// FillNA returns a copy with missing values replaced by v.
func (sd *SingleData) FillNA(v float64) *SingleData {
	values := cloneValues(sd.values)
	fillNaN(values, v)

	return &SingleData{index: sd.index, values: values}
}

// Map applies fn to every value. The result shares the receiver's Index.
func (sd *SingleData) Map(fn func(float64) float64) *SingleData {
	values := make([]float64, len(sd.values))
	for i, v := range sd.values {
		values[i] = fn(v)
	}

	return &SingleData{index: sd.index, values: values}
}

// Abs returns the absolute values. The result shares the receiver's Index.
func (sd *SingleData) Abs() *SingleData {
	return sd.Map(math.Abs)
}

// Neg returns the negated values. The result shares the receiver's Index.
func (sd *SingleData) Neg() *SingleData {
	return sd.MulScalar(-1)
}

// Compare returns the mask of values satisfying op against c.
func (sd *SingleData) Compare(op CompareOp, c float64) *Mask {
	return &Mask{index: sd.index, values: compareValues(sd.values, op, c)}
}

// Gt returns the mask of values greater than c.
func (sd *SingleData) Gt(c float64) *Mask { return sd.Compare(CmpGt, c) }

// Ge returns the mask of values greater than or equal to c.
func (sd *SingleData) Ge(c float64) *Mask { return sd.Compare(CmpGe, c) }

// Lt returns the mask of values less than c.
func (sd *SingleData) Lt(c float64) *Mask { return sd.Compare(CmpLt, c) }

// Le returns the mask of values less than or equal to c.
func (sd *SingleData) Le(c float64) *Mask { return sd.Compare(CmpLe, c) }

// Eq returns the mask of values equal to c.
func (sd *SingleData) Eq(c float64) *Mask { return sd.Compare(CmpEq, c) }

// Ne returns the mask of values not equal to c. Missing values are not equal
// to anything.
func (sd *SingleData) Ne(c float64) *Mask { return sd.Compare(CmpNe, c) }

// take builds a new SingleData from the given positions.
func (sd *SingleData) take(positions []int) *SingleData {
	values := make([]float64, len(positions))
	for i, p := range positions {
		values[i] = sd.values[p]
	}

	return &SingleData{index: sd.index.Take(positions), values: values}
}

// takeRange builds a new SingleData from the half-open range [start, stop).
func (sd *SingleData) takeRange(start, stop int) *SingleData {
	return &SingleData{
		index:  sd.index.TakeRange(start, stop),
		values: cloneValues(sd.values[start:stop]),
	}
}

func (sd *SingleData) String() string {
	return fmt.Sprintf("SingleData(len=%d)", sd.Len())
}
