package data

import (
	"fmt"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/index"
)

// Mask is a boolean vector aligned to an Index, used to filter one axis of a
// container.
//
// Masks are a distinct type: numeric data is never reinterpreted as a mask
// implicitly. Use SingleData.ToMask for an explicit conversion.
type Mask struct {
	index  *index.Index
	values []bool
}

// NewMask creates a Mask over values. Labels come from WithIndex/WithLabels
// and default to a range index; their count must match len(values).
func NewMask(values []bool, opts ...Option) (*Mask, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	idx := cfg.index
	if idx == nil {
		idx = index.Range(len(values))
	}
	if idx.Len() != len(values) {
		return nil, fmt.Errorf("%w: %d mask values for %d labels", errs.ErrShapeMismatch, len(values), idx.Len())
	}

	owned := make([]bool, len(values))
	copy(owned, values)

	return &Mask{index: idx, values: owned}, nil
}

// Len returns the number of entries.
func (m *Mask) Len() int {
	return len(m.values)
}

// Index returns the labels of the mask.
func (m *Mask) Index() *index.Index {
	return m.index
}

// Values returns a copy of the boolean entries.
func (m *Mask) Values() []bool {
	out := make([]bool, len(m.values))
	copy(out, m.values)

	return out
}

// At returns the entry at position i. It panics if i is out of range.
func (m *Mask) At(i int) bool {
	return m.values[i]
}

// Count returns the number of true entries.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.values {
		if v {
			n++
		}
	}

	return n
}

// Positions returns the positions of the true entries, ascending.
func (m *Mask) Positions() []int {
	out := make([]int, 0, m.Count())
	for i, v := range m.values {
		if v {
			out = append(out, i)
		}
	}

	return out
}

// Not returns the element-wise negation.
func (m *Mask) Not() *Mask {
	out := make([]bool, len(m.values))
	for i, v := range m.values {
		out[i] = !v
	}

	return &Mask{index: m.index, values: out}
}

// And returns the element-wise conjunction. Both masks must have the same length.
func (m *Mask) And(other *Mask) (*Mask, error) {
	return m.combine(other, func(a, b bool) bool { return a && b })
}

// Or returns the element-wise disjunction. Both masks must have the same length.
func (m *Mask) Or(other *Mask) (*Mask, error) {
	return m.combine(other, func(a, b bool) bool { return a || b })
}

func (m *Mask) combine(other *Mask, fn func(a, b bool) bool) (*Mask, error) {
	if m.Len() != other.Len() {
		return nil, fmt.Errorf("%w: masks of length %d and %d", errs.ErrShapeMismatch, m.Len(), other.Len())
	}

	out := make([]bool, len(m.values))
	for i := range out {
		out[i] = fn(m.values[i], other.values[i])
	}

	return &Mask{index: m.index, values: out}, nil
}

// checkMask verifies that m can filter an axis of length n.
func checkMask(m *Mask, n int) error {
	if m == nil {
		return fmt.Errorf("%w: nil mask", errs.ErrInvalidInput)
	}
	if m.Len() != n {
		return fmt.Errorf("%w: mask of length %d for axis of length %d", errs.ErrShapeMismatch, m.Len(), n)
	}

	return nil
}

// MultiMask is a boolean grid aligned to a row and a column Index.
type MultiMask struct {
	rows   *index.Index
	cols   *index.Index
	values []bool
}

// Shape returns the number of rows and columns.
func (m *MultiMask) Shape() (int, int) {
	return m.rows.Len(), m.cols.Len()
}

// Index returns the row labels.
func (m *MultiMask) Index() *index.Index {
	return m.rows
}

// Columns returns the column labels.
func (m *MultiMask) Columns() *index.Index {
	return m.cols
}

// At returns the entry at row i, column j. It panics if either is out of range.
func (m *MultiMask) At(i, j int) bool {
	if j < 0 || j >= m.cols.Len() {
		panic(fmt.Sprintf("column %d out of range", j))
	}

	return m.values[i*m.cols.Len()+j]
}

// Count returns the number of true cells.
func (m *MultiMask) Count() int {
	n := 0
	for _, v := range m.values {
		if v {
			n++
		}
	}

	return n
}

// Not returns the cell-wise negation.
func (m *MultiMask) Not() *MultiMask {
	out := make([]bool, len(m.values))
	for i, v := range m.values {
		out[i] = !v
	}

	return &MultiMask{rows: m.rows, cols: m.cols, values: out}
}

// Values returns a copy of the cells, one slice per row.
func (m *MultiMask) Values() [][]bool {
	nr, nc := m.Shape()
	out := make([][]bool, nr)
	for i := range out {
		out[i] = make([]bool, nc)
		copy(out[i], m.values[i*nc:(i+1)*nc])
	}

	return out
}

// Any returns, along axis, whether any cell is true: AxisRows reduces each
// column over its rows (result indexed by columns), AxisColumns reduces each
// row (result indexed by rows).
func (m *MultiMask) Any(axis Axis) (*Mask, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}

	nr, nc := m.Shape()
	if axis == AxisRows {
		out := make([]bool, nc)
		for i := range nr {
			for j := range nc {
				out[j] = out[j] || m.values[i*nc+j]
			}
		}

		return &Mask{index: m.cols, values: out}, nil
	}

	out := make([]bool, nr)
	for i := range nr {
		for j := range nc {
			out[i] = out[i] || m.values[i*nc+j]
		}
	}

	return &Mask{index: m.rows, values: out}, nil
}
