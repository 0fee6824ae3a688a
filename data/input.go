package data

import (
	"math"
	"slices"
)

// NA is the missing-value sentinel.
var NA = math.NaN()

// IsNA reports whether v is the missing-value sentinel.
func IsNA(v float64) bool {
	return math.IsNaN(v)
}

// InputKind enumerates the data variants a container can be built from.
type InputKind uint8

const (
	InputEmpty    InputKind = iota // no data
	InputScalar                    // one value broadcast to every cell
	InputSequence                  // 1-D values
	InputGrid                      // 2-D values, one slice per row
	InputMapping                   // ordered label -> value pairs
	InputSingle                    // an existing SingleData
	InputMulti                     // an existing MultiData
	InputColumns                   // named SingleData columns
)

func (k InputKind) String() string {
	switch k {
	case InputEmpty:
		return "Empty"
	case InputScalar:
		return "Scalar"
	case InputSequence:
		return "Sequence"
	case InputGrid:
		return "Grid"
	case InputMapping:
		return "Mapping"
	case InputSingle:
		return "Single"
	case InputMulti:
		return "Multi"
	case InputColumns:
		return "Columns"
	default:
		return "Unknown"
	}
}

// Input is the raw data a container is built from. Create it with one of the
// constructors below; the zero Input is Empty.
type Input struct {
	kind    InputKind
	scalar  float64
	seq     []float64
	grid    [][]float64
	keys    []any
	single  *SingleData
	multi   *MultiData
	columns []*SingleData
}

// Kind returns the input variant.
func (in Input) Kind() InputKind {
	return in.kind
}

// Empty is the omitted-data input.
func Empty() Input {
	return Input{kind: InputEmpty}
}

// Scalar broadcasts v to every cell.
func Scalar(v float64) Input {
	return Input{kind: InputScalar, scalar: v}
}

// Values is a 1-D sequence. The slice is copied at construction.
func Values(vs []float64) Input {
	return Input{kind: InputSequence, seq: vs}
}

// Ints is a 1-D sequence of integers, converted to float64.
func Ints(vs []int) Input {
	seq := make([]float64, len(vs))
	for i, v := range vs {
		seq[i] = float64(v)
	}

	return Input{kind: InputSequence, seq: seq}
}

// Grid is 2-D row-major data: one inner slice per row. It is copied at
// construction.
func Grid(rows [][]float64) Input {
	return Input{kind: InputGrid, grid: rows}
}

// Map pairs keys[i] with vals[i]. The keys become the index in the given
// order. keys and vals must have the same length.
func Map(keys []any, vals []float64) Input {
	return Input{kind: InputMapping, keys: keys, seq: vals}
}

// LabelKey is the set of Go map key types MapOf accepts.
type LabelKey interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | string
}

// MapOf builds a mapping input from a Go map. Go maps are unordered, so the
// keys are placed in ascending order.
func MapOf[K LabelKey](m map[K]float64) Input {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	anyKeys := make([]any, len(keys))
	vals := make([]float64, len(keys))
	for i, k := range keys {
		anyKeys[i] = k
		vals[i] = m[k]
	}

	return Map(anyKeys, vals)
}

// FromSingle copies an existing SingleData.
func FromSingle(sd *SingleData) Input {
	return Input{kind: InputSingle, single: sd}
}

// FromMulti copies an existing MultiData.
func FromMulti(md *MultiData) Input {
	return Input{kind: InputMulti, multi: md}
}

// Columns builds a MultiData from SingleData columns. keys name the columns
// and must be as many as cols; nil keys mean a default range. The row index is
// the union of the column indexes.
func Columns(keys []any, cols ...*SingleData) Input {
	return Input{kind: InputColumns, keys: keys, columns: cols}
}
