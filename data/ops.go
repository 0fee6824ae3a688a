package data

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Op is an element-wise binary arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota + 1 // OpAdd is a + b.
	OpSub               // OpSub is a - b.
	OpMul               // OpMul is a * b.
	OpDiv               // OpDiv is a / b.
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is one of the defined operators.
func (o Op) Valid() bool {
	return o >= OpAdd && o <= OpDiv
}

// Eval applies the operator to two scalars with IEEE-754 semantics: a NaN
// operand yields NaN and division by zero yields ±Inf or NaN.
func (o Op) Eval(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return math.NaN()
	}
}

// kernel writes o(a[i], b[i]) into dst. All slices have the same length.
func (o Op) kernel(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}

	switch o {
	case OpAdd:
		floats.AddTo(dst, a, b)
	case OpSub:
		floats.SubTo(dst, a, b)
	case OpMul:
		floats.MulTo(dst, a, b)
	case OpDiv:
		floats.DivTo(dst, a, b)
	default:
		for i := range dst {
			dst[i] = math.NaN()
		}
	}
}

// scalarKernel writes o(a[i], c) into dst, or o(c, a[i]) when reversed.
func (o Op) scalarKernel(dst, a []float64, c float64, reversed bool) {
	if len(dst) == 0 {
		return
	}

	switch {
	case o == OpMul:
		floats.ScaleTo(dst, c, a)
	case o == OpAdd:
		copy(dst, a)
		floats.AddConst(c, dst)
	case o == OpSub && !reversed:
		copy(dst, a)
		floats.AddConst(-c, dst)
	case reversed:
		for i, v := range a {
			dst[i] = o.Eval(c, v)
		}
	default:
		for i, v := range a {
			dst[i] = o.Eval(v, c)
		}
	}
}

// nanSum adds every non-missing value. An all-missing input sums to 0.
func nanSum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
		}
	}

	return sum
}

// nanCount counts the non-missing values.
func nanCount(values []float64) int {
	n := 0
	for _, v := range values {
		if !math.IsNaN(v) {
			n++
		}
	}

	return n
}

// nanMean is the mean of the non-missing values, NaN when there are none.
func nanMean(values []float64) float64 {
	n := nanCount(values)
	if n == 0 {
		return math.NaN()
	}

	return nanSum(values) / float64(n)
}

// replaceValues rewrites values in place through mapping. A NaN key matches
// missing values, which a Go map lookup cannot do on its own.
func replaceValues(values []float64, mapping map[float64]float64) {
	nanRepl, hasNaN := 0.0, false
	for k, v := range mapping {
		if math.IsNaN(k) {
			nanRepl, hasNaN = v, true
			break
		}
	}

	for i, v := range values {
		if math.IsNaN(v) {
			if hasNaN {
				values[i] = nanRepl
			}

			continue
		}
		if repl, ok := mapping[v]; ok {
			values[i] = repl
		}
	}
}

// fillNaN replaces missing values in place.
func fillNaN(values []float64, fill float64) {
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = fill
		}
	}
}

// sameValues compares two buffers treating NaN as equal to NaN.
func sameValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}

	return true
}

// CompareOp is an element-wise comparison against a scalar.
type CompareOp uint8

const (
	CmpGt CompareOp = iota + 1 // CmpGt is v > c.
	CmpGe                      // CmpGe is v >= c.
	CmpLt                      // CmpLt is v < c.
	CmpLe                      // CmpLe is v <= c.
	CmpEq                      // CmpEq is v == c.
	CmpNe                      // CmpNe is v != c.
)

// eval follows IEEE-754: every comparison with NaN is false except !=.
func (c CompareOp) eval(v, s float64) bool {
	switch c {
	case CmpGt:
		return v > s
	case CmpGe:
		return v >= s
	case CmpLt:
		return v < s
	case CmpLe:
		return v <= s
	case CmpEq:
		return v == s
	case CmpNe:
		return v != s
	default:
		return false
	}
}

func compareValues(values []float64, op CompareOp, s float64) []bool {
	out := make([]bool, len(values))
	for i, v := range values {
		out[i] = op.eval(v, s)
	}

	return out
}
