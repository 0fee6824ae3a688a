// Package label defines the Label value used to identify rows and columns.
//
// A Label is either an integer or a string. Labels are comparable with ==
// and can be used as map keys. Ordering is defined within one kind only;
// comparing an integer label to a string label is a precondition violation
// reported as errs.ErrUnorderableLabels.
package label

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/ixdata/errs"
)

// Kind identifies the underlying type of a Label.
type Kind uint8

const (
	KindInt    Kind = 0x1 // KindInt represents an int64 label.
	KindString Kind = 0x2 // KindString represents a string label.
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindString:
		return "String"
	default:
		return "Unknown"
	}
}

// Label is an immutable row or column identifier.
type Label struct {
	kind Kind
	num  int64
	str  string
}

// Int returns an integer label.
func Int(v int64) Label {
	return Label{kind: KindInt, num: v}
}

// Str returns a string label.
func Str(s string) Label {
	return Label{kind: KindString, str: s}
}

// Of converts a Go value into a Label.
//
// Accepted types are every signed and unsigned integer type, string and
// Label itself. Unsigned values above math.MaxInt64 and any other type
// return errs.ErrInvalidLabel.
func Of(v any) (Label, error) {
	switch x := v.(type) {
	case Label:
		if x.kind == 0 {
			return Label{}, fmt.Errorf("%w: zero Label", errs.ErrInvalidLabel)
		}

		return x, nil
	case string:
		return Str(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x)
	default:
		return Label{}, fmt.Errorf("%w: %T", errs.ErrInvalidLabel, v)
	}
}

func fromUint(v uint64) (Label, error) {
	if v > math.MaxInt64 {
		return Label{}, fmt.Errorf("%w: %d overflows int64", errs.ErrInvalidLabel, v)
	}

	return Int(int64(v)), nil
}

// MustOf is like Of but panics on error. It is intended for literals in tests
// and examples.
func MustOf(v any) Label {
	l, err := Of(v)
	if err != nil {
		panic(err)
	}

	return l
}

// OfSlice converts every value with Of.
func OfSlice(values []any) ([]Label, error) {
	labels := make([]Label, len(values))
	for i, v := range values {
		l, err := Of(v)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		labels[i] = l
	}

	return labels, nil
}

// Kind returns the label kind.
func (l Label) Kind() Kind {
	return l.kind
}

// IsInt reports whether the label is an integer label.
func (l Label) IsInt() bool {
	return l.kind == KindInt
}

// IsString reports whether the label is a string label.
func (l Label) IsString() bool {
	return l.kind == KindString
}

// IntValue returns the integer value; ok is false for string labels.
func (l Label) IntValue() (v int64, ok bool) {
	return l.num, l.kind == KindInt
}

// StringValue returns the string value; ok is false for integer labels.
func (l Label) StringValue() (s string, ok bool) {
	return l.str, l.kind == KindString
}

// Value returns the label as an int64 or a string.
func (l Label) Value() any {
	if l.kind == KindInt {
		return l.num
	}

	return l.str
}

func (l Label) String() string {
	if l.kind == KindInt {
		return strconv.FormatInt(l.num, 10)
	}

	return l.str
}

// Compare orders two labels of the same kind.
//
// Returns -1, 0 or +1. Labels of different kinds return errs.ErrUnorderableLabels.
func Compare(a, b Label) (int, error) {
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: %s %q vs %s %q", errs.ErrUnorderableLabels, a.kind, a, b.kind, b)
	}

	if a.kind == KindInt {
		switch {
		case a.num < b.num:
			return -1, nil
		case a.num > b.num:
			return 1, nil
		default:
			return 0, nil
		}
	}

	switch {
	case a.str < b.str:
		return -1, nil
	case a.str > b.str:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports a < b for labels known to share a kind. Labels of different
// kinds are ordered by kind so that the result is still a strict weak order.
func Less(a, b Label) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	if a.kind == KindInt {
		return a.num < b.num
	}

	return a.str < b.str
}
