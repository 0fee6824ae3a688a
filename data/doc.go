// Package data implements the labeled containers SingleData (one axis) and
// MultiData (rows × columns) on top of index.Index.
//
// # Construction
//
// A container is built from exactly one Input variant, chosen by the caller
// through a named constructor, plus optional labels:
//
//	sd, err := data.NewSingle(data.Values([]float64{1, 2, 3, 4}),
//	    data.WithIndex("foo", "bar", "f", "g"))
//
//	md, err := data.NewMulti(data.Grid([][]float64{{1, 2}, {3, data.NA}}),
//	    data.WithIndex("foo", "bar"), data.WithColumns("f", "g"))
//
// Omitted labels default to a dense range index. Data whose length does not
// match the labels fails with errs.ErrShapeMismatch.
//
// # Access
//
// Loc resolves labels and ILoc resolves positions. Label slices include both
// bounds; positional slices are half-open. Masks filter one axis and must have
// the same length as that axis. A missing label returns errs.ErrLabelNotFound
// and a bad position errs.ErrOutOfBounds.
//
// # Arithmetic
//
// Binary operations align both operands first: the result index is the left
// operand's labels followed by the labels only the right operand has, in the
// right operand's order. Labels missing from one side contribute NaN, and NaN
// propagates through Add, Sub, Mul and Div. The *Fill variants substitute a
// fill value for every missing cell instead. Division by zero follows IEEE-754.
//
// # Mutation and concurrency
//
// Only SortIndex and Replace modify a container, in place. Everything else
// returns a new container that shares no mutable state with its operands;
// scalar arithmetic shares the operand's Index, which is immutable. Concurrent
// reads are safe, concurrent mutation of one container is not.
package data
