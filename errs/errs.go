// Package errs defines the sentinel errors returned by ixdata packages.
//
// Callers match them with errors.Is; packages wrap them with context via
// fmt.Errorf("...: %w", err).
package errs

import "errors"

// Container construction and access errors.
var (
	// ErrShapeMismatch is returned when supplied data does not match the declared
	// index/columns length, or when a mask does not match the axis it filters.
	ErrShapeMismatch = errors.New("data shape does not match index")

	// ErrLabelNotFound is returned by label-based lookups for an absent label.
	ErrLabelNotFound = errors.New("label not found in index")

	// ErrOutOfBounds is returned by position-based lookups outside [0, len).
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrDuplicateLabel is returned when an index would contain the same label twice.
	ErrDuplicateLabel = errors.New("duplicate label in index")

	// ErrUnorderableLabels is returned when labels of different kinds are compared,
	// e.g. by SortIndex on a mixed int/string index.
	ErrUnorderableLabels = errors.New("labels are not mutually ordered")

	// ErrInvalidLabel is returned for a Go value that cannot be used as a label.
	ErrInvalidLabel = errors.New("invalid label type")

	// ErrInvalidAxis is returned for an axis other than rows or columns.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrInvalidInput is returned for an input variant a container cannot be built from.
	ErrInvalidInput = errors.New("invalid container input")
)

// Binary codec errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrTruncatedPayload   = errors.New("truncated payload")
	ErrTrailingData       = errors.New("unexpected trailing data in payload")
	ErrKindMismatch       = errors.New("encoded container kind mismatch")
	ErrDecompressedSize   = errors.New("decompressed size does not match header")
	ErrDecodeLimit        = errors.New("decode limit exceeded")
)
