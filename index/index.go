// Package index implements Index, the ordered and unique label sequence that
// backs every axis of a labeled container.
//
// An Index maps labels to dense positions and back. It is immutable after
// construction: operations that reorder or subset labels (Take, Sorted, Union)
// return a new Index, which makes an Index safe to share between containers
// and to read concurrently.
//
// # Ordering
//
// An Index remembers whether its labels are strictly ascending. Construction
// detects it, Sorted guarantees it, and Range is sorted by definition. A
// sorted Index resolves label slices by binary search; an unsorted one falls
// back to a linear scan with the same inclusive-both-ends semantics.
package index

import (
	"fmt"
	"sync"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/internal/hash"
	"github.com/arloliu/ixdata/label"
)

// Index is an ordered sequence of unique labels plus the inverse mapping
// label -> position.
type Index struct {
	labels    []label.Label
	positions map[label.Label]int
	sorted    bool
	isDefault bool

	fpOnce sync.Once
	fp     uint64
}

// New creates an Index over labels, in the given order.
//
// The labels slice is copied. A label appearing twice is a precondition
// violation and returns errs.ErrDuplicateLabel.
func New(labels []label.Label) (*Index, error) {
	owned := make([]label.Label, len(labels))
	copy(owned, labels)

	positions := make(map[label.Label]int, len(owned))
	for i, l := range owned {
		if prev, exists := positions[l]; exists {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", errs.ErrDuplicateLabel, l, prev, i)
		}
		positions[l] = i
	}

	return &Index{
		labels:    owned,
		positions: positions,
		sorted:    isAscending(owned),
	}, nil
}

// FromValues creates an Index from Go values converted with label.Of.
func FromValues(values ...any) (*Index, error) {
	labels, err := label.OfSlice(values)
	if err != nil {
		return nil, err
	}

	return New(labels)
}

// MustFromValues is like FromValues but panics on error.
func MustFromValues(values ...any) *Index {
	idx, err := FromValues(values...)
	if err != nil {
		panic(err)
	}

	return idx
}

// Range returns the default index 0..n-1, used when no labels are supplied.
func Range(n int) *Index {
	n = max(n, 0)
	labels := make([]label.Label, n)
	positions := make(map[label.Label]int, n)
	for i := range labels {
		labels[i] = label.Int(int64(i))
		positions[labels[i]] = i
	}

	return &Index{
		labels:    labels,
		positions: positions,
		sorted:    true,
		isDefault: true,
	}
}

// newTrusted builds an Index from labels already known to be unique.
// The caller transfers ownership of labels.
func newTrusted(labels []label.Label, sorted bool) *Index {
	positions := make(map[label.Label]int, len(labels))
	for i, l := range labels {
		positions[l] = i
	}

	return &Index{
		labels:    labels,
		positions: positions,
		sorted:    sorted || isAscending(labels),
	}
}

// Len returns the number of labels. A nil Index has length 0.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}

	return len(ix.labels)
}

// Labels returns a copy of the label sequence.
func (ix *Index) Labels() []label.Label {
	out := make([]label.Label, ix.Len())
	if ix != nil {
		copy(out, ix.labels)
	}

	return out
}

// Values returns the labels as Go values (int64 or string).
func (ix *Index) Values() []any {
	out := make([]any, ix.Len())
	for i := range out {
		out[i] = ix.labels[i].Value()
	}

	return out
}

// IsSorted reports whether the labels are known to be strictly ascending.
func (ix *Index) IsSorted() bool {
	return ix == nil || ix.sorted
}

// IsDefault reports whether ix is a default range index created by Range.
func (ix *Index) IsDefault() bool {
	return ix != nil && ix.isDefault
}

// Contains reports whether l is present.
func (ix *Index) Contains(l label.Label) bool {
	_, ok := ix.Lookup(l)
	return ok
}

// Lookup returns the position of l and whether it is present.
func (ix *Index) Lookup(l label.Label) (int, bool) {
	if ix == nil {
		return 0, false
	}
	pos, ok := ix.positions[l]

	return pos, ok
}

// PositionOf returns the position of l.
//
// Returns errs.ErrLabelNotFound if l is absent.
func (ix *Index) PositionOf(l label.Label) (int, error) {
	pos, ok := ix.Lookup(l)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrLabelNotFound, l)
	}

	return pos, nil
}

// PositionOfValue converts v with label.Of and returns its position.
func (ix *Index) PositionOfValue(v any) (int, error) {
	l, err := label.Of(v)
	if err != nil {
		return 0, err
	}

	return ix.PositionOf(l)
}

// LabelAt returns the label at pos.
//
// Returns errs.ErrOutOfBounds if pos is outside [0, Len()).
func (ix *Index) LabelAt(pos int) (label.Label, error) {
	if pos < 0 || pos >= ix.Len() {
		return label.Label{}, fmt.Errorf("%w: position %d, length %d", errs.ErrOutOfBounds, pos, ix.Len())
	}

	return ix.labels[pos], nil
}

// Fingerprint returns the xxHash64 of the label sequence.
func (ix *Index) Fingerprint() uint64 {
	if ix == nil {
		return hash.Labels(nil)
	}
	ix.fpOnce.Do(func() {
		ix.fp = hash.Labels(ix.labels)
	})

	return ix.fp
}

// Equal reports whether both indexes hold the same labels in the same order.
//
// Two empty indexes are equal, and a nil Index equals an empty one.
func (ix *Index) Equal(other *Index) bool {
	if ix == other {
		return true
	}
	if ix.Len() != other.Len() {
		return false
	}
	if ix.Len() == 0 {
		return true
	}
	if ix.isDefault && other.isDefault {
		return true
	}
	if ix.Fingerprint() != other.Fingerprint() {
		return false
	}
	for i, l := range ix.labels {
		if other.labels[i] != l {
			return false
		}
	}

	return true
}

// Take returns a new Index holding the labels at positions, in that order.
//
// positions must be valid and free of repeats; Take panics on an out-of-range
// position and does not re-check uniqueness.
func (ix *Index) Take(positions []int) *Index {
	labels := make([]label.Label, len(positions))
	for i, p := range positions {
		labels[i] = ix.labels[p]
	}

	return newTrusted(labels, false)
}

// TakeRange returns a new Index over the half-open position range [start, stop).
func (ix *Index) TakeRange(start, stop int) *Index {
	labels := make([]label.Label, stop-start)
	copy(labels, ix.labelsOrNil()[start:stop])

	return newTrusted(labels, ix.IsSorted())
}

// Clone returns an independent copy of ix.
func (ix *Index) Clone() *Index {
	if ix == nil {
		return newTrusted(nil, true)
	}
	if ix.IsDefault() {
		return Range(ix.Len())
	}

	return ix.TakeRange(0, ix.Len())
}

// Union merges ix and other.
//
// The result keeps the order of ix and then appends the labels of other that
// ix lacks, in the order they appear in other.
func (ix *Index) Union(other *Index) *Index {
	labels := make([]label.Label, 0, ix.Len()+other.Len())
	labels = append(labels, ix.labelsOrNil()...)
	for _, l := range other.labelsOrNil() {
		if !ix.Contains(l) {
			labels = append(labels, l)
		}
	}

	return newTrusted(labels, false)
}

// Indexer returns, for every label of target, its position in ix or -1 when
// ix does not contain it.
func (ix *Index) Indexer(target *Index) []int {
	out := make([]int, target.Len())
	ix.IndexerInto(out, target)

	return out
}

// IndexerInto is Indexer writing into dst, which must hold target.Len()
// elements.
func (ix *Index) IndexerInto(dst []int, target *Index) {
	for i, l := range target.labelsOrNil() {
		pos, ok := ix.Lookup(l)
		if !ok {
			pos = -1
		}
		dst[i] = pos
	}
}

func (ix *Index) labelsOrNil() []label.Label {
	if ix == nil {
		return nil
	}

	return ix.labels
}

func (ix *Index) String() string {
	return fmt.Sprintf("Index%v", ix.labelsOrNil())
}

func isAscending(labels []label.Label) bool {
	for i := 1; i < len(labels); i++ {
		c, err := label.Compare(labels[i-1], labels[i])
		if err != nil || c >= 0 {
			return false
		}
	}

	return true
}
