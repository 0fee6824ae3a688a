package data

import (
	"fmt"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/index"
	"github.com/arloliu/ixdata/label"
)

// SingleLoc resolves label-based requests against a SingleData.
type SingleLoc struct {
	sd *SingleData
}

// SingleILoc resolves position-based requests against a SingleData.
type SingleILoc struct {
	sd *SingleData
}

// Loc returns the label-based accessor.
func (sd *SingleData) Loc() SingleLoc {
	return SingleLoc{sd: sd}
}

// ILoc returns the position-based accessor.
func (sd *SingleData) ILoc() SingleILoc {
	return SingleILoc{sd: sd}
}

// At returns the value labeled key.
//
// Returns errs.ErrLabelNotFound if key is absent, or errs.ErrInvalidLabel if
// key cannot be a label.
func (l SingleLoc) At(key any) (float64, error) {
	pos, err := l.sd.index.PositionOfValue(key)
	if err != nil {
		return 0, err
	}

	return l.sd.values[pos], nil
}

// Slice returns the values whose labels lie in [start, stop], both inclusive.
// A nil bound is open. See index.Index.SliceLocs for the resolution rules.
func (l SingleLoc) Slice(start, stop any) (*SingleData, error) {
	lo, hi, err := sliceBounds(start, stop)
	if err != nil {
		return nil, err
	}

	return sliceByLabel(l.sd, lo, hi)
}

// Labels returns the values for the given labels, in that order.
func (l SingleLoc) Labels(keys ...any) (*SingleData, error) {
	positions, err := resolveLabels(l.sd.index, keys)
	if err != nil {
		return nil, err
	}

	return l.sd.take(positions), nil
}

// Mask returns the values where m is true, keeping their relative order.
// m must have the same length as the container.
func (l SingleLoc) Mask(m *Mask) (*SingleData, error) {
	return maskSingle(l.sd, m)
}

// At returns the value at pos.
//
// Returns errs.ErrOutOfBounds if pos is outside [0, Len()).
func (l SingleILoc) At(pos int) (float64, error) {
	if err := checkPosition(pos, l.sd.Len()); err != nil {
		return 0, err
	}

	return l.sd.values[pos], nil
}

// Slice returns the half-open position range [start, stop). Bounds are
// clamped to [0, Len()] and an inverted range is empty.
func (l SingleILoc) Slice(start, stop int) *SingleData {
	lo, hi := clampRange(start, stop, l.sd.Len())
	return l.sd.takeRange(lo, hi)
}

// Positions returns the values at the given positions, in that order.
func (l SingleILoc) Positions(positions ...int) (*SingleData, error) {
	if err := checkPositions(positions, l.sd.Len()); err != nil {
		return nil, err
	}

	return l.sd.take(positions), nil
}

// Mask is identical to SingleLoc.Mask: masks are positional by nature.
func (l SingleILoc) Mask(m *Mask) (*SingleData, error) {
	return maskSingle(l.sd, m)
}

func sliceByLabel(sd *SingleData, lo, hi *label.Label) (*SingleData, error) {
	if start, stop, ok, err := sd.index.SliceBounds(lo, hi); ok || err != nil {
		if err != nil {
			return nil, err
		}

		return sd.takeRange(start, stop), nil
	}

	positions, err := sd.index.SliceLocs(lo, hi)
	if err != nil {
		return nil, err
	}

	return sd.take(positions), nil
}

func maskSingle(sd *SingleData, m *Mask) (*SingleData, error) {
	if err := checkMask(m, sd.Len()); err != nil {
		return nil, err
	}

	return sd.take(m.Positions()), nil
}

// sliceBounds converts optional Go values into label bounds.
func sliceBounds(start, stop any) (*label.Label, *label.Label, error) {
	lo, err := optionalLabel(start)
	if err != nil {
		return nil, nil, fmt.Errorf("slice start: %w", err)
	}
	hi, err := optionalLabel(stop)
	if err != nil {
		return nil, nil, fmt.Errorf("slice stop: %w", err)
	}

	return lo, hi, nil
}

func optionalLabel(v any) (*label.Label, error) {
	if v == nil {
		return nil, nil
	}
	l, err := label.Of(v)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func resolveLabels(idx *index.Index, keys []any) ([]int, error) {
	positions := make([]int, len(keys))
	seen := make(map[int]struct{}, len(keys))
	for i, k := range keys {
		pos, err := idx.PositionOfValue(k)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[pos]; dup {
			return nil, fmt.Errorf("%w: %v selected twice", errs.ErrDuplicateLabel, k)
		}
		seen[pos] = struct{}{}
		positions[i] = pos
	}

	return positions, nil
}

func checkPosition(pos, n int) error {
	if pos < 0 || pos >= n {
		return fmt.Errorf("%w: position %d, length %d", errs.ErrOutOfBounds, pos, n)
	}

	return nil
}

func checkPositions(positions []int, n int) error {
	seen := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if err := checkPosition(p, n); err != nil {
			return err
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: position %d selected twice", errs.ErrDuplicateLabel, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}

func clampRange(start, stop, n int) (int, int) {
	start = min(max(start, 0), n)
	stop = min(max(stop, 0), n)
	if stop < start {
		stop = start
	}

	return start, stop
}
