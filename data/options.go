package data

import (
	"fmt"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/index"
	"github.com/arloliu/ixdata/internal/options"
)

// Axis selects the rows or the columns of a MultiData.
type Axis uint8

const (
	AxisRows    Axis = 0 // AxisRows is the row axis (axis 0).
	AxisColumns Axis = 1 // AxisColumns is the column axis (axis 1).
)

func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "Rows"
	case AxisColumns:
		return "Columns"
	default:
		return "Unknown"
	}
}

func (a Axis) validate() error {
	if a != AxisRows && a != AxisColumns {
		return fmt.Errorf("%w: %d", errs.ErrInvalidAxis, a)
	}

	return nil
}

// config collects the labels supplied at construction time.
type config struct {
	index   *index.Index
	columns *index.Index
}

// Option configures container construction.
type Option = options.Option[*config]

// WithIndex sets the (row) labels from Go values converted with label.Of.
func WithIndex(labels ...any) Option {
	return options.New(func(c *config) error {
		idx, err := index.FromValues(labels...)
		if err != nil {
			return fmt.Errorf("index: %w", err)
		}
		c.index = idx

		return nil
	})
}

// WithLabels sets the (row) labels from an existing Index.
func WithLabels(idx *index.Index) Option {
	return options.NoError(func(c *config) {
		c.index = idx
	})
}

// WithColumns sets the column labels of a MultiData.
func WithColumns(labels ...any) Option {
	return options.New(func(c *config) error {
		idx, err := index.FromValues(labels...)
		if err != nil {
			return fmt.Errorf("columns: %w", err)
		}
		c.columns = idx

		return nil
	})
}

// WithColumnLabels sets the column labels of a MultiData from an existing Index.
func WithColumnLabels(idx *index.Index) Option {
	return options.NoError(func(c *config) {
		c.columns = idx
	})
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
