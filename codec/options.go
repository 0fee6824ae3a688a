package codec

import (
	"fmt"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/format"
	"github.com/arloliu/ixdata/internal/options"
)

// config holds encoder settings.
type config struct {
	bigEndian   bool
	compression format.CompressionType
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures encoding.
type Option = options.Option[*config]

// WithLittleEndian writes header fields and values little-endian.
// It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = false
	})
}

// WithBigEndian writes header fields and values big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithCompression sets the payload compression. The default is Zstd.
//
// When compression does not shrink the payload, it is stored uncompressed
// and the header records CompressionNone.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !comp.Valid() {
			return fmt.Errorf("%w: compression %s", errs.ErrInvalidInput, comp)
		}
		c.compression = comp

		return nil
	})
}

const (
	// DefaultMaxPayloadSize is the default limit on the decompressed payload.
	DefaultMaxPayloadSize = 64 << 20
	// DefaultMaxAxisLength is the default limit on a default-range axis of a
	// container without values, whose length no payload bytes account for.
	DefaultMaxAxisLength = 1 << 16
)

// decodeConfig holds decoder limits.
type decodeConfig struct {
	maxPayloadSize int
	maxAxisLength  int
}

func newDecodeConfig(opts []DecodeOption) (*decodeConfig, error) {
	cfg := &decodeConfig{
		maxPayloadSize: DefaultMaxPayloadSize,
		maxAxisLength:  DefaultMaxAxisLength,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DecodeOption configures decoding.
type DecodeOption = options.Option[*decodeConfig]

// WithMaxPayloadSize limits the decompressed payload to n bytes. Blobs whose
// header declares a larger payload fail with errs.ErrDecodeLimit before
// anything is decompressed. The default is DefaultMaxPayloadSize.
func WithMaxPayloadSize(n int) DecodeOption {
	return options.New(func(c *decodeConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max payload size %d", errs.ErrInvalidInput, n)
		}
		c.maxPayloadSize = n

		return nil
	})
}

// WithMaxAxisLength limits default-range axes of containers that hold no
// values, such as a MultiData with rows and no columns. Such axes are stored
// as a bare length, so the limit is what bounds their memory. The default is
// DefaultMaxAxisLength.
func WithMaxAxisLength(n int) DecodeOption {
	return options.New(func(c *decodeConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: max axis length %d", errs.ErrInvalidInput, n)
		}
		c.maxAxisLength = n

		return nil
	})
}
