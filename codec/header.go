package codec

import (
	"github.com/arloliu/ixdata/endian"
	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/format"
)

const (
	// Bit masks of Flag.Options
	KindMask         = 0x0003 // Mask for container kind (bits 0-1)
	EndiannessMask   = 0x0004 // Mask for endianness bit (bit 2)
	ReservedBitsMask = 0x0008 // Mask for reserved bit (bit 3), must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicV1 identifies version 1 of the container format (bits 4-15).
	MagicV1 = 0xD1A0

	// Bits of Flag.Labels
	LabelsDefaultRows = 0x01 // row labels are a default range and are not stored
	LabelsDefaultCols = 0x02 // column labels are a default range and are not stored
	labelsValidMask   = LabelsDefaultRows | LabelsDefaultCols

	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 28
)

// Flag is the packed first word of the header.
type Flag struct {
	// Options packs the container kind (bits 0-1), the endianness (bit 2,
	// 0 little, 1 big), a reserved bit and the magic number (bits 4-15).
	// It is always stored little-endian.
	Options uint16
	// Compression is the format.CompressionType of the payload.
	Compression uint8
	// Labels marks axes whose labels are omitted because they are a default
	// range.
	Labels uint8
}

// NewFlag creates a little-endian, uncompressed flag for kind.
func NewFlag(kind format.Kind) Flag {
	return Flag{
		Options:     MagicV1 | uint16(kind)&KindMask,
		Compression: uint8(format.CompressionNone),
	}
}

// Kind returns the container kind.
func (f Flag) Kind() format.Kind {
	return format.Kind(f.Options & KindMask)
}

// IsBigEndian returns whether the header fields and values are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// SetBigEndian selects the byte order.
func (f *Flag) SetBigEndian(big bool) {
	if big {
		f.Options |= EndiannessMask
	} else {
		f.Options &^= EndiannessMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// CompressionType returns the payload compression.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// HasDefaultRows reports whether the row labels are a default range.
func (f Flag) HasDefaultRows() bool {
	return f.Labels&LabelsDefaultRows != 0
}

// HasDefaultCols reports whether the column labels are a default range.
func (f Flag) HasDefaultCols() bool {
	return f.Labels&LabelsDefaultCols != 0
}

// Validate checks the magic number, kind, reserved bits and compression.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicV1 {
		return errs.ErrInvalidMagicNumber
	}
	if !f.Kind().Valid() || f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.CompressionType().Valid() || f.Labels&^labelsValidMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if f.Kind() == format.KindSingle && f.HasDefaultCols() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.Engine(f.IsBigEndian())
}

// Header is the fixed-size section at the start of an encoded container.
type Header struct {
	// Rows is the number of rows (the length of a SingleData).
	Rows uint32 // byte offset 4-7
	// Cols is the number of columns, always 0 for a SingleData.
	Cols uint32 // byte offset 8-11
	// PayloadSize is the length of the (compressed) payload after the header.
	PayloadSize uint32 // byte offset 12-15
	// RawSize is the length of the payload once decompressed. It equals
	// PayloadSize for an uncompressed payload.
	RawSize uint32 // byte offset 16-19
	// Checksum is the xxHash64 of the (compressed) payload.
	Checksum uint64 // byte offset 20-27

	Flag Flag // byte offset 0-3
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, or flag
//     validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = data[2]
	h.Flag.Labels = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Rows = engine.Uint32(data[4:8])
	h.Cols = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])

	if h.Flag.Kind() == format.KindSingle && h.Cols != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if h.Flag.CompressionType() == format.CompressionNone && h.RawSize != h.PayloadSize {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.put(b)

	return b
}

func (h *Header) put(b []byte) {
	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Flag.Labels
	engine.PutUint32(b[4:8], h.Rows)
	engine.PutUint32(b[8:12], h.Cols)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint32(b[16:20], h.RawSize)
	engine.PutUint64(b[20:28], h.Checksum)
}

// ParseHeader parses a Header from the start of data.
//
// Returns ErrInvalidHeaderSize if data is shorter than HeaderSize.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
