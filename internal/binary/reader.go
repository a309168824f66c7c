package binary

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// ErrShortRead is returned when fewer bytes remain in the source than a
// read requires.
var ErrShortRead = errors.New("unexpected end of source")

// Reader reads fixed-width little-endian fields from an io.ReaderAt,
// tracking its own position. Reads never go past the configured size.
type Reader struct {
	r     io.ReaderAt
	order binary.ByteOrder
	size  int64
	pos   int64
}

// NewReader creates a little-endian reader over the first size bytes of r.
func NewReader(r io.ReaderAt, size int64) *Reader {
	return &Reader{
		r:     r,
		order: binary.LittleEndian,
		size:  size,
	}
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Remaining returns the number of bytes between the position and the end.
func (r *Reader) Remaining() int64 {
	if r.pos >= r.size {
		return 0
	}
	return r.size - r.pos
}

// ReadBytes reads exactly n bytes from the current position. If fewer than
// n bytes remain, it returns ErrShortRead and the position is unchanged.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if int64(n) > r.Remaining() {
		return nil, ErrShortRead
	}
	buf := make([]byte, n)
	got, err := r.r.ReadAt(buf, r.pos)
	if got < n {
		if err == nil || err == io.EOF {
			return nil, ErrShortRead
		}
		return nil, err
	}
	// A full read may still report io.EOF at the very end of the source.
	r.pos += int64(n)
	return buf, nil
}

// ReadTag reads a 4-byte ASCII section tag or magic identifier.
func (r *Reader) ReadTag() (string, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(r.order.Uint16(buf)), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(r.order.Uint32(buf)), nil
}

// ReadFloat32 reads an IEEE 754 single-precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(r.order.Uint32(buf)), nil
}

// ReadFloat64 reads an IEEE 754 double-precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(buf)), nil
}

// ReadFloat64s reads a run of n consecutive doubles. The run is fetched
// with a single ReadAt.
func (r *Reader) ReadFloat64s(n int) ([]float64, error) {
	buf, err := r.ReadBytes(n * 8)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(r.order.Uint64(buf[i*8:]))
	}
	return out, nil
}

// ReadFloat32s reads a run of n consecutive singles.
func (r *Reader) ReadFloat32s(n int) ([]float32, error) {
	buf, err := r.ReadBytes(n * 4)
	if err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(r.order.Uint32(buf[i*4:]))
	}
	return out, nil
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int64) {
	r.pos += n
}

// Peek reads n bytes without advancing the position.
func (r *Reader) Peek(n int) ([]byte, error) {
	pos := r.pos
	buf, err := r.ReadBytes(n)
	r.pos = pos
	return buf, err
}
