package binary

import (
	"encoding/binary"
	"math"
)

// Writer appends little-endian fields to an in-memory buffer. It is used to
// build grid images for tests; the decoder never writes.
type Writer struct {
	buf   []byte
	order binary.AppendByteOrder
}

// NewWriter creates an empty little-endian writer.
func NewWriter() *Writer {
	return &Writer{order: binary.LittleEndian}
}

// Pos returns the current write position.
func (w *Writer) Pos() int64 {
	return int64(len(w.buf))
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends the given bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteTag appends a 4-byte tag. Shorter tags are zero padded, longer
// ones truncated.
func (w *Writer) WriteTag(tag string) {
	var b [4]byte
	copy(b[:], tag)
	w.buf = append(w.buf, b[:]...)
}

// WriteInt16 appends a signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) {
	w.buf = w.order.AppendUint16(w.buf, uint16(v))
}

// WriteInt32 appends a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf = w.order.AppendUint32(w.buf, uint32(v))
}

// WriteFloat32 appends a single-precision value.
func (w *Writer) WriteFloat32(v float32) {
	w.buf = w.order.AppendUint32(w.buf, math.Float32bits(v))
}

// WriteFloat64 appends a double-precision value.
func (w *Writer) WriteFloat64(v float64) {
	w.buf = w.order.AppendUint64(w.buf, math.Float64bits(v))
}
