package grd

import (
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-grd/internal/binary"
	"github.com/robert-malhotra/go-grd/internal/format"
)

// surfer6Blank is the Surfer 6 blanking value, 1.70141e38 rounded to
// float32 and widened.
const surfer6Blank = 1.701410009187828e38

// surfer6HeaderSize is the magic, two int16 counts and six float64 ranges.
const surfer6HeaderSize = 4 + 2*2 + 6*8

// decodeSurfer6Binary decodes a DSBB grid: a fixed 56-byte header followed
// by nx*ny float32 values, X varying fastest.
func decodeSurfer6Binary(r io.ReaderAt, size int64) (*Grid, error) {
	const f = FormatSurfer6Binary
	rd := binary.NewReader(r, size)

	if rd.Remaining() < surfer6HeaderSize {
		return nil, binaryError(ErrMalformedHeader, f, 0,
			"header needs %d bytes, source has %d", surfer6HeaderSize, size)
	}

	magic, err := rd.ReadTag()
	if err != nil {
		return nil, readError(f, rd.Pos(), err)
	}
	if magic != format.MagicSurfer6Binary {
		return nil, binaryError(ErrMalformedHeader, f, 0,
			"expected identifier %q, got %q", format.MagicSurfer6Binary, magic)
	}

	dimsAt := rd.Pos()
	nx, err := rd.ReadInt16()
	if err != nil {
		return nil, readError(f, rd.Pos(), err)
	}
	ny, err := rd.ReadInt16()
	if err != nil {
		return nil, readError(f, rd.Pos(), err)
	}

	var ranges [6]float64
	for i := range ranges {
		if ranges[i], err = rd.ReadFloat64(); err != nil {
			return nil, readError(f, rd.Pos(), err)
		}
	}
	xlo, xhi, ylo, yhi, zlo, zhi := ranges[0], ranges[1], ranges[2], ranges[3], ranges[4], ranges[5]

	// Spacing is (hi-lo)/(n-1); a single row or column leaves it undefined.
	if nx < 2 || ny < 2 {
		return nil, binaryError(ErrMalformedHeader, f, dimsAt,
			"need at least 2 columns and 2 rows to define spacing, got nx=%d ny=%d", nx, ny)
	}

	n := int(nx) * int(ny)
	if need := int64(n) * 4; rd.Remaining() < need {
		return nil, binaryError(ErrTruncatedData, f, rd.Pos(),
			"expected %d float32 values (%d bytes), %d bytes remain", n, need, rd.Remaining())
	}
	raw, err := rd.ReadFloat32s(n)
	if err != nil {
		return nil, readError(f, rd.Pos(), err)
	}
	vals := make([]float64, n)
	for i, v := range raw {
		vals[i] = float64(v)
	}

	g := newGrid(f, int(nx), int(ny))
	g.XLL = xlo
	g.YLL = ylo
	g.XSize = (xhi - xlo) / float64(nx-1)
	g.YSize = (yhi - ylo) / float64(ny-1)
	g.Z = &Bounds{Min: zlo, Max: zhi}
	g.BlankValue = surfer6Blank
	g.fillRowMajor(vals, surfer6Blank)
	return g, nil
}

// readError converts a low-level read failure into a decode error. Running
// out of bytes is truncation; anything else is an I/O error passed through.
func readError(f Format, offset int64, err error) error {
	if errors.Is(err, binary.ErrShortRead) {
		return binaryError(ErrTruncatedData, f, offset, "source ended early")
	}
	return fmt.Errorf("reading %s at offset %d: %w", f, offset, err)
}
