package grd

import (
	"io"
	"math"

	"github.com/robert-malhotra/go-grd/internal/binary"
	"github.com/robert-malhotra/go-grd/internal/format"
)

// Surfer 7 section tags.
const (
	tagGrid      = "GRID"
	tagData      = "DATA"
	tagFaultInfo = "FLTI"
)

// gridSectionSize is the fixed GRID payload: two int32 counts and eight
// float64 fields.
const gridSectionSize = 2*4 + 8*8

// surfer7Header holds the GRID section payload.
type surfer7Header struct {
	nrow, ncol     int32
	x0, y0         float64
	deltaX, deltaY float64
	zmin, zmax     float64
	rotation       float64
	blank          float64
}

// decodeSurfer7Binary decodes a DSRB grid: a header section, a GRID section,
// a DATA section, and optionally trailing sections that are reported and
// skipped.
func decodeSurfer7Binary(r io.ReaderAt, size int64, warnings *warningSet) (*Grid, error) {
	const f = FormatSurfer7Binary
	rd := binary.NewReader(r, size)

	magic, err := rd.ReadTag()
	if err != nil {
		return nil, binaryError(ErrMalformedHeader, f, 0, "missing identifier")
	}
	if magic != format.MagicSurfer7Binary {
		return nil, binaryError(ErrMalformedHeader, f, 0,
			"expected identifier %q, got %q", format.MagicSurfer7Binary, magic)
	}

	// Header section length and version. Neither is checked.
	if rd.Remaining() < 8 {
		return nil, binaryError(ErrMalformedHeader, f, rd.Pos(), "header section truncated")
	}
	rd.Skip(8)

	if err := expectSection(rd, tagGrid, gridSectionSize); err != nil {
		return nil, err
	}
	hdr, err := readSurfer7Header(rd)
	if err != nil {
		return nil, err
	}
	if hdr.rotation != 0 {
		warnings.add(WarnRotation)
	}
	if hdr.ncol < 2 || hdr.nrow < 2 {
		return nil, binaryError(ErrInvalidDimensions, f, rd.Pos()-gridSectionSize,
			"need at least 2 columns and 2 rows, got ncol=%d nrow=%d", hdr.ncol, hdr.nrow)
	}

	if err := expectTag(rd, tagData); err != nil {
		return nil, err
	}
	n := int64(hdr.ncol) * int64(hdr.nrow)
	if n > math.MaxInt32/8 {
		return nil, binaryError(ErrUnexpectedSectionSize, f, rd.Pos(),
			"%s section for a %d x %d grid needs more bytes than a 4-byte length can declare",
			tagData, hdr.ncol, hdr.nrow)
	}
	if err := expectSize(rd, tagData, n*8); err != nil {
		return nil, err
	}
	if rd.Remaining() < n*8 {
		return nil, binaryError(ErrTruncatedData, f, rd.Pos(),
			"expected %d float64 values (%d bytes), %d bytes remain", n, n*8, rd.Remaining())
	}
	vals, err := rd.ReadFloat64s(int(n))
	if err != nil {
		return nil, readError(f, rd.Pos(), err)
	}

	// Anything after DATA is best effort. Fewer than 4 bytes is treated as
	// the end of the file.
	if rd.Remaining() >= 4 {
		tag, err := rd.ReadTag()
		if err != nil {
			return nil, readError(f, rd.Pos(), err)
		}
		if tag == tagFaultInfo {
			warnings.add(WarnFaultInfo)
		} else {
			warnings.add(warnUnrecognizedKeyword + tag)
		}
		warnings.add(WarnRemainderIgnored)
	}

	g := newGrid(f, int(hdr.ncol), int(hdr.nrow))
	g.XLL = hdr.x0
	g.YLL = hdr.y0
	g.XSize = hdr.deltaX
	g.YSize = hdr.deltaY
	g.Z = &Bounds{Min: hdr.zmin, Max: hdr.zmax}
	g.Rotation = hdr.rotation
	g.BlankValue = hdr.blank
	g.fillRowMajor(vals, hdr.blank)
	return g, nil
}

// expectSection reads a section tag and its int32 length and checks both.
func expectSection(rd *binary.Reader, tag string, size int64) error {
	if err := expectTag(rd, tag); err != nil {
		return err
	}
	return expectSize(rd, tag, size)
}

// expectTag reads a 4-byte section tag and checks it.
func expectTag(rd *binary.Reader, tag string) error {
	const f = FormatSurfer7Binary

	at := rd.Pos()
	got, err := rd.ReadTag()
	if err != nil {
		return binaryError(ErrUnexpectedSection, f, at,
			"expected %s section, found end of file", tag)
	}
	if got != tag {
		return binaryError(ErrUnexpectedSection, f, at,
			"expected %s section, found %q", tag, got)
	}
	return nil
}

// expectSize reads an int32 section length and checks it against size.
func expectSize(rd *binary.Reader, tag string, size int64) error {
	const f = FormatSurfer7Binary

	at := rd.Pos()
	length, err := rd.ReadInt32()
	if err != nil {
		return readError(f, at, err)
	}
	if int64(length) != size {
		return binaryError(ErrUnexpectedSectionSize, f, at,
			"%s section: expected %d bytes, got %d", tag, size, length)
	}
	return nil
}

func readSurfer7Header(rd *binary.Reader) (*surfer7Header, error) {
	const f = FormatSurfer7Binary

	if rd.Remaining() < gridSectionSize {
		return nil, binaryError(ErrMalformedHeader, f, rd.Pos(),
			"GRID section needs %d bytes, %d remain", gridSectionSize, rd.Remaining())
	}

	var h surfer7Header
	var err error
	if h.nrow, err = rd.ReadInt32(); err != nil {
		return nil, readError(f, rd.Pos(), err)
	}
	if h.ncol, err = rd.ReadInt32(); err != nil {
		return nil, readError(f, rd.Pos(), err)
	}
	fields := []*float64{
		&h.x0, &h.y0, &h.deltaX, &h.deltaY,
		&h.zmin, &h.zmax, &h.rotation, &h.blank,
	}
	for _, p := range fields {
		if *p, err = rd.ReadFloat64(); err != nil {
			return nil, readError(f, rd.Pos(), err)
		}
	}
	return &h, nil
}
