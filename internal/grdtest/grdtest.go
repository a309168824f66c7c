// Package grdtest builds Surfer grid byte images for tests.
//
// Each builder renders a well-formed file from its fields by default. Fields
// that name a magic identifier, a section tag or a section size override the
// computed value so tests can produce specific corruptions.
package grdtest

import (
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-grd/internal/binary"
)

// ASCII describes a Surfer 6 text grid.
type ASCII struct {
	Ident      string // defaults to DSAA
	NCol, NRow int
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
	Rows       [][]float64 // south to north, NCol values each
}

// Bytes renders the grid as text.
func (a ASCII) Bytes() []byte {
	ident := a.Ident
	if ident == "" {
		ident = "DSAA"
	}

	var b strings.Builder
	b.WriteString(ident + "\n")
	b.WriteString(strconv.Itoa(a.NCol) + " " + strconv.Itoa(a.NRow) + "\n")
	writePair(&b, a.XMin, a.XMax)
	writePair(&b, a.YMin, a.YMax)
	writePair(&b, a.ZMin, a.ZMax)
	for _, row := range a.Rows {
		toks := make([]string, len(row))
		for i, v := range row {
			toks[i] = formatFloat(v)
		}
		b.WriteString(strings.Join(toks, " ") + "\n")
	}
	return []byte(b.String())
}

func writePair(b *strings.Builder, lo, hi float64) {
	b.WriteString(formatFloat(lo) + " " + formatFloat(hi) + "\n")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Surfer6 describes a Surfer 6 binary grid.
type Surfer6 struct {
	Magic    string // defaults to DSBB
	NX, NY   int16
	XLo, XHi float64
	YLo, YHi float64
	ZLo, ZHi float64
	Values   []float32 // X varying fastest
}

// Bytes renders the grid in little-endian binary.
func (s Surfer6) Bytes() []byte {
	magic := s.Magic
	if magic == "" {
		magic = "DSBB"
	}

	w := binary.NewWriter()
	w.WriteTag(magic)
	w.WriteInt16(s.NX)
	w.WriteInt16(s.NY)
	for _, v := range []float64{s.XLo, s.XHi, s.YLo, s.YHi, s.ZLo, s.ZHi} {
		w.WriteFloat64(v)
	}
	for _, v := range s.Values {
		w.WriteFloat32(v)
	}
	return w.Bytes()
}

// Surfer7 describes a Surfer 7 binary grid.
type Surfer7 struct {
	Magic    string // defaults to DSRB
	GridTag  string // defaults to GRID
	GridSize int32  // defaults to 72
	DataTag  string // defaults to DATA
	DataSize int32  // defaults to NCol*NRow*8

	NRow, NCol     int32
	X0, Y0         float64
	DeltaX, DeltaY float64
	ZMin, ZMax     float64
	Rotation       float64
	Blank          float64
	Values         []float64 // X varying fastest

	// Trailer is appended verbatim after the DATA section.
	Trailer []byte
}

// Bytes renders the grid in little-endian binary.
func (s Surfer7) Bytes() []byte {
	w := binary.NewWriter()

	w.WriteTag(orDefault(s.Magic, "DSRB"))
	w.WriteInt32(4) // header section length
	w.WriteInt32(1) // version

	w.WriteTag(orDefault(s.GridTag, "GRID"))
	gridSize := s.GridSize
	if gridSize == 0 {
		gridSize = 72
	}
	w.WriteInt32(gridSize)
	w.WriteInt32(s.NRow)
	w.WriteInt32(s.NCol)
	for _, v := range []float64{s.X0, s.Y0, s.DeltaX, s.DeltaY, s.ZMin, s.ZMax, s.Rotation, s.Blank} {
		w.WriteFloat64(v)
	}

	w.WriteTag(orDefault(s.DataTag, "DATA"))
	dataSize := s.DataSize
	if dataSize == 0 {
		dataSize = s.NCol * s.NRow * 8
	}
	w.WriteInt32(dataSize)
	for _, v := range s.Values {
		w.WriteFloat64(v)
	}

	w.WriteBytes(s.Trailer)
	return w.Bytes()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Example5x7 is a 5 column by 7 row text grid over x 0..100, y 200..300.
func Example5x7() ASCII {
	return ASCII{
		NCol: 5, NRow: 7,
		XMin: 0, XMax: 100,
		YMin: 200, YMax: 300,
		ZMin: 1.5, ZMax: 2.5,
		Rows: [][]float64{
			{1.5, 1.6, 1.7, 1.8, 1.9},
			{1.6, 1.7, 1.8, 1.9, 2.0},
			{1.7, 1.8, 1.9, 2.0, 2.1},
			{1.8, 1.9, 2.0, 2.1, 2.2},
			{1.9, 2.0, 2.1, 2.2, 2.3},
			{2.0, 2.1, 2.2, 2.3, 2.4},
			{2.1, 2.2, 2.3, 2.4, 2.5},
		},
	}
}

// Ramp returns n values 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Ramp32 returns n float32 values 0, 1, ..., n-1.
func Ramp32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}
