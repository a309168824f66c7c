package grd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NoData marks a blanked cell in grid data.
var NoData = math.NaN()

// IsNoData reports whether v is the no-data marker.
func IsNoData(v float64) bool {
	return math.IsNaN(v)
}

// Bounds is a declared value range from a grid header.
type Bounds struct {
	Min, Max float64
}

// Grid is a decoded, validated Surfer grid.
//
// Data is stored with one matrix row per grid column and one matrix column
// per grid row, so At(col, row) addresses the node at X(col), Y(row). Row 0
// is the southernmost row, as in every Surfer variant.
type Grid struct {
	// Format is the variant the grid was decoded from.
	Format Format

	// NCol and NRow are the node counts along X and Y.
	NCol, NRow int

	// XLL and YLL locate the lower-left node.
	XLL, YLL float64

	// XSize and YSize are the uniform node spacings.
	XSize, YSize float64

	// Z is the value range declared in the header. It is metadata only and
	// is not checked against the data.
	Z *Bounds

	// Rotation is the Surfer 7 rotation angle. It is never applied to the
	// geometry; a non-zero value only produces a warning.
	Rotation float64

	// BlankValue is the threshold at or above which raw values were
	// replaced with NoData.
	BlankValue float64

	data *mat.Dense
}

// newGrid allocates a grid with NCol x NRow storage. Callers must have
// checked that both dimensions are positive.
func newGrid(f Format, ncol, nrow int) *Grid {
	return &Grid{
		Format: f,
		NCol:   ncol,
		NRow:   nrow,
		data:   mat.NewDense(ncol, nrow, nil),
	}
}

// fillRowMajor stores values laid out row by row (X varying fastest), the
// order shared by all three Surfer variants, into column-major storage.
// Values at or above blank become NoData.
func (g *Grid) fillRowMajor(vals []float64, blank float64) {
	for k, v := range vals {
		if v >= blank {
			v = NoData
		}
		g.data.Set(k%g.NCol, k/g.NCol, v)
	}
}

// validate checks the invariants every decoded grid must satisfy.
func (g *Grid) validate() error {
	if g.NCol < 2 || g.NRow < 2 {
		return binaryError(ErrInvalidDimensions, g.Format, -1,
			"need at least 2 columns and 2 rows, got ncol=%d nrow=%d", g.NCol, g.NRow)
	}
	if g.data == nil {
		return binaryError(ErrShapeMismatch, g.Format, -1,
			"expected (%d, %d), got no data", g.NCol, g.NRow)
	}
	if r, c := g.data.Dims(); r != g.NCol || c != g.NRow {
		return binaryError(ErrShapeMismatch, g.Format, -1,
			"expected (%d, %d), got (%d, %d)", g.NCol, g.NRow, r, c)
	}
	if !isFinite(g.XSize) || !isFinite(g.YSize) {
		return binaryError(ErrMalformedHeader, g.Format, -1,
			"spacing must be finite, got xsize=%v ysize=%v", g.XSize, g.YSize)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Dims returns the grid dimensions as (columns, rows).
func (g *Grid) Dims() (ncol, nrow int) {
	return g.NCol, g.NRow
}

// At returns the value at column col and row row.
// It panics if either index is out of range.
func (g *Grid) At(col, row int) float64 {
	return g.data.At(col, row)
}

// Data returns the NCol x NRow data matrix. It must not be modified.
func (g *Grid) Data() mat.Matrix {
	return g.data
}

// Column returns a copy of the values in grid column col, south to north.
func (g *Grid) Column(col int) []float64 {
	return mat.Row(nil, col, g.data)
}

// X returns the X coordinate of column col.
func (g *Grid) X(col int) float64 {
	return g.XLL + float64(col)*g.XSize
}

// Y returns the Y coordinate of row row.
func (g *Grid) Y(row int) float64 {
	return g.YLL + float64(row)*g.YSize
}

// XEdges returns the NCol-1 cell widths along X. Spacing is uniform, so
// every entry is XSize.
func (g *Grid) XEdges() []float64 {
	return uniform(g.NCol-1, g.XSize)
}

// YEdges returns the NRow-1 cell heights along Y.
func (g *Grid) YEdges() []float64 {
	return uniform(g.NRow-1, g.YSize)
}

func uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// NoDataCount returns the number of blanked cells.
func (g *Grid) NoDataCount() int {
	n := 0
	for col := 0; col < g.NCol; col++ {
		for row := 0; row < g.NRow; row++ {
			if IsNoData(g.data.At(col, row)) {
				n++
			}
		}
	}
	return n
}

// Values returns the non-blank values in column-major order.
func (g *Grid) Values() []float64 {
	out := make([]float64, 0, g.NCol*g.NRow)
	for col := 0; col < g.NCol; col++ {
		for row := 0; row < g.NRow; row++ {
			if v := g.data.At(col, row); !IsNoData(v) {
				out = append(out, v)
			}
		}
	}
	return out
}
