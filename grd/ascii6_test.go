package grd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-grd/internal/grdtest"
)

func TestDecodeSurfer6ASCII(t *testing.T) {
	src := grdtest.Example5x7()

	g, warnings, err := DecodeBytes(src.Bytes())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, FormatSurfer6ASCII, g.Format)
	assert.Equal(t, 5, g.NCol)
	assert.Equal(t, 7, g.NRow)
	assert.Equal(t, 0.0, g.XLL)
	assert.Equal(t, 200.0, g.YLL)
	assert.Equal(t, 25.0, g.XSize)
	assert.InDelta(t, 100.0/6, g.YSize, 0.01)
	require.NotNil(t, g.Z)
	assert.Equal(t, Bounds{Min: 1.5, Max: 2.5}, *g.Z)

	r, c := g.Data().Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 7, c)

	// Stored data is the transpose of the row-major source.
	for row, values := range src.Rows {
		for col, v := range values {
			assert.Equal(t, v, g.At(col, row), "cell (%d, %d)", col, row)
		}
	}
}

func TestDecodeSurfer6ASCIITrailingWhitespace(t *testing.T) {
	text := "DSAA  \r\n2 2\r\n0 1\r\n0 1\r\n0 3\r\n0 1\r\n2 3\r\n"

	g, _, err := DecodeBytes([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.XSize)
	assert.Equal(t, 1.0, g.YSize)
	assert.Equal(t, []float64{0, 2}, g.Column(0))
	assert.Equal(t, []float64{1, 3}, g.Column(1))
}

func TestDecodeSurfer6ASCIIBlanking(t *testing.T) {
	text := "DSAA\n2 2\n0 1\n0 1\n0 3\n1.70141e38 1\n2 1.8e38\n"

	g, _, err := DecodeBytes([]byte(text))
	require.NoError(t, err)
	assert.True(t, IsNoData(g.At(0, 0)))
	assert.True(t, IsNoData(g.At(1, 1)))
	assert.Equal(t, 1.0, g.At(1, 0))
	assert.Equal(t, 2.0, g.At(0, 1))
	assert.Equal(t, 2, g.NoDataCount())
}

func TestDecodeSurfer6ASCIIErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind error
		line int
	}{
		{"identifier with suffix", "DSAAX\n2 2\n0 1\n0 1\n0 1\n1 2\n3 4\n", ErrMalformedHeader, 1},
		{"dimension line has 3 tokens", "DSAA\n2 2 2\n0 1\n0 1\n0 1\n1 2\n3 4\n", ErrMalformedBody, 2},
		{"non-integer dimension", "DSAA\n2 x\n0 1\n0 1\n0 1\n1 2\n3 4\n", ErrMalformedBody, 2},
		{"fractional dimension", "DSAA\n2.5 2\n0 1\n0 1\n0 1\n1 2\n3 4\n", ErrMalformedBody, 2},
		{"dimension product overflows", "DSAA\n3037000500 3037000500\n0 1\n0 1\n0 1\n1 2\n", ErrMalformedBody, 2},
		{"x range has 1 token", "DSAA\n2 2\n0\n0 1\n0 1\n1 2\n3 4\n", ErrMalformedBody, 3},
		{"non-numeric y range", "DSAA\n2 2\n0 1\n0 y\n0 1\n1 2\n3 4\n", ErrMalformedBody, 4},
		{"missing z range", "DSAA\n2 2\n0 1\n0 1\n", ErrMalformedBody, 5},
		{"missing row", "DSAA\n2 2\n0 1\n0 1\n0 1\n1 2\n", ErrMalformedBody, 7},
		{"short row", "DSAA\n2 2\n0 1\n0 1\n0 1\n1 2\n3\n", ErrMalformedBody, 7},
		{"long row", "DSAA\n2 2\n0 1\n0 1\n0 1\n1 2 5\n3 4\n", ErrMalformedBody, 6},
		{"non-numeric value", "DSAA\n2 2\n0 1\n0 1\n0 1\n1 2\n3 four\n", ErrMalformedBody, 7},
		{"blank line between rows", "DSAA\n2 2\n0 1\n0 1\n0 1\n1 2\n\n3 4\n", ErrMalformedBody, 7},
		{"single column", "DSAA\n1 2\n0 1\n0 1\n0 1\n1\n3\n", ErrInvalidDimensions, 2},
		{"single row", "DSAA\n2 1\n0 1\n0 1\n0 1\n1 2\n", ErrInvalidDimensions, 2},
		{"negative dimension", "DSAA\n-2 2\n0 1\n0 1\n0 1\n", ErrInvalidDimensions, 2},
		{"dimensions larger than file", "DSAA\n1000 1000\n0 1\n0 1\n0 1\n1 2\n", ErrMalformedBody, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, err := DecodeBytes([]byte(tt.text))
			assert.Nil(t, g)
			de := requireKind(t, err, tt.kind)
			assert.Equal(t, FormatSurfer6ASCII, de.Format)
			assert.Equal(t, tt.line, de.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestDecodeSurfer6ASCIIErrorNamesShape(t *testing.T) {
	text := "DSAA\n3 2\n0 1\n0 1\n0 1\n1 2 3\n4 5\n"

	_, _, err := DecodeBytes([]byte(text))
	de := requireKind(t, err, ErrMalformedBody)
	assert.Equal(t, 7, de.Line)
	assert.Contains(t, err.Error(), "expected 3 values in row 2 of 2, got 2")
}

func TestDecodeSurfer6ASCIIIgnoresTrailingLines(t *testing.T) {
	text := "DSAA\n2 2\n0 1\n0 1\n0 1\n1 2\n3 4\n\n\n"

	g, _, err := DecodeBytes([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, 4.0, g.At(1, 1))
}
