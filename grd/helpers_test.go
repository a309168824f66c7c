package grd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireSameGrid compares two grids field by field. Data is compared by
// bit pattern so NoData cells must line up.
func requireSameGrid(t *testing.T, want, got *Grid) {
	t.Helper()

	require.Equal(t, want.Format, got.Format)
	require.Equal(t, want.NCol, got.NCol)
	require.Equal(t, want.NRow, got.NRow)
	require.Equal(t, want.XLL, got.XLL)
	require.Equal(t, want.YLL, got.YLL)
	require.Equal(t, want.XSize, got.XSize)
	require.Equal(t, want.YSize, got.YSize)
	require.Equal(t, want.Z, got.Z)
	require.Equal(t, want.Rotation, got.Rotation)
	require.Equal(t, want.BlankValue, got.BlankValue)

	for col := 0; col < want.NCol; col++ {
		for row := 0; row < want.NRow; row++ {
			w, g := want.At(col, row), got.At(col, row)
			if IsNoData(w) {
				require.True(t, IsNoData(g), "cell (%d, %d): expected NoData, got %v", col, row, g)
				continue
			}
			require.Equal(t, math.Float64bits(w), math.Float64bits(g),
				"cell (%d, %d): expected %v, got %v", col, row, w, g)
		}
	}
}

// requireKind asserts err is a *DecodeError of the given kind and returns it.
func requireKind(t *testing.T, err error, kind error) *DecodeError {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	return de
}
