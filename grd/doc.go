// Package grd decodes Surfer .grd grid files.
//
// Three variants are supported, identified by the first 4 bytes of the file:
//
//   - DSAA: Surfer 6 ASCII. Line-oriented text with a five-line header and
//     one line per grid row.
//   - DSBB: Surfer 6 binary. A fixed little-endian header followed by
//     float32 values.
//   - DSRB: Surfer 7 binary. Tagged little-endian sections (GRID, DATA)
//     with float64 values.
//
// Decoding produces a [Grid]: node counts, lower-left origin, uniform
// spacing, the declared Z range, and the data as a gonum matrix with one
// row per grid column. Blanked cells hold [NoData] (NaN).
//
//	g, warnings, err := grd.DecodeFile("surface.grd")
//	if errors.Is(err, grd.ErrUnrecognizedFormat) {
//	    // not a Surfer grid
//	}
//	for _, w := range warnings {
//	    log.Println(w)
//	}
//	z := g.At(0, 0) // south-west node
//
// Rotated Surfer 7 grids decode with a warning; the rotation is recorded in
// [Grid.Rotation] but never applied. Sections after DATA are reported as
// warnings and ignored.
//
// # Errors
//
// Every failure matches one kind under errors.Is: [ErrUnrecognizedFormat],
// [ErrMalformedHeader], [ErrUnexpectedSection], [ErrUnexpectedSectionSize],
// [ErrTruncatedData], [ErrMalformedBody], [ErrInvalidDimensions] or
// [ErrShapeMismatch]. Use errors.As with [*DecodeError] for the position.
//
// Decode calls share no state and may run concurrently.
package grd
