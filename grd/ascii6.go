package grd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-grd/internal/format"
)

// surfer6ASCIIBlank is the blanking value as written in Surfer 6 text grids.
const surfer6ASCIIBlank = 1.70141e38

// asciiLines yields numbered lines of a text grid.
type asciiLines struct {
	sc   *bufio.Scanner
	line int
}

func newASCIILines(r io.ReaderAt, size int64) *asciiLines {
	sc := bufio.NewScanner(io.NewSectionReader(r, 0, size))
	// A data row holds every value of one grid row on a single line.
	limit := bufio.MaxScanTokenSize
	if size+1 > int64(limit) {
		limit = int(min(size+1, math.MaxInt32))
	}
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), limit)
	return &asciiLines{sc: sc}
}

// next returns the next line, or an error naming what was expected there.
func (l *asciiLines) next(expected string) (string, error) {
	if l.sc.Scan() {
		l.line++
		return l.sc.Text(), nil
	}
	if err := l.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", lineError(ErrMalformedBody, l.line+1, "line too long")
		}
		return "", fmt.Errorf("reading line %d: %w", l.line+1, err)
	}
	return "", lineError(ErrMalformedBody, l.line+1, "expected %s, got end of file", expected)
}

// pair parses a header line holding exactly two numbers.
func (l *asciiLines) pair(expected string) (a, b float64, err error) {
	text, err := l.next(expected)
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, lineError(ErrMalformedBody, l.line,
			"expected 2 values (%s), got %d", expected, len(fields))
	}
	if a, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, lineError(ErrMalformedBody, l.line, "%s: non-numeric token %q", expected, fields[0])
	}
	if b, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, lineError(ErrMalformedBody, l.line, "%s: non-numeric token %q", expected, fields[1])
	}
	return a, b, nil
}

// intPair parses the dimension line.
func (l *asciiLines) intPair(expected string) (a, b int, err error) {
	text, err := l.next(expected)
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, lineError(ErrMalformedBody, l.line,
			"expected 2 integers (%s), got %d values", expected, len(fields))
	}
	if a, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, lineError(ErrMalformedBody, l.line, "%s: non-integer token %q", expected, fields[0])
	}
	if b, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, lineError(ErrMalformedBody, l.line, "%s: non-integer token %q", expected, fields[1])
	}
	return a, b, nil
}

// decodeSurfer6ASCII decodes a DSAA text grid. The layout is strictly
// positional: identifier, dimensions, X, Y and Z ranges, then one line per
// grid row from south to north.
func decodeSurfer6ASCII(r io.ReaderAt, size int64) (*Grid, error) {
	lines := newASCIILines(r, size)

	ident, err := lines.next("identifier " + format.MagicSurfer6ASCII)
	if err != nil {
		return nil, lineError(ErrMalformedHeader, 1, "missing identifier line")
	}
	if got := strings.TrimRight(ident, " \t\r"); got != format.MagicSurfer6ASCII {
		return nil, lineError(ErrMalformedHeader, 1,
			"expected identifier %q, got %q", format.MagicSurfer6ASCII, got)
	}

	ncol, nrow, err := lines.intPair("ncol nrow")
	if err != nil {
		return nil, err
	}
	if ncol < 2 || nrow < 2 {
		return nil, lineError(ErrInvalidDimensions, lines.line,
			"need at least 2 columns and 2 rows to define spacing, got ncol=%d nrow=%d", ncol, nrow)
	}
	// Every value takes at least one byte of text. Divide rather than
	// multiply so huge dimensions cannot overflow.
	if int64(ncol) > size || int64(nrow) > size/int64(ncol) {
		return nil, lineError(ErrMalformedBody, lines.line,
			"%d x %d grid cannot fit in a %d byte file", ncol, nrow, size)
	}

	xmin, xmax, err := lines.pair("xmin xmax")
	if err != nil {
		return nil, err
	}
	ymin, ymax, err := lines.pair("ymin ymax")
	if err != nil {
		return nil, err
	}
	zmin, zmax, err := lines.pair("zmin zmax")
	if err != nil {
		return nil, err
	}

	vals := make([]float64, 0, ncol*nrow)
	for row := 0; row < nrow; row++ {
		expected := fmt.Sprintf("row %d of %d with %d values", row+1, nrow, ncol)
		text, err := lines.next(expected)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(text)
		if len(fields) != ncol {
			return nil, lineError(ErrMalformedBody, lines.line,
				"expected %d values in row %d of %d, got %d", ncol, row+1, nrow, len(fields))
		}
		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, lineError(ErrMalformedBody, lines.line,
					"row %d: non-numeric token %q", row+1, tok)
			}
			vals = append(vals, v)
		}
	}

	g := newGrid(FormatSurfer6ASCII, ncol, nrow)
	g.XLL = xmin
	g.YLL = ymin
	g.XSize = (xmax - xmin) / float64(ncol-1)
	g.YSize = (ymax - ymin) / float64(nrow-1)
	g.Z = &Bounds{Min: zmin, Max: zmax}
	g.BlankValue = surfer6ASCIIBlank
	g.fillRowMajor(vals, surfer6ASCIIBlank)
	return g, nil
}
