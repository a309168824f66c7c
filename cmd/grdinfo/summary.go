package main

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/robert-malhotra/go-grd/grd"
)

func writeSummary(w io.Writer, path string, g *grd.Grid, warnings grd.Warnings, prec int) {
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'g', prec, 64)
	}

	fmt.Fprintf(w, "== %s ==\n", path)
	fmt.Fprintf(w, "Format:     %s\n", g.Format)
	fmt.Fprintf(w, "Dimensions: %d x %d (ncol x nrow)\n", g.NCol, g.NRow)
	fmt.Fprintf(w, "Origin:     (%s, %s)\n", num(g.XLL), num(g.YLL))
	fmt.Fprintf(w, "Spacing:    %s x %s\n", num(g.XSize), num(g.YSize))
	fmt.Fprintf(w, "Extent:     (%s, %s) .. (%s, %s)\n",
		num(g.XLL), num(g.YLL), num(g.X(g.NCol-1)), num(g.Y(g.NRow-1)))
	if g.Z != nil {
		fmt.Fprintf(w, "Z bounds:   %s .. %s\n", num(g.Z.Min), num(g.Z.Max))
	}
	if g.Rotation != 0 {
		fmt.Fprintf(w, "Rotation:   %s (not applied)\n", num(g.Rotation))
	}

	blank := g.NoDataCount()
	if vals := g.Values(); len(vals) > 0 {
		fmt.Fprintf(w, "Data range: %s .. %s (mean %s)\n",
			num(floats.Min(vals)), num(floats.Max(vals)), num(floats.Sum(vals)/float64(len(vals))))
	} else {
		fmt.Fprintf(w, "Data range: none\n")
	}
	fmt.Fprintf(w, "Blank:      %d of %d\n", blank, g.NCol*g.NRow)

	if len(warnings) > 0 {
		fmt.Fprintf(w, "Warnings:\n")
		for _, msg := range warnings {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}
	fmt.Fprintln(w)
}
