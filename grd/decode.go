package grd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-grd/internal/format"
)

// Format identifies a Surfer grid variant.
type Format = format.Format

// Supported formats.
const (
	FormatUnknown       = format.Unknown
	FormatSurfer6ASCII  = format.Surfer6ASCII
	FormatSurfer6Binary = format.Surfer6Binary
	FormatSurfer7Binary = format.Surfer7Binary
)

// Sniff reports the format of the grid in the first size bytes of r
// without decoding it.
func Sniff(r io.ReaderAt, size int64) (Format, error) {
	return format.Sniff(r, size)
}

// Decode reads a Surfer grid from the first size bytes of r.
//
// The format is picked from the first 4 bytes unless WithFormat is given.
// On success it returns the validated grid and the distinct warnings raised
// while decoding. On failure no grid is returned; the error matches one of
// the Err* kinds under errors.Is and is usually a *DecodeError.
func Decode(r io.ReaderAt, size int64, opts ...Option) (*Grid, Warnings, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(o)
	}

	f := o.format
	if f == FormatUnknown {
		var err error
		f, err = format.Sniff(r, size)
		if err != nil {
			return nil, nil, err
		}
	}

	warnings := newWarningSet(f, o.logger)

	var (
		g   *Grid
		err error
	)
	switch f {
	case FormatSurfer6ASCII:
		g, err = decodeSurfer6ASCII(r, size)
	case FormatSurfer6Binary:
		g, err = decodeSurfer6Binary(r, size)
	case FormatSurfer7Binary:
		g, err = decodeSurfer7Binary(r, size, warnings)
	default:
		return nil, nil, fmt.Errorf("%w: format %d", ErrUnrecognizedFormat, int(f))
	}
	if err != nil {
		return nil, warnings.list, err
	}
	if err := g.validate(); err != nil {
		return nil, warnings.list, err
	}

	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{
			"format": f.String(),
			"ncol":   g.NCol,
			"nrow":   g.NRow,
		}).Debug("decoded grid")
	}
	return g, warnings.list, nil
}

// DecodeBytes reads a Surfer grid held in memory.
func DecodeBytes(b []byte, opts ...Option) (*Grid, Warnings, error) {
	return Decode(bytes.NewReader(b), int64(len(b)), opts...)
}

// DecodeFile opens and decodes the grid file at path. The file is closed
// before DecodeFile returns.
func DecodeFile(path string, opts ...Option) (*Grid, Warnings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat file: %w", err)
	}
	return Decode(f, info.Size(), opts...)
}
