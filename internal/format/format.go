// Package format identifies Surfer grid file variants from their leading
// magic bytes.
package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-grd/internal/binary"
)

// Format is one of the Surfer grid file variants.
type Format int

// Known formats. Unknown is the zero value.
const (
	Unknown Format = iota
	Surfer6ASCII
	Surfer6Binary
	Surfer7Binary
)

// Magic identifiers at byte offset 0.
const (
	MagicSurfer6ASCII  = "DSAA"
	MagicSurfer6Binary = "DSBB"
	MagicSurfer7Binary = "DSRB"
)

// MagicSize is the length of every magic identifier.
const MagicSize = 4

// ErrUnrecognized is returned when the leading bytes match no known variant.
var ErrUnrecognized = errors.New("unrecognized Surfer grid identifier")

// Magic returns the identifier for f, or "" for Unknown.
func (f Format) Magic() string {
	switch f {
	case Surfer6ASCII:
		return MagicSurfer6ASCII
	case Surfer6Binary:
		return MagicSurfer6Binary
	case Surfer7Binary:
		return MagicSurfer7Binary
	default:
		return ""
	}
}

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case Surfer6ASCII:
		return "Surfer 6 ASCII"
	case Surfer6Binary:
		return "Surfer 6 binary"
	case Surfer7Binary:
		return "Surfer 7 binary"
	default:
		return "unknown"
	}
}

// Classify maps a 4-byte identifier to its format.
func Classify(magic []byte) (Format, error) {
	switch string(magic) {
	case MagicSurfer7Binary:
		return Surfer7Binary, nil
	case MagicSurfer6Binary:
		return Surfer6Binary, nil
	case MagicSurfer6ASCII:
		return Surfer6ASCII, nil
	}
	return Unknown, unrecognized(fmt.Sprintf("%q", magic))
}

func unrecognized(detail string) error {
	return fmt.Errorf("%w %s: first 4 characters must be %s, %s, or %s",
		ErrUnrecognized, detail, MagicSurfer7Binary, MagicSurfer6Binary, MagicSurfer6ASCII)
}

// Sniff reads the first 4 bytes of r and classifies them. Sources shorter
// than 4 bytes are unrecognized. Sniff does not consume anything; decoders
// re-read from offset 0.
func Sniff(r io.ReaderAt, size int64) (Format, error) {
	if size < MagicSize {
		return Unknown, unrecognized(fmt.Sprintf("(source is %d bytes)", size))
	}
	buf, err := binary.NewReader(r, size).Peek(MagicSize)
	if errors.Is(err, binary.ErrShortRead) {
		return Unknown, unrecognized("(source ended early)")
	}
	if err != nil {
		return Unknown, fmt.Errorf("reading identifier: %w", err)
	}
	return Classify(buf)
}
