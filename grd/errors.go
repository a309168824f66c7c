package grd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-grd/internal/format"
)

// Error kinds. Every failure returned by Decode matches exactly one of these
// under errors.Is.
var (
	ErrUnrecognizedFormat    = format.ErrUnrecognized
	ErrMalformedHeader       = errors.New("malformed header")
	ErrUnexpectedSection     = errors.New("unexpected section")
	ErrUnexpectedSectionSize = errors.New("unexpected section size")
	ErrTruncatedData         = errors.New("truncated data")
	ErrMalformedBody         = errors.New("malformed body")
	ErrInvalidDimensions     = errors.New("invalid grid dimensions")
	ErrShapeMismatch         = errors.New("grid data shape mismatch")
)

// DecodeError describes where and why a decode failed.
type DecodeError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Format is the variant being decoded.
	Format Format

	// Offset is the byte offset of the offending field in binary formats,
	// or -1 when not applicable.
	Offset int64

	// Line is the 1-based line number in ASCII sources, or 0.
	Line int

	// Detail names the expected and actual values.
	Detail string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Format.String())
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	switch {
	case e.Line > 0:
		fmt.Fprintf(&b, " at line %d", e.Line)
	case e.Offset >= 0:
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the error kind.
func (e *DecodeError) Unwrap() error {
	return e.Kind
}

// binaryError builds a DecodeError positioned at a byte offset.
func binaryError(kind error, f Format, offset int64, detail string, args ...any) error {
	return &DecodeError{
		Kind:   kind,
		Format: f,
		Offset: offset,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// lineError builds a DecodeError positioned at an ASCII line.
func lineError(kind error, line int, detail string, args ...any) error {
	return &DecodeError{
		Kind:   kind,
		Format: FormatSurfer6ASCII,
		Offset: -1,
		Line:   line,
		Detail: fmt.Sprintf(detail, args...),
	}
}
