package grd

import "github.com/sirupsen/logrus"

// Option configures a decode call.
type Option func(*decodeOptions)

type decodeOptions struct {
	logger logrus.FieldLogger
	format Format
}

func defaultDecodeOptions() *decodeOptions {
	return &decodeOptions{}
}

// WithLogger logs every distinct warning at Warn level as it is recorded,
// plus a Debug entry for each decoded grid. Without it, decoding is silent
// and warnings are only returned.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *decodeOptions) {
		o.logger = l
	}
}

// WithFormat skips sniffing and decodes the source as f. The decoder still
// checks the magic identifier, so a source of another variant fails with
// ErrMalformedHeader.
func WithFormat(f Format) Option {
	return func(o *decodeOptions) {
		o.format = f
	}
}
