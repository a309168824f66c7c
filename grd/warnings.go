package grd

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Warning texts for non-fatal conditions.
const (
	WarnRotation         = "Unsupported feature: Rotation != 0"
	WarnFaultInfo        = "Unsupported feature: Fault Info"
	WarnRemainderIgnored = "Remainder of file ignored"

	warnUnrecognizedKeyword = "Unrecognized keyword: "
)

// Warnings lists the distinct non-fatal conditions of one decode call in
// the order they first occurred.
type Warnings []string

// Contains reports whether msg was recorded.
func (w Warnings) Contains(msg string) bool {
	return slices.Contains(w, msg)
}

// warningSet records warnings for a single decode call, dropping exact
// duplicates.
type warningSet struct {
	list   Warnings
	seen   map[string]struct{}
	format Format
	logger logrus.FieldLogger
}

func newWarningSet(f Format, logger logrus.FieldLogger) *warningSet {
	return &warningSet{
		seen:   make(map[string]struct{}),
		format: f,
		logger: logger,
	}
}

func (w *warningSet) add(msg string) {
	if _, ok := w.seen[msg]; ok {
		return
	}
	w.seen[msg] = struct{}{}
	w.list = append(w.list, msg)
	if w.logger != nil {
		w.logger.WithFields(logrus.Fields{
			"format":  w.format.String(),
			"warning": msg,
		}).Warn("grid decode warning")
	}
}
