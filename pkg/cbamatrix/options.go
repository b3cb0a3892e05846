// Package cbamatrix turns a Choose-by-Advantage template into a scored workbook.
package cbamatrix

import (
	"log/slog"
	"time"
)

// Request carries the user inputs of one generation.
type Request struct {
	// Purpose is the decision being made, e.g. "Deep Foundation System".
	Purpose string
	// ProjectName is shown in the info band and the file name.
	ProjectName string
	// ProjectLocation is shown in the info band.
	ProjectLocation string
	// SheetName selects the template sheet. Empty selects the first sheet.
	SheetName string
}

// Options configures generation behavior.
type Options struct {
	// Now supplies the generation date for the banner and file name.
	// If nil, time.Now is used.
	Now func() time.Time
	// Logger receives debug diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Now:    time.Now,
		Logger: slog.Default(),
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
