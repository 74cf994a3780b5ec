// Package detector handles output format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrodump/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles output format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the output format from options or the output file.
// It first checks if a format is explicitly specified in options, otherwise
// attempts to detect the format from the output filename extension.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Format != "" {
		return opts.Format
	}

	format := d.detectFromFile(opts.Output)
	d.logger.Debug("Auto-detected output format",
		log.String("format", format),
		log.String("file", opts.Output))
	return format
}

// detectFromFile determines the output format based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text":
		return options.FormatText
	default:
		// Console output and unknown extensions default to JSON
		return options.FormatJSON
	}
}
