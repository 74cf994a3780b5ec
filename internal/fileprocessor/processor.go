// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retroenv/retrodump/internal/options"
	"github.com/retroenv/retrodump/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Suffixes of generated summary files.
const (
	summaryJSONSuffix = ".summary.json"
	summaryTextSuffix = ".summary.txt"
)

var summarySuffixes = []string{summaryJSONSuffix, summaryTextSuffix}

// ProcessFile handles the complete file processing workflow. The output is
// only created once the dump was decoded successfully.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	var buf bytes.Buffer
	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, &buf); err != nil {
		return err
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	if _, err := buf.WriteTo(writer); err != nil {
		_ = writer.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options.
// Summaries written by previous batch runs are skipped.
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return slices.DeleteFunc(matches, isSummaryFile), nil
	}
	return []string{opts.Input}, nil
}

func isSummaryFile(name string) bool {
	for _, suffix := range summarySuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// GenerateOutputFilename generates output filename for a given input file
// and output format.
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	base := inputFile[:len(inputFile)-len(ext)]
	if format == options.FormatText {
		return base + summaryTextSuffix
	}
	return base + summaryJSONSuffix
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrodump", log.String("version", buildinfo.Version(version, commit, date)))
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
