// Package pipeline orchestrates the decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrodump/internal/decode"
	"github.com/retroenv/retrodump/internal/detector"
	"github.com/retroenv/retrodump/internal/dump"
	"github.com/retroenv/retrodump/internal/layout"
	"github.com/retroenv/retrodump/internal/options"
	"github.com/retroenv/retrodump/internal/render"
	"github.com/retroenv/retrodump/internal/summary"
	"github.com/retroenv/retrodump/internal/tables"
	"github.com/retroenv/retrodump/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Execute runs the complete decoding pipeline and writes the rendered
// summary to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*summary.Summary, error) {
	tbls, err := tables.Load(p.logger, opts.Tables)
	if err != nil {
		return nil, fmt.Errorf("loading tables: %w", err)
	}

	lay, err := p.loadLayout(opts)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Loading raw memory dump", log.String("file", opts.Input))
	entries, err := dump.LoadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading dump: %w", err)
	}

	return p.ExecuteWithEntries(ctx, entries, tbls, lay, opts, writer)
}

// ExecuteWithEntries runs the decoding pipeline with pre-loaded dump entries.
// This is useful for testing and programmatic usage where the dump is already in memory.
func (p *Pipeline) ExecuteWithEntries(ctx context.Context, entries []dump.Entry, tbls *tables.Set,
	lay layout.Layout, opts options.Program, writer io.Writer) (*summary.Summary, error) {

	format := p.detector.Detect(opts)
	engine := decode.New(p.logger, tbls, lay)

	result, output, err := p.run(ctx, engine, entries, tbls, format)
	if err != nil {
		return nil, err
	}

	if opts.Verify {
		produce := func(ctx context.Context) ([]byte, error) {
			_, output, err := p.run(ctx, engine, entries, tbls, format)
			return output, err
		}
		if err := verification.VerifyOutput(ctx, p.logger, output, produce); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	p.logger.Info("Writing summary",
		log.String("format", format),
		log.String("file", outputName(opts)))
	if _, err := writer.Write(output); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}

	return result, nil
}

// run decodes the entries, assembles the summary and renders it.
func (p *Pipeline) run(ctx context.Context, engine *decode.Engine, entries []dump.Entry,
	tbls *tables.Set, format string) (*summary.Summary, []byte, error) {

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	p.logger.Info("Decoding values from memory", log.Int("entries", len(entries)))
	values, err := engine.Decode(entries)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding dump: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	p.logger.Info("Generating structured summary")
	result := summary.Assemble(values, tbls)

	output, err := renderSummary(result, format)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering summary: %w", err)
	}
	return result, output, nil
}

func (p *Pipeline) loadLayout(opts options.Program) (layout.Layout, error) {
	if opts.Layout == "" {
		return layout.Default(), nil
	}

	lay, err := layout.Load(opts.Layout)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("loading layout: %w", err)
	}
	p.logger.Debug("Loaded layout profile",
		log.String("revision", lay.Revision),
		log.String("file", opts.Layout))
	return lay, nil
}

func renderSummary(s *summary.Summary, format string) ([]byte, error) {
	switch format {
	case options.FormatJSON:
		data, err := render.JSON(s)
		if err != nil {
			return nil, err
		}
		return data, nil
	case options.FormatText:
		return []byte(render.Prose(s) + "\n"), nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
}

func outputName(opts options.Program) string {
	if opts.Output == "" {
		return "stdout"
	}
	return opts.Output
}
