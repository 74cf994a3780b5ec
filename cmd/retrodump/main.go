// Package main implements the main entry point for a memory dump decoder
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrodump/internal/cli"
	"github.com/retroenv/retrodump/internal/config"
	"github.com/retroenv/retrodump/internal/detector"
	"github.com/retroenv/retrodump/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	format := detector.New(logger).Detect(opts)
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file, format)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Decoding failed", log.String("file", file), log.Err(err))
			if opts.Batch == "" {
				os.Exit(1)
			}
		}
	}
}
