// Package main implements the main entry point for a BytePusher ROM builder
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/bytepusher/internal/cli"
	"github.com/retroenv/bytepusher/internal/config"
	"github.com/retroenv/bytepusher/internal/fileprocessor"
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
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	cfg := config.Default()
	if opts.Config != "" {
		cfg, err = config.Load(opts.Config)
		if err != nil {
			logger.Fatal("Loading configuration failed", log.Err(err))
		}
	}

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	var failed bool
	for _, file := range files {
		opts.Input = file
		if len(files) > 1 || opts.Output == "" {
			opts.Output = fileprocessor.DefaultOutputFilename(opts)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, cfg); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Building ROM failed", log.String("input", file), log.Err(err))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
