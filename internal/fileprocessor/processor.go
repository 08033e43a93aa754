// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/bytepusher/internal/config"
	"github.com/retroenv/bytepusher/internal/convert"
	"github.com/retroenv/bytepusher/internal/listing"
	"github.com/retroenv/bytepusher/internal/options"
	"github.com/retroenv/bytepusher/internal/rom"
	"github.com/retroenv/bytepusher/internal/roms"
	"github.com/retroenv/bytepusher/internal/verification"
	"github.com/retroenv/retrogolib/log"
	"github.com/skratchdot/open-golang/open"
)

// OutputExtension is the file extension of generated ROM files.
const OutputExtension = ".BytePusher"

// openFile opens a file with the system default application.
var openFile = open.Start

// ProcessFile handles the complete ROM building workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, cfg config.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	screens, err := loadScreens(opts, cfg)
	if err != nil {
		return fmt.Errorf("converting input: %w", err)
	}

	builder := rom.New(logger)
	if opts.Listing != "" {
		file, err := os.Create(opts.Listing)
		if err != nil {
			return fmt.Errorf("creating listing file %s: %w", opts.Listing, err)
		}
		defer func() { _ = file.Close() }()
		builder.SetListing(listing.New(file))
	}

	if err := roms.Build(builder, opts.Program, cfg.Options(screens)); err != nil {
		return fmt.Errorf("building %s program: %w", opts.Program, err)
	}

	if err := builder.SaveToFile(opts.Output); err != nil {
		return fmt.Errorf("saving ROM: %w", err)
	}

	if opts.Preview != "" {
		if err := writePreview(logger, opts, cfg, builder); err != nil {
			return err
		}
	}

	if opts.AssembleTest {
		if err := verification.VerifyOutput(logger, opts.Output, builder.Memory().Bytes()); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", convert.ErrNoFilesFound, opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + OutputExtension
}

// DefaultOutputFilename returns the output filename used when none is given. Programs
// that are not built from a single input file are named after the program.
func DefaultOutputFilename(opts options.Program) string {
	if opts.Program != roms.Image || opts.Input == "" {
		return opts.Program + OutputExtension
	}
	return GenerateOutputFilename(opts.Input)
}

func loadScreens(opts options.Program, cfg config.File) ([]byte, error) {
	switch opts.Program {
	case roms.Image:
		return convert.Image(opts.Input, cfg.Program.DitherStrength)
	case roms.Video:
		return convert.Sequence(opts.Input)
	default:
		return nil, nil
	}
}

// writePreview writes the first screen of the built program as PNG file and optionally
// opens it.
func writePreview(logger *log.Logger, opts options.Program, cfg config.File, builder *rom.Builder) error {
	start := cfg.Layout.Screen
	screen := builder.Memory().Bytes()[start : start+convert.FrameSize]
	if err := convert.SavePreview(screen, opts.Preview); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	logger.Info("Saved preview", log.String("file", opts.Preview))

	if !opts.Show {
		return nil
	}
	if err := openFile(opts.Preview); err != nil {
		return fmt.Errorf("opening preview: %w", err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("bytepusher", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
