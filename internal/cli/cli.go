// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/bytepusher/internal/options"
	"github.com/retroenv/bytepusher/internal/roms"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 && opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: bytepusher [options] [input image or frame pattern]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after input file, please pass the input file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Program = strings.ToLower(opts.Program)
	if roms.IsValid(opts.Program) {
		return nil
	}

	return fmt.Errorf("unsupported program: %s. Valid options: %s",
		opts.Program, strings.Join(roms.Names, ", "))
}

// validateOptionCombinations checks for options that can not be used together
func validateOptionCombinations(opts options.Program) error {
	needsInput := roms.NeedsInput(opts.Program)

	switch {
	case needsInput && opts.Input == "" && opts.Batch == "":
		return fmt.Errorf("program %s needs an input file", opts.Program)
	case !needsInput && (opts.Input != "" || opts.Batch != ""):
		return fmt.Errorf("program %s does not use input files", opts.Program)
	case opts.Batch != "" && opts.Program != roms.Image:
		return fmt.Errorf("batch mode is only supported for the %s program", roms.Image)
	case opts.Batch != "" && (opts.Output != "" || opts.Listing != "" || opts.Preview != ""):
		return fmt.Errorf("batch mode generates output file names, -o, -listing and -preview can not be used")
	case opts.Show && opts.Preview == "":
		return fmt.Errorf("-show needs a -preview file")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input image file, or file pattern of the video frames")
	flags.StringVar(&opts.Output, "o", "", "name of the output .BytePusher file, derived from input or program name if not given")
	flags.StringVar(&opts.Config, "c", "", "TOML configuration file for memory layout and program parameters")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .BytePusher file naming, for example *.png")
	flags.StringVar(&opts.Listing, "listing", "", "name of the listing file of the generated program")
	flags.StringVar(&opts.Preview, "preview", "", "name of the PNG file to write the first screen to")
	flags.StringVar(&opts.Program, "p", roms.Image, "program to build ("+strings.Join(roms.Names, "/")+")")
	flags.BoolVar(&opts.Show, "show", false, "open the preview file with the system image viewer")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the written ROM file by reloading it and comparing it to the memory image")
}
