package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/bytepusher/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"bytepusher"}, args...)

	return ParseFlags()
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "image from positional argument",
			args: []string{"logo.png"},
			want: options.Program{
				Parameters: options.Parameters{Input: "logo.png"},
				Flags:      options.Flags{Program: "image"},
			},
		},
		{
			name: "image with outputs",
			args: []string{"-o", "logo.BytePusher", "-listing", "logo.lst", "-preview", "logo_preview.png", "-show", "-verify", "logo.png"},
			want: options.Program{
				Parameters: options.Parameters{
					Input:   "logo.png",
					Output:  "logo.BytePusher",
					Listing: "logo.lst",
					Preview: "logo_preview.png",
				},
				Flags: options.Flags{Program: "image", Show: true, AssembleTest: true},
			},
		},
		{
			name: "video frame pattern",
			args: []string{"-p", "Video", "-i", "frames/*.png", "-c", "layout.toml"},
			want: options.Program{
				Parameters: options.Parameters{Input: "frames/*.png", Config: "layout.toml"},
				Flags:      options.Flags{Program: "video"},
			},
		},
		{
			name: "program without input",
			args: []string{"-p", "runner", "-debug"},
			want: options.Program{
				Flags: options.Flags{Program: "runner", Debug: true},
			},
		},
		{
			name: "batch",
			args: []string{"-batch", "*.png", "-q"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.png"},
				Flags:      options.Flags{Program: "image", Quiet: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		usage     bool
		errorText string
	}{
		{"unknown program", []string{"-p", "tetris"}, false, "unsupported program: tetris"},
		{"argument order", []string{"logo.png", "-q"}, true, "found after input file"},
		{"missing input", []string{"-p", "image"}, true, "needs an input file"},
		{"unused input", []string{"-p", "noise", "logo.png"}, true, "does not use input files"},
		{"batch program", []string{"-p", "video", "-batch", "*.png"}, true, "only supported"},
		{"batch output", []string{"-batch", "*.png", "-o", "out.BytePusher"}, true, "batch mode generates"},
		{"show without preview", []string{"-show", "logo.png"}, true, "-show needs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.ErrorContains(t, err, tt.errorText)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestValidateOptionCombinations(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name: "random",
			opts: options.Program{Flags: options.Flags{Program: "random"}},
		},
		{
			name: "image with preview",
			opts: options.Program{
				Parameters: options.Parameters{Input: "a.png", Preview: "b.png"},
				Flags:      options.Flags{Program: "image", Show: true},
			},
		},
		{
			name: "batch listing",
			opts: options.Program{
				Parameters: options.Parameters{Batch: "*.png", Listing: "a.lst"},
				Flags:      options.Flags{Program: "image"},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptionCombinations(tt.opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
