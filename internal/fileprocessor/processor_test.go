package fileprocessor

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/bytepusher/internal/config"
	"github.com/retroenv/bytepusher/internal/convert"
	"github.com/retroenv/bytepusher/internal/options"
	"github.com/retroenv/bytepusher/internal/roms"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func stubOpenFile(t *testing.T) *[]string {
	t.Helper()

	var opened []string
	oldOpenFile := openFile
	t.Cleanup(func() { openFile = oldOpenFile })
	openFile = func(input string) error {
		opened = append(opened, input)
		return nil
	}
	return &opened
}

func writeTestImage(t *testing.T, fileName string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := range 32 {
		for x := range 32 {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 0xff, A: 0xff})
		}
	}

	file, err := os.Create(fileName)
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(file, img))
	assert.NoError(t, file.Close())
}

func TestProcessFileRunner(t *testing.T) {
	opened := stubOpenFile(t)
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Program.Frames = 2

	opts := options.Program{
		Parameters: options.Parameters{
			Output:  filepath.Join(dir, "runner.BytePusher"),
			Listing: filepath.Join(dir, "runner.lst"),
			Preview: filepath.Join(dir, "runner.png"),
		},
		Flags: options.Flags{Program: roms.Runner, Show: true, AssembleTest: true},
	}

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, cfg)
	assert.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.Equal(t, int(cfg.Layout.Screen)+2*convert.FrameSize, len(data))
	assert.Equal(t, byte(roms.ColorGround), data[len(data)-1])

	lst, err := os.ReadFile(opts.Listing)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(lst), ".org $000300"))
	assert.True(t, strings.Contains(string(lst), "wait (sync)"))

	_, err = os.Stat(opts.Preview)
	assert.NoError(t, err)
	assert.Equal(t, []string{opts.Preview}, *opened)
}

func TestProcessFileImage(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	writeTestImage(t, input)

	opts := options.Program{
		Parameters: options.Parameters{Input: input},
		Flags:      options.Flags{Program: roms.Image, AssembleTest: true},
	}
	opts.Output = DefaultOutputFilename(opts)
	assert.Equal(t, filepath.Join(dir, "logo.BytePusher"), opts.Output)

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, config.Default())
	assert.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.True(t, len(data) > int(config.Default().Layout.Screen))
}

func TestProcessFileVideo(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "frame_0.png"))
	writeTestImage(t, filepath.Join(dir, "frame_1.png"))

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  filepath.Join(dir, "frame_*.png"),
			Output: filepath.Join(dir, "video.BytePusher"),
		},
		Flags: options.Flags{Program: roms.Video, AssembleTest: true},
	}

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, config.Default())
	assert.NoError(t, err)
}

func TestProcessFileErrors(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		opts := options.Program{Flags: options.Flags{Program: roms.Random}}
		err := ProcessFile(ctx, logger, opts, config.Default())
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("missing input", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  filepath.Join(dir, "missing.png"),
				Output: filepath.Join(dir, "missing.BytePusher"),
			},
			Flags: options.Flags{Program: roms.Image},
		}
		err := ProcessFile(context.Background(), logger, opts, config.Default())
		assert.ErrorContains(t, err, "converting input")
	})

	t.Run("no video frames", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  filepath.Join(dir, "none_*.png"),
				Output: filepath.Join(dir, "video.BytePusher"),
			},
			Flags: options.Flags{Program: roms.Video},
		}
		err := ProcessFile(context.Background(), logger, opts, config.Default())
		assert.True(t, errors.Is(err, convert.ErrNoFilesFound))
	})

	t.Run("invalid output", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Output: filepath.Join(dir, "missing", "out.BytePusher")},
			Flags:      options.Flags{Program: roms.Random},
		}
		err := ProcessFile(context.Background(), logger, opts, config.Default())
		assert.ErrorContains(t, err, "saving ROM")
	})
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.jpg"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}

	files, err := GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.png")},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}, files)

	files, err = GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Input: "logo.png"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"logo.png"}, files)

	_, err = GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.gif")},
	})
	assert.True(t, errors.Is(err, convert.ErrNoFilesFound))

	_, err = GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Batch: "["},
	})
	assert.ErrorContains(t, err, "globbing batch pattern")
}

func TestOutputFilenames(t *testing.T) {
	assert.Equal(t, "logo.BytePusher", GenerateOutputFilename("logo.png"))
	assert.Equal(t, "dir/logo.BytePusher", GenerateOutputFilename("dir/logo.jpeg"))
	assert.Equal(t, "logo.BytePusher", GenerateOutputFilename("logo"))

	tests := []struct {
		opts options.Program
		want string
	}{
		{options.Program{Flags: options.Flags{Program: roms.Runner}}, "runner.BytePusher"},
		{options.Program{
			Parameters: options.Parameters{Input: "frames/*.png"},
			Flags:      options.Flags{Program: roms.Video},
		}, "video.BytePusher"},
		{options.Program{
			Parameters: options.Parameters{Input: "logo.gif"},
			Flags:      options.Flags{Program: roms.Image},
		}, "logo.BytePusher"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultOutputFilename(tt.opts))
	}
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
