package roms

import (
	"errors"
	"fmt"
	"slices"

	"github.com/retroenv/bytepusher/internal/rom"
)

var ErrUnknownProgram = errors.New("unknown program")

// Options contains the parameters of all programs, each program uses the subset it needs.
type Options struct {
	Layout        Layout
	Seed          uint64 // random program
	Frames        int    // runner program
	NoiseFrames   int    // animated noise program
	SyncsPerFrame int    // animated programs
	Screens       []byte // converted screens of the image and video programs
}

// NeedsInput returns whether the program is built from converted input files.
func NeedsInput(name string) bool {
	return name == Image || name == Video
}

// Build builds the named program.
func Build(b *rom.Builder, name string, opts Options) error {
	switch name {
	case Random:
		return BuildRandom(b, opts.Layout, opts.Seed)
	case AnimatedNoise:
		return BuildAnimatedNoise(b, opts.Layout, opts.NoiseFrames, opts.SyncsPerFrame)
	case Image:
		return BuildImage(b, opts.Layout, opts.Screens)
	case Video:
		return BuildVideo(b, opts.Layout, opts.Screens, opts.SyncsPerFrame)
	case Runner:
		return BuildRunner(b, opts.Layout, opts.Frames, opts.SyncsPerFrame)
	default:
		return fmt.Errorf("%w '%s', supported: %v", ErrUnknownProgram, name, Names)
	}
}

// IsValid returns whether a program with the given name exists.
func IsValid(name string) bool {
	return slices.Contains(Names, name)
}
