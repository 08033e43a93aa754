package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/retroenv/bytepusher/internal/roms"
)

var ErrUnknownKeys = errors.New("unknown configuration keys")

// File represents a layout configuration file.
type File struct {
	Layout  roms.Layout `toml:"layout"`
	Program Program     `toml:"program"`
}

// Program contains the parameters of the generated programs.
type Program struct {
	Frames         int     `toml:"frames"`       // runner screens
	NoiseFrames    int     `toml:"noise_frames"` // animated noise screens
	SyncsPerFrame  int     `toml:"syncs_per_frame"`
	Seed           uint64  `toml:"seed"`
	DitherStrength float32 `toml:"dither_strength"`
}

// Default returns the configuration used when no configuration file is given.
func Default() File {
	return File{
		Layout: roms.DefaultLayout(),
		Program: Program{
			Frames:         8,
			NoiseFrames:    4,
			SyncsPerFrame:  4,
			Seed:           1,
			DitherStrength: 1.0,
		},
	}
}

// Load parses a configuration file. Values missing in the file keep their defaults.
func Load(fileName string) (File, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return File{}, fmt.Errorf("reading file '%s': %w", fileName, err)
	}
	return Parse(string(data))
}

// Parse parses the content of a configuration file.
func Parse(data string) (File, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return File{}, fmt.Errorf("parsing configuration: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return File{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (f File) Validate() error {
	if err := f.Layout.Validate(); err != nil {
		return err
	}

	switch {
	case f.Program.Frames < 1:
		return fmt.Errorf("invalid frame count %d", f.Program.Frames)
	case f.Program.NoiseFrames < 1:
		return fmt.Errorf("invalid noise frame count %d", f.Program.NoiseFrames)
	case f.Program.SyncsPerFrame < 1:
		return fmt.Errorf("invalid syncs per frame %d", f.Program.SyncsPerFrame)
	case f.Program.DitherStrength < 0 || f.Program.DitherStrength > 1:
		return fmt.Errorf("dither strength %.2f is outside of [0, 1]", f.Program.DitherStrength)
	}
	return nil
}

// Options returns the program options for the configuration and the converted screens.
func (f File) Options(screens []byte) roms.Options {
	return roms.Options{
		Layout:        f.Layout,
		Seed:          f.Program.Seed,
		Frames:        f.Program.Frames,
		NoiseFrames:   f.Program.NoiseFrames,
		SyncsPerFrame: f.Program.SyncsPerFrame,
		Screens:       screens,
	}
}
