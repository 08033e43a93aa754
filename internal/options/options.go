// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input   string `flag:"i" usage:"input image file or frame file pattern"`
	Output  string `flag:"o" usage:"output .BytePusher file"`
	Config  string `flag:"c" usage:"TOML layout configuration file"`
	Batch   string `flag:"batch" usage:"batch convert images matching pattern (e.g. *.png)"`
	Listing string `flag:"listing" usage:"write a listing of the generated program"`
	Preview string `flag:"preview" usage:"write the first screen as PNG file"`
}

// Flags contains behavior options.
type Flags struct {
	Program      string `flag:"p" usage:"program to build: random, noise, image, video, runner" default:"image"`
	Show         bool   `flag:"show" usage:"open the preview with the system image viewer"`
	AssembleTest bool   `flag:"verify" usage:"verify the written ROM file by reloading it"`
	Debug        bool   `flag:"debug" usage:"enable debug logging"`
	Quiet        bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the ROM builder.
type Program struct {
	Parameters
	Flags
}
