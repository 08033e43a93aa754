// Package roms contains complete BytePusher programs built with the ROM builder.
package roms

import (
	"errors"
	"fmt"

	"github.com/retroenv/bytepusher/internal/rom"
)

// Names of the available programs.
const (
	Random        = "random"
	AnimatedNoise = "noise"
	Image         = "image"
	Video         = "video"
	Runner        = "runner"
)

// Names lists all available program names.
var Names = []string{Random, AnimatedNoise, Image, Video, Runner}

var (
	ErrInvalidLayout = errors.New("invalid memory layout")
	ErrNoFrames      = errors.New("no frames")
)

// FrameCounter is the address of the 24-bit frame counter maintained by the animated programs.
const FrameCounter = 0x000010

const (
	audioBufferSize  = 256
	frameCounterSize = 3
	kernelSize       = 2 * rom.TableSize
)

// Layout defines where the parts of a program are placed in memory.
type Layout struct {
	InputFlags uint16 `toml:"input_flags"`
	Kernel     uint32 `toml:"kernel"`  // start of the lookup tables, 512 bytes
	Program    uint32 `toml:"program"` // start of the program code
	Audio      uint32 `toml:"audio"`   // start of the 256 byte audio buffer
	Screen     uint32 `toml:"screen"`  // start of the first screen frame
}

// DefaultLayout returns the memory layout used by all programs unless configured otherwise.
func DefaultLayout() Layout {
	return Layout{
		Kernel:  0x000100,
		Program: 0x000300,
		Audio:   0x00FF00,
		Screen:  0x010000,
	}
}

// Validate checks the alignment constraints of the layout and that the lookup tables,
// the program start and the buffers do not overwrite the registers, the frame counter
// or each other.
func (l Layout) Validate() error {
	switch {
	case l.Kernel%rom.TableSize != 0:
		return fmt.Errorf("%w: kernel address 0x%06X is not 256 byte aligned", ErrInvalidLayout, l.Kernel)
	case l.Audio%rom.AudioAlignment != 0:
		return fmt.Errorf("%w: audio address 0x%06X is not 256 byte aligned", ErrInvalidLayout, l.Audio)
	case l.Screen%rom.ScreenAlignment != 0:
		return fmt.Errorf("%w: screen address 0x%06X is not 65536 byte aligned", ErrInvalidLayout, l.Screen)
	case l.Kernel < FrameCounter+frameCounterSize:
		return fmt.Errorf("%w: kernel address 0x%06X overlaps the registers or the frame counter",
			ErrInvalidLayout, l.Kernel)
	case l.Program < FrameCounter+frameCounterSize:
		return fmt.Errorf("%w: program address 0x%06X overlaps the registers or the frame counter",
			ErrInvalidLayout, l.Program)
	case overlaps(l.Program, 1, l.Kernel, kernelSize):
		return fmt.Errorf("%w: program address 0x%06X is inside the kernel tables", ErrInvalidLayout, l.Program)
	case overlaps(l.Audio, audioBufferSize, l.Kernel, kernelSize):
		return fmt.Errorf("%w: audio address 0x%06X overlaps the kernel tables", ErrInvalidLayout, l.Audio)
	case l.Screen == 0 || overlaps(l.Screen, rom.ScreenAlignment, l.Kernel, kernelSize):
		return fmt.Errorf("%w: screen address 0x%06X overlaps the registers or the kernel tables",
			ErrInvalidLayout, l.Screen)
	case overlaps(l.Screen, rom.ScreenAlignment, l.Audio, audioBufferSize):
		return fmt.Errorf("%w: screen address 0x%06X overlaps the audio buffer", ErrInvalidLayout, l.Screen)
	}
	return nil
}

// overlaps returns whether the address ranges [a, a+aSize) and [b, b+bSize) intersect.
func overlaps(a, aSize, b, bSize uint32) bool {
	return a < b+bSize && b < a+aSize
}

// setup validates the layout, initializes the registers and optionally installs the lookup
// tables at the kernel address.
func setup(b *rom.Builder, layout Layout, tables bool) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	if err := b.InitRegisters(layout.InputFlags, layout.Program, layout.Screen, layout.Audio); err != nil {
		return fmt.Errorf("initializing registers: %w", err)
	}
	if !tables {
		return nil
	}

	if err := b.InstallIdentityTable(layout.Kernel); err != nil {
		return fmt.Errorf("installing tables: %w", err)
	}
	if err := b.InstallIncrementTable(layout.Kernel + rom.TableSize); err != nil {
		return fmt.Errorf("installing tables: %w", err)
	}
	return nil
}

// silence writes an empty audio buffer.
func silence(b *rom.Builder, layout Layout) error {
	if err := b.Org(layout.Audio); err != nil {
		return err
	}
	if err := b.DB(make([]byte, audioBufferSize)); err != nil {
		return fmt.Errorf("writing audio buffer: %w", err)
	}
	return nil
}

// syncs emits count frame syncs.
func syncs(b *rom.Builder, count int) error {
	for range count {
		if err := b.Sync(); err != nil {
			return fmt.Errorf("emitting sync: %w", err)
		}
	}
	return nil
}

// frames writes the screen data of all frames starting at the screen address.
func frames(b *rom.Builder, layout Layout, data []byte) error {
	if err := b.Org(layout.Screen); err != nil {
		return err
	}
	if err := b.DB(data); err != nil {
		return fmt.Errorf("writing screen data: %w", err)
	}
	return nil
}

// parkedProgram emits a program that waits forever, used by the static image programs.
func parkedProgram(b *rom.Builder, layout Layout) error {
	if err := b.Org(layout.Program); err != nil {
		return err
	}
	if err := b.Wait(); err != nil {
		return fmt.Errorf("emitting program: %w", err)
	}
	return nil
}

// screenLoop emits a program that points the screen register to each of the frameCount
// screens in turn, waits syncsPerFrame frames per screen and jumps back to the start.
// With countFrames set, the frame counter is incremented after every screen.
func screenLoop(b *rom.Builder, layout Layout, frameCount, syncsPerFrame int, countFrames bool) error {
	if err := b.Org(layout.Program); err != nil {
		return err
	}

	for frame := range frameCount {
		page := uint8((layout.Screen + uint32(frame)*rom.ScreenAlignment) >> 16)
		if err := b.LoadImmediate(page, rom.ScreenRegister); err != nil {
			return fmt.Errorf("emitting screen switch: %w", err)
		}
		if err := syncs(b, syncsPerFrame); err != nil {
			return err
		}
		if !countFrames {
			continue
		}
		if err := b.Increment(FrameCounter + 2); err != nil {
			return fmt.Errorf("emitting frame counter update: %w", err)
		}
	}

	if err := b.Jump(layout.Program); err != nil {
		return fmt.Errorf("emitting loop: %w", err)
	}
	return nil
}
