package roms

import (
	"fmt"

	"github.com/retroenv/bytepusher/internal/convert"
	"github.com/retroenv/bytepusher/internal/rom"
)

// BuildVideo builds a program that plays the given screens in a loop, showing each one
// for syncsPerFrame frames. The screen register is advanced by one page per screen and
// reset to the first screen at the end of the loop.
func BuildVideo(b *rom.Builder, layout Layout, video []byte, syncsPerFrame int) error {
	if len(video) == 0 || len(video)%convert.FrameSize != 0 {
		return fmt.Errorf("%w: video has %d bytes, expected a multiple of %d",
			ErrNoFrames, len(video), convert.FrameSize)
	}
	frameCount := len(video) / convert.FrameSize

	if err := setup(b, layout, true); err != nil {
		return err
	}

	if err := b.Org(layout.Program); err != nil {
		return err
	}
	if err := syncs(b, syncsPerFrame); err != nil {
		return err
	}
	for range frameCount - 1 {
		if err := b.Increment(rom.ScreenRegister); err != nil {
			return fmt.Errorf("emitting screen switch: %w", err)
		}
		if err := syncs(b, syncsPerFrame); err != nil {
			return err
		}
	}
	if frameCount > 1 {
		if err := b.LoadImmediate(uint8(layout.Screen>>16), rom.ScreenRegister); err != nil {
			return fmt.Errorf("emitting screen reset: %w", err)
		}
	}
	if err := b.Jump(layout.Program); err != nil {
		return fmt.Errorf("emitting loop: %w", err)
	}

	if err := silence(b, layout); err != nil {
		return err
	}
	return frames(b, layout, video)
}
