package roms

import (
	"fmt"

	"github.com/retroenv/bytepusher/internal/convert"
	"github.com/retroenv/bytepusher/internal/palette"
	"github.com/retroenv/bytepusher/internal/rom"
)

// NoiseFrame returns the screen data of one frame of the animated noise program.
func NoiseFrame(frame int) []byte {
	seed := uint32(frame)*12345 + 67890
	data := make([]byte, convert.FrameSize)
	for i := range data {
		seed = seed*1103515245 + 12345
		value := (seed >> 16) & 0xff
		data[i] = byte(value % palette.Size)
	}
	return data
}

// BuildAnimatedNoise builds a program that cycles through frameCount screens of noise,
// showing each one for syncsPerFrame frames and counting the shown screens in the
// frame counter.
func BuildAnimatedNoise(b *rom.Builder, layout Layout, frameCount, syncsPerFrame int) error {
	if frameCount < 1 {
		return fmt.Errorf("%w: frame count %d", ErrNoFrames, frameCount)
	}

	if err := setup(b, layout, true); err != nil {
		return err
	}
	if err := b.Org(FrameCounter); err != nil {
		return err
	}
	if err := b.DB([]byte{0, 0, 0}); err != nil {
		return fmt.Errorf("writing frame counter: %w", err)
	}

	if err := screenLoop(b, layout, frameCount, syncsPerFrame, true); err != nil {
		return err
	}

	if err := silence(b, layout); err != nil {
		return err
	}

	data := make([]byte, 0, frameCount*convert.FrameSize)
	for frame := range frameCount {
		data = append(data, NoiseFrame(frame)...)
	}
	return frames(b, layout, data)
}
