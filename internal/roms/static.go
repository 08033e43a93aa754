package roms

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/bytepusher/internal/convert"
	"github.com/retroenv/bytepusher/internal/palette"
	"github.com/retroenv/bytepusher/internal/rom"
)

// BuildRandom builds a program that shows a single screen of random colors generated
// from the given seed.
func BuildRandom(b *rom.Builder, layout Layout, seed uint64) error {
	if err := setup(b, layout, false); err != nil {
		return err
	}
	if err := parkedProgram(b, layout); err != nil {
		return err
	}
	if err := silence(b, layout); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	data := make([]byte, convert.FrameSize)
	for i := range data {
		data[i] = byte(rng.IntN(palette.Size))
	}
	return frames(b, layout, data)
}

// BuildImage builds a program that shows a single converted screen.
func BuildImage(b *rom.Builder, layout Layout, screen []byte) error {
	if len(screen) != convert.FrameSize {
		return fmt.Errorf("%w: screen has %d bytes, expected %d", ErrNoFrames, len(screen), convert.FrameSize)
	}

	if err := setup(b, layout, false); err != nil {
		return err
	}
	if err := parkedProgram(b, layout); err != nil {
		return err
	}
	if err := silence(b, layout); err != nil {
		return err
	}
	return frames(b, layout, screen)
}
