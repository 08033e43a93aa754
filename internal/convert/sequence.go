package convert

import (
	"fmt"
	"image"
	"path/filepath"
	"slices"

	"github.com/retroenv/bytepusher/internal/palette"
)

// Frames that alternate between two nearly equally close colors get a deterministic
// noise per frame to reduce flickering of dithering patterns between frames.
const (
	ambiguousDistance = 100
	noiseThreshold    = 70
)

// Sequence converts all image files matching the glob pattern, sorted by file name,
// and returns the palette indexes of all frames concatenated.
func Sequence(pattern string) ([]byte, error) {
	fileNames, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing pattern '%s': %w", pattern, err)
	}
	if len(fileNames) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFilesFound, pattern)
	}
	slices.Sort(fileNames)

	result := make([]byte, 0, len(fileNames)*FrameSize)
	for i, fileName := range fileNames {
		img, err := load(fileName)
		if err != nil {
			return nil, err
		}
		result = append(result, DitherFrame(img, i)...)
	}
	return result, nil
}

// DitherFrame converts a frame of a sequence to palette indexes. When the two closest
// palette colors of a pixel are almost equally distant, a pseudo random generator seeded
// by the frame index picks the second closest color for some pixels.
func DitherFrame(img image.Image, frameIndex int) []byte {
	diffusion := newDiffusion(scale(img))
	result := make([]byte, 0, FrameSize)
	seed := uint32(frameIndex)

	for y := range FrameHeight {
		for x := range FrameWidth {
			pixel := diffusion.pixel(x, y)
			for i, value := range pixel {
				pixel[i] = min(max(value, 0), 255)
			}

			best, second, bestDistance, secondDistance := palette.Nearest(
				uint8(pixel[0]), uint8(pixel[1]), uint8(pixel[2]))

			index := best
			if secondDistance-bestDistance < ambiguousDistance {
				seed = seed*1664525 + 1013904223
				if seed%100 > noiseThreshold {
					index = second
				}
			}
			result = append(result, index)

			c := palette.Color(index)
			quantError := [3]float32{
				pixel[0] - float32(c.R),
				pixel[1] - float32(c.G),
				pixel[2] - float32(c.B),
			}
			diffusion.distribute(x, y, quantError)
		}
	}
	return result
}
