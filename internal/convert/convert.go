// Package convert converts images and image sequences into BytePusher screen data,
// one palette index per pixel.
package convert

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	"github.com/retroenv/bytepusher/internal/palette"
	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

const (
	// FrameWidth is the width of the BytePusher screen in pixels.
	FrameWidth = 256
	// FrameHeight is the height of the BytePusher screen in pixels.
	FrameHeight = 256
	// FrameSize is the size of one screen of palette indexes.
	FrameSize = FrameWidth * FrameHeight
)

var (
	ErrNoFilesFound  = errors.New("no files found matching pattern")
	ErrInvalidFormat = errors.New("invalid image format")
)

// Image loads an image file, scales it to the screen size if needed and converts it to
// palette indexes using Floyd-Steinberg dithering. A strength of 0 disables the error
// diffusion, 1 diffuses the full quantization error.
func Image(fileName string, strength float32) ([]byte, error) {
	img, err := load(fileName)
	if err != nil {
		return nil, err
	}
	return Dither(img, strength), nil
}

// Dither converts an image to palette indexes using Floyd-Steinberg error diffusion
// scaled by strength. Images that do not match the screen size are scaled first.
func Dither(img image.Image, strength float32) []byte {
	diffusion := newDiffusion(scale(img))
	result := make([]byte, 0, FrameSize)

	for y := range FrameHeight {
		for x := range FrameWidth {
			pixel := diffusion.pixel(x, y)
			r, g, b := clampByte(pixel[0]), clampByte(pixel[1]), clampByte(pixel[2])

			index, _, _, _ := palette.Nearest(r, g, b)
			result = append(result, index)

			c := palette.Color(index)
			quantError := [3]float32{
				(float32(r) - float32(c.R)) * strength,
				(float32(g) - float32(c.G)) * strength,
				(float32(b) - float32(c.B)) * strength,
			}
			diffusion.distribute(x, y, quantError)
		}
	}
	return result
}

// load opens and decodes an image file.
func load(fileName string) (image.Image, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file '%s': %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding file '%s': %w: %w", fileName, ErrInvalidFormat, err)
	}
	return img, nil
}

// scale returns the image resized to the screen size, images of the right size are
// returned unmodified.
func scale(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == FrameWidth && bounds.Dy() == FrameHeight {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

func clampByte(value float32) uint8 {
	switch {
	case value <= 0:
		return 0
	case value >= 255:
		return 255
	default:
		return uint8(value)
	}
}
