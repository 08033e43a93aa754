package convert

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/retroenv/bytepusher/internal/palette"
)

// Preview returns the screen data of a frame as a paletted image.
func Preview(data []byte) (*image.Paletted, error) {
	if len(data) < FrameSize {
		return nil, fmt.Errorf("%w: frame data has %d bytes, expected %d", ErrInvalidFormat, len(data), FrameSize)
	}

	img := image.NewPaletted(image.Rect(0, 0, FrameWidth, FrameHeight), palette.Palette())
	copy(img.Pix, data[:FrameSize])
	return img, nil
}

// SavePreview writes the first frame of the screen data as PNG file.
func SavePreview(data []byte, fileName string) error {
	img, err := Preview(data)
	if err != nil {
		return err
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", fileName, err)
	}

	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", fileName, err)
	}
	return nil
}
