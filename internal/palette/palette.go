// Package palette contains the fixed BytePusher color palette, a 6x6x6 RGB color cube.
package palette

import (
	"image/color"
)

const (
	// Levels is the number of intensity levels per color channel.
	Levels = 6
	// Size is the number of colors in the palette.
	Size = Levels * Levels * Levels

	levelStep = 255 / (Levels - 1)
)

// Index returns the palette index for the given channel levels, each in [0, 5].
func Index(r, g, b uint8) uint8 {
	return 36*r + 6*g + b
}

// Color returns the RGB color of a palette index. Indexes outside of the palette are black,
// matching the behavior of the virtual machine.
func Color(index uint8) color.RGBA {
	if int(index) >= Size {
		return color.RGBA{A: 0xff}
	}
	r := index / 36
	g := index / 6 % 6
	b := index % 6
	return color.RGBA{
		R: r * levelStep,
		G: g * levelStep,
		B: b * levelStep,
		A: 0xff,
	}
}

// Palette returns the palette as a color.Palette with all 256 possible index values.
func Palette() color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = Color(uint8(i))
	}
	return pal
}

// Nearest returns the two palette indexes closest to the given color by euclidean distance
// together with their squared distances. Ties resolve to the lower index.
func Nearest(r, g, b uint8) (best, second uint8, bestDistance, secondDistance int) {
	bestDistance = -1
	secondDistance = -1

	for i := range Size {
		c := Color(uint8(i))
		dr := int(r) - int(c.R)
		dg := int(g) - int(c.G)
		db := int(b) - int(c.B)
		distance := dr*dr + dg*dg + db*db

		switch {
		case bestDistance < 0 || distance < bestDistance:
			second, secondDistance = best, bestDistance
			best, bestDistance = uint8(i), distance
		case secondDistance < 0 || distance < secondDistance:
			second, secondDistance = uint8(i), distance
		}
	}
	return best, second, bestDistance, secondDistance
}
