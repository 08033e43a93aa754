package convert

import "image"

// diffusion keeps the accumulated quantization error of every pixel of a frame.
type diffusion struct {
	img         image.Image
	quantErrors [][3]float32
}

func newDiffusion(img image.Image) *diffusion {
	return &diffusion{
		img:         img,
		quantErrors: make([][3]float32, FrameSize),
	}
}

// pixel returns the color of the pixel with its accumulated error added.
func (d *diffusion) pixel(x, y int) [3]float32 {
	bounds := d.img.Bounds()
	r, g, b, _ := d.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()

	e := d.quantErrors[y*FrameWidth+x]
	return [3]float32{
		float32(r>>8) + e[0],
		float32(g>>8) + e[1],
		float32(b>>8) + e[2],
	}
}

// distribute spreads the quantization error of a pixel to its unprocessed neighbours
// with the Floyd-Steinberg weights.
func (d *diffusion) distribute(x, y int, quantError [3]float32) {
	d.add(x+1, y, quantError, 7.0/16.0)
	d.add(x-1, y+1, quantError, 3.0/16.0)
	d.add(x, y+1, quantError, 5.0/16.0)
	d.add(x+1, y+1, quantError, 1.0/16.0)
}

func (d *diffusion) add(x, y int, quantError [3]float32, factor float32) {
	if x < 0 || x >= FrameWidth || y >= FrameHeight {
		return
	}
	e := &d.quantErrors[y*FrameWidth+x]
	for i := range e {
		e[i] += quantError[i] * factor
	}
}
