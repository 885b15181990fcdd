package xform_test

import "github.com/adriansahlman/imgxform/xform"

// newSolidBuffer builds a width x height buffer, full window equal to the
// data window, filled with the same value in every channel of every pixel.
func newSolidBuffer(width, height, nchannels int, value float64) *xform.MemBuffer {
	spec := xform.ImageSpec{
		Width: width, Height: height,
		FullWidth: width, FullHeight: height,
		NChannels: nchannels,
	}
	b := xform.NewMemBuffer(spec)
	pel := make([]float64, nchannels)
	for c := range pel {
		pel[c] = value
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.SetPixel(x, y, pel)
		}
	}
	return b
}

// newRampBuffer fills each pixel's single channel with x+y*width, useful
// for checking that a geometry transform moved the right source pixel to
// the right destination pixel.
func newRampBuffer(width, height int) *xform.MemBuffer {
	spec := xform.ImageSpec{
		Width: width, Height: height,
		FullWidth: width, FullHeight: height,
		NChannels: 1,
	}
	b := xform.NewMemBuffer(spec)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.SetPixel(x, y, []float64{float64(x + y*width)})
		}
	}
	return b
}
