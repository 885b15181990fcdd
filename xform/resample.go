package xform

import "math"

// Resample is the low-cost alternative to Resize, per spec.md §4.7: no
// filter, just a per-destination-pixel nearest or bilinear lookup at the
// NDC-mapped source coordinate. It is the only one of the five public
// operations that accepts a deep source image.
func Resample(dst, src Buffer, opts ...Option) bool {
	o := defaultOptions().apply(opts)
	srcSpec := src.Spec()

	target, destROI, err := resizeTarget(dst, o)
	if err != nil {
		return setError(dst, err)
	}

	allocSpec := srcSpec
	allocSpec.X, allocSpec.Y = destROI.XBegin, destROI.YBegin
	allocSpec.Width, allocSpec.Height = destROI.Width(), destROI.Height()
	allocSpec.FullX, allocSpec.FullY = target.FullX, target.FullY
	allocSpec.FullWidth, allocSpec.FullHeight = target.FullWidth, target.FullHeight

	roi, perr := IBAprep(dst, src, destROI, allocSpec, PrepareOptions{AllowDeep: true})
	if perr != nil {
		return setError(dst, perr)
	}

	if src.IsDeep() {
		return resampleDeep(dst, src, roi, target, o.nthreads)
	}

	nc := roi.NChannels()
	kernel := func(tile ROI) {
		pel := make([]float64, nc)
		for y := tile.YBegin; y < tile.YEnd; y++ {
			for x := tile.XBegin; x < tile.XEnd; x++ {
				srcXF, srcYF := resampleSourceCoord(x, y, target, srcSpec)
				if o.interpolate {
					src.Bilinear(srcXF, srcYF, WrapClamp, pel)
				} else {
					src.ReadWrapped(int(math.Floor(srcXF)), int(math.Floor(srcYF)), WrapClamp, pel)
				}
				dst.SetPixel(x, y, pel)
			}
		}
	}
	ParallelImage(roi, o.nthreads, kernel)
	return true
}

// resampleSourceCoord maps destination pixel (x,y) to a fractional source
// coordinate using the same NDC mapping Resize uses (spec.md §4.4's
// "destination coordinates in NDC"), since Resample computes src_x,src_y
// the same way Resizer does.
func resampleSourceCoord(x, y int, target resizeTargetSpec, srcSpec ImageSpec) (float64, float64) {
	s := (float64(x-target.FullX) + 0.5) / float64(target.FullWidth)
	t := (float64(y-target.FullY) + 0.5) / float64(target.FullHeight)
	srcXF := float64(srcSpec.FullX) + s*float64(srcSpec.FullWidth)
	srcYF := float64(srcSpec.FullY) + t*float64(srcSpec.FullHeight)
	return srcXF, srcYF
}

// resampleDeep implements spec.md §4.7's deep-image path: a serial
// sample-count pre-pass (deep sample allocation is not thread-safe), then
// a tile-parallel pass copying per-sample, per-channel values. MemBuffer
// stores every deep channel as float64, so there is no separate integer
// accessor to dispatch on here; a real buffer backing typed channels would
// pick the uint or float accessor per channel format at the same point
// this copies pel[c].
func resampleDeep(dst, src Buffer, roi ROI, target resizeTargetSpec, nthreads int) bool {
	srcSpec := src.Spec()
	nc := roi.NChannels()

	for y := roi.YBegin; y < roi.YEnd; y++ {
		for x := roi.XBegin; x < roi.XEnd; x++ {
			srcXF, srcYF := resampleSourceCoord(x, y, target, srcSpec)
			srcX, srcY := int(math.Floor(srcXF)), int(math.Floor(srcYF))
			srcX = clampInt(srcX, srcSpec.X, srcSpec.X+srcSpec.Width-1)
			srcY = clampInt(srcY, srcSpec.Y, srcSpec.Y+srcSpec.Height-1)
			dst.SetSampleCount(x, y, src.SampleCount(srcX, srcY))
		}
	}

	ParallelImage(roi, nthreads, func(tile ROI) {
		for y := tile.YBegin; y < tile.YEnd; y++ {
			for x := tile.XBegin; x < tile.XEnd; x++ {
				srcXF, srcYF := resampleSourceCoord(x, y, target, srcSpec)
				srcX, srcY := int(math.Floor(srcXF)), int(math.Floor(srcYF))
				srcX = clampInt(srcX, srcSpec.X, srcSpec.X+srcSpec.Width-1)
				srcY = clampInt(srcY, srcSpec.Y, srcSpec.Y+srcSpec.Height-1)

				count := dst.SampleCount(x, y)
				for s := 0; s < count; s++ {
					for c := 0; c < nc; c++ {
						dst.SetDeepValue(x, y, s, c, src.DeepValue(srcX, srcY, s, c))
					}
				}
			}
		}
	})
	return true
}

// ResampleNew is the value-returning form of Resample.
func ResampleNew(src Buffer, opts ...Option) (*MemBuffer, error) {
	dst := &MemBuffer{}
	if Resample(dst, src, opts...) {
		return dst, nil
	}
	return nil, wrapReturnError(dst, "resample")
}
