package xform

import "math"

// Resize scales src's full window into dst's full window (or, if dst is
// uninitialized, into the full window implied by WithROI) using the
// selected filter, per spec.md §4.4. It returns false and attaches a
// message to dst on failure.
func Resize(dst, src Buffer, opts ...Option) bool {
	o := defaultOptions().apply(opts)
	srcSpec := src.Spec()

	targetFull, destROI, err := resizeTarget(dst, o)
	if err != nil {
		return setError(dst, err)
	}

	wratio := float64(targetFull.FullWidth) / float64(srcSpec.FullWidth)
	hratio := float64(targetFull.FullHeight) / float64(srcSpec.FullHeight)

	filter := o.filter
	if filter == nil {
		sel := NewFilterSelector(o.catalog)
		f, ferr := sel.ForResize(o.filterName, o.filterWidth, wratio, hratio)
		if ferr != nil {
			return setError(dst, ferr)
		}
		filter = f
	}

	allocSpec := srcSpec
	allocSpec.X, allocSpec.Y = destROI.XBegin, destROI.YBegin
	allocSpec.Width, allocSpec.Height = destROI.Width(), destROI.Height()
	allocSpec.FullX, allocSpec.FullY = targetFull.FullX, targetFull.FullY
	allocSpec.FullWidth, allocSpec.FullHeight = targetFull.FullWidth, targetFull.FullHeight
	allocSpec.Deep = false

	roi, perr := IBAprep(dst, src, destROI, allocSpec, PrepareOptions{})
	if perr != nil {
		return setError(dst, perr)
	}

	// spec.md §4.4 / SPEC_FULL.md §5: resize by 1:1 on matching full
	// windows is a copy, matching the original's wratio==1&&hratio==1
	// fast path.
	if wratio == 1 && hratio == 1 && targetFull.FullX == srcSpec.FullX && targetFull.FullY == srcSpec.FullY {
		copyPixels(dst, src, roi)
		return true
	}

	resizeKernel(dst, src, roi, targetFull, filter, o.nthreads)
	return true
}

// resizeTargetSpec is the subset of ImageSpec resizeTarget needs to
// describe the destination full window.
type resizeTargetSpec struct {
	FullX, FullY, FullWidth, FullHeight int
}

func resizeTarget(dst Buffer, o options) (resizeTargetSpec, ROI, error) {
	if dst.Initialized() {
		s := dst.Spec()
		return resizeTargetSpec{s.FullX, s.FullY, s.FullWidth, s.FullHeight}, s.ROI(), nil
	}
	if !o.roi.Defined() {
		return resizeTargetSpec{}, ROI{}, &IncompatibleSpecError{
			Reason: "resize needs either a pre-initialized destination or an explicit ROI",
		}
	}
	r := o.roi
	return resizeTargetSpec{r.XBegin, r.YBegin, r.Width(), r.Height()}, r, nil
}

// copyPixels copies roi's pixels from src to dst verbatim.
func copyPixels(dst, src Buffer, roi ROI) {
	nc := roi.NChannels()
	buf := make([]float64, nc)
	for y := roi.YBegin; y < roi.YEnd; y++ {
		for x := roi.XBegin; x < roi.XEnd; x++ {
			src.GetPixel(x, y, buf)
			dst.SetPixel(x, y, buf)
		}
	}
}

// resizeKernel runs the tile-parallel resize filter described in
// spec.md §4.4: per-axis integer radius derived from the filter width and
// axis ratio, a separable fast path with pre-tabulated, normalized tap
// weights, and a general path for non-separable filters. Wrap mode is
// fixed to Clamp, per spec.md §4.4.
func resizeKernel(dst, src Buffer, roi ROI, target resizeTargetSpec, filter Filter, nthreads int) {
	srcSpec := src.Spec()
	nc := roi.NChannels()

	xratio := float64(target.FullWidth) / float64(srcSpec.FullWidth)
	yratio := float64(target.FullHeight) / float64(srcSpec.FullHeight)

	filterRadX := filter.Width() / 2
	filterRadY := filter.Height() / 2
	radi := int(math.Ceil(filterRadX / xratio))
	radj := int(math.Ceil(filterRadY / yratio))
	xtaps := 2*radi + 1
	ytaps := 2*radj + 1

	type column struct {
		srcX int
		frac float64
		taps []float64
	}
	columns := make([]column, roi.XEnd-roi.XBegin)
	for x := roi.XBegin; x < roi.XEnd; x++ {
		s := (float64(x-target.FullX) + 0.5) / float64(target.FullWidth)
		srcXF := float64(srcSpec.FullX) + s*float64(srcSpec.FullWidth)
		srcX := int(math.Floor(srcXF))
		frac := srcXF - float64(srcX)
		taps := make([]float64, xtaps)
		var sum float64
		for i := 0; i < xtaps; i++ {
			v := filter.EvalX(xratio * (float64(i-radi) - (frac - 0.5)))
			taps[i] = v
			sum += v
		}
		if sum != 0 {
			for i := range taps {
				taps[i] /= sum
			}
		}
		columns[x-roi.XBegin] = column{srcX: srcX, frac: frac, taps: taps}
	}

	separable := filter.Separable()

	rowKernel := func(tile ROI) {
		pel := make([]float64, nc)
		pix := make([]float64, srcSpec.NChannels)
		rowTaps := make([]float64, ytaps)
		for y := tile.YBegin; y < tile.YEnd; y++ {
			t := (float64(y-target.FullY) + 0.5) / float64(target.FullHeight)
			srcYF := float64(srcSpec.FullY) + t*float64(srcSpec.FullHeight)
			srcY := int(math.Floor(srcYF))
			fracy := srcYF - float64(srcY)
			var ysum float64
			for j := 0; j < ytaps; j++ {
				v := filter.EvalY(yratio * (float64(j-radj) - (fracy - 0.5)))
				rowTaps[j] = v
				ysum += v
			}
			if ysum != 0 {
				for j := range rowTaps {
					rowTaps[j] /= ysum
				}
			}

			for x := tile.XBegin; x < tile.XEnd; x++ {
				col := columns[x-roi.XBegin]

				if !separable {
					generalResizePixel(dst, src, x, y, col.srcX, srcY, col.frac, fracy, radi, radj, xratio, yratio, filter, nc, pel)
					continue
				}

				for c := 0; c < nc; c++ {
					pel[c] = 0
				}
				for j := 0; j < ytaps; j++ {
					wy := rowTaps[j]
					if wy == 0 {
						// spec.md §4.4: skip the entire source row when
						// its y tap weight is zero.
						continue
					}
					srcJ := srcY + j - radj
					for i := 0; i < xtaps; i++ {
						wx := col.taps[i]
						if wx == 0 {
							continue
						}
						srcI := col.srcX + i - radi
						src.ReadWrapped(srcI, srcJ, WrapClamp, pix)
						w := wx * wy
						for c := 0; c < nc; c++ {
							pel[c] += w * pix[c]
						}
					}
				}
				dst.SetPixel(x, y, pel)
			}
		}
	}

	ParallelImage(roi, nthreads, rowKernel)
}

// generalResizePixel evaluates the non-separable 2D filter directly per
// source pixel in the support rectangle, normalizing by the accumulated
// total weight at the end, per spec.md §4.4's "General path". frac/fracy are
// the fractional part of the source-space sample point (matching the
// separable path's column/row taps), so the filter is centered on the true
// sample point rather than the integer source pixel srcX/srcY, per the
// original's `filter(xratio*(i-(src_xf_frac-0.5)), yratio*(j-(src_yf_frac-
// 0.5)))` (imagebufalgo_xform.cpp).
func generalResizePixel(dst, src Buffer, x, y, srcX, srcY int, frac, fracy float64, radi, radj int, xratio, yratio float64, filter Filter, nc int, pel []float64) {
	for c := 0; c < nc; c++ {
		pel[c] = 0
	}
	var total float64
	pix := make([]float64, nc)
	for j := -radj; j <= radj; j++ {
		for i := -radi; i <= radi; i++ {
			nx := xratio * (float64(i) - (frac - 0.5))
			ny := yratio * (float64(j) - (fracy - 0.5))
			w := filter.Eval(nx, ny)
			if w == 0 {
				continue
			}
			src.ReadWrapped(srcX+i, srcY+j, WrapClamp, pix)
			for c := 0; c < nc; c++ {
				pel[c] += w * pix[c]
			}
			total += w
		}
	}
	if total != 0 {
		inv := 1 / total
		for c := 0; c < nc; c++ {
			pel[c] *= inv
		}
	} else {
		for c := 0; c < nc; c++ {
			pel[c] = 0
		}
	}
	dst.SetPixel(x, y, pel)
}

// ResizeNew is the value-returning form of Resize: it runs Resize into a
// fresh, uninitialized MemBuffer, which is sized per WithROI (without
// WithROI the call fails), and wraps a generic error if the in-place call
// didn't set one.
func ResizeNew(src Buffer, opts ...Option) (*MemBuffer, error) {
	dst := &MemBuffer{}
	if Resize(dst, src, opts...) {
		return dst, nil
	}
	return nil, wrapReturnError(dst, "resize")
}
