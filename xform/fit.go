package xform

// Fit scales src's full window to fit inside the target window implied by
// dst (if already initialized) or WithROI, per spec.md §4.6. It reconciles
// aspect mismatch per WithFillMode, defaulting to letterbox.
//
// With WithExact(true) it warps directly by the computed uniform scale
// instead of resizing, so the result lands at exactly the target size with
// no intermediate integer-dimension rounding; the non-exact (default) path
// resizes to the rounded integer dimensions and recenters the result
// inside the target window by rewriting only the destination's full-window
// metadata, leaving the resized pixels untouched.
func Fit(dst, src Buffer, opts ...Option) bool {
	o := defaultOptions().apply(opts)
	srcSpec := src.Spec()

	targetFull, _, err := resizeTarget(dst, o)
	if err != nil {
		return setError(dst, err)
	}

	geo := ComputeFitGeometry(srcSpec.FullWidth, srcSpec.FullHeight, targetFull.FullWidth, targetFull.FullHeight, o.fillMode)

	filter := o.filter
	if filter == nil {
		sel := NewFilterSelector(o.catalog)
		f, ferr := sel.ForResize(o.filterName, o.filterWidth, geo.Scale, geo.Scale)
		if ferr != nil {
			return setError(dst, ferr)
		}
		filter = f
	}

	if o.exact {
		return fitExact(dst, src, targetFull, geo, filter, o)
	}
	return fitResize(dst, src, targetFull, geo, filter, o)
}

// fitExact implements the exact path: a single affine warp mapping the
// source full window onto the centered sub-rectangle of the target window
// at geo.Scale, with the Black/edge-clamp policy spec.md §4.6 mandates for
// Fit's warp.
func fitExact(dst, src Buffer, target resizeTargetSpec, geo FitGeometry, filter Filter, o options) bool {
	srcSpec := src.Spec()

	xoff := float64(target.FullX+geo.XOffset) - float64(srcSpec.FullX)*geo.Scale
	yoff := float64(target.FullY+geo.YOffset) - float64(srcSpec.FullY)*geo.Scale
	m := ScaleTranslateMatrix(geo.Scale, xoff, yoff)

	destROI := NewROI2D(target.FullX, target.FullX+target.FullWidth, target.FullY, target.FullY+target.FullHeight, 0, srcSpec.NChannels)

	warpOpts := []Option{
		WithFilter(filter),
		WithWrap(WrapBlack),
		WithEdgeClamp(true),
		WithROI(destROI),
		WithThreads(o.nthreads),
	}
	if !Warp(dst, src, m, warpOpts...) {
		return false
	}
	// Warp's own destination-prep contract inherits the source's full
	// window (spec.md §6); the exact path needs the target's instead, per
	// the original's newspec.set_roi_full(newroi).
	dst.SetFullWindow(target.FullX, target.FullY, target.FullWidth, target.FullHeight)
	return true
}

// fitResize implements the non-exact path: an ordinary integer-dimension
// Resize into the centered sub-rectangle, followed by a metadata-only
// rewrite of the destination's full window to the real target size.
func fitResize(dst, src Buffer, target resizeTargetSpec, geo FitGeometry, filter Filter, o options) bool {
	subX := target.FullX + geo.XOffset
	subY := target.FullY + geo.YOffset
	destROI := NewROI2D(subX, subX+geo.ResizeWidth, subY, subY+geo.ResizeHeight, 0, src.Spec().NChannels)

	resizeOpts := []Option{
		WithFilter(filter),
		WithROI(destROI),
		WithThreads(o.nthreads),
	}
	if !Resize(dst, src, resizeOpts...) {
		return false
	}
	dst.SetFullWindow(target.FullX, target.FullY, target.FullWidth, target.FullHeight)
	return true
}

// FitNew is the value-returning form of Fit.
func FitNew(src Buffer, opts ...Option) (*MemBuffer, error) {
	dst := &MemBuffer{}
	if Fit(dst, src, opts...) {
		return dst, nil
	}
	return nil, wrapReturnError(dst, "fit")
}
