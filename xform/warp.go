package xform

// Warp resamples src into dst under the affine (or general 3x3, per
// matrix.go's doc comment) transform m, which maps source space to
// destination space, per spec.md §4.5. It drives Sample with the
// per-pixel derivative-augmented inverse mapping computed by
// WarpInversePoint.
func Warp(dst, src Buffer, m Matrix3, opts ...Option) bool {
	o := defaultOptions().apply(opts)
	srcSpec := src.Spec()

	filter := o.filter
	if filter == nil {
		sel := NewFilterSelector(o.catalog)
		f, err := sel.ForWarp(o.filterName, o.filterWidth, 1, 1)
		if err != nil {
			return setError(dst, err)
		}
		filter = f
	}

	destROI := o.roi
	if !destROI.Defined() {
		if o.recomputeROI {
			destROI = TransformROI(m, srcSpec.ROI())
		} else {
			destROI = srcSpec.ROI()
		}
	}

	allocSpec := srcSpec
	allocSpec.X, allocSpec.Y = destROI.XBegin, destROI.YBegin
	allocSpec.Width, allocSpec.Height = destROI.Width(), destROI.Height()

	roi, err := IBAprep(dst, src, destROI, allocSpec, PrepareOptions{})
	if err != nil {
		return setError(dst, err)
	}

	wrap := resolveWrap(o.wrap, WrapBlack)

	minv, ok := m.Invert()
	if !ok {
		zeroFill(dst, roi)
		return true
	}

	ParallelImage(roi, o.nthreads, func(tile ROI) {
		nc := roi.NChannels()
		out := make([]float64, nc)
		for y := tile.YBegin; y < tile.YEnd; y++ {
			for x := tile.XBegin; x < tile.XEnd; x++ {
				s, t, ok := WarpInversePoint(minv, float64(x), float64(y))
				if !ok {
					// SingularTransform (spec.md §7): soft per-pixel
					// failure, the operation still succeeds overall.
					for c := range out {
						out[c] = 0
					}
				} else {
					Sample(src, s.Val, t.Val, s.Dx, s.Dy, t.Dx, t.Dy, filter, wrap, o.edgeClamp, out)
				}
				dst.SetPixel(x, y, out)
			}
		}
	})
	return true
}

// WarpNew is the value-returning form of Warp.
func WarpNew(src Buffer, m Matrix3, opts ...Option) (*MemBuffer, error) {
	dst := &MemBuffer{}
	if Warp(dst, src, m, opts...) {
		return dst, nil
	}
	return nil, wrapReturnError(dst, "warp")
}

// Rotate is warp with M = T(c)*R(angle)*T(-c), c defaulting to the
// center of the source full window, per spec.md §6. Wrap defaults to
// Black, matching Warp's own default.
func Rotate(dst, src Buffer, angle float64, opts ...Option) bool {
	o := defaultOptions().apply(opts)
	srcSpec := src.Spec()

	cx, cy := o.centerX, o.centerY
	if !o.haveCenter {
		cx = float64(srcSpec.FullX) + 0.5*float64(srcSpec.FullWidth)
		cy = float64(srcSpec.FullY) + 0.5*float64(srcSpec.FullHeight)
	}
	m := RotateAbout(angle, cx, cy)
	return Warp(dst, src, m, opts...)
}

// RotateNew is the value-returning form of Rotate.
func RotateNew(src Buffer, angle float64, opts ...Option) (*MemBuffer, error) {
	dst := &MemBuffer{}
	if Rotate(dst, src, angle, opts...) {
		return dst, nil
	}
	return nil, wrapReturnError(dst, "rotate")
}

// zeroFill writes zeros across roi, used when a warp's matrix is entirely
// singular and cannot be inverted at all.
func zeroFill(dst Buffer, roi ROI) {
	nc := roi.NChannels()
	zero := make([]float64, nc)
	for y := roi.YBegin; y < roi.YEnd; y++ {
		for x := roi.XBegin; x < roi.XEnd; x++ {
			dst.SetPixel(x, y, zero)
		}
	}
}
