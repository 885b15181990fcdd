package xform

// Dual is a scalar augmented with its partial derivatives with respect to
// the two destination axes, following spec.md §3/§9: after pushing a
// destination pixel's (x,y) through an inverse transform, the resulting
// Dual's Dx/Dy tell the Sampler how a unit step in destination space maps
// to source space, which drives the filter footprint sizing.
type Dual struct {
	Val, Dx, Dy float64
}

// constDual is a Dual with zero derivatives (a plain constant).
func constDual(v float64) Dual { return Dual{Val: v} }

// varX is the destination-x coordinate as a Dual: itself has derivative 1
// w.r.t. x and 0 w.r.t. y.
func varX(x float64) Dual { return Dual{Val: x, Dx: 1, Dy: 0} }

// varY is the destination-y coordinate as a Dual.
func varY(y float64) Dual { return Dual{Val: y, Dx: 0, Dy: 1} }

func dualAdd(a, b Dual) Dual {
	return Dual{a.Val + b.Val, a.Dx + b.Dx, a.Dy + b.Dy}
}

func dualScale(a Dual, k float64) Dual {
	return Dual{a.Val * k, a.Dx * k, a.Dy * k}
}

func dualMul(a, b Dual) Dual {
	return Dual{
		a.Val * b.Val,
		a.Dx*b.Val + a.Val*b.Dx,
		a.Dy*b.Val + a.Val*b.Dy,
	}
}

// dualDiv divides a by b using the quotient rule; b.Val must be non-zero.
func dualDiv(a, b Dual) Dual {
	inv := 1 / b.Val
	val := a.Val * inv
	return Dual{
		val,
		(a.Dx - val*b.Dx) * inv,
		(a.Dy - val*b.Dy) * inv,
	}
}

// WarpInversePoint pushes the destination pixel center (dx+0.5, dy+0.5)
// through minv (expected to be M^-1 for a warp defined by forward matrix
// M) using dual arithmetic, and performs the homogeneous divide only when
// the resulting w has a non-zero value -- spec.md §4.5 and the
// SingularTransform soft-error kind in spec.md §7. ok is false when the
// divisor is zero, in which case the caller should emit a zero pixel
// without treating it as a hard failure.
func WarpInversePoint(minv Matrix3, dx, dy float64) (s, t Dual, ok bool) {
	x := varX(dx + 0.5)
	y := varY(dy + 0.5)

	row := func(r int) Dual {
		return dualAdd(dualAdd(dualScale(x, minv[r][0]), dualScale(y, minv[r][1])), constDual(minv[r][2]))
	}
	xw := row(0)
	yw := row(1)
	w := row(2)
	if w.Val == 0 {
		return Dual{}, Dual{}, false
	}
	return dualDiv(xw, w), dualDiv(yw, w), true
}
