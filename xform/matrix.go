package xform

import "math"

// Matrix3 is a general 3x3 matrix used to drive the Warper's per-pixel
// inverse mapping. Affine transforms (the only ones the constructors
// below build) always carry the bottom row {0,0,1}; the full 3x3 shape is
// kept anyway so the homogeneous divide in dual.go's WarpInversePoint is
// meaningful rather than degenerate, matching the design note in
// spec.md §9 ("invoking the projective divide only when w != 0").
//
// Rows are stored as m[row][col]; x' = m[0][0]*x + m[0][1]*y + m[0][2],
// y' = m[1][0]*x + m[1][1]*y + m[1][2], w' = m[2][0]*x + m[2][1]*y + m[2][2].
type Matrix3 [3][3]float64

// IdentityMatrix is the identity transform.
func IdentityMatrix() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// TranslateMatrix returns a translation by (tx,ty).
func TranslateMatrix(tx, ty float64) Matrix3 {
	return Matrix3{{1, 0, tx}, {0, 1, ty}, {0, 0, 1}}
}

// ScaleMatrix returns a scale by (sx,sy) about the origin.
func ScaleMatrix(sx, sy float64) Matrix3 {
	return Matrix3{{sx, 0, 0}, {0, sy, 0}, {0, 0, 1}}
}

// RotateMatrix returns a counter-clockwise rotation by angle radians about
// the origin.
func RotateMatrix(angle float64) Matrix3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// ScaleTranslateMatrix returns the (scale,0,0; 0,scale,0; xoff,yoff,1)
// matrix the Fitter's exact path uses (spec.md §4.1): a uniform scale
// plus an offset, expressed here in row-major x'=.. form.
func ScaleTranslateMatrix(scale, xoff, yoff float64) Matrix3 {
	return Matrix3{{scale, 0, xoff}, {0, scale, yoff}, {0, 0, 1}}
}

// RotateAbout returns a counter-clockwise rotation by angle radians about
// the point (cx,cy): translate (cx,cy) to the origin, rotate, translate
// back. Used by Rotate (warp.go) to build the matrix it hands to Warp.
func RotateAbout(angle, cx, cy float64) Matrix3 {
	return TranslateMatrix(cx, cy).Mul(RotateMatrix(angle)).Mul(TranslateMatrix(-cx, -cy))
}

// Mul returns the transform that applies n then m: p -> m(n(p)).
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * n[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Apply maps (x,y) through m, assuming w=1 on input, and returns the point
// divided by the output w; ok is false (and the point is 0,0) when w==0.
func (m Matrix3) Apply(x, y float64) (float64, float64, bool) {
	xw := m[0][0]*x + m[0][1]*y + m[0][2]
	yw := m[1][0]*x + m[1][1]*y + m[1][2]
	w := m[2][0]*x + m[2][1]*y + m[2][2]
	if w == 0 {
		return 0, 0, false
	}
	return xw / w, yw / w, true
}

// Invert returns the inverse of m and whether m was non-singular, using
// the general 3x3 cofactor/adjugate formula (affine or not).
func (m Matrix3) Invert() (Matrix3, bool) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-12 {
		return Matrix3{}, false
	}
	inv := 1 / det
	return Matrix3{
		{(e*i - f*h) * inv, (c*h - b*i) * inv, (b*f - c*e) * inv},
		{(f*g - d*i) * inv, (a*i - c*g) * inv, (c*d - a*f) * inv},
		{(d*h - e*g) * inv, (b*g - a*h) * inv, (a*e - b*d) * inv},
	}, true
}
