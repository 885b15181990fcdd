package xform_test

import (
	"math"
	"testing"

	"github.com/adriansahlman/imgxform/xform"
	"github.com/stretchr/testify/require"
)

func TestWarpIdentityIsPixelExactCopy(t *testing.T) {
	src := newRampBuffer(24, 18)
	dst, err := xform.WarpNew(src, xform.IdentityMatrix(), xform.WithFilterName("lanczos3"))
	require.NoError(t, err)

	expect, actual := make([]float64, 1), make([]float64, 1)
	for y := 0; y < 18; y++ {
		for x := 0; x < 24; x++ {
			src.GetPixel(x, y, expect)
			dst.GetPixel(x, y, actual)
			require.InDelta(t, expect[0], actual[0], 1e-9, "pixel (%d,%d)", x, y)
		}
	}
}

func TestTransformROIRoundTrip(t *testing.T) {
	m := xform.ScaleTranslateMatrix(2.5, 3, -4)
	minv, ok := m.Invert()
	require.True(t, ok)

	r := xform.NewROI2D(5, 50, 5, 40, 0, 3)
	forward := xform.TransformROI(m, r)
	back := xform.TransformROI(minv, forward)

	require.LessOrEqual(t, back.XBegin, r.XBegin)
	require.GreaterOrEqual(t, back.XEnd, r.XEnd)
	require.LessOrEqual(t, back.YBegin, r.YBegin)
	require.GreaterOrEqual(t, back.YEnd, r.YEnd)
}

func TestWarpSingularMatrixZeroFillsWithoutError(t *testing.T) {
	src := newSolidBuffer(8, 8, 1, 9)
	singular := xform.Matrix3{{0, 0, 0}, {0, 0, 0}, {0, 0, 1}}
	dst, err := xform.WarpNew(src, singular)
	require.NoError(t, err)

	pel := make([]float64, 1)
	dst.GetPixel(0, 0, pel)
	require.Equal(t, 0.0, pel[0])
}

func TestRotateAboutCustomCenter(t *testing.T) {
	src := newRampBuffer(20, 20)
	dst, err := xform.RotateNew(src, math.Pi, xform.WithCenter(10, 10), xform.WithWrap(xform.WrapClamp))
	require.NoError(t, err)
	require.True(t, dst.Initialized())
	require.Equal(t, 20, dst.Spec().Width)
	require.Equal(t, 20, dst.Spec().Height)
}

func TestEdgeClampKeepsValuesWithinSourceRange(t *testing.T) {
	src := newSolidBuffer(16, 16, 1, 5)
	pel := make([]float64, 1)
	src.GetPixel(0, 0, pel)
	pel[0] = 100
	src.SetPixel(0, 0, pel) // lone bright outlier near the boundary

	dst, err := xform.WarpNew(
		src, xform.IdentityMatrix(),
		xform.WithFilterName("lanczos3"),
		xform.WithEdgeClamp(true),
		xform.WithWrap(xform.WrapBlack),
	)
	require.NoError(t, err)

	out := make([]float64, 1)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			dst.GetPixel(x, y, out)
			require.GreaterOrEqual(t, out[0], -1e-6)
			require.LessOrEqual(t, out[0], 100.0+1e-6)
		}
	}
}
