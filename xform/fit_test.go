package xform_test

import (
	"testing"

	"github.com/adriansahlman/imgxform/xform"
	"github.com/stretchr/testify/require"
)

func TestFitOwnWindowIsIdempotent(t *testing.T) {
	src := newRampBuffer(16, 10)
	dst, err := xform.FitNew(src, xform.WithROI(xform.NewROI2D(0, 16, 0, 10, 0, 1)))
	require.NoError(t, err)

	spec := dst.Spec()
	require.Equal(t, 16, spec.FullWidth)
	require.Equal(t, 10, spec.FullHeight)

	expect, actual := make([]float64, 1), make([]float64, 1)
	for y := 0; y < 10; y++ {
		for x := 0; x < 16; x++ {
			src.GetPixel(x, y, expect)
			dst.GetPixel(x, y, actual)
			require.Equal(t, expect, actual, "pixel (%d,%d)", x, y)
		}
	}
}

func TestFitLetterboxCentersNarrowerAspect(t *testing.T) {
	src := newSolidBuffer(10, 10, 1, 5)
	dst, err := xform.FitNew(src, xform.WithROI(xform.NewROI2D(0, 20, 0, 10, 0, 1)))
	require.NoError(t, err)

	spec := dst.Spec()
	require.Equal(t, 20, spec.FullWidth)
	require.Equal(t, 10, spec.FullHeight)
	// source is square, target is 2:1 -> fit by height, resized to 10x10,
	// centered with a 5px offset on each side.
	require.Equal(t, 10, spec.Width)
	require.Equal(t, 10, spec.Height)
	require.Equal(t, 5, spec.X)
}

func TestFitExactMatchesComputedScale(t *testing.T) {
	src := newSolidBuffer(10, 10, 1, 8)
	dst, err := xform.FitNew(src,
		xform.WithROI(xform.NewROI2D(0, 5, 0, 5, 0, 1)),
		xform.WithExact(true),
	)
	require.NoError(t, err)

	spec := dst.Spec()
	require.Equal(t, 5, spec.FullWidth)
	require.Equal(t, 5, spec.FullHeight)

	// The exact path samples under WrapBlack but always requests edge-clamp
	// (spec.md §4.6), which keeps every tap's support rectangle inside the
	// source data window -- so a constant source stays constant everywhere,
	// including the border pixels.
	pel := make([]float64, 1)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			dst.GetPixel(x, y, pel)
			require.InDelta(t, 8.0, pel[0], 1e-6, "pixel (%d,%d)", x, y)
		}
	}
}
