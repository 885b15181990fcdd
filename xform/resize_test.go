package xform_test

import (
	"testing"

	"github.com/adriansahlman/imgxform/xform"
	"github.com/stretchr/testify/require"
)

func TestResizeOneToOneIsCopy(t *testing.T) {
	src := newRampBuffer(12, 9)
	dst, err := xform.ResizeNew(src, xform.WithROI(xform.NewROI2D(0, 12, 0, 9, 0, 1)))
	require.NoError(t, err)

	expect := make([]float64, 1)
	actual := make([]float64, 1)
	for y := 0; y < 9; y++ {
		for x := 0; x < 12; x++ {
			src.GetPixel(x, y, expect)
			dst.GetPixel(x, y, actual)
			require.Equal(t, expect, actual, "pixel (%d,%d)", x, y)
		}
	}
}

func TestResizeConstantSourceStaysConstant(t *testing.T) {
	src := newSolidBuffer(20, 20, 4, 17)
	dst, err := xform.ResizeNew(src,
		xform.WithROI(xform.NewROI2D(0, 7, 0, 5, 0, 4)),
		xform.WithFilterName("lanczos3"),
	)
	require.NoError(t, err)

	pel := make([]float64, 4)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			dst.GetPixel(x, y, pel)
			for c, v := range pel {
				require.InDelta(t, 17.0, v, 1e-6, "pixel (%d,%d) channel %d", x, y, c)
			}
		}
	}
}

func TestResizeWithoutTargetFails(t *testing.T) {
	src := newSolidBuffer(4, 4, 1, 0)
	dst := &xform.MemBuffer{}
	ok := xform.Resize(dst, src)
	require.False(t, ok)
	require.NotEmpty(t, dst.LastError())
}

// nonSeparableTriangle wraps the catalog's separable "triangle" filter and
// reports Separable()==false, forcing Resize's non-separable "General path"
// (resize.go's generalResizePixel) even though the underlying kernel is a
// plain product of 1D triangles.
type nonSeparableTriangle struct {
	inner xform.Filter
}

func (w nonSeparableTriangle) Width() float64    { return w.inner.Width() }
func (w nonSeparableTriangle) Height() float64   { return w.inner.Height() }
func (w nonSeparableTriangle) Separable() bool   { return false }
func (w nonSeparableTriangle) EvalX(x float64) float64 { return w.inner.EvalX(x) }
func (w nonSeparableTriangle) EvalY(y float64) float64 { return w.inner.EvalY(y) }
func (w nonSeparableTriangle) Eval(x, y float64) float64 {
	return w.inner.EvalX(x) * w.inner.EvalY(y)
}

// TestResizeNonSeparablePathMatchesEquivalentSeparableFilter exercises the
// general (non-separable) path with a kernel that is, mathematically, an
// exact product of its 1D factors: its output must equal the separable
// path's output pixel for pixel on a 2x upscale, where every sample point
// falls a quarter pixel off a source pixel center, so a dropped sub-pixel
// offset would show up as a shift between the two.
func TestResizeNonSeparablePathMatchesEquivalentSeparableFilter(t *testing.T) {
	src := newRampBuffer(4, 4)
	catalog := xform.DefaultCatalog()
	tri, err := catalog.Create("triangle", 0)
	require.NoError(t, err)

	roi := xform.NewROI2D(0, 8, 0, 8, 0, 1)

	separable, err := xform.ResizeNew(src, xform.WithROI(roi), xform.WithFilter(tri))
	require.NoError(t, err)

	nonSeparable, err := xform.ResizeNew(src, xform.WithROI(roi), xform.WithFilter(nonSeparableTriangle{inner: tri}))
	require.NoError(t, err)

	a, b := make([]float64, 1), make([]float64, 1)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			separable.GetPixel(x, y, a)
			nonSeparable.GetPixel(x, y, b)
			require.InDelta(t, a[0], b[0], 1e-9, "pixel (%d,%d)", x, y)
		}
	}
}

func TestResizeSerialAndParallelAgree(t *testing.T) {
	src := newRampBuffer(37, 23)
	roi := xform.NewROI2D(0, 64, 0, 40, 0, 1)

	serial, err := xform.ResizeNew(src, xform.WithROI(roi), xform.WithThreads(1))
	require.NoError(t, err)
	parallel, err := xform.ResizeNew(src, xform.WithROI(roi), xform.WithThreads(8))
	require.NoError(t, err)

	a, b := make([]float64, 1), make([]float64, 1)
	for y := 0; y < 40; y++ {
		for x := 0; x < 64; x++ {
			serial.GetPixel(x, y, a)
			parallel.GetPixel(x, y, b)
			require.Equal(t, a, b, "pixel (%d,%d)", x, y)
		}
	}
}
