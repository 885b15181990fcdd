package xform_test

import (
	"testing"

	"github.com/adriansahlman/imgxform/xform"
	"github.com/stretchr/testify/require"
)

func TestSampleConstantSourceStaysConstant(t *testing.T) {
	src := newSolidBuffer(16, 16, 3, 42)
	sel := xform.NewFilterSelector(xform.DefaultCatalog())
	filter, err := sel.ForWarp("lanczos3", 6, 1, 1)
	require.NoError(t, err)

	out := make([]float64, 3)
	xform.Sample(src, 7.3, 9.1, 1, 0, 0, 1, filter, xform.WrapClamp, false, out)
	for c, v := range out {
		require.InDelta(t, 42.0, v, 1e-9, "channel %d", c)
	}
}

func TestSampleMagnificationReconstructsNearestNeighborhood(t *testing.T) {
	src := newRampBuffer(8, 8)
	sel := xform.NewFilterSelector(xform.DefaultCatalog())
	filter, err := sel.ForWarp("triangle", 2, 1, 1)
	require.NoError(t, err)

	out := make([]float64, 1)
	// Derivatives near zero (heavy magnification): footprint floors to one
	// source pixel either side, so the sample should land close to the
	// pixel at (3,3).
	xform.Sample(src, 3.5, 3.5, 0.01, 0, 0, 0.01, filter, xform.WrapClamp, false, out)
	require.InDelta(t, float64(3+3*8), out[0], 2.0)
}
