package xform_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/adriansahlman/imgxform/xform"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func TestResampleNearestOneToOneIsCopy(t *testing.T) {
	src := newRampBuffer(10, 6)
	dst, err := xform.ResampleNew(src,
		xform.WithROI(xform.NewROI2D(0, 10, 0, 6, 0, 1)),
		xform.WithInterpolate(false),
	)
	require.NoError(t, err)

	expect, actual := make([]float64, 1), make([]float64, 1)
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			src.GetPixel(x, y, expect)
			dst.GetPixel(x, y, actual)
			require.Equal(t, expect, actual, "pixel (%d,%d)", x, y)
		}
	}
}

func TestResampleBilinearConstantSourceStaysConstant(t *testing.T) {
	src := newSolidBuffer(12, 12, 2, 33)
	dst, err := xform.ResampleNew(src,
		xform.WithROI(xform.NewROI2D(0, 5, 0, 5, 0, 2)),
		xform.WithInterpolate(true),
	)
	require.NoError(t, err)

	pel := make([]float64, 2)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			dst.GetPixel(x, y, pel)
			for c, v := range pel {
				require.InDelta(t, 33.0, v, 1e-9, "pixel (%d,%d) channel %d", x, y, c)
			}
		}
	}
}

// TestResampleNearestMatchesXImageDrawOracle cross-checks nearest-neighbor
// Resample against golang.org/x/image/draw's own NearestNeighbor scaler, used
// here as an independent oracle. An exact 2x upscale is the one case where
// both implementations' pixel-center conventions are guaranteed to agree
// regardless of rounding-tie details: floor((x+0.5)/2) == floor(x/2) for every
// integer x, so every 2x2 destination block must land on the same source
// pixel under either convention.
func TestResampleNearestMatchesXImageDrawOracle(t *testing.T) {
	src := newRampBuffer(2, 2)

	dst, err := xform.ResampleNew(src,
		xform.WithROI(xform.NewROI2D(0, 4, 0, 4, 0, 1)),
		xform.WithInterpolate(false),
	)
	require.NoError(t, err)

	srcImg := image.NewGray(image.Rect(0, 0, 2, 2))
	pel := make([]float64, 1)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.GetPixel(x, y, pel)
			srcImg.SetGray(x, y, color.Gray{Y: uint8(pel[0])})
		}
	}

	oracle := image.NewGray(image.Rect(0, 0, 4, 4))
	draw.NearestNeighbor.Scale(oracle, oracle.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			dst.GetPixel(x, y, pel)
			require.Equal(t, oracle.GrayAt(x, y).Y, uint8(pel[0]), "pixel (%d,%d)", x, y)
		}
	}
}

func TestResampleDeepPreservesSampleCounts(t *testing.T) {
	spec := xform.ImageSpec{
		Width: 4, Height: 4, FullWidth: 4, FullHeight: 4,
		NChannels: 2, Deep: true,
	}
	src := xform.NewMemBuffer(spec)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			count := (x + y) % 3
			src.SetSampleCount(x, y, count)
			for s := 0; s < count; s++ {
				src.SetDeepValue(x, y, s, 0, float64(s+1))
				src.SetDeepValue(x, y, s, 1, float64(x+y))
			}
		}
	}

	dst, err := xform.ResampleNew(src, xform.WithROI(xform.NewROI2D(0, 4, 0, 4, 0, 2)))
	require.NoError(t, err)
	require.True(t, dst.IsDeep())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			wantCount := src.SampleCount(x, y)
			require.Equal(t, wantCount, dst.SampleCount(x, y), "pixel (%d,%d)", x, y)
			for s := 0; s < wantCount; s++ {
				require.Equal(t, src.DeepValue(x, y, s, 0), dst.DeepValue(x, y, s, 0))
				require.Equal(t, src.DeepValue(x, y, s, 1), dst.DeepValue(x, y, s, 1))
			}
		}
	}
}
