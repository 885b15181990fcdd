package xform_test

import (
	"testing"

	"github.com/adriansahlman/imgxform/xform"
	"github.com/stretchr/testify/require"
)

func TestIBAprepClampsChannelRangeToDestination(t *testing.T) {
	src := newSolidBuffer(4, 4, 2, 1)
	dst := &xform.MemBuffer{}

	roi := xform.NewROI2D(0, 4, 0, 4, 0, 5)
	allocSpec := src.Spec()
	allocSpec.Width, allocSpec.Height = 4, 4
	allocSpec.FullWidth, allocSpec.FullHeight = 4, 4

	clamped, err := xform.IBAprep(dst, src, roi, allocSpec, xform.PrepareOptions{})
	require.NoError(t, err)
	require.Equal(t, allocSpec.NChannels, clamped.CHEnd)
}

func TestIBAprepRejectsDeepSourceByDefault(t *testing.T) {
	deepSpec := xform.ImageSpec{Width: 2, Height: 2, FullWidth: 2, FullHeight: 2, NChannels: 1, Deep: true}
	src := xform.NewMemBuffer(deepSpec)
	dst := &xform.MemBuffer{}

	_, err := xform.IBAprep(dst, src, xform.AllROI, src.Spec(), xform.PrepareOptions{})
	require.Error(t, err)
	var unsupported *xform.UnsupportedGeometryError
	require.ErrorAs(t, err, &unsupported)
}

func TestIBAprepAllowsDeepSourceWhenPermitted(t *testing.T) {
	deepSpec := xform.ImageSpec{Width: 2, Height: 2, FullWidth: 2, FullHeight: 2, NChannels: 1, Deep: true}
	src := xform.NewMemBuffer(deepSpec)
	dst := &xform.MemBuffer{}

	_, err := xform.IBAprep(dst, src, xform.AllROI, src.Spec(), xform.PrepareOptions{AllowDeep: true})
	require.NoError(t, err)
	require.True(t, dst.IsDeep())
}

func TestIBAprepRejectsMismatchedDeepness(t *testing.T) {
	src := newSolidBuffer(2, 2, 1, 0)
	deepSpec := xform.ImageSpec{Width: 2, Height: 2, FullWidth: 2, FullHeight: 2, NChannels: 1, Deep: true}
	dst := xform.NewMemBuffer(deepSpec)

	_, err := xform.IBAprep(dst, src, xform.AllROI, src.Spec(), xform.PrepareOptions{})
	require.Error(t, err)
	var incompatible *xform.IncompatibleSpecError
	require.ErrorAs(t, err, &incompatible)
}
