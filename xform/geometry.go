package xform

import "math"

// TransformROI maps roi's four integer corners (at pixel-center offsets
// +0.5) through the affine m, takes the axis-aligned bounding box of the
// results, and expands it to the smallest integer ROI containing that box
// (floor(min), floor(max)+1). z and channel ranges are preserved
// unchanged. Used by Warp's recompute_roi option and satisfies testable
// property 2 in spec.md §8 for any non-singular m.
func TransformROI(m Matrix3, roi ROI) ROI {
	corners := [4][2]float64{
		{float64(roi.XBegin) + 0.5, float64(roi.YBegin) + 0.5},
		{float64(roi.XEnd) - 0.5, float64(roi.YBegin) + 0.5},
		{float64(roi.XBegin) + 0.5, float64(roi.YEnd) - 0.5},
		{float64(roi.XEnd) - 0.5, float64(roi.YEnd) - 0.5},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y, ok := m.Apply(p[0], p[1])
		if !ok {
			continue
		}
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	if math.IsInf(minX, 1) {
		// every corner was singular under m: collapse to undefined.
		return ROI{ZBegin: roi.ZBegin, ZEnd: roi.ZEnd, CHBegin: roi.CHBegin, CHEnd: roi.CHEnd}
	}
	return ROI{
		XBegin: int(math.Floor(minX)), XEnd: int(math.Floor(maxX)) + 1,
		YBegin: int(math.Floor(minY)), YEnd: int(math.Floor(maxY)) + 1,
		ZBegin: roi.ZBegin, ZEnd: roi.ZEnd,
		CHBegin: roi.CHBegin, CHEnd: roi.CHEnd,
	}
}

// FillMode selects how Fit reconciles a mismatched source/target aspect
// ratio.
type FillMode int

const (
	FillLetterbox FillMode = iota
	FillHeight
	FillWidth
)

// ParseFillMode maps a fillmode name to a FillMode, defaulting to
// FillLetterbox for an empty or unrecognized name, per spec.md §4.1.
func ParseFillMode(name string) FillMode {
	switch name {
	case "height":
		return FillHeight
	case "width":
		return FillWidth
	default:
		return FillLetterbox
	}
}

// FitGeometry is the result of fit_geometry (spec.md §4.1): the resize
// target dimensions, the offset at which that resized image is centered
// inside the target window, and the uniform scale factor relating the
// two.
type FitGeometry struct {
	ResizeWidth, ResizeHeight int
	XOffset, YOffset          int
	Scale                     float64
}

// ComputeFitGeometry implements spec.md §4.1's fit_geometry: given the
// source full-window aspect and the target window, choose letterbox
// (resolving to height or width by comparing aspects), height, or width
// fill and compute the resize size, centering offset and scale.
func ComputeFitGeometry(srcFullWidth, srcFullHeight int, targetWidth, targetHeight int, mode FillMode) FitGeometry {
	aSrc := float64(srcFullWidth) / float64(srcFullHeight)
	aTgt := float64(targetWidth) / float64(targetHeight)

	resolved := mode
	if resolved == FillLetterbox {
		if aTgt >= aSrc {
			resolved = FillHeight
		} else {
			resolved = FillWidth
		}
	}

	var g FitGeometry
	switch resolved {
	case FillHeight:
		g.ResizeHeight = targetHeight
		g.ResizeWidth = int(math.Round(float64(targetHeight) * aSrc))
		g.Scale = float64(targetHeight) / float64(srcFullHeight)
		g.XOffset = (targetWidth - g.ResizeWidth) / 2
		g.YOffset = 0
	default: // FillWidth
		g.ResizeWidth = targetWidth
		g.ResizeHeight = int(math.Round(float64(targetWidth) / aSrc))
		g.Scale = float64(targetWidth) / float64(srcFullWidth)
		g.YOffset = (targetHeight - g.ResizeHeight) / 2
		g.XOffset = 0
	}
	return g
}
