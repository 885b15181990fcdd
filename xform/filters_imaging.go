package xform

import "github.com/disintegration/imaging"

// importedFilter adapts a disintegration/imaging.ResampleFilter -- a
// radius (Support) plus a 1D Kernel func -- as this package's separable
// Filter, the same pair of fields the teacher's computeWeights read
// directly (bmpx.computeWeights: "filter.Kernel((float64(u) - fu) /
// scale)"). Evaluating at a non-default width rescales the argument so
// the kernel's native shape is stretched/shrunk to the requested
// footprint, the same trick computeWeights plays with its "scale"
// divisor when ratio > 1.
type importedFilter struct {
	rf           imaging.ResampleFilter
	defaultWidth float64
	width        float64
}

func (f *importedFilter) Width() float64  { return f.width }
func (f *importedFilter) Height() float64 { return f.width }
func (f *importedFilter) Separable() bool { return true }

func (f *importedFilter) EvalX(x float64) float64 {
	scale := f.defaultWidth / f.width
	return f.rf.Kernel(x * scale)
}
func (f *importedFilter) EvalY(y float64) float64 { return f.EvalX(y) }
func (f *importedFilter) Eval(x, y float64) float64 {
	return f.EvalX(x) * f.EvalY(y)
}

func importedFactory(rf imaging.ResampleFilter) filterFactory {
	defaultWidth := 2 * rf.Support
	return func(width float64) Filter {
		return &importedFilter{rf: rf, defaultWidth: defaultWidth, width: width}
	}
}

// registerImagingFilters populates catalog with the imaging-backed
// entries listed in SPEC_FULL.md §3. "box" and "triangle" are the
// OpenImageIO-style names spec.md uses for imaging's Box/Linear filters.
func registerImagingFilters(catalog *Catalog) {
	register := func(name string, rf imaging.ResampleFilter) {
		catalog.Register(FilterDesc{
			Name:         name,
			DefaultWidth: 2 * rf.Support,
			Separable:    true,
		}, importedFactory(rf))
	}
	register("box", imaging.Box)
	register("triangle", imaging.Linear)
	register("hermite", imaging.Hermite)
	register("mitchell-netravali", imaging.MitchellNetravali)
	register("catmull-rom", imaging.CatmullRom)
	register("bspline", imaging.BSpline)
	register("gaussian", imaging.Gaussian)
	register("bartlett", imaging.Bartlett)
	register("hann", imaging.Hann)
	register("hamming", imaging.Hamming)
	register("blackman", imaging.Blackman)
	register("welch", imaging.Welch)
	register("cosine", imaging.Cosine)
	register("lanczos3", imaging.Lanczos)
}
