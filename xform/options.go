package xform

// options collects every knob the five public operations accept. Each
// operation only reads the fields relevant to it; this generalizes the
// teacher's per-operation resizeOptions/ResizeOption/resizeOptionFunc
// trio (bmpx.go) to one shared functional-options type.
type options struct {
	filter       Filter
	filterName   string
	filterWidth  float64
	roi          ROI
	nthreads     int
	wrap         WrapMode
	recomputeROI bool
	edgeClamp    bool
	fillMode     FillMode
	exact        bool
	haveCenter   bool
	centerX      float64
	centerY      float64
	interpolate  bool
	catalog      *Catalog
}

func defaultOptions() options {
	return options{
		roi:         AllROI,
		wrap:        WrapDefault,
		interpolate: true,
		catalog:     defaultCatalogInstance,
	}
}

// defaultCatalogInstance is the process-wide default filter catalog used
// when a caller doesn't supply one with WithCatalog. Filters are
// immutable once constructed (spec.md §5), so sharing this registry by
// reference across concurrent operations is safe.
var defaultCatalogInstance = DefaultCatalog()

// Option configures one of the five public operations.
type Option func(*options)

// WithFilter supplies an already-constructed Filter, bypassing catalog
// lookup entirely.
func WithFilter(f Filter) Option {
	return func(o *options) { o.filter = f }
}

// WithFilterName selects a catalog filter by name.
func WithFilterName(name string) Option {
	return func(o *options) { o.filterName = name }
}

// WithFilterWidth overrides the catalog's default-width policy with an
// explicit width.
func WithFilterWidth(width float64) Option {
	return func(o *options) { o.filterWidth = width }
}

// WithROI restricts the operation to roi instead of inferring one.
func WithROI(roi ROI) Option {
	return func(o *options) { o.roi = roi }
}

// WithThreads sets the tile worker count; 0 means the library default,
// 1 forces serial execution.
func WithThreads(n int) Option {
	return func(o *options) { o.nthreads = n }
}

// WithWrap sets the boundary wrap mode.
func WithWrap(w WrapMode) Option {
	return func(o *options) { o.wrap = w }
}

// WithRecomputeROI tells Warp/Rotate to infer the destination ROI from
// transforming the source ROI through M, instead of reusing the source
// ROI.
func WithRecomputeROI(recompute bool) Option {
	return func(o *options) { o.recomputeROI = recompute }
}

// WithEdgeClamp enables the support-rectangle edge-clamp policy for
// negative-lobe filters (spec.md §4.3 step 4).
func WithEdgeClamp(clamp bool) Option {
	return func(o *options) { o.edgeClamp = clamp }
}

// WithFillMode selects Fit's aspect-reconciliation mode.
func WithFillMode(mode FillMode) Option {
	return func(o *options) { o.fillMode = mode }
}

// WithExact selects Fit's exact (warp-based) path over the integer-resize
// path.
func WithExact(exact bool) Option {
	return func(o *options) { o.exact = exact }
}

// WithCenter overrides Rotate's default rotation center (the source full
// window's center).
func WithCenter(cx, cy float64) Option {
	return func(o *options) { o.haveCenter, o.centerX, o.centerY = true, cx, cy }
}

// WithInterpolate selects Resample's bilinear mode (true) or nearest mode
// (false).
func WithInterpolate(interpolate bool) Option {
	return func(o *options) { o.interpolate = interpolate }
}

// WithCatalog overrides the filter catalog an operation resolves names
// against.
func WithCatalog(c *Catalog) Option {
	return func(o *options) { o.catalog = c }
}

func (o options) apply(opts []Option) options {
	for _, f := range opts {
		f(&o)
	}
	return o
}
