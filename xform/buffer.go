package xform

// Buffer is the pixel-container contract the core algorithms are written
// against. It is deliberately small: typed pixel get/set over the data
// window, a wrap-mode-aware single-pixel read for boundary synthesis, a
// bilinear sample, deep-image sample accessors, and a last-error slot.
//
// The core treats this as an opaque external collaborator -- spec.md §1
// scopes the actual pixel container, format decoding and I/O out of this
// module. MemBuffer (membuffer.go) is the one concrete realization kept
// here so the operations in this package are runnable and testable.
type Buffer interface {
	// Spec returns the buffer's current geometry/format metadata.
	Spec() ImageSpec

	// Initialized reports whether the buffer has been allocated. A
	// destination buffer usually starts uninitialized; IBAprep (see
	// prepare.go) allocates it from the source's spec and a computed ROI.
	Initialized() bool

	// Allocate (re)allocates storage for spec, discarding any previous
	// contents.
	Allocate(spec ImageSpec)

	// SetFullWindow rewrites the full/display window metadata in place,
	// without touching stored pixels or the data window. Fit's
	// non-exact path (fit.go) uses this to recenter a plain resize
	// result inside a differently-shaped target window.
	SetFullWindow(fullX, fullY, fullWidth, fullHeight int)

	// GetPixel reads nchannels values at (x,y), which must lie within the
	// buffer's data window, into out[:nchannels].
	GetPixel(x, y int, out []float64)

	// SetPixel writes val[:nchannels] at (x,y), which must lie within the
	// buffer's data window.
	SetPixel(x, y int, val []float64)

	// ReadWrapped reads the pixel at (x,y) into out[:nchannels],
	// synthesizing a value per wrap when (x,y) falls outside the data
	// window.
	ReadWrapped(x, y int, wrap WrapMode, out []float64)

	// Bilinear samples at the fractional data-window coordinate (sx,sy),
	// where pixel (i,j)'s center is at (i+0.5, j+0.5), using wrap to
	// synthesize any out-of-window taps.
	Bilinear(sx, sy float64, wrap WrapMode, out []float64)

	// IsDeep reports whether this buffer stores a variable-length sample
	// list per pixel instead of one fixed value per channel.
	IsDeep() bool
	// SampleCount returns the number of deep samples stored at (x,y).
	SampleCount(x, y int) int
	// SetSampleCount allocates storage for count samples at (x,y),
	// discarding any samples already there. Not safe for concurrent use
	// on the same buffer (spec.md §5, "deep-image exception").
	SetSampleCount(x, y, count int)
	// DeepValue returns the value of the given channel of the given
	// sample at (x,y).
	DeepValue(x, y, sample, channel int) float64
	// SetDeepValue sets the value of the given channel of the given
	// sample at (x,y). Writes to disjoint (x,y) may run concurrently;
	// SetSampleCount for a given (x,y) must have already completed.
	SetDeepValue(x, y, sample, channel int, v float64)

	// SetError records a human-readable failure message.
	SetError(msg string)
	// LastError returns the most recently recorded failure message, or
	// "" if none.
	LastError() string
}
