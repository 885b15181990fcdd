package xform

// MemBuffer is an interleaved, float64-backed in-memory Buffer, the one
// concrete pixel container this module ships so its operations are runnable
// without a real image library wired in. Layout follows the stride-based
// interleaved style of the teacher's pack (wbrown-img2ansi/imageutil's RGBAImage /
// GrayImage wrap a stride-addressed Pix slice); MemBuffer generalizes that
// to an arbitrary channel count and float64 samples instead of uint8, and
// adds a parallel deep-sample store for resample's deep-image path.
type MemBuffer struct {
	spec ImageSpec
	// Pix holds Width*Height*NChannels values in row-major, channel-minor
	// order: Pix[(y-Y)*Width*NChannels + (x-X)*NChannels + c].
	Pix []float64

	deep    bool
	counts  []int       // per-pixel sample count, len Width*Height
	samples [][]float64 // per-pixel flattened [sample*NChannels+channel], len Width*Height

	lastError string
}

// NewMemBuffer allocates a zero-filled buffer for spec.
func NewMemBuffer(spec ImageSpec) *MemBuffer {
	b := &MemBuffer{}
	b.Allocate(spec)
	return b
}

// Spec implements Buffer.
func (b *MemBuffer) Spec() ImageSpec { return b.spec }

// Initialized implements Buffer.
func (b *MemBuffer) Initialized() bool {
	return b.spec.Width > 0 && b.spec.Height > 0
}

// Allocate implements Buffer.
func (b *MemBuffer) Allocate(spec ImageSpec) {
	b.spec = spec
	b.deep = spec.Deep
	n := spec.Width * spec.Height
	if b.deep {
		b.counts = make([]int, n)
		b.samples = make([][]float64, n)
		b.Pix = nil
	} else {
		b.Pix = make([]float64, n*spec.NChannels)
		b.counts = nil
		b.samples = nil
	}
	b.lastError = ""
}

// SetFullWindow implements Buffer.
func (b *MemBuffer) SetFullWindow(fullX, fullY, fullWidth, fullHeight int) {
	b.spec.FullX, b.spec.FullY = fullX, fullY
	b.spec.FullWidth, b.spec.FullHeight = fullWidth, fullHeight
}

func (b *MemBuffer) index(x, y int) int {
	return (y-b.spec.Y)*b.spec.Width + (x - b.spec.X)
}

func (b *MemBuffer) pixOffset(x, y int) int {
	return b.index(x, y) * b.spec.NChannels
}

// GetPixel implements Buffer.
func (b *MemBuffer) GetPixel(x, y int, out []float64) {
	off := b.pixOffset(x, y)
	copy(out[:b.spec.NChannels], b.Pix[off:off+b.spec.NChannels])
}

// SetPixel implements Buffer.
func (b *MemBuffer) SetPixel(x, y int, val []float64) {
	off := b.pixOffset(x, y)
	copy(b.Pix[off:off+b.spec.NChannels], val[:b.spec.NChannels])
}

// ReadWrapped implements Buffer.
func (b *MemBuffer) ReadWrapped(x, y int, wrap WrapMode, out []float64) {
	wx, wy, ok := wrapCoord(x, y, b.spec, wrap)
	if !ok {
		for c := range out[:b.spec.NChannels] {
			out[c] = 0
		}
		return
	}
	b.GetPixel(wx, wy, out)
}

// wrapCoord maps (x,y) into the data window according to wrap. ok is false
// only for WrapBlack when the coordinate is out of range, meaning the
// caller should synthesize zeros.
func wrapCoord(x, y int, spec ImageSpec, wrap WrapMode) (int, int, bool) {
	x0, x1 := spec.X, spec.X+spec.Width-1
	y0, y1 := spec.Y, spec.Y+spec.Height-1
	if x >= x0 && x <= x1 && y >= y0 && y <= y1 {
		return x, y, true
	}
	switch wrap {
	case WrapClamp, WrapDefault:
		return clampInt(x, x0, x1), clampInt(y, y0, y1), true
	case WrapPeriodic:
		return x0 + wrapIndex(x-x0, spec.Width), y0 + wrapIndex(y-y0, spec.Height), true
	case WrapMirror:
		return x0 + mirrorIndex(x-x0, spec.Width), y0 + mirrorIndex(y-y0, spec.Height), true
	default: // WrapBlack
		return 0, 0, false
	}
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

func mirrorIndex(i, n int) int {
	if n <= 1 {
		return 0
	}
	period := 2 * n
	m := i % period
	if m < 0 {
		m += period
	}
	if m >= n {
		m = period - 1 - m
	}
	return m
}

// Bilinear implements Buffer.
func (b *MemBuffer) Bilinear(sx, sy float64, wrap WrapMode, out []float64) {
	nc := b.spec.NChannels
	fx := sx - 0.5
	fy := sy - 0.5
	x0 := int(floorF(fx))
	y0 := int(floorF(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	var p00, p10, p01, p11 [16]float64 // fixed scratch, nc assumed <= 16
	g := func(x, y int, dst []float64) {
		b.ReadWrapped(x, y, wrap, dst)
	}
	g(x0, y0, p00[:nc])
	g(x0+1, y0, p10[:nc])
	g(x0, y0+1, p01[:nc])
	g(x0+1, y0+1, p11[:nc])

	for c := 0; c < nc; c++ {
		top := p00[c]*(1-tx) + p10[c]*tx
		bot := p01[c]*(1-tx) + p11[c]*tx
		out[c] = top*(1-ty) + bot*ty
	}
}

func floorF(v float64) float64 {
	i := float64(int64(v))
	if v < 0 && i != v {
		i--
	}
	return i
}

// IsDeep implements Buffer.
func (b *MemBuffer) IsDeep() bool { return b.deep }

// SampleCount implements Buffer.
func (b *MemBuffer) SampleCount(x, y int) int {
	if !b.deep {
		return 1
	}
	return b.counts[b.index(x, y)]
}

// SetSampleCount implements Buffer.
func (b *MemBuffer) SetSampleCount(x, y, count int) {
	i := b.index(x, y)
	b.counts[i] = count
	b.samples[i] = make([]float64, count*b.spec.NChannels)
}

// DeepValue implements Buffer.
func (b *MemBuffer) DeepValue(x, y, sample, channel int) float64 {
	i := b.index(x, y)
	return b.samples[i][sample*b.spec.NChannels+channel]
}

// SetDeepValue implements Buffer.
func (b *MemBuffer) SetDeepValue(x, y, sample, channel int, v float64) {
	i := b.index(x, y)
	b.samples[i][sample*b.spec.NChannels+channel] = v
}

// SetError implements Buffer.
func (b *MemBuffer) SetError(msg string) { b.lastError = msg }

// LastError implements Buffer.
func (b *MemBuffer) LastError() string { return b.lastError }
