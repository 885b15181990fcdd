package xform

// ROI is a region of interest: a half-open rectangle over x, y, z and a
// channel range. It mirrors the region abstraction OpenImageIO's ImageBuf
// algorithms pass around, trimmed to what this core needs.
type ROI struct {
	XBegin, XEnd int
	YBegin, YEnd int
	ZBegin, ZEnd int
	CHBegin, CHEnd int
}

// AllROI is the sentinel "undefined" ROI: callers use it to mean "use the
// source's own ROI".
var AllROI = ROI{}

// NewROI2D builds a ROI spanning a single z-plane and the given channel
// range.
func NewROI2D(xbegin, xend, ybegin, yend, chbegin, chend int) ROI {
	return ROI{
		XBegin: xbegin, XEnd: xend,
		YBegin: ybegin, YEnd: yend,
		ZBegin: 0, ZEnd: 1,
		CHBegin: chbegin, CHEnd: chend,
	}
}

// Defined reports whether r denotes an actual region: all ranges
// non-negative and every end strictly greater than its begin.
func (r ROI) Defined() bool {
	return r.XEnd > r.XBegin && r.YEnd > r.YBegin &&
		r.ZEnd > r.ZBegin && r.CHEnd > r.CHBegin &&
		r.XBegin >= 0 && r.YBegin >= 0 && r.ZBegin >= 0 && r.CHBegin >= 0
}

// Width, Height and Depth report the pixel extents of the ROI.
func (r ROI) Width() int  { return r.XEnd - r.XBegin }
func (r ROI) Height() int { return r.YEnd - r.YBegin }
func (r ROI) Depth() int  { return r.ZEnd - r.ZBegin }
func (r ROI) NChannels() int {
	return r.CHEnd - r.CHBegin
}

// Contains reports whether (x,y) falls inside the ROI's x/y extent.
func (r ROI) Contains(x, y int) bool {
	return x >= r.XBegin && x < r.XEnd && y >= r.YBegin && y < r.YEnd
}

// Union returns the smallest ROI containing both a and b. An undefined
// operand is ignored; if both are undefined the result is undefined.
func Union(a, b ROI) ROI {
	if !a.Defined() {
		return b
	}
	if !b.Defined() {
		return a
	}
	return ROI{
		XBegin: minInt(a.XBegin, b.XBegin), XEnd: maxInt(a.XEnd, b.XEnd),
		YBegin: minInt(a.YBegin, b.YBegin), YEnd: maxInt(a.YEnd, b.YEnd),
		ZBegin: minInt(a.ZBegin, b.ZBegin), ZEnd: maxInt(a.ZEnd, b.ZEnd),
		CHBegin: minInt(a.CHBegin, b.CHBegin), CHEnd: maxInt(a.CHEnd, b.CHEnd),
	}
}

// Intersect returns the largest ROI contained in both a and b; the result
// may be undefined if they don't overlap.
func Intersect(a, b ROI) ROI {
	r := ROI{
		XBegin: maxInt(a.XBegin, b.XBegin), XEnd: minInt(a.XEnd, b.XEnd),
		YBegin: maxInt(a.YBegin, b.YBegin), YEnd: minInt(a.YEnd, b.YEnd),
		ZBegin: maxInt(a.ZBegin, b.ZBegin), ZEnd: minInt(a.ZEnd, b.ZEnd),
		CHBegin: maxInt(a.CHBegin, b.CHBegin), CHEnd: minInt(a.CHEnd, b.CHEnd),
	}
	return r
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// clampInt clamps v into [lo,hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
