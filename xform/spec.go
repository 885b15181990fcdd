package xform

// WrapMode controls how out-of-bounds reads are synthesized.
type WrapMode int

const (
	WrapDefault WrapMode = iota
	WrapBlack
	WrapClamp
	WrapPeriodic
	WrapMirror
)

func (w WrapMode) String() string {
	switch w {
	case WrapBlack:
		return "black"
	case WrapClamp:
		return "clamp"
	case WrapPeriodic:
		return "periodic"
	case WrapMirror:
		return "mirror"
	default:
		return "default"
	}
}

// resolveWrap turns WrapDefault into the operation-specific fallback mode.
func resolveWrap(w, fallback WrapMode) WrapMode {
	if w == WrapDefault {
		return fallback
	}
	return w
}

// ImageSpec carries the geometric and format metadata the core needs: the
// stored data window, the canonical full (display) window used for NDC
// scaling math, and the channel layout. It deliberately omits anything to
// do with pixel encoding, color space or file metadata -- those live on
// the external collaborator this core treats as opaque.
type ImageSpec struct {
	// Data window: what is actually stored.
	X, Y, Width, Height int
	// Full/display window: the NDC frame scaling math is defined against.
	FullX, FullY, FullWidth, FullHeight int
	NChannels int
	Deep      bool
}

// ROI returns the data window as a ROI over all channels.
func (s ImageSpec) ROI() ROI {
	return NewROI2D(s.X, s.X+s.Width, s.Y, s.Y+s.Height, 0, s.NChannels)
}
