package xform

// PrepareOptions describes how IBAprep should validate a destination
// buffer's shape for a particular operation, per spec.md §6's
// "destination preparation contract (delegated to the external
// IBAprep)".
type PrepareOptions struct {
	AllowVolume bool
	AllowDeep   bool
}

// IBAprep implements the shared destination-preparation contract every
// public operation runs before its kernel: reject an unsupported
// geometry, allocate an uninitialized destination from allocSpec, and
// clamp the working ROI's channel range to the destination's channel
// count. It returns the clamped ROI to actually operate over.
func IBAprep(dst, src Buffer, workROI ROI, allocSpec ImageSpec, opts PrepareOptions) (ROI, error) {
	if !opts.AllowVolume && workROI.Defined() && workROI.Depth() > 1 {
		return ROI{}, &UnsupportedGeometryError{Reason: "volume images are not supported by this operation"}
	}
	if src.IsDeep() && !opts.AllowDeep {
		return ROI{}, &UnsupportedGeometryError{Reason: "deep images are not supported by this operation"}
	}
	if dst.IsDeep() != src.IsDeep() && dst.Initialized() {
		return ROI{}, &IncompatibleSpecError{Reason: "destination deepness does not match source"}
	}

	if !dst.Initialized() {
		dst.Allocate(allocSpec)
	}

	dstSpec := dst.Spec()
	clamped := workROI
	if clamped.CHEnd > dstSpec.NChannels {
		clamped.CHEnd = dstSpec.NChannels
	}
	if clamped.CHBegin < 0 {
		clamped.CHBegin = 0
	}
	return clamped, nil
}
