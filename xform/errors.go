package xform

import "fmt"

// UnknownFilterError reports that a requested filter name is not in the
// catalog.
type UnknownFilterError struct {
	Name string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("xform: unknown filter %q", e.Name)
}

// UnsupportedGeometryError reports a destination shape this operation
// cannot produce (a volume where volumes aren't supported, or a deep
// image where deep images aren't supported).
type UnsupportedGeometryError struct {
	Reason string
}

func (e *UnsupportedGeometryError) Error() string {
	return "xform: unsupported geometry: " + e.Reason
}

// IncompatibleSpecError reports that the destination and source specs
// don't agree on a contract the operation requires (e.g. deepness).
type IncompatibleSpecError struct {
	Reason string
}

func (e *IncompatibleSpecError) Error() string {
	return "xform: incompatible spec: " + e.Reason
}

// setError attaches a human-readable message to dst's last-error slot and
// returns false, the uniform failure signature every in-place operation
// uses.
func setError(dst Buffer, err error) bool {
	if dst != nil {
		dst.SetError(err.Error())
	}
	return false
}

// wrapReturnError is used by the value-returning form of each operation:
// it returns an error carrying the buffer's message, or a generic one if
// the in-place call didn't set any, so the caller always has something to
// report. It does not write to the buffer.
func wrapReturnError(dst Buffer, op string) error {
	if msg := dst.LastError(); msg != "" {
		return fmt.Errorf("xform: %s: %s", op, msg)
	}
	return fmt.Errorf("xform: %s failed", op)
}
