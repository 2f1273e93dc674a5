package colon

import (
	"errors"
	"fmt"
)

// ErrDegenerateGeometry is the sentinel for all geometry errors.
var ErrDegenerateGeometry = errors.New("colon: degenerate geometry")

// GeometryError reports inputs the cross-section formulas cannot evaluate.
type GeometryError struct {
	Op     string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("colon: %s: %s", e.Op, e.Reason)
}

// Is reports ErrDegenerateGeometry as the sentinel for geometry errors.
func (e *GeometryError) Is(target error) bool { return target == ErrDegenerateGeometry }

func geometryError(op, format string, args ...interface{}) error {
	return &GeometryError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
