package multidim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlavl/avl"
)

// Sentinel errors for multidim.
var (
	// ErrNoDimensions indicates that a Tree was declared without any dimension.
	ErrNoDimensions = errors.New("multidim: at least one dimension is required")

	// ErrNilIdentity indicates a nil identity function.
	ErrNilIdentity = errors.New("multidim: identity function is nil")

	// ErrNilDimension indicates a nil *Index among the dimensions.
	ErrNilDimension = errors.New("multidim: dimension is nil")

	// ErrUnnamedDimension indicates a dimension declared with an empty name.
	ErrUnnamedDimension = errors.New("multidim: dimension name is empty")

	// ErrDuplicateDimension indicates two dimensions with the same name.
	ErrDuplicateDimension = errors.New("multidim: duplicate dimension name")

	// ErrDimensionBound indicates an Index that already belongs to a Tree.
	ErrDimensionBound = errors.New("multidim: dimension already bound to a tree")

	// ErrDimensionIndex indicates a dimension position outside [0, K).
	ErrDimensionIndex = errors.New("multidim: dimension index out of range")

	// ErrDimensionKeyType indicates a typed query whose key type does not
	// match the dimension.
	ErrDimensionKeyType = errors.New("multidim: dimension key type mismatch")

	// ErrOutOfSync indicates a dimension that no longer holds a member the
	// Tree tracks; it only happens when an ordering breaks its contract.
	ErrOutOfSync = errors.New("multidim: dimensions out of sync")

	// ErrDuplicateKey is avl.ErrDuplicateKey, re-exported for errors.Is.
	ErrDuplicateKey = avl.ErrDuplicateKey
)

// DimensionError ties a failure to the dimension that raised it.
type DimensionError struct {
	Dimension string
	Err       error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("multidim: dimension %q: %v", e.Dimension, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *DimensionError) Unwrap() error { return e.Err }
