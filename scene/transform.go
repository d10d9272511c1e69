package scene

import (
	"fmt"

	"github.com/der-antikeks/viewfrustum/math"
)

// TransformState names a transformation of the render pipeline.
type TransformState int

const (
	TransformView TransformState = iota
	TransformWorld
	TransformProjection
	TransformTexture0
	TransformTexture1
	TransformTexture2
	TransformTexture3
)

func (s TransformState) String() string {
	switch s {
	case TransformView:
		return "view"
	case TransformWorld:
		return "world"
	case TransformProjection:
		return "projection"
	case TransformTexture0, TransformTexture1, TransformTexture2, TransformTexture3:
		return fmt.Sprintf("texture%d", int(s-TransformTexture0))
	}

	return fmt.Sprintf("TransformState(%d)", int(s))
}

// the frustum keeps copies of the view and projection matrices only
const (
	viewSlot = iota
	projectionSlot

	transformSlots
)

func slotOf(state TransformState) int {
	switch state {
	case TransformProjection:
		return projectionSlot
	case TransformView:
		return viewSlot
	default:
		return viewSlot
	}
}

// TransformMatrix returns the cached matrix of state. States other than
// view and projection share the view slot.
func (f *ViewFrustum) TransformMatrix(state TransformState) math.Matrix {
	return f.matrices[slotOf(state)]
}

// SetTransformMatrix caches mat for state. Keeping it consistent with the
// planes is up to the caller.
func (f *ViewFrustum) SetTransformMatrix(state TransformState, mat math.Matrix) {
	f.matrices[slotOf(state)] = mat
}
