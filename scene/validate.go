package scene

import (
	"errors"
	"fmt"

	"github.com/der-antikeks/viewfrustum/math"
)

var (
	ErrDegeneratePlane     = errors.New("degenerate frustum plane")
	ErrZeroFarNearDistance = errors.New("far-near distance is zero")
	ErrNonFiniteBounds     = errors.New("bounding volume is not finite")
)

/*
	Validate checks the frustum for the degenerate states that the other
	methods silently propagate as NaN or infinity: planes without a unit
	normal, a missing far-near distance and non-finite bounding volumes.
	None of the other methods call it.
*/
func (f *ViewFrustum) Validate() error {
	for i, p := range f.Planes {
		if !p.Normal.IsFinite() || !math.IsFinite(p.D) {
			return fmt.Errorf("%s plane %v: %w", PlaneNames[i], p, ErrDegeneratePlane)
		}
		if l := p.Normal.Length(); !math.IsZero(l - 1) {
			return fmt.Errorf("%s plane normal length %v: %w", PlaneNames[i], l, ErrDegeneratePlane)
		}
	}

	if f.farNearDistance == 0 {
		return ErrZeroFarNearDistance
	}

	if !f.BoundingBox.Min.IsFinite() || !f.BoundingBox.Max.IsFinite() {
		return fmt.Errorf("box %v: %w", f.BoundingBox, ErrNonFiniteBounds)
	}
	if !f.boundingCenter.IsFinite() || !math.IsFinite(f.boundingRadius) {
		return fmt.Errorf("sphere %v, %v: %w", f.boundingCenter, f.boundingRadius, ErrNonFiniteBounds)
	}

	return nil
}
