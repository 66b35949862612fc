package component

import "github.com/jakecoffman/cp"

// RigidBody links an entity to its Chipmunk2D body and shape. The space owns
// both; Force accumulates until the solver stage hands it to the body.
type RigidBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Static   bool
	Force    cp.Vector
}

// AddForce accumulates f for the current tick.
func (rb *RigidBody) AddForce(f cp.Vector) {
	rb.Force = rb.Force.Add(f)
}

// Position returns the body's center of mass in tile units.
func (rb *RigidBody) Position() cp.Vector {
	if rb == nil || rb.Body == nil {
		return cp.Vector{}
	}
	return rb.Body.Position()
}

func (rb *RigidBody) Velocity() cp.Vector {
	if rb == nil || rb.Body == nil {
		return cp.Vector{}
	}
	return rb.Body.Velocity()
}

// Bounds returns the axis-aligned box of the collider at its current pose.
// Static colliders report their shape's cached box.
func (rb *RigidBody) Bounds() cp.BB {
	if rb == nil {
		return cp.BB{}
	}
	if rb.Static && rb.Shape != nil {
		return rb.Shape.BB()
	}
	return cp.NewBBForExtents(rb.Position(), rb.Width/2, rb.Height/2)
}

var RigidBodyComponent = NewComponent[RigidBody]()
