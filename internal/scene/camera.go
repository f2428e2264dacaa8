// Package scene turns a text layout into screen-space triangles: the line
// lies in a plane that spins about the vertical axis in front of a
// perspective camera.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes the fixed view of the spinning plane.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clip plane distances.
	Near, Far float32

	// Tilt rotates the scene about the X axis, in radians.
	Tilt float32

	// Offset moves the spinning plane away from the eye.
	Offset mgl32.Vec3
}

// DefaultCamera looks slightly down at a plane 1.75 units ahead.
func DefaultCamera() Camera {
	return Camera{
		FOV:    70,
		Near:   0.1,
		Far:    10,
		Tilt:   0.2,
		Offset: mgl32.Vec3{0, -0.35, -1.75},
	}
}

// Projection returns the perspective matrix for a viewport.
func (c Camera) Projection(vp Viewport) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), vp.Aspect(), c.Near, c.Far)
}

// Model returns the model-view matrix for a plane spun by angle radians.
func (c Camera) Model(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(c.Tilt).
		Mul4(mgl32.Translate3D(c.Offset.X(), c.Offset.Y(), c.Offset.Z())).
		Mul4(mgl32.HomogRotate3DY(angle))
}

// MVP returns Projection * Model.
func (c Camera) MVP(vp Viewport, angle float32) mgl32.Mat4 {
	return c.Projection(vp).Mul4(c.Model(angle))
}

// Viewport is the target surface size in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns Width / Height.
func (vp Viewport) Aspect() float32 {
	if vp.Height == 0 {
		return 1
	}
	return float32(vp.Width) / float32(vp.Height)
}

// ToScreen maps normalized device coordinates to pixels, Y down.
func (vp Viewport) ToScreen(ndc mgl32.Vec2) (x, y float32) {
	x = (ndc.X() + 1) / 2 * float32(vp.Width)
	y = (1 - ndc.Y()) / 2 * float32(vp.Height)
	return x, y
}
