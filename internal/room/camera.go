package room

import "github.com/go-gl/mathgl/mgl64"

// Camera carries the eye offset along the room's Z axis produced by the
// locomotion controller.
type Camera struct {
	EyeZ float64
}

func (c Camera) Eye() mgl64.Vec3 { return mgl64.Vec3{0, 0, c.EyeZ} }

// View looks down -Z from the eye; the head rotation is applied on top.
func (c Camera) View() mgl64.Mat4 {
	eye := c.Eye()
	return mgl64.LookAtV(eye, eye.Add(mgl64.Vec3{0, 0, -1}), mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a framebuffer.
func Projection(fbW, fbH int) mgl64.Mat4 {
	aspect := 1.0
	if fbW > 0 && fbH > 0 {
		aspect = float64(fbW) / float64(fbH)
	}
	return mgl64.Perspective(mgl64.DegToRad(FieldOfView), aspect, ZNear, ZFar)
}
