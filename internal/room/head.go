package room

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"lookandpick/internal/locomotion"
)

// HeadTracker stands in for the headset's orientation sensor on desktop.
// Yaw 0 faces the near wall (-Z) and grows to the right; positive pitch
// looks up.
type HeadTracker struct {
	Yaw, Pitch float64 // radians
}

// Look turns the head by a cursor movement in window pixels.
func (h *HeadTracker) Look(dx, dy float64) {
	h.Yaw = wrapAngle(h.Yaw + dx*MouseSensitivity)
	lim := mgl64.DegToRad(MaxHeadPitch)
	h.Pitch = clampF(h.Pitch-dy*MouseSensitivity, -lim, lim)
}

// Face points the head along dir.
func (h *HeadTracker) Face(dir mgl64.Vec3) {
	h.Yaw = math.Atan2(dir.X(), -dir.Z())
	h.Pitch = math.Atan2(dir.Y(), math.Hypot(dir.X(), dir.Z()))
}

func (h *HeadTracker) Recenter() { *h = HeadTracker{} }

// Forward returns the unit vector the head points along.
func (h HeadTracker) Forward() mgl64.Vec3 {
	cp := math.Cos(h.Pitch)
	return mgl64.Vec3{math.Sin(h.Yaw) * cp, math.Sin(h.Pitch), -math.Cos(h.Yaw) * cp}
}

// Sample packs the current orientation the way the headset reports it.
func (h HeadTracker) Sample() locomotion.Sample {
	return locomotion.Sample{
		Euler:   mgl64.Vec3{h.Pitch, h.Yaw, 0},
		Forward: h.Forward(),
	}
}

// View is the head rotation applied after the camera transform.
func (h HeadTracker) View() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(-h.Pitch).Mul4(mgl64.HomogRotate3DY(h.Yaw))
}
