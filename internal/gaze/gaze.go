// Package gaze decides which target the player is looking at.
package gaze

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AngleLimit is the widest angle, in radians, between the line of sight and
// a target's centre that still counts as looking at it.
const AngleLimit = 0.2

var forward = mgl64.Vec3{0, 0, -1}

// AngleTo returns the angle between the eye-space line of sight and the
// origin of model, seen through headView.
func AngleTo(headView, model mgl64.Mat4) float64 {
	p := headView.Mul4(model).Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	n := p.Len()
	if n == 0 {
		return math.Pi
	}
	cos := mgl64.Clamp(p.Dot(forward)/n, -1, 1)
	return math.Acos(cos)
}

func IsLookingAt(headView, model mgl64.Mat4, limit float64) bool {
	return AngleTo(headView, model) < limit
}

// Nearest returns the index of the model closest to the line of sight, if
// any lies within limit.
func Nearest(headView mgl64.Mat4, models []mgl64.Mat4, limit float64) (int, bool) {
	best, bestAngle := -1, limit
	for i, m := range models {
		if a := AngleTo(headView, m); a < bestAngle {
			best, bestAngle = i, a
		}
	}
	return best, best >= 0
}
