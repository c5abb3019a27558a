package room

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Target is a floating cube the player can pick by looking at it.
type Target struct {
	Pos    mgl64.Vec3
	Color  [3]float32
	Phase  float64 // bob offset, radians
	Picked bool
}

var targetPalette = [...][3]float32{
	{0.93, 0.33, 0.29},
	{0.98, 0.75, 0.25},
	{0.36, 0.78, 0.42},
	{0.29, 0.56, 0.93},
	{0.67, 0.42, 0.89},
	{0.95, 0.55, 0.75},
}

// LayoutTargets spreads n targets along both side walls, alternating
// left and right from the near wall to the far wall.
func LayoutTargets(n int) []Target {
	ts := make([]Target, n)
	first, last := RoomNearZ+1, RoomFarZ-1
	for i := range ts {
		side := -1.0
		if i%2 == 1 {
			side = 1
		}
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		ts[i] = Target{
			Pos:   mgl64.Vec3{side * TargetOffset, 0, first + (last-first)*t},
			Color: targetPalette[i%len(targetPalette)],
			Phase: float64(i) * 1.7,
		}
	}
	return ts
}

// Model returns the target's world transform at time now, in seconds.
func (t Target) Model(now float64) mgl64.Mat4 {
	y := t.Pos.Y() + math.Sin(now*TargetBobSpeed+t.Phase)*TargetBobRange
	return mgl64.Translate3D(t.Pos.X(), y, t.Pos.Z()).
		Mul4(mgl64.Scale3D(TargetSize, TargetSize, TargetSize))
}

// RoomModel scales the unit cube to the room box.
func RoomModel() mgl64.Mat4 {
	return mgl64.Translate3D(0, FloorHeight+RoomHeight/2, (RoomNearZ+RoomFarZ)/2).
		Mul4(mgl64.Scale3D(2*RoomHalfWidth, RoomHeight, RoomFarZ-RoomNearZ))
}
