package room

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"lookandpick/internal/gaze"
	"lookandpick/internal/locomotion"
)

func near(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestForward(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		want       mgl64.Vec3
	}{
		{"start", 0, 0, mgl64.Vec3{0, 0, -1}},
		{"turned right", math.Pi / 2, 0, mgl64.Vec3{1, 0, 0}},
		{"turned around", math.Pi, 0, mgl64.Vec3{0, 0, 1}},
		{"looking up", 0, math.Pi / 2, mgl64.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HeadTracker{Yaw: tt.yaw, Pitch: tt.pitch}
			if got := h.Forward(); !near(got, tt.want) {
				t.Fatalf("Forward() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookClampsPitchAndWrapsYaw(t *testing.T) {
	var h HeadTracker
	h.Look(0, -1e6)
	if want := mgl64.DegToRad(MaxHeadPitch); h.Pitch != want {
		t.Fatalf("pitch %v, want clamp at %v", h.Pitch, want)
	}
	h.Look(math.Pi*1.5/MouseSensitivity, 0)
	if h.Yaw <= -math.Pi || h.Yaw > math.Pi {
		t.Fatalf("yaw %v outside (-π, π]", h.Yaw)
	}
	if !mgl64.FloatEqualThreshold(h.Yaw, -math.Pi/2, 1e-9) {
		t.Fatalf("yaw %v, want %v", h.Yaw, -math.Pi/2)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
		{-7 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := wrapAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, v := range []float64{math.Inf(1), math.Inf(-1)} {
		if got := wrapAngle(v); got != v {
			t.Errorf("wrapAngle(%v) = %v, want it unchanged", v, got)
		}
	}
	if got := wrapAngle(math.NaN()); !math.IsNaN(got) {
		t.Errorf("wrapAngle(NaN) = %v", got)
	}
	if got := wrapAngle(1e300); got <= -math.Pi || got > math.Pi {
		t.Errorf("wrapAngle(1e300) = %v outside (-π, π]", got)
	}
}

func TestLookDownTiltsPitchNegative(t *testing.T) {
	var h HeadTracker
	h.Look(0, 100)
	if h.Pitch >= 0 {
		t.Fatalf("moving the cursor down gave pitch %v", h.Pitch)
	}
	if h.Forward().Y() >= 0 {
		t.Fatalf("looking down but forward %v points up", h.Forward())
	}
}

func TestFaceRoundTrip(t *testing.T) {
	dirs := []mgl64.Vec3{
		{0, 0, -1},
		{1, 0.2, 0.5},
		{-0.3, -0.7, 2},
	}
	for _, d := range dirs {
		var h HeadTracker
		h.Face(d)
		if got := h.Forward(); !near(got, d.Normalize()) {
			t.Errorf("Face(%v) then Forward() = %v", d, got)
		}
	}
}

func TestHeadViewLooksAlongForward(t *testing.T) {
	h := HeadTracker{Yaw: 0.8, Pitch: -0.3}
	target := mgl64.Translate3D(h.Forward().Mul(3).Elem())
	if a := gaze.AngleTo(h.View(), target); a > 1e-6 {
		t.Fatalf("angle to a point straight ahead is %v", a)
	}
}

func TestSampleClassifiesLikeTheHeadset(t *testing.T) {
	cfg := locomotion.DefaultConfig()
	h := HeadTracker{Yaw: 0, Pitch: mgl64.DegToRad(-40)}
	s := h.Sample()
	if got := cfg.OrientationOf(s.Forward.Z()); got != locomotion.OrientationAhead {
		t.Fatalf("orientation %v, want ahead", got)
	}
	if got := cfg.DirectionOf(s.Euler[0]); got != locomotion.DirectionForward {
		t.Fatalf("direction %v, want forward", got)
	}
}
