package gaze

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAngleTo(t *testing.T) {
	ident := mgl64.Ident4()
	tests := []struct {
		name  string
		view  mgl64.Mat4
		model mgl64.Mat4
		want  float64
	}{
		{"straight ahead", ident, mgl64.Translate3D(0, 0, -3), 0},
		{"directly behind", ident, mgl64.Translate3D(0, 0, 3), math.Pi},
		{"to the right", ident, mgl64.Translate3D(3, 0, 0), math.Pi / 2},
		{"at the eye", ident, ident, math.Pi},
		{"head turned toward it", mgl64.HomogRotate3DY(math.Pi / 2), mgl64.Translate3D(3, 0, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleTo(tt.view, tt.model)
			if math.Abs(got-tt.want) > 1e-7 {
				t.Fatalf("AngleTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLookingAt(t *testing.T) {
	ident := mgl64.Ident4()
	// 0.1 rad off axis at distance 3.
	near := mgl64.Translate3D(3*math.Tan(0.1), 0, -3)
	far := mgl64.Translate3D(3*math.Tan(0.3), 0, -3)

	if !IsLookingAt(ident, near, AngleLimit) {
		t.Errorf("target 0.1 rad off axis not looked at")
	}
	if IsLookingAt(ident, far, AngleLimit) {
		t.Errorf("target 0.3 rad off axis looked at")
	}
}

func TestNearest(t *testing.T) {
	ident := mgl64.Ident4()
	models := []mgl64.Mat4{
		mgl64.Translate3D(3*math.Tan(0.15), 0, -3),
		mgl64.Translate3D(0, 3*math.Tan(0.05), -3),
		mgl64.Translate3D(0, 0, 3),
	}
	i, ok := Nearest(ident, models, AngleLimit)
	if !ok || i != 1 {
		t.Fatalf("Nearest = %d, %v; want 1, true", i, ok)
	}

	if _, ok := Nearest(ident, models[2:], AngleLimit); ok {
		t.Fatalf("Nearest found a target behind the viewer")
	}
	if _, ok := Nearest(ident, nil, AngleLimit); ok {
		t.Fatalf("Nearest found a target in an empty set")
	}
}
