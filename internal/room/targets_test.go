package room

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"lookandpick/internal/locomotion"
)

func TestLayoutTargetsStayInsideTheRoom(t *testing.T) {
	ts := LayoutTargets(TargetCount)
	if len(ts) != TargetCount {
		t.Fatalf("%d targets, want %d", len(ts), TargetCount)
	}
	for i, tg := range ts {
		p := tg.Pos
		if math.Abs(p.X()) >= RoomHalfWidth || p.Z() <= RoomNearZ || p.Z() >= RoomFarZ {
			t.Errorf("target %d at %v outside the room", i, p)
		}
		if i > 0 && math.Signbit(p.X()) == math.Signbit(ts[i-1].Pos.X()) {
			t.Errorf("targets %d and %d on the same wall", i-1, i)
		}
	}
	if one := LayoutTargets(1); len(one) != 1 {
		t.Fatalf("LayoutTargets(1) returned %d targets", len(one))
	}
}

func TestTargetBob(t *testing.T) {
	tg := LayoutTargets(1)[0]
	for _, now := range []float64{0, 0.4, 1.1, 7.3} {
		y := tg.Model(now).Col(3).Y()
		if math.Abs(y-tg.Pos.Y()) > TargetBobRange+1e-12 {
			t.Fatalf("t=%v: bob %v exceeds range", now, y-tg.Pos.Y())
		}
	}
}

func TestLocomotionBoundsFitTheRoom(t *testing.T) {
	cfg := locomotion.DefaultConfig()
	if cfg.BoundAhead <= RoomNearZ || cfg.BoundBehind >= RoomFarZ {
		t.Fatalf("bounds [%v, %v] reach the walls [%v, %v]", cfg.BoundAhead, cfg.BoundBehind, RoomNearZ, RoomFarZ)
	}
	room := RoomModel()
	near := room.Mul4x1(mgl64.Vec4{0, 0, -0.5, 1}).Z()
	far := room.Mul4x1(mgl64.Vec4{0, 0, 0.5, 1}).Z()
	if math.Abs(near-RoomNearZ) > 1e-12 || math.Abs(far-RoomFarZ) > 1e-12 {
		t.Fatalf("room model spans [%v, %v]", near, far)
	}
}

func TestCameraView(t *testing.T) {
	c := Camera{EyeZ: 2.5}
	p := c.View().Mul4x1(mgl64.Vec4{0, 0, 1.5, 1}).Vec3()
	if !near(p, mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("point one unit ahead of the eye maps to %v", p)
	}
}

func TestProjection(t *testing.T) {
	wide := Projection(1600, 800)
	square := Projection(0, 0)
	if wide[0] >= square[0] {
		t.Fatalf("wide framebuffer did not narrow the x scale: %v vs %v", wide[0], square[0])
	}
	if math.Abs(wide[5]-square[5]) > 1e-12 {
		t.Fatalf("vertical field of view changed with aspect")
	}
}
