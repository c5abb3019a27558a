package room

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeMesh(t *testing.T) {
	m := CubeMesh()
	if len(m) != 36*CubeFloatsPerVertex {
		t.Fatalf("%d floats, want %d", len(m), 36*CubeFloatsPerVertex)
	}
	for tri := 0; tri < 12; tri++ {
		var p [3]mgl32.Vec3
		for v := range p {
			o := (tri*3 + v) * CubeFloatsPerVertex
			p[v] = mgl32.Vec3{m[o], m[o+1], m[o+2]}
			for _, c := range p[v] {
				if c != 0.5 && c != -0.5 {
					t.Fatalf("triangle %d vertex %d off the unit cube: %v", tri, v, p[v])
				}
			}
		}
		o := tri * 3 * CubeFloatsPerVertex
		n := mgl32.Vec3{m[o+3], m[o+4], m[o+5]}
		face := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
		if face.Dot(n) <= 0 {
			t.Fatalf("triangle %d winds against its normal %v", tri, n)
		}
	}
}
