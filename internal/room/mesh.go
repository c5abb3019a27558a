package room

// CubeFloatsPerVertex is position (3) followed by normal (3).
const CubeFloatsPerVertex = 6

var cubeFaces = [6]struct {
	normal [3]float32
	u, v   [3]float32 // in-plane axes, u × v = normal
}{
	{[3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
	{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
	{[3]float32{0, 1, 0}, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}},
	{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{0, 0, -1}, [3]float32{0, 1, 0}, [3]float32{1, 0, 0}},
}

// CubeMesh returns a unit cube centred on the origin as 36 counter-clockwise
// triangle vertices.
func CubeMesh() []float32 {
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	buf := make([]float32, 0, 36*CubeFloatsPerVertex)
	for _, f := range cubeFaces {
		for _, c := range corners {
			for k := 0; k < 3; k++ {
				buf = append(buf, 0.5*(f.normal[k]+c[0]*f.u[k]+c[1]*f.v[k]))
			}
			buf = append(buf, f.normal[:]...)
		}
	}
	return buf
}
