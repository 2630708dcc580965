package quarkgl

import "math"

// NewSphereMesh builds a UV sphere centered at the origin.
func NewSphereMesh(radius Scalar, segU, segV int) Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 2 {
		segV = 2
	}

	verts := make([]Vertex, 0, segU*(segV+1))
	for v := 0; v <= segV; v++ {
		phi := math.Pi * float64(v) / float64(segV)
		sp, cp := math.Sincos(phi)
		for u := 0; u < segU; u++ {
			theta := 2 * math.Pi * float64(u) / float64(segU)
			st, ct := math.Sincos(theta)
			verts = append(verts, Vertex{Pos: V3From64(
				float64(radius)*sp*ct,
				float64(radius)*cp,
				float64(radius)*sp*st,
			)})
		}
	}

	idx := func(u, v int) uint16 {
		return uint16(v*segU + u%segU)
	}
	indices := make([]uint16, 0, segU*segV*6)
	for v := 0; v < segV; v++ {
		for u := 0; u < segU; u++ {
			i0 := idx(u, v)
			i1 := idx(u+1, v)
			i2 := idx(u+1, v+1)
			i3 := idx(u, v+1)
			indices = append(indices, i0, i1, i2, i0, i2, i3)
		}
	}

	return Mesh{Primitive: Triangles, Vertices: verts, Indices: indices}
}

// NewLineMesh builds a line list from segment endpoint pairs.
func NewLineMesh(segments [][2]Vec3, c Color) Mesh {
	verts := make([]Vertex, 0, len(segments)*2)
	indices := make([]uint16, 0, len(segments)*2)
	for _, s := range segments {
		n := uint16(len(verts))
		verts = append(verts, Vertex{Pos: s[0]}, Vertex{Pos: s[1]})
		indices = append(indices, n, n+1)
	}
	return Mesh{
		Primitive: Lines,
		Vertices:  verts,
		Indices:   indices,
		Material:  Material{BaseColor: c, Unlit: true},
	}
}
