package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/spintext/text"
)

// MaxQuads is the largest number of quads a Mesh can index with uint16.
const MaxQuads = (1 << 16) / 4

// Vertex is one projected corner of a glyph quad.
type Vertex struct {
	// X and Y are screen pixels, origin top-left.
	X, Y float32

	// S and T are normalized atlas coordinates.
	S, T float32
}

// Mesh is an indexed triangle list, two triangles per glyph.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Len returns the number of quads in the mesh.
func (m *Mesh) Len() int {
	return len(m.Vertices) / 4
}

// Reset empties the mesh, keeping its storage.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Project transforms every quad of l into screen space.
//
// Layout coordinates are first divided by the viewport size, so a layout
// as wide as the viewport spans one unit of the spinning plane. Quads
// with no area or with a corner behind the eye are skipped.
func Project(l text.Layout, cam Camera, vp Viewport, angle float32) Mesh {
	var m Mesh
	m.Append(l, cam, vp, angle)
	return m
}

// Append projects l like Project and adds the quads to m.
func (m *Mesh) Append(l text.Layout, cam Camera, vp Viewport, angle float32) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	mvp := cam.MVP(vp, angle)
	sx, sy := 1/float32(vp.Width), 1/float32(vp.Height)

	for _, q := range l.Quads {
		if q.X1 <= q.X0 || q.Y1 <= q.Y0 {
			continue
		}
		if m.Len() >= MaxQuads {
			return
		}

		// Bottom-left, bottom-right, top-right, top-left.
		corners := [4]Vertex{
			{X: q.X0, Y: q.Y0, S: q.S0, T: q.T1},
			{X: q.X1, Y: q.Y0, S: q.S1, T: q.T1},
			{X: q.X1, Y: q.Y1, S: q.S1, T: q.T0},
			{X: q.X0, Y: q.Y1, S: q.S0, T: q.T0},
		}
		var out [4]Vertex
		visible := true
		for i, c := range corners {
			clip := mvp.Mul4x1(mgl32.Vec4{c.X * sx, c.Y * sy, 0, 1})
			if clip.W() <= 0 {
				visible = false
				break
			}
			ndc := mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
			out[i].X, out[i].Y = vp.ToScreen(ndc)
			out[i].S, out[i].T = c.S, c.T
		}
		if !visible {
			continue
		}

		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices, out[:]...)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
}
