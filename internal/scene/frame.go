package scene

import (
	"github.com/gogpu/spintext/internal/cache"
	"github.com/gogpu/spintext/text"
)

// layoutKey identifies one laid-out line.
type layoutKey struct {
	s    string
	size float32
}

// layoutCacheSize bounds the number of distinct lines kept.
const layoutCacheSize = 16

// Frame builds the mesh for each displayed frame. Layouts are cached per
// (string, size), so only the projection runs when the text is unchanged.
type Frame struct {
	Atlas  *text.Atlas
	Camera Camera

	layouts *cache.Cache[layoutKey, text.Layout]
	mesh    Mesh
}

// NewFrame creates a frame builder for a baked atlas.
func NewFrame(a *text.Atlas, cam Camera) *Frame {
	return &Frame{
		Atlas:   a,
		Camera:  cam,
		layouts: cache.New[layoutKey, text.Layout](layoutCacheSize),
	}
}

// Layout returns the cached layout of s at size pixels.
func (f *Frame) Layout(s string, size float32) text.Layout {
	return f.layouts.GetOrCreate(layoutKey{s, size}, func() text.Layout {
		return text.LayoutString(f.Atlas, s, size)
	})
}

// Build lays out s and projects it for the viewport at angle. The
// returned mesh is reused by the next call.
func (f *Frame) Build(s string, size float32, vp Viewport, angle float32) *Mesh {
	f.mesh.Reset()
	f.mesh.Append(f.Layout(s, size), f.Camera, vp, angle)
	return &f.mesh
}

// CacheStats reports layout cache usage.
func (f *Frame) CacheStats() cache.Stats {
	return f.layouts.Stats()
}
