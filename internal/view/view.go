// Package view shows the spinning line in an ebiten window.
package view

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/spintext"
	"github.com/gogpu/spintext/internal/scene"
	"github.com/gogpu/spintext/text"
)

// Title is the window title.
const Title = "spinning hello world"

// Options configures the window and the displayed line.
type Options struct {
	Text          string
	Size          float32
	Width, Height int
}

// Game implements ebiten.Game.
type Game struct {
	opts    Options
	atlas   *text.Atlas
	frame   *scene.Frame
	spinner *scene.Spinner

	img      *ebiten.Image
	vertices []ebiten.Vertex
	viewport scene.Viewport
	frames   uint64
}

// New creates a game drawing opts.Text from a.
func New(a *text.Atlas, opts Options) *Game {
	return &Game{
		opts:     opts,
		atlas:    a,
		frame:    scene.NewFrame(a, scene.DefaultCamera()),
		spinner:  scene.NewSpinner(time.Now()),
		viewport: scene.Viewport{Width: opts.Width, Height: opts.Height},
	}
}

// Update advances the rotation. It ends the game when the window is
// closed or Escape is pressed.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.spinner.Advance(time.Now())
	return nil
}

// Draw clears to black and draws the projected glyph quads.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.img == nil {
		// Alpha coverage converts to premultiplied white.
		g.img = ebiten.NewImageFromImage(g.atlas.Bitmap)
	}

	mesh := g.frame.Build(g.opts.Text, g.opts.Size, g.viewport, g.spinner.Angle())
	if mesh.Len() == 0 {
		return
	}
	g.vertices = appendVertices(g.vertices[:0], mesh, float32(g.atlas.Size))
	screen.DrawTriangles(g.vertices, mesh.Indices, g.img, &ebiten.DrawTrianglesOptions{
		Filter: ebiten.FilterLinear,
	})
	g.frames++
}

// Layout keeps the logical screen equal to the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport = scene.Viewport{Width: outsideWidth, Height: outsideHeight}
	return outsideWidth, outsideHeight
}

// appendVertices converts mesh vertices to ebiten vertices. Texture
// coordinates become atlas pixels; color is opaque white.
func appendVertices(dst []ebiten.Vertex, m *scene.Mesh, atlasSize float32) []ebiten.Vertex {
	for _, v := range m.Vertices {
		dst = append(dst, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   v.S * atlasSize,
			SrcY:   v.T * atlasSize,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	return dst
}

// Run opens the window and blocks until it is closed.
func Run(a *text.Atlas, opts Options) error {
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	g := New(a, opts)
	log := spintext.Logger()
	log.Info("view: window opened", "width", opts.Width, "height", opts.Height, "text", opts.Text)
	start := time.Now()

	err := ebiten.RunGame(g)

	stats := g.frame.CacheStats()
	log.Info("view: window closed",
		"frames", g.frames,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"layoutHits", stats.Hits,
		"layoutMisses", stats.Misses)
	return err
}
