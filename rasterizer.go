// seehuhn.de/go/raster3d - a software triangle rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster3d

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DepthClear is the value used to clear depth buffers.  Depth values are
// in [0, 1] and smaller values are closer, so every fragment passes the
// depth test against a cleared buffer.
const DepthClear float32 = math32.MaxFloat32

// Errors returned by [Pipeline.Draw] when its preconditions are violated.
// Nothing is written to the target in this case.
var (
	ErrViewport   = errors.New("raster3d: invalid viewport")
	ErrBuffer     = errors.New("raster3d: buffer size does not match viewport")
	ErrAttributes = errors.New("raster3d: attribute count does not match vertex count")
	ErrIndex      = errors.New("raster3d: vertex index out of range")
	ErrShader     = errors.New("raster3d: missing shader")
)

// Target is a depth and colour buffer pair.
//
// Both buffers hold Width*Height entries.  The rasterizer stores raster row
// y at buffer row Height-1-y, so that buffer row 0 is the bottom row of
// the image, as expected by glDrawPixels-style consumers.  Colours are
// stored without alpha premultiplication.
type Target struct {
	Width, Height int
	Depth         []float32
	Color         []color.RGBA
}

// NewTarget allocates a target of the given size and clears it to
// [DepthClear] and opaque black.
func NewTarget(width, height int) *Target {
	n := max(width, 0) * max(height, 0)
	t := &Target{
		Width:  width,
		Height: height,
		Depth:  make([]float32, n),
		Color:  make([]color.RGBA, n),
	}
	t.Clear(DepthClear, color.RGBA{A: 255})
	return t
}

// Viewport returns the size of the target.
func (t *Target) Viewport() Viewport {
	return Viewport{Width: t.Width, Height: t.Height}
}

// Clear fills the depth buffer with depth and the colour buffer with c.
func (t *Target) Clear(depth float32, c color.RGBA) {
	for i := range t.Depth {
		t.Depth[i] = depth
	}
	for i := range t.Color {
		t.Color[i] = c
	}
}

// Image returns a copy of the colour buffer as an image, with the top row
// of the rendered scene at y=0.
func (t *Target) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	for row := range t.Height {
		src := t.Color[row*t.Width : (row+1)*t.Width]
		dst := img.Pix[(t.Height-1-row)*img.Stride:]
		for x, c := range src {
			dst[4*x] = c.R
			dst[4*x+1] = c.G
			dst[4*x+2] = c.B
			dst[4*x+3] = c.A
		}
	}
	return img
}

// Mesh is indexed triangle geometry with one attribute of type A per
// vertex.  Every index must be smaller than len(Vertices).
type Mesh[A any] struct {
	Vertices   []mgl32.Vec3
	Attributes []A
	Indices    [][3]uint32
}

// Stats counts the work done by a [Rasterizer].
type Stats struct {
	Triangles   int // index triples submitted
	Clipped     int // triangles which crossed a clipping plane pair
	Discarded   int // triangles entirely outside the view volume
	Culled      int // fan triangles rejected as back-facing or degenerate
	Rasterized  int // fan triangles which reached the pixel loop
	Fragments   int // fragments written
	DepthFailed int // covered pixels which failed the depth test
}

func (s *Stats) add(o Stats) {
	s.Triangles += o.Triangles
	s.Clipped += o.Clipped
	s.Discarded += o.Discarded
	s.Culled += o.Culled
	s.Rasterized += o.Rasterized
	s.Fragments += o.Fragments
	s.DepthFailed += o.DepthFailed
}

// Rasterizer holds the configuration and scratch state shared by draw
// calls.  Create one instance and reuse it for all draw calls of a frame.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Precision selects the triangle setup strategy.
	Precision Precision

	// FullViewport makes the pixel loop visit every pixel of the viewport
	// for every triangle, instead of only the triangle's bounding box.
	// The output is the same either way.
	FullViewport bool

	// Stats accumulates counters over all draw calls.  Reset it by
	// assigning the zero value.
	Stats Stats

	rec TriangleRecord
}

// NewRasterizer returns a Rasterizer using the floating-point setup.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{Precision: PrecisionFloat}
}

// Pipeline binds a vertex shader and a fragment shader.
// U is the uniform type, A the vertex attribute type and P the payload
// passed from the vertex stage to the fragment stage.
//
// Both shaders must be set, and shaders stored as pointers must not be
// nil.  A Pipeline is not safe for concurrent use.
type Pipeline[U, A any, P Varying[P]] struct {
	Vertex   VertexShader[U, A, P]
	Fragment FragmentShader[P]

	// outputs of the vertex stage, reused across calls
	clipPos  []mgl32.Vec4
	varyings []P
}

// Draw renders the mesh into t.
//
// The vertex shader runs once per vertex.  Each triangle is clipped
// against the view volume, split into a fan, set up and rasterized with a
// closer-or-equal depth test, so that among fragments of equal depth the
// last one drawn wins.  Only triangles which are counter-clockwise in clip
// space (clockwise in raster space) are drawn.
//
// An error is returned, and nothing is drawn, if the target buffers, the
// attributes or the indices do not match the mesh and viewport.
func (p *Pipeline[U, A, P]) Draw(r *Rasterizer, t *Target, m *Mesh[A], u *U) error {
	if err := p.check(t, m); err != nil {
		return err
	}
	vp := t.Viewport()
	setup := SetupFor(r.Precision)

	n := len(m.Vertices)
	p.clipPos = slices.Grow(p.clipPos[:0], n)[:n]
	p.varyings = slices.Grow(p.varyings[:0], n)[:n]
	for i, v := range m.Vertices {
		p.clipPos[i], p.varyings[i] = p.Vertex.ShadeVertex(u, v, m.Attributes[i])
	}

	var st Stats
	for _, idx := range m.Indices {
		st.Triangles++
		tri := Triangle{p.clipPos[idx[0]], p.clipPos[idx[1]], p.clipPos[idx[2]]}
		src := [3]P{p.varyings[idx[0]], p.varyings[idx[1]], p.varyings[idx[2]]}

		res := Clip(tri)
		if res.Clipped {
			st.Clipped++
		}
		if res.N < 3 {
			st.Discarded++
			continue
		}

		for fan := range res.Fan() {
			var sub Triangle
			var vary [3]P
			for k, vi := range fan {
				w := res.Weights(vi)
				sub[k] = tri.At(w)
				vary[k] = src[0].Combine(src[1], src[2], w)
			}
			if !setup.Setup(&r.rec, sub, vp) {
				st.Culled++
				continue
			}
			st.Rasterized++
			p.fill(&r.rec, setup, r.FullViewport, t, &vary, &st)
		}
	}
	r.Stats.add(st)

	Logger().Debug("draw",
		"precision", r.Precision,
		"triangles", st.Triangles,
		"clipped", st.Clipped,
		"discarded", st.Discarded,
		"culled", st.Culled,
		"fragments", st.Fragments)
	return nil
}

// fill runs the pixel loop for one set-up triangle.
func (p *Pipeline[U, A, P]) fill(rec *TriangleRecord, setup TriangleSetup, full bool, t *Target, vary *[3]P, st *Stats) {
	x0, y0, x1, y1 := 0, 0, t.Width, t.Height
	if !full {
		x0, y0 = int(rec.Bounds.LLx), int(rec.Bounds.LLy)
		x1, y1 = int(rec.Bounds.URx), int(rec.Bounds.URy)
	}

	for y := y0; y < y1; y++ {
		row := (t.Height - 1 - y) * t.Width
		for x := x0; x < x1; x++ {
			s, ok := setup.Cover(rec, x, y)
			if !ok {
				continue
			}
			idx := row + x
			if !(s.Z <= t.Depth[idx]) {
				st.DepthFailed++
				continue
			}
			t.Depth[idx] = s.Z

			// perspective-correct weights: λi/wi, normalized
			w := mgl32.Vec3{
				s.Lambda[0] * rec.OneOverW[0],
				s.Lambda[1] * rec.OneOverW[1],
				s.Lambda[2] * rec.OneOverW[2],
			}
			w = w.Mul(1 / (w[0] + w[1] + w[2]))

			in := FragmentInput[P]{
				Varying:   vary[0].Combine(vary[1], vary[2], w),
				FragCoord: mgl32.Vec4{float32(x) + 0.5, float32(y) + 0.5, s.Z, s.InvW},
			}
			t.Color[idx] = ToRGBA8(p.Fragment.ShadeFragment(in))
			st.Fragments++
		}
	}
}

func (p *Pipeline[U, A, P]) check(t *Target, m *Mesh[A]) error {
	if p.Vertex == nil || p.Fragment == nil {
		return ErrShader
	}
	if f, ok := p.Vertex.(VertexShaderFunc[U, A, P]); ok && f == nil {
		return ErrShader
	}
	if f, ok := p.Fragment.(FragmentShaderFunc[P]); ok && f == nil {
		return ErrShader
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrViewport, t.Width, t.Height)
	}
	n := t.Width * t.Height
	if len(t.Depth) != n || len(t.Color) != n {
		return fmt.Errorf("%w: depth %d, colour %d, want %d",
			ErrBuffer, len(t.Depth), len(t.Color), n)
	}
	if len(m.Attributes) != len(m.Vertices) {
		return fmt.Errorf("%w: %d attributes for %d vertices",
			ErrAttributes, len(m.Attributes), len(m.Vertices))
	}
	for i, idx := range m.Indices {
		for _, v := range idx {
			if int(v) >= len(m.Vertices) {
				return fmt.Errorf("%w: triangle %d uses vertex %d of %d",
					ErrIndex, i, v, len(m.Vertices))
			}
		}
	}
	return nil
}

// RasterizeIndexed renders indexed triangles into caller-owned depth and
// colour buffers, using the floating-point setup.  See [Pipeline.Draw] for
// details.
func RasterizeIndexed[U, A any, P Varying[P]](
	vp Viewport,
	vertices []mgl32.Vec3,
	attributes []A,
	indices [][3]uint32,
	uniforms *U,
	vs VertexShader[U, A, P],
	fs FragmentShader[P],
	depth []float32,
	colors []color.RGBA,
) error {
	t := &Target{Width: vp.Width, Height: vp.Height, Depth: depth, Color: colors}
	m := &Mesh[A]{Vertices: vertices, Attributes: attributes, Indices: indices}
	p := &Pipeline[U, A, P]{Vertex: vs, Fragment: fs}
	return p.Draw(NewRasterizer(), t, m, uniforms)
}

// ToRGBA8 converts a colour with channels in [0, 1] to 8 bits per channel.
// Values are clamped to [0, 1] and then truncated, so only 1.0 maps to 255.
func ToRGBA8(c mgl32.Vec4) color.RGBA {
	return color.RGBA{R: channel8(c[0]), G: channel8(c[1]), B: channel8(c[2]), A: channel8(c[3])}
}

func channel8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(255 * v)
}
