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
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Viewport is the size of the render target in pixels.
type Viewport struct {
	Width, Height int
}

// Rect returns the viewport as a rectangle in raster coordinates.
func (vp Viewport) Rect() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(vp.Width), URy: float64(vp.Height)}
}

// Transform returns the map from normalized device coordinates to raster
// coordinates: x_r = (1+x)·W/2 and y_r = (1-y)·H/2.  Raster y grows
// downwards.
func (vp Viewport) Transform() matrix.Matrix {
	w := float64(vp.Width) / 2
	h := float64(vp.Height) / 2
	return matrix.Matrix{w, 0, 0, -h, w, h}
}

// TriangleRecord holds the per-triangle quantities computed by a
// [TriangleSetup] before the pixel loop runs.
//
// The record is filled in by Setup and is read-only afterwards.
type TriangleRecord struct {
	// Area is twice the signed area of the triangle in raster space.
	// Only triangles with negative area are rasterized.
	Area float32

	// Edges holds one edge function per row.  For a raster position p =
	// (x, y, 1), Edges.Row(i).Dot(p)/Area is the screen-space barycentric
	// coordinate of p with respect to vertex i.
	Edges mgl32.Mat3

	// InterpolatedZ is the depth of each vertex, remapped from [-1, 1] to
	// [0, 1].
	InterpolatedZ mgl32.Vec3

	// OneOverW is the reciprocal of each vertex's clip-space w.
	OneOverW mgl32.Vec3

	// ZPlane and WPlane interpolate depth and 1/w linearly in raster
	// space: z(p) = ZPlane.Dot(p) and 1/w(p) = WPlane.Dot(p).
	ZPlane, WPlane mgl32.Vec3

	// Bounds is the pixel range touched by the triangle, clamped to the
	// viewport.  All coordinates are integers.
	Bounds rect.Rect

	fixed fixedRecord
}

// Sample is the result of evaluating a triangle at a pixel centre.
type Sample struct {
	// Lambda holds the screen-space barycentric coordinates.
	Lambda mgl32.Vec3

	Z    float32 // depth in [0, 1], smaller is closer
	InvW float32 // interpolated 1/w
}

// TriangleSetup is a strategy for the per-triangle setup and the per-pixel
// coverage test.
type TriangleSetup interface {
	// Setup fills rec for the clip-space triangle tri.  It returns false if
	// the triangle is back-facing or degenerate and must be skipped.
	Setup(rec *TriangleRecord, tri Triangle, vp Viewport) bool

	// Cover evaluates the triangle at the centre of pixel (x, y), where y
	// counts raster rows from the top.  The second return value reports
	// whether the pixel centre is covered.
	Cover(rec *TriangleRecord, x, y int) (Sample, bool)
}

// Precision selects a [TriangleSetup] strategy.
type Precision int

const (
	// PrecisionFloat evaluates edge functions in float32 arithmetic.
	PrecisionFloat Precision = iota

	// PrecisionFixed snaps vertices to a sub-pixel grid and evaluates edge
	// functions in exact integer arithmetic.
	PrecisionFixed
)

func (p Precision) String() string {
	switch p {
	case PrecisionFloat:
		return "float"
	case PrecisionFixed:
		return "fixed"
	default:
		return "invalid"
	}
}

// SetupFor returns the setup strategy for the given precision.
func SetupFor(p Precision) TriangleSetup {
	if p == PrecisionFixed {
		return FixedSetup{}
	}
	return FloatSetup{}
}

// maxRasterCoord bounds the raster coordinates accepted by the setup
// strategies.  It keeps all fixed-point products within int64.
const maxRasterCoord = 1 << 20

// prepare converts the vertices of tri to raster space and fills in the
// fields of rec which are shared by all strategies.  It returns false for
// vertices on or behind the eye plane and for non-finite coordinates.
func (rec *TriangleRecord) prepare(tri Triangle, vp Viewport) (pts [3][2]float32, ok bool) {
	rec.Area = 0
	m := vp.Transform()
	for i, v := range tri {
		if !(v[3] > 0) {
			return pts, false
		}
		nx := float64(v[0]) / float64(v[3])
		ny := float64(v[1]) / float64(v[3])
		x := float32(m[0]*nx + m[2]*ny + m[4])
		y := float32(m[1]*nx + m[3]*ny + m[5])
		if !finite(x) || !finite(y) || math32.Abs(x) > maxRasterCoord || math32.Abs(y) > maxRasterCoord {
			return pts, false
		}
		pts[i] = [2]float32{x, y}
		rec.InterpolatedZ[i] = normalizeDepth(v)
		rec.OneOverW[i] = 1 / v[3]
	}

	xMin := min(pts[0][0], pts[1][0], pts[2][0])
	xMax := max(pts[0][0], pts[1][0], pts[2][0])
	yMin := min(pts[0][1], pts[1][1], pts[2][1])
	yMax := max(pts[0][1], pts[1][1], pts[2][1])
	rec.Bounds = clampRect(rect.Rect{
		LLx: float64(math32.Floor(xMin)),
		LLy: float64(math32.Floor(yMin)),
		URx: float64(math32.Ceil(xMax)),
		URy: float64(math32.Ceil(yMax)),
	}, vp.Rect())
	return pts, true
}

// planes derives ZPlane and WPlane from Edges and Area.
func (rec *TriangleRecord) planes() {
	invT := rec.Edges.Mul(1 / rec.Area).Transpose()
	rec.ZPlane = invT.Mul3x1(rec.InterpolatedZ)
	rec.WPlane = invT.Mul3x1(rec.OneOverW)
}

// normalizeDepth maps z/w from [-1, 1] to [0, 1].
func normalizeDepth(v mgl32.Vec4) float32 {
	return (1 + v[2]/v[3]) * 0.5
}

// FloatSetup is the floating-point triangle setup.
type FloatSetup struct{}

// Setup implements [TriangleSetup].
func (FloatSetup) Setup(rec *TriangleRecord, tri Triangle, vp Viewport) bool {
	pts, ok := rec.prepare(tri, vp)
	if !ok {
		return false
	}

	m := mgl32.Mat3FromCols(
		mgl32.Vec3{pts[0][0], pts[0][1], 1},
		mgl32.Vec3{pts[1][0], pts[1][1], 1},
		mgl32.Vec3{pts[2][0], pts[2][1], 1},
	)
	rec.Area = m.Det()
	if !(rec.Area < 0) {
		// back-facing or degenerate
		return false
	}
	rec.Edges = adjugate(m)
	rec.planes()
	return true
}

// Cover implements [TriangleSetup].
func (FloatSetup) Cover(rec *TriangleRecord, x, y int) (Sample, bool) {
	p := mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, 1}
	e := rec.Edges.Mul3x1(p)

	// Area is negative, so inside points have non-positive edge values.
	if e[0] > 0 || e[1] > 0 || e[2] > 0 {
		return Sample{}, false
	}
	return Sample{
		Lambda: e.Mul(1 / rec.Area),
		Z:      rec.ZPlane.Dot(p),
		InvW:   rec.WPlane.Dot(p),
	}, true
}

// adjugate returns the adjugate of m.  Row i is the cross product of the
// two columns other than i, so that adjugate(m)·m = det(m)·I.
func adjugate(m mgl32.Mat3) mgl32.Mat3 {
	c0, c1, c2 := m.Col(0), m.Col(1), m.Col(2)
	return mgl32.Mat3FromRows(c1.Cross(c2), c2.Cross(c0), c0.Cross(c1))
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

// clampRect intersects r with view.  If the intersection is empty, the
// result has zero width or height and lies on the boundary of view.
func clampRect(r, view rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(max(r.LLx, view.LLx), view.URx),
		LLy: min(max(r.LLy, view.LLy), view.URy),
		URx: max(min(r.URx, view.URx), view.LLx),
		URy: max(min(r.URy, view.URy), view.LLy),
	}
}
