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
	"iter"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/vec"
)

// Triangle is a triangle in homogeneous clip space, as produced by the
// vertex stage.
type Triangle [3]mgl32.Vec4

// At returns the point with barycentric weights w.
func (tri Triangle) At(w mgl32.Vec3) mgl32.Vec4 {
	return tri[0].Mul(w[0]).Add(tri[1].Mul(w[1])).Add(tri[2].Mul(w[2]))
}

// MaxClipVertices is the capacity of a [ClipResult].  Each of the six
// clipping planes can add at most one vertex to a convex polygon, so a
// clipped triangle never has more than 3+6 vertices.
const MaxClipVertices = 9

// ClipResult describes the convex polygon left over after clipping a
// triangle against the view volume.
//
// The vertices are stored as coefficients (s, t) relative to the input
// triangle: vertex i is located at v0 + s·(v1-v0) + t·(v2-v0), where s is
// Coeffs[i].X and t is Coeffs[i].Y.  The same combination can be applied to
// any per-vertex attribute.
type ClipResult struct {
	Coeffs [MaxClipVertices]vec.Vec2
	N      int // number of polygon vertices, 0 if nothing is visible

	// Clipped is set if at least one pair of planes had to be tested.
	Clipped bool
}

// Weights returns the barycentric weights (1-s-t, s, t) of polygon vertex i.
func (c *ClipResult) Weights(i int) mgl32.Vec3 {
	s, t := c.Coeffs[i].X, c.Coeffs[i].Y
	return mgl32.Vec3{float32(1 - s - t), float32(s), float32(t)}
}

// Fan enumerates the polygon as a triangle fan around vertex 0.
// Each element holds three polygon vertex indices (0, i-1, i).
func (c *ClipResult) Fan() iter.Seq[[3]int] {
	return func(yield func([3]int) bool) {
		for i := 2; i < c.N; i++ {
			if !yield([3]int{0, i - 1, i}) {
				return
			}
		}
	}
}

func (c *ClipResult) add(p vec.Vec2) {
	if c.N < MaxClipVertices {
		c.Coeffs[c.N] = p
		c.N++
	}
}

// Plane identifies one of the six half-spaces bounding the view volume
// in clip space.
type Plane int

// The half-spaces, in the order they are applied by [Clip].
const (
	PlaneLeft   Plane = iota // w + x >= 0
	PlaneRight               // w - x >= 0
	PlaneBottom              // w + y >= 0
	PlaneTop                 // w - y >= 0
	PlaneNear                // w + z >= 0
	PlaneFar                 // w - z >= 0
)

// Distance returns the signed distance of v from the plane, up to a
// positive factor.  Points with non-negative distance are inside.
func (p Plane) Distance(v mgl32.Vec4) float64 {
	axis := int(p) / 2
	if p%2 == 0 {
		return float64(v[3]) + float64(v[axis])
	}
	return float64(v[3]) - float64(v[axis])
}

// Clip clips the triangle against the view volume |x|, |y|, |z| <= w.
//
// Clipping happens before the perspective divide, so vertices behind the
// camera (w <= 0) are handled correctly.  The result is empty if the
// triangle is entirely outside the view volume.
func Clip(tri Triangle) ClipResult {
	res := ClipResult{N: 3}
	res.Coeffs[1] = vec.Vec2{X: 1, Y: 0}
	res.Coeffs[2] = vec.Vec2{X: 0, Y: 1}

	var tmp ClipResult
	for axis := range 3 {
		if !needClipAxis(tri, axis) {
			continue
		}
		res.Clipped = true
		clipAgainstPlane(&tmp, &res, tri, Plane(2*axis))
		clipAgainstPlane(&res, &tmp, tri, Plane(2*axis+1))
		if res.N == 0 {
			break
		}
	}
	return res
}

// needClipAxis reports whether any vertex lies outside the slab
// -w <= v[axis] <= w.
func needClipAxis(tri Triangle, axis int) bool {
	for _, v := range tri {
		if v[3] < math32.Abs(v[axis]) {
			return true
		}
	}
	return false
}

// clipAgainstPlane runs one Sutherland-Hodgman pass over the polygon in,
// keeping the part on the inner side of p, and stores the result in out.
// Vertices on the plane count as inside.
func clipAgainstPlane(out, in *ClipResult, tri Triangle, p Plane) {
	out.N = 0
	out.Clipped = in.Clipped
	if in.N == 0 {
		return
	}

	// The distance is affine in the position, so it can be evaluated
	// directly on the coefficients.
	d0 := p.Distance(tri[0])
	d1 := p.Distance(tri[1]) - d0
	d2 := p.Distance(tri[2]) - d0
	dist := func(c vec.Vec2) float64 {
		return d0 + d1*c.X + d2*c.Y
	}

	a := in.Coeffs[in.N-1]
	da := dist(a)
	for i := range in.N {
		b := in.Coeffs[i]
		db := dist(b)
		if da*db < 0 {
			tb := da / (da - db)
			out.add(a.Mul(1 - tb).Add(b.Mul(tb)))
		}
		if db >= 0 {
			out.add(b)
		}
		a, da = b, db
	}
}
