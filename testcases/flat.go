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

package testcases

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster3d"
)

// Shape is the visible outline of a single-coloured object, as a set of
// front-facing triangles in normalized device coordinates.
type Shape struct {
	Triangles [][3]vec.Vec2
	Color     mgl32.Vec3

	depth float32
}

// Shapes projects the objects of s and returns them in painting order,
// back to front by the depth of each object's origin.  Objects at equal
// depth keep their drawing order.  The second return value is false if an
// object has more than one colour.
//
// Painting the shapes in order reproduces the rasterized image only if no
// two objects intersect.  Triangles are clipped against the view volume
// in the same way as by [raster3d.Pipeline].
func (s *ColorScene) Shapes(f *Frame, vp raster3d.Viewport) ([]Shape, bool) {
	var shapes []Shape
	for _, obj := range s.Objects {
		m := obj.Mesh
		if len(m.Attributes) == 0 {
			continue
		}
		col := m.Attributes[0]
		for _, a := range m.Attributes[1:] {
			if a != col {
				return nil, false
			}
		}

		mvp := f.MVP(obj.Model, vp)
		origin := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		sh := Shape{Color: col, depth: origin[2] / origin[3]}
		for _, idx := range m.Indices {
			var tri raster3d.Triangle
			for k, i := range idx {
				tri[k] = mvp.Mul4x1(m.Vertices[i].Vec4(1))
			}
			res := raster3d.Clip(tri)
			for fan := range res.Fan() {
				var pts [3]vec.Vec2
				for k, vi := range fan {
					v := tri.At(res.Weights(vi))
					pts[k] = vec.Vec2{X: float64(v[0] / v[3]), Y: float64(v[1] / v[3])}
				}
				if area2(pts) > 0 {
					sh.Triangles = append(sh.Triangles, pts)
				}
			}
		}
		shapes = append(shapes, sh)
	}

	slices.SortStableFunc(shapes, func(a, b Shape) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return shapes, true
}

// area2 returns twice the signed area of a triangle.  The result is
// positive for counter-clockwise triangles.
func area2(p [3]vec.Vec2) float64 {
	return (p[1].X-p[0].X)*(p[2].Y-p[0].Y) - (p[2].X-p[0].X)*(p[1].Y-p[0].Y)
}
