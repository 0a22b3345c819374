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
	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/raster3d"
)

// Cube returns a cube with corners at ±1 and a different colour at each
// corner.  Faces are wound counter-clockwise when seen from outside.
func Cube() *raster3d.Mesh[mgl32.Vec3] {
	return &raster3d.Mesh[mgl32.Vec3]{
		Vertices: []mgl32.Vec3{
			{1, -1, -1},
			{1, -1, 1},
			{-1, -1, 1},
			{-1, -1, -1},
			{1, 1, -1},
			{1, 1, 1},
			{-1, 1, 1},
			{-1, 1, -1},
		},
		Attributes: []mgl32.Vec3{
			{0, 0, 0},
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{1, 0, 0},
			{1, 0, 1},
			{1, 1, 0},
			{1, 1, 1},
		},
		Indices: [][3]uint32{
			{1, 3, 0},
			{7, 5, 4},
			{4, 1, 0},
			{5, 2, 1},
			{2, 7, 3},
			{0, 7, 4},
			{1, 2, 3},
			{7, 6, 5},
			{4, 5, 1},
			{5, 6, 2},
			{2, 6, 7},
			{0, 3, 7},
		},
	}
}

// Quad returns a square of side 2·half in the z=0 plane, facing +z, in a
// single colour.
func Quad(half float32, col mgl32.Vec3) *raster3d.Mesh[mgl32.Vec3] {
	return &raster3d.Mesh[mgl32.Vec3]{
		Vertices: []mgl32.Vec3{
			{-half, -half, 0},
			{half, -half, 0},
			{half, half, 0},
			{-half, half, 0},
		},
		Attributes: []mgl32.Vec3{col, col, col, col},
		Indices:    [][3]uint32{{0, 1, 2}, {0, 2, 3}},
	}
}

// TexturedQuad returns a square of side 2·half in the z=0 plane, facing +z,
// with texture coordinates running from (0, 0) to (n, n).
func TexturedQuad(half, n float32) *raster3d.Mesh[mgl32.Vec2] {
	return &raster3d.Mesh[mgl32.Vec2]{
		Vertices: []mgl32.Vec3{
			{-half, -half, 0},
			{half, -half, 0},
			{half, half, 0},
			{-half, half, 0},
		},
		Attributes: []mgl32.Vec2{{0, 0}, {n, 0}, {n, n}, {0, n}},
		Indices:    [][3]uint32{{0, 1, 2}, {0, 2, 3}},
	}
}

// Floor returns a textured quad in the y=0 plane, facing +y.
func Floor(half, n float32) *raster3d.Mesh[mgl32.Vec2] {
	m := TexturedQuad(half, n)
	for i, v := range m.Vertices {
		m.Vertices[i] = mgl32.Vec3{v[0], 0, -v[1]}
	}
	return m
}

// demoTransforms places the four cubes of the demo scene.
func demoTransforms() []mgl32.Mat4 {
	m0 := mgl32.Translate3D(0, 0, 2).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45)))
	m1 := mgl32.Translate3D(-3.75, 0, 0).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30)))
	m2 := mgl32.Translate3D(3.75, 0, 0).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(60)))
	m3 := mgl32.Translate3D(0, 0, -2).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)))
	return []mgl32.Mat4{m0, m1, m2, m3}
}

// demoFrame is the camera of the demo scene.
func demoFrame() Frame {
	return Frame{
		Eye:    mgl32.Vec3{0, 3.75, 6.5},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   60,
		Near:   0.1,
		Far:    100,
	}
}

func orbited(f Frame, deg float32) Frame {
	f.OrbitY(deg)
	return f
}

func lookAt(eye, center mgl32.Vec3) Frame {
	f := demoFrame()
	f.Eye = eye
	f.Center = center
	return f
}

func cubes(models ...mgl32.Mat4) []Object[mgl32.Vec3] {
	var objs []Object[mgl32.Vec3]
	for _, m := range models {
		objs = append(objs, Object[mgl32.Vec3]{Mesh: Cube(), Model: m})
	}
	return objs
}
