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

import "github.com/go-gl/mathgl/mgl32"

// Varying is the constraint for the payload passed from the vertex stage
// to the fragment stage.  Combine returns w[0]·self + w[1]·b + w[2]·c; it is
// used both to rebuild attributes at clipped vertices and for
// perspective-correct interpolation across a triangle.
type Varying[P any] interface {
	Combine(b, c P, w mgl32.Vec3) P
}

// VertexShader transforms a vertex with uniform data U and attribute A into
// a clip-space position and a payload P.
type VertexShader[U, A any, P Varying[P]] interface {
	ShadeVertex(u *U, pos mgl32.Vec3, attr A) (mgl32.Vec4, P)
}

// FragmentShader computes the colour of a fragment.  The result is RGBA
// with channels in [0, 1].
type FragmentShader[P any] interface {
	ShadeFragment(in FragmentInput[P]) mgl32.Vec4
}

// FragmentInput is passed to the fragment stage.
type FragmentInput[P any] struct {
	// Varying is the perspective-correct interpolated vertex payload.
	Varying P

	// FragCoord is (x+0.5, y+0.5, z, 1/w), where (x, y) is the pixel in
	// raster space (y counts down from the top) and z is the depth in [0, 1].
	FragCoord mgl32.Vec4
}

// VertexShaderFunc adapts a function to the [VertexShader] interface.
type VertexShaderFunc[U, A any, P Varying[P]] func(u *U, pos mgl32.Vec3, attr A) (mgl32.Vec4, P)

// ShadeVertex calls f(u, pos, attr).
func (f VertexShaderFunc[U, A, P]) ShadeVertex(u *U, pos mgl32.Vec3, attr A) (mgl32.Vec4, P) {
	return f(u, pos, attr)
}

// FragmentShaderFunc adapts a function to the [FragmentShader] interface.
type FragmentShaderFunc[P any] func(in FragmentInput[P]) mgl32.Vec4

// ShadeFragment calls f(in).
func (f FragmentShaderFunc[P]) ShadeFragment(in FragmentInput[P]) mgl32.Vec4 {
	return f(in)
}

// Varying2 is a two-component payload, typically a texture coordinate.
type Varying2 mgl32.Vec2

// Combine implements [Varying].
func (a Varying2) Combine(b, c Varying2, w mgl32.Vec3) Varying2 {
	return Varying2{
		a[0]*w[0] + b[0]*w[1] + c[0]*w[2],
		a[1]*w[0] + b[1]*w[1] + c[1]*w[2],
	}
}

// Varying3 is a three-component payload, for example a normal vector.
type Varying3 mgl32.Vec3

// Combine implements [Varying].
func (a Varying3) Combine(b, c Varying3, w mgl32.Vec3) Varying3 {
	return Varying3{
		a[0]*w[0] + b[0]*w[1] + c[0]*w[2],
		a[1]*w[0] + b[1]*w[1] + c[1]*w[2],
		a[2]*w[0] + b[2]*w[1] + c[2]*w[2],
	}
}

// Varying4 is a four-component payload, typically an RGBA colour.
type Varying4 mgl32.Vec4

// Combine implements [Varying].
func (a Varying4) Combine(b, c Varying4, w mgl32.Vec3) Varying4 {
	return Varying4{
		a[0]*w[0] + b[0]*w[1] + c[0]*w[2],
		a[1]*w[0] + b[1]*w[1] + c[1]*w[2],
		a[2]*w[0] + b[2]*w[1] + c[2]*w[2],
		a[3]*w[0] + b[3]*w[1] + c[3]*w[2],
	}
}
