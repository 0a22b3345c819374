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

// Package shaders provides stock vertex and fragment shaders for the
// raster3d pipeline.
package shaders

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/raster3d"
)

// Uniforms is the uniform data used by the shaders in this package.
type Uniforms struct {
	MVP mgl32.Mat4 // model-view-projection matrix
}

// VertexColor transforms positions by the MVP matrix and passes an RGB
// vertex colour on as an opaque RGBA payload.
type VertexColor struct{}

// ShadeVertex implements [raster3d.VertexShader].
func (VertexColor) ShadeVertex(u *Uniforms, pos mgl32.Vec3, c mgl32.Vec3) (mgl32.Vec4, raster3d.Varying4) {
	return u.MVP.Mul4x1(pos.Vec4(1)), raster3d.Varying4(c.Vec4(1))
}

// Passthrough outputs the interpolated RGBA payload unchanged.
type Passthrough struct{}

// ShadeFragment implements [raster3d.FragmentShader].
func (Passthrough) ShadeFragment(in raster3d.FragmentInput[raster3d.Varying4]) mgl32.Vec4 {
	return mgl32.Vec4(in.Varying)
}

// TexCoord transforms positions by the MVP matrix and passes a texture
// coordinate on to the fragment stage.
type TexCoord struct{}

// ShadeVertex implements [raster3d.VertexShader].
func (TexCoord) ShadeVertex(u *Uniforms, pos mgl32.Vec3, uv mgl32.Vec2) (mgl32.Vec4, raster3d.Varying2) {
	return u.MVP.Mul4x1(pos.Vec4(1)), raster3d.Varying2(uv)
}

// Texture samples an image at the interpolated texture coordinate.
//
// Lookup uses the nearest texel.  Coordinates wrap around, and v=0 is the
// bottom row of the image.
type Texture struct {
	Image image.Image
}

// ShadeFragment implements [raster3d.FragmentShader].
func (t *Texture) ShadeFragment(in raster3d.FragmentInput[raster3d.Varying2]) mgl32.Vec4 {
	b := t.Image.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return mgl32.Vec4{}
	}
	u := wrap(in.Varying[0])
	v := wrap(in.Varying[1])
	x := min(int(u*float32(w)), w-1)
	y := min(int((1-v)*float32(h)), h-1)

	r, g, bl, a := t.Image.At(b.Min.X+x, b.Min.Y+y).RGBA()
	if a == 0 {
		return mgl32.Vec4{}
	}
	// un-premultiply
	fa := float32(a)
	return mgl32.Vec4{float32(r) / fa, float32(g) / fa, float32(bl) / fa, fa / 0xffff}
}

// Checker is a procedural checkerboard with N×N squares per unit of
// texture space.
type Checker struct {
	N    int
	A, B mgl32.Vec4
}

// ShadeFragment implements [raster3d.FragmentShader].
func (c *Checker) ShadeFragment(in raster3d.FragmentInput[raster3d.Varying2]) mgl32.Vec4 {
	n := float32(max(c.N, 1))
	i := int(math32.Floor(in.Varying[0] * n))
	j := int(math32.Floor(in.Varying[1] * n))
	if (i+j)&1 == 0 {
		return c.A
	}
	return c.B
}

// Depth shows the fragment depth as a grey value, white for near and black
// for far fragments.  It works with any payload type.
type Depth[P any] struct{}

// ShadeFragment implements [raster3d.FragmentShader].
func (Depth[P]) ShadeFragment(in raster3d.FragmentInput[P]) mgl32.Vec4 {
	g := 1 - in.FragCoord[2]
	return mgl32.Vec4{g, g, g, 1}
}

// wrap reduces a texture coordinate to [0, 1).
func wrap(v float32) float32 {
	v -= math32.Floor(v)
	if !(v >= 0 && v < 1) {
		return 0
	}
	return v
}
