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
	"seehuhn.de/go/raster3d/shaders"
)

// TestCase is a named scene together with the camera used to render it.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Frame  Frame  // camera and projection
	Scene  Scene  // the geometry to render

	// Flat is set if Scene is a [ColorScene] of single-coloured objects
	// which do not intersect.  Such scenes can be painted back to front,
	// see [ColorScene.Shapes].
	Flat bool
}

// Render draws the test case into t, which must be of size
// tc.Width×tc.Height.  The target is not cleared first.
func (tc *TestCase) Render(r *raster3d.Rasterizer, t *raster3d.Target) error {
	f := tc.Frame
	return tc.Scene.Draw(r, t, &f)
}

// Scene draws the geometry of a test case.
type Scene interface {
	Draw(r *raster3d.Rasterizer, t *raster3d.Target, f *Frame) error
}

// Frame holds the camera state for one frame.
type Frame struct {
	Eye, Center, Up mgl32.Vec3
	FovY            float32 // vertical field of view in degrees
	Near, Far       float32 // clipping plane distances
}

// View returns the world-to-camera transformation.
func (f *Frame) View() mgl32.Mat4 {
	return mgl32.LookAtV(f.Eye, f.Center, f.Up)
}

// Projection returns the perspective projection for the given aspect
// ratio (width/height).
func (f *Frame) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(f.FovY), aspect, f.Near, f.Far)
}

// MVP returns the model-view-projection matrix for an object.
func (f *Frame) MVP(model mgl32.Mat4, vp raster3d.Viewport) mgl32.Mat4 {
	aspect := float32(vp.Width) / float32(vp.Height)
	return f.Projection(aspect).Mul4(f.View()).Mul4(model)
}

// OrbitY rotates the eye position about the world Y axis.
func (f *Frame) OrbitY(deg float32) {
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
	f.Eye = rot.Mul4x1(f.Eye.Vec4(1)).Vec3()
}

// Object is a mesh placed in the world by a model matrix.
type Object[A any] struct {
	Mesh  *raster3d.Mesh[A]
	Model mgl32.Mat4
}

// ColorScene draws objects with per-vertex RGB colours.
type ColorScene struct {
	Objects []Object[mgl32.Vec3]
}

// Draw implements [Scene].
func (s *ColorScene) Draw(r *raster3d.Rasterizer, t *raster3d.Target, f *Frame) error {
	p := &raster3d.Pipeline[shaders.Uniforms, mgl32.Vec3, raster3d.Varying4]{
		Vertex:   shaders.VertexColor{},
		Fragment: shaders.Passthrough{},
	}
	for _, obj := range s.Objects {
		u := &shaders.Uniforms{MVP: f.MVP(obj.Model, t.Viewport())}
		if err := p.Draw(r, t, obj.Mesh, u); err != nil {
			return err
		}
	}
	return nil
}

// TextureScene draws objects with texture coordinates, using a common
// fragment shader.
type TextureScene struct {
	Objects []Object[mgl32.Vec2]
	Shader  raster3d.FragmentShader[raster3d.Varying2]
}

// Draw implements [Scene].
func (s *TextureScene) Draw(r *raster3d.Rasterizer, t *raster3d.Target, f *Frame) error {
	p := &raster3d.Pipeline[shaders.Uniforms, mgl32.Vec2, raster3d.Varying2]{
		Vertex:   shaders.TexCoord{},
		Fragment: s.Shader,
	}
	for _, obj := range s.Objects {
		u := &shaders.Uniforms{MVP: f.MVP(obj.Model, t.Viewport())}
		if err := p.Draw(r, t, obj.Mesh, u); err != nil {
			return err
		}
	}
	return nil
}
