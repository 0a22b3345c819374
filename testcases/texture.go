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
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/raster3d/shaders"
)

var textureCases = []TestCase{
	{
		Name:   "checker_floor",
		Width:  96,
		Height: 64,
		Frame:  lookAt(mgl32.Vec3{0, 2, 4}, mgl32.Vec3{0, 0, 0}),
		Scene: &TextureScene{
			Objects: []Object[mgl32.Vec2]{{Mesh: Floor(3, 6), Model: mgl32.Ident4()}},
			Shader:  &shaders.Checker{N: 1, A: white, B: grey},
		},
	},
	{
		Name:   "image_quad",
		Width:  64,
		Height: 64,
		Frame:  lookAt(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 0}),
		Scene: &TextureScene{
			Objects: []Object[mgl32.Vec2]{{
				Mesh:  TexturedQuad(1, 1),
				Model: mgl32.HomogRotate3DX(mgl32.DegToRad(-60)),
			}},
			Shader: &shaders.Texture{Image: gradient(16, 16)},
		},
	},
}

// gradient returns an image with red increasing to the right and green
// increasing to the top.
func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * x / (w - 1)),
				G: uint8(255 * (h - 1 - y) / (h - 1)),
				B: 64,
				A: 255,
			})
		}
	}
	return img
}
