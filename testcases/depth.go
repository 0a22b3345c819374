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

var (
	red   = mgl32.Vec3{1, 0, 0}
	green = mgl32.Vec3{0, 1, 0}
	blue  = mgl32.Vec3{0, 0, 1}
)

var depthCases = []TestCase{
	{
		Name:   "near_first",
		Width:  64,
		Height: 64,
		Flat:   true,
		Frame:  lookAt(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 0, 0}),
		Scene: &ColorScene{Objects: []Object[mgl32.Vec3]{
			{Mesh: Quad(0.75, red), Model: mgl32.Translate3D(-0.4, 0, 0.5)},
			{Mesh: Quad(0.75, green), Model: mgl32.Translate3D(0.4, 0, -0.5)},
		}},
	},
	{
		Name:   "far_first",
		Width:  64,
		Height: 64,
		Flat:   true,
		Frame:  lookAt(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 0, 0}),
		Scene: &ColorScene{Objects: []Object[mgl32.Vec3]{
			{Mesh: Quad(0.75, green), Model: mgl32.Translate3D(0.4, 0, -0.5)},
			{Mesh: Quad(0.75, red), Model: mgl32.Translate3D(-0.4, 0, 0.5)},
		}},
	},

	// Identical geometry drawn twice: the second quad wins.
	{
		Name:   "coplanar_redraw",
		Width:  64,
		Height: 64,
		Flat:   true,
		Frame:  lookAt(mgl32.Vec3{0.5, 0.5, 3}, mgl32.Vec3{0, 0, 0}),
		Scene: &ColorScene{Objects: []Object[mgl32.Vec3]{
			{Mesh: Quad(1, red), Model: mgl32.Ident4()},
			{Mesh: Quad(1, blue), Model: mgl32.Ident4()},
		}},
	},
	{
		Name:   "interpenetrating",
		Width:  64,
		Height: 64,
		Frame:  lookAt(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 0, 0}),
		Scene: &ColorScene{Objects: []Object[mgl32.Vec3]{
			{Mesh: Quad(1, red), Model: mgl32.HomogRotate3DY(mgl32.DegToRad(30))},
			{Mesh: Quad(1, blue), Model: mgl32.HomogRotate3DY(mgl32.DegToRad(-30))},
		}},
	},

	// The depth buffer of a receding floor, as grey values.
	{
		Name:   "floor_depth",
		Width:  64,
		Height: 48,
		Frame:  lookAt(mgl32.Vec3{0, 1, 3}, mgl32.Vec3{0, 0, -2}),
		Scene: &TextureScene{
			Objects: []Object[mgl32.Vec2]{{Mesh: Floor(4, 1), Model: mgl32.Ident4()}},
			Shader:  shaders.Depth[raster3d.Varying2]{},
		},
	},
}
