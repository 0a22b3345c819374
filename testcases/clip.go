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

	"seehuhn.de/go/raster3d/shaders"
)

var (
	white = mgl32.Vec4{1, 1, 1, 1}
	grey  = mgl32.Vec4{0.25, 0.25, 0.25, 1}
)

var clipCases = []TestCase{
	// The floor extends behind the camera and beyond the far plane.
	{
		Name:   "floor_near_far",
		Width:  96,
		Height: 64,
		Frame: Frame{
			Eye:    mgl32.Vec3{0, 1, 0},
			Center: mgl32.Vec3{0, 1, -1},
			Up:     mgl32.Vec3{0, 1, 0},
			FovY:   60,
			Near:   0.1,
			Far:    100,
		},
		Scene: &TextureScene{
			Objects: []Object[mgl32.Vec2]{{Mesh: Floor(200, 100), Model: mgl32.Ident4()}},
			Shader:  &shaders.Checker{N: 2, A: white, B: grey},
		},
	},

	// An edge of the cube is closer than the near plane.
	{
		Name:   "cube_near_plane",
		Width:  64,
		Height: 64,
		Frame:  lookAt(mgl32.Vec3{0, 0.2, 1.45}, mgl32.Vec3{0, 0.2, 0}),
		Scene:  &ColorScene{Objects: cubes(mgl32.HomogRotate3DY(mgl32.DegToRad(45)))},
	},

	// Most of the cube is outside the left, right, top and bottom planes.
	{
		Name:   "cube_off_screen",
		Width:  64,
		Height: 48,
		Frame:  lookAt(mgl32.Vec3{0.6, 0.4, 1.6}, mgl32.Vec3{0.9, 0.9, 0}),
		Scene:  &ColorScene{Objects: cubes(mgl32.Ident4())},
	},
}
