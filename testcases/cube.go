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
)

var cubeCases = []TestCase{
	{
		Name:   "four_cubes",
		Width:  160,
		Height: 90,
		Frame:  demoFrame(),
		Scene:  &ColorScene{Objects: cubes(demoTransforms()...)},
	},
	{
		Name:   "four_cubes_orbit",
		Width:  160,
		Height: 90,
		Frame:  orbited(demoFrame(), 90),
		Scene:  &ColorScene{Objects: cubes(demoTransforms()...)},
	},
	{
		Name:   "single_cube",
		Width:  64,
		Height: 64,
		Frame:  lookAt(mgl32.Vec3{3, 2.5, 4}, mgl32.Vec3{0, 0, 0}),
		Scene:  &ColorScene{Objects: cubes(mgl32.Ident4())},
	},
}
