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

// Package raster3d implements a software rasterizer for indexed triangle
// meshes.
//
// Vertices are transformed by a user-supplied [VertexShader] into
// homogeneous clip space, clipped against the view volume, and rasterized
// into a [Target] with a per-pixel depth test.  A [FragmentShader] computes
// the colour of every visible pixel from perspective-correct interpolated
// vertex data.
//
// Two triangle setup strategies are available, selected by
// [Rasterizer.Precision]: a floating-point one, and a fixed-point one which
// makes exact coverage decisions on a sub-pixel grid.
package raster3d

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
