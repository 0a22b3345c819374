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

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fixed-point parameters for [FixedSetup].
const (
	// SubpixelBits is the number of fractional bits used for vertex
	// positions in raster space.  Vertices are snapped to a grid of
	// 1/16 pixel.
	SubpixelBits = 4

	// InterpolantBits is the number of fractional bits used for the
	// per-vertex depth and 1/w values.
	InterpolantBits = 24
)

const (
	subpixelScale    = 1 << SubpixelBits
	interpolantScale = 1 << InterpolantBits
)

// fixedRecord is the integer part of a [TriangleRecord], used only by
// [FixedSetup].
type fixedRecord struct {
	edges [3][3]int64 // rows (a, b, c) of the integer edge functions
	area  int64       // in units of 1/subpixelScale² pixels
	z     [3]int64    // InterpolatedZ scaled by interpolantScale
	invW  [3]int64    // OneOverW scaled by interpolantScale
}

// FixedSetup is the fixed-point triangle setup.
//
// Vertex positions are snapped to 1/16 pixel, and the edge functions are
// evaluated in exact int64 arithmetic.  Adjacent triangles sharing an edge
// therefore never leave cracks or double-cover pixels because of rounding.
type FixedSetup struct{}

// Setup implements [TriangleSetup].
func (FixedSetup) Setup(rec *TriangleRecord, tri Triangle, vp Viewport) bool {
	pts, ok := rec.prepare(tri, vp)
	if !ok {
		return false
	}

	var X, Y [3]int64
	for i, p := range pts {
		X[i] = snap(p[0])
		Y[i] = snap(p[1])
	}

	const s, s2 = subpixelScale, subpixelScale * subpixelScale

	f := &rec.fixed
	f.area = X[0]*(Y[1]-Y[2]) + X[1]*(Y[2]-Y[0]) + X[2]*(Y[0]-Y[1])
	rec.Area = float32(f.area) / s2
	if f.area >= 0 {
		// back-facing or degenerate
		return false
	}
	for i := range 3 {
		j, k := (i+1)%3, (i+2)%3
		f.edges[i] = [3]int64{
			Y[j] - Y[k],
			X[k] - X[j],
			X[j]*Y[k] - X[k]*Y[j],
		}
		f.z[i] = quantize(rec.InterpolatedZ[i])
		f.invW[i] = quantize(rec.OneOverW[i])
	}

	// Keep the float edges meaningful, in pixel units.
	var rows [3]mgl32.Vec3
	for i, e := range f.edges {
		rows[i] = mgl32.Vec3{float32(e[0]) / s, float32(e[1]) / s, float32(e[2]) / s2}
	}
	rec.Edges = mgl32.Mat3FromRows(rows[0], rows[1], rows[2])
	rec.planes()
	return true
}

// Cover implements [TriangleSetup].
func (FixedSetup) Cover(rec *TriangleRecord, x, y int) (Sample, bool) {
	f := &rec.fixed

	// pixel centre (x+1/2, y+1/2) in sub-pixel units
	sx := int64(2*x+1) << (SubpixelBits - 1)
	sy := int64(2*y+1) << (SubpixelBits - 1)

	var e [3]int64
	for i, row := range f.edges {
		e[i] = row[0]*sx + row[1]*sy + row[2]
		if e[i] > 0 {
			return Sample{}, false
		}
	}

	area := float64(f.area)
	var s Sample
	var z, invW float64
	for i := range 3 {
		ei := float64(e[i])
		s.Lambda[i] = float32(ei / area)
		z += ei * float64(f.z[i])
		invW += ei * float64(f.invW[i])
	}
	s.Z = float32(z / (area * interpolantScale))
	s.InvW = float32(invW / (area * interpolantScale))
	return s, true
}

// snap rounds a raster coordinate to the nearest sub-pixel grid point.
func snap(v float32) int64 {
	return int64(math.Floor(float64(v)*subpixelScale + 0.5))
}

func quantize(v float32) int64 {
	return int64(math.Round(float64(v) * interpolantScale))
}
