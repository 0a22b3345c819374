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

package raster3d_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/testcases"
)

// BenchmarkFourCubes renders the four cube demo scene.
func BenchmarkFourCubes(b *testing.B) {
	tc := testcases.All["cube"][0]
	configs := []struct {
		name string
		prec raster3d.Precision
		full bool
	}{
		{"float", raster3d.PrecisionFloat, false},
		{"fixed", raster3d.PrecisionFixed, false},
		{"float_full", raster3d.PrecisionFloat, true},
	}
	for _, cfg := range configs {
		b.Run(cfg.name, func(b *testing.B) {
			r := raster3d.NewRasterizer()
			r.Precision = cfg.prec
			r.FullViewport = cfg.full
			t := raster3d.NewTarget(tc.Width, tc.Height)
			clearColor := color.RGBA{A: 255}

			b.ReportAllocs()
			for b.Loop() {
				t.Clear(raster3d.DepthClear, clearColor)
				if err := tc.Render(r, t); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTriangle fills a single large triangle.
func BenchmarkTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, prec := range precisions {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/%dx%d", prec, size, size), func(b *testing.B) {
				r := raster3d.NewRasterizer()
				r.Precision = prec
				p := &raster3d.Pipeline[flat, struct{}, raster3d.Varying4]{Vertex: ndcShader, Fragment: white}
				m := rasterTriangle(benchTriangle(size), size, size)
				t := raster3d.NewTarget(size, size)
				clearColor := color.RGBA{A: 255}

				b.ReportAllocs()
				for b.Loop() {
					t.Clear(raster3d.DepthClear, clearColor)
					if err := p.Draw(r, t, m, &flat{}); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkVectorTriangle fills the same triangle with x/image/vector.
func BenchmarkVectorTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			pts := benchTriangle(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(pts[0][0], pts[0][1])
				r.LineTo(pts[1][0], pts[1][1])
				r.LineTo(pts[2][0], pts[2][1])
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func benchTriangle(size int) [3][2]float32 {
	s := float32(size)
	return [3][2]float32{{0.05 * s, 0.9 * s}, {0.95 * s, 0.8 * s}, {0.4 * s, 0.05 * s}}
}
