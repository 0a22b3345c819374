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
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/rect"
)

// ndc returns the clip-space position which maps to the normalized device
// coordinates (x, y, z) after division by w.
func ndc(x, y, z, w float32) mgl32.Vec4 {
	return mgl32.Vec4{x * w, y * w, z * w, w}
}

var setups = []struct {
	name  string
	setup TriangleSetup
}{
	{"float", FloatSetup{}},
	{"fixed", FixedSetup{}},
}

func TestViewportTransform(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	m := vp.Transform()
	cases := []struct {
		x, y   float64
		rx, ry float64
	}{
		{-1, 1, 0, 0},
		{1, -1, 200, 100},
		{0, 0, 100, 50},
		{-1, -1, 0, 100},
		{0.5, 0.5, 150, 25},
	}
	for _, c := range cases {
		rx := m[0]*c.x + m[2]*c.y + m[4]
		ry := m[1]*c.x + m[3]*c.y + m[5]
		if rx != c.rx || ry != c.ry {
			t.Errorf("(%g, %g) -> (%g, %g), want (%g, %g)", c.x, c.y, rx, ry, c.rx, c.ry)
		}
	}

	r := vp.Rect()
	if r.LLx != 0 || r.LLy != 0 || r.URx != 200 || r.URy != 100 {
		t.Errorf("wrong viewport rectangle %v", r)
	}
}

func TestPrecisionString(t *testing.T) {
	if PrecisionFloat.String() != "float" || PrecisionFixed.String() != "fixed" {
		t.Errorf("got %q and %q", PrecisionFloat, PrecisionFixed)
	}
	if _, ok := SetupFor(PrecisionFixed).(FixedSetup); !ok {
		t.Error("SetupFor(PrecisionFixed) is not FixedSetup")
	}
	if _, ok := SetupFor(PrecisionFloat).(FloatSetup); !ok {
		t.Error("SetupFor(PrecisionFloat) is not FloatSetup")
	}
}

func TestSetupFacing(t *testing.T) {
	vp := Viewport{Width: 64, Height: 64}
	front := Triangle{ndc(-0.5, -0.5, 0, 1), ndc(0.5, -0.5, 0, 1), ndc(0, 0.5, 0, 1)}
	back := Triangle{front[0], front[2], front[1]}

	for _, s := range setups {
		t.Run(s.name, func(t *testing.T) {
			var rec TriangleRecord
			if !s.setup.Setup(&rec, front, vp) {
				t.Fatal("counter-clockwise triangle was rejected")
			}
			if !(rec.Area < 0) {
				t.Errorf("accepted triangle has area %g", rec.Area)
			}
			if want := float32(-2 * 512); rec.Area != want {
				t.Errorf("area = %g, want %g", rec.Area, want)
			}

			if s.setup.Setup(&rec, back, vp) {
				t.Fatal("clockwise triangle was accepted")
			}
			if rec.Area < 0 {
				t.Errorf("rejected triangle has area %g", rec.Area)
			}
		})
	}
}

func TestSetupDegenerate(t *testing.T) {
	vp := Viewport{Width: 64, Height: 64}
	nan := float32(math.NaN())
	cases := []struct {
		name string
		tri  Triangle
	}{
		{"collinear", Triangle{ndc(-0.5, -0.5, 0, 1), ndc(0.5, 0.5, 0, 1), ndc(0, 0, 0, 1)}},
		{"point", Triangle{ndc(0, 0, 0, 1), ndc(0, 0, 0, 1), ndc(0, 0, 0, 1)}},
		{"w_zero", Triangle{ndc(-0.5, -0.5, 0, 1), ndc(0.5, -0.5, 0, 1), {0, 0.5, 0, 0}}},
		{"w_negative", Triangle{ndc(-0.5, -0.5, 0, 1), ndc(0.5, -0.5, 0, 1), {0, -0.5, 0, -1}}},
		{"nan", Triangle{ndc(-0.5, -0.5, 0, 1), ndc(0.5, -0.5, 0, 1), {nan, 0.5, 0, 1}}},
		{"huge", Triangle{ndc(-0.5, -0.5, 0, 1), ndc(0.5, -0.5, 0, 1), {0, 1e30, 0, 1}}},
	}
	for _, s := range setups {
		for _, c := range cases {
			t.Run(s.name+"/"+c.name, func(t *testing.T) {
				var rec TriangleRecord
				if s.setup.Setup(&rec, c.tri, vp) {
					t.Errorf("degenerate triangle accepted, area %g", rec.Area)
				}
			})
		}
	}
}

// TestSetupVertices checks that the barycentric coordinates and the
// interpolation planes reproduce the vertex values at the vertices.
func TestSetupVertices(t *testing.T) {
	vp := Viewport{Width: 64, Height: 64}
	tri := Triangle{ndc(-0.5, -0.5, 0.25, 2), ndc(0.5, -0.5, -0.5, 1), ndc(0, 0.5, 0.75, 4)}
	raster := [3]mgl32.Vec3{{16, 48, 1}, {48, 48, 1}, {32, 16, 1}}

	for _, s := range setups {
		t.Run(s.name, func(t *testing.T) {
			var rec TriangleRecord
			if !s.setup.Setup(&rec, tri, vp) {
				t.Fatal("triangle rejected")
			}

			wantZ := mgl32.Vec3{0.625, 0.25, 0.875}
			wantW := mgl32.Vec3{0.5, 1, 0.25}
			if !rec.InterpolatedZ.ApproxEqualThreshold(wantZ, 1e-6) {
				t.Errorf("InterpolatedZ = %v, want %v", rec.InterpolatedZ, wantZ)
			}
			if !rec.OneOverW.ApproxEqualThreshold(wantW, 1e-6) {
				t.Errorf("OneOverW = %v, want %v", rec.OneOverW, wantW)
			}

			for i, p := range raster {
				lambda := rec.Edges.Mul3x1(p).Mul(1 / rec.Area)
				var unit mgl32.Vec3
				unit[i] = 1
				if !lambda.ApproxEqualThreshold(unit, 1e-6) {
					t.Errorf("vertex %d: lambda = %v", i, lambda)
				}
				if z := rec.ZPlane.Dot(p); math.Abs(float64(z-wantZ[i])) > 1e-5 {
					t.Errorf("vertex %d: z = %g, want %g", i, z, wantZ[i])
				}
				if w := rec.WPlane.Dot(p); math.Abs(float64(w-wantW[i])) > 1e-5 {
					t.Errorf("vertex %d: 1/w = %g, want %g", i, w, wantW[i])
				}
			}

			if rec.Bounds.LLx != 16 || rec.Bounds.LLy != 16 || rec.Bounds.URx != 48 || rec.Bounds.URy != 48 {
				t.Errorf("wrong bounds %v", rec.Bounds)
			}
		})
	}
}

func TestSetupBoundsClamped(t *testing.T) {
	vp := Viewport{Width: 10, Height: 20}
	cases := []struct {
		name string
		tri  Triangle
		want rect.Rect
	}{
		{"full", Triangle{ndc(-1, -1, 0, 1), ndc(1, -1, 0, 1), ndc(0, 1, 0, 1)}, rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}},
		{"overhang", Triangle{ndc(-3, -0.5, 0, 1), ndc(0.5, -3, 0, 1), ndc(0.5, 0.5, 0, 1)}, rect.Rect{LLx: 0, LLy: 5, URx: 8, URy: 20}},
		{"left", Triangle{ndc(-4, -0.5, 0, 1), ndc(-2, -0.5, 0, 1), ndc(-3, 0.5, 0, 1)}, rect.Rect{LLx: 0, LLy: 5, URx: 0, URy: 15}},
		{"right", Triangle{ndc(2, -0.5, 0, 1), ndc(4, -0.5, 0, 1), ndc(3, 0.5, 0, 1)}, rect.Rect{LLx: 10, LLy: 5, URx: 10, URy: 15}},
	}
	for _, s := range setups {
		for _, c := range cases {
			var rec TriangleRecord
			if !s.setup.Setup(&rec, c.tri, vp) {
				t.Fatalf("%s/%s: triangle rejected", s.name, c.name)
			}
			if rec.Bounds != c.want {
				t.Errorf("%s/%s: bounds %v, want %v", s.name, c.name, rec.Bounds, c.want)
			}
		}
	}
}

// TestCoverSamples checks the per-pixel samples for a triangle with
// perspective.
func TestCoverSamples(t *testing.T) {
	vp := Viewport{Width: 32, Height: 32}
	tri := Triangle{ndc(-0.9, -0.8, -0.2, 1.5), ndc(0.7, -0.6, 0.4, 3), ndc(0.1, 0.9, 0.1, 1)}

	for _, s := range setups {
		t.Run(s.name, func(t *testing.T) {
			var rec TriangleRecord
			if !s.setup.Setup(&rec, tri, vp) {
				t.Fatal("triangle rejected")
			}
			zMin := min(rec.InterpolatedZ[0], rec.InterpolatedZ[1], rec.InterpolatedZ[2])
			zMax := max(rec.InterpolatedZ[0], rec.InterpolatedZ[1], rec.InterpolatedZ[2])

			count := 0
			for y := range vp.Height {
				for x := range vp.Width {
					sample, ok := s.setup.Cover(&rec, x, y)
					if !ok {
						continue
					}
					count++

					fx, fy := float64(x), float64(y)
					if fx < rec.Bounds.LLx || fx >= rec.Bounds.URx || fy < rec.Bounds.LLy || fy >= rec.Bounds.URy {
						t.Errorf("pixel (%d, %d) outside bounds %v", x, y, rec.Bounds)
					}
					l := sample.Lambda
					if sum := l[0] + l[1] + l[2]; math.Abs(float64(sum-1)) > 1e-5 {
						t.Errorf("pixel (%d, %d): lambda sums to %g", x, y, sum)
					}
					for i := range 3 {
						if l[i] < -1e-6 || l[i] > 1+1e-6 {
							t.Errorf("pixel (%d, %d): lambda %v out of range", x, y, l)
						}
					}
					if sample.Z < zMin-1e-5 || sample.Z > zMax+1e-5 {
						t.Errorf("pixel (%d, %d): z = %g not in [%g, %g]", x, y, sample.Z, zMin, zMax)
					}
					if !(sample.InvW > 0) {
						t.Errorf("pixel (%d, %d): 1/w = %g", x, y, sample.InvW)
					}
				}
			}
			if count == 0 {
				t.Error("no pixels covered")
			}
		})
	}
}

// TestFixedMatchesFloat compares the coverage of the two setups for random
// triangles whose vertices lie on the sub-pixel grid, where the float
// computation is exact.
func TestFixedMatchesFloat(t *testing.T) {
	const size = 64
	vp := Viewport{Width: size, Height: size}
	rng := rand.New(rand.NewPCG(7, 11))

	// raster coordinate k/16 in [0, 64]
	coord := func() (float32, float32) {
		kx := rng.IntN(size*subpixelScale + 1)
		ky := rng.IntN(size*subpixelScale + 1)
		return float32(kx)/512 - 1, 1 - float32(ky)/512
	}

	tested := 0
	for range 500 {
		var tri Triangle
		for i := range tri {
			x, y := coord()
			tri[i] = ndc(x, y, 0, 1)
		}

		var fRec, iRec TriangleRecord
		fOK := FloatSetup{}.Setup(&fRec, tri, vp)
		iOK := FixedSetup{}.Setup(&iRec, tri, vp)
		if fOK != iOK {
			t.Fatalf("%v: float accepts %t, fixed accepts %t", tri, fOK, iOK)
		}
		if !fOK {
			continue
		}
		tested++

		for y := range size {
			for x := range size {
				_, fIn := FloatSetup{}.Cover(&fRec, x, y)
				_, iIn := FixedSetup{}.Cover(&iRec, x, y)
				if fIn != iIn {
					t.Fatalf("%v: pixel (%d, %d) float %t, fixed %t", tri, x, y, fIn, iIn)
				}
			}
		}
	}
	if tested < 100 {
		t.Errorf("only %d triangles accepted", tested)
	}
}

// TestFixedNearFloat compares the coverage of the two setups for random
// triangles with arbitrary vertices.  Snapping moves each vertex by at most
// sqrt(2)/32 pixel, so the results may only differ for pixel centres close
// to the boundary of the triangle.
func TestFixedNearFloat(t *testing.T) {
	const size = 64
	const margin = 1.0 / 16
	vp := Viewport{Width: size, Height: size}
	rng := rand.New(rand.NewPCG(13, 17))

	tested := 0
	for range 500 {
		var tri Triangle
		var pts [3][2]float64
		for i := range tri {
			rx := rng.Float32()*(size+16) - 8
			ry := rng.Float32()*(size+16) - 8
			pts[i] = [2]float64{float64(rx), float64(ry)}
			tri[i] = ndc(rx/(size/2)-1, 1-ry/(size/2), 0, 1)
		}

		var fRec, iRec TriangleRecord
		fOK := FloatSetup{}.Setup(&fRec, tri, vp)
		iOK := FixedSetup{}.Setup(&iRec, tri, vp)
		if math.Abs(float64(fRec.Area)) < 16 {
			continue
		}
		if fOK != iOK {
			t.Fatalf("%v: float accepts %t, fixed accepts %t", pts, fOK, iOK)
		}
		if !fOK {
			continue
		}
		tested++

		for y := range size {
			for x := range size {
				_, fIn := FloatSetup{}.Cover(&fRec, x, y)
				_, iIn := FixedSetup{}.Cover(&iRec, x, y)
				if fIn == iIn {
					continue
				}
				p := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
				d := min(segmentDist(p, pts[0], pts[1]), segmentDist(p, pts[1], pts[2]), segmentDist(p, pts[2], pts[0]))
				if d > margin {
					t.Fatalf("%v: pixel (%d, %d) at distance %g from the boundary: float %t, fixed %t",
						pts, x, y, d, fIn, iIn)
				}
			}
		}
	}
	if tested < 100 {
		t.Errorf("only %d triangles accepted", tested)
	}
}

// segmentDist returns the distance from p to the line segment from a to b.
func segmentDist(p, a, b [2]float64) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	s := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / (dx*dx + dy*dy)
	s = min(max(s, 0), 1)
	return math.Hypot(p[0]-a[0]-s*dx, p[1]-a[1]-s*dy)
}

func TestFixedSnap(t *testing.T) {
	cases := []struct {
		in   float32
		want int64
	}{
		{0, 0},
		{1, 16},
		{0.03, 0},
		{0.04, 1},
		{1.5 / 16, 2},
		{-1.0 / 16, -1},
		{10.5, 168},
	}
	for _, c := range cases {
		if got := snap(c.in); got != c.want {
			t.Errorf("snap(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}
