package resample

import (
	"math"
	"testing"

	"github.com/jamesmkrieger/arachnid/grid"
)

// Sampling exactly on a grid point collapses every correction term, so
// the result must equal the stored sample with no tolerance at all.
func TestQuadraticCornerExact(t *testing.T) {
	g := randGrid2(5, 4)
	q := NewQuadratic(g)
	fast := NewQuadraticFast(g)

	for iy := 0; iy < 4; iy++ {
		for ix := 0; ix < 5; ix++ {
			if v := q.Eval(float64(ix), float64(iy)); v != g.At(ix, iy) {
				t.Errorf(
					"Eval(%d, %d) = %g, not %g", ix, iy, v, g.At(ix, iy),
				)
			}
		}
	}
	for iy := 1; iy < 3; iy++ {
		for ix := 1; ix < 4; ix++ {
			if v := fast.Eval(float64(ix), float64(iy)); v != g.At(ix, iy) {
				t.Errorf(
					"Fast Eval(%d, %d) = %g, not %g",
					ix, iy, v, g.At(ix, iy),
				)
			}
		}
	}
}

// Translating a coordinate by a full period must not change the result.
// The test coordinates are dyadic so the translated coordinates are exact
// and the folded scan runs through identical arithmetic.
func TestQuadraticPeriodicity(t *testing.T) {
	g := randGrid2(4, 6)
	q := NewQuadratic(g)

	xs := []float64{0, 0.25, 1.5, 3.75}
	ys := []float64{0, 0.5, 2.25, 5.75}
	for _, x := range xs {
		for _, y := range ys {
			v := q.Eval(x, y)
			if vx := q.Eval(x+4, y); vx != v {
				t.Errorf("Eval(%g + nx, %g) = %g, not %g", x, y, vx, v)
			}
			if vy := q.Eval(x, y+6); vy != v {
				t.Errorf("Eval(%g, %g + ny) = %g, not %g", x, y, vy, v)
			}
			if vn := q.Eval(x-4, y-6); vn != v {
				t.Errorf("Eval(%g - nx, %g - ny) = %g, not %g", x, y, vn, v)
			}
		}
	}
}

// In the interior, away from every wrap, the periodic and unchecked
// samplers run the same arithmetic and must agree exactly.
func TestQuadraticInteriorAgreement(t *testing.T) {
	g := randGrid2(8, 8)
	q := NewQuadratic(g)
	fast := NewQuadraticFast(g)

	coords := []float64{1, 1.25, 2.5, 3.875, 5.0625, 6.5}
	for _, x := range coords {
		for _, y := range coords {
			if q.Eval(x, y) != fast.Eval(x, y) {
				t.Errorf(
					"Periodic and fast samplers disagree at (%g, %g): "+
						"%g vs %g", x, y, q.Eval(x, y), fast.Eval(x, y),
				)
			}
		}
	}
}

// Sampling just past the last column of a grid whose first and last
// columns hold contrasting values must blend those columns across the
// wrap. With the grid constant in y and y on a grid line, the polynomial
// reduces to f0 + dx0*(c1 + (dx0-1)*c2), which is evaluated by hand here.
func TestQuadraticWrapBlend(t *testing.T) {
	colv := []float32{10, 0, 0, 40}
	vals := make([]float32, 16)
	for iy := 0; iy < 4; iy++ {
		for ix := 0; ix < 4; ix++ {
			vals[ix+iy*4] = colv[ix]
		}
	}
	g := grid.NewGrid2(4, 4, vals)
	q := NewQuadratic(g)

	// f0 = 40, c1 = 10 - 40 = -30, c2 = (c1 - f0 + 0)/2 = -35,
	// dx0 = 0.9: 40 + 0.9*(-30 + (-0.1)*(-35)) = 16.15.
	v := float64(q.Eval(3.9, 1))
	if math.IsNaN(v) {
		t.Fatalf("Wrapping sample is NaN.")
	}
	if !epsEq(v, 16.15, 1e-3) {
		t.Errorf("Eval(3.9, 1) = %g, not 16.15", v)
	}

	// The same point reached from below the origin.
	if vn := float64(q.Eval(-0.1, 1)); !epsEq(vn, v, 1e-6) {
		t.Errorf("Eval(-0.1, 1) = %g, but Eval(3.9, 1) = %g", vn, v)
	}
}

func TestQuadraticEvalAll(t *testing.T) {
	g := randGrid2(6, 6)
	q := NewQuadratic(g)

	xs := []float64{0.5, 1.25, 4.75}
	ys := []float64{2.5, 0.25, 3.125}

	got := q.EvalAll(xs, ys)
	for i := range xs {
		if got[i] != q.Eval(xs[i], ys[i]) {
			t.Errorf("EvalAll[%d] = %g, not %g", i, got[i], q.Eval(xs[i], ys[i]))
		}
	}

	out := make([]float32, len(xs))
	ret := q.EvalAll(xs, ys, out)
	if &ret[0] != &out[0] {
		t.Errorf("EvalAll did not write to the supplied output array.")
	}

	fast := NewQuadraticFast(g)
	interior := []float64{1.5, 2.25, 4.5}
	fgot := fast.EvalAll(interior, interior)
	for i := range interior {
		if fgot[i] != fast.Eval(interior[i], interior[i]) {
			t.Errorf("Fast EvalAll[%d] = %g", i, fgot[i])
		}
	}
}

func benchmarkQuadratic(b *testing.B, s PointSampler) {
	var sum float32
	for i := 0; i < b.N; i++ {
		x := float64(i%61) * 0.25
		y := float64(i%53) * 0.375
		sum += s.Eval(x, y)
	}
	_ = sum
}

func BenchmarkQuadratic(b *testing.B) {
	benchmarkQuadratic(b, NewQuadratic(randGrid2(64, 64)))
}

func BenchmarkQuadraticFast(b *testing.B) {
	g := randGrid2(64, 64)
	fast := NewQuadraticFast(g)
	var sum float32
	for i := 0; i < b.N; i++ {
		x := 1 + float64(i%241)*0.25
		y := 1 + float64(i%233)*0.25
		sum += fast.Eval(x, y)
	}
	_ = sum
}
