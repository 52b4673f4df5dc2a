package resample

import (
	"fmt"
	"math"

	"github.com/jamesmkrieger/arachnid/grid"
)

// PointSampler evaluates a 2D grid at fractional coordinates.
type PointSampler interface {
	// Eval evaluates the sampler at a point.
	Eval(x, y float64) float32
	// EvalAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys []float64, out ...[]float32) []float32
}

var (
	_ PointSampler = &Quadratic{}
	_ PointSampler = &QuadraticFast{}
)

// Quadratic is a biquadratic point sampler with periodic closure: the
// grid wraps in both axes, so any real coordinate is valid. Values are
// the base sample plus directional second-difference terms and a single
// cross term taken from the diagonal neighbor nearest the query point.
type Quadratic struct {
	g *grid.Grid2
}

// NewQuadratic creates a periodic quadratic sampler over g.
//
// Panics unless both axes hold at least three samples, since the stencil
// reaches one sample to either side of the base.
func NewQuadratic(g *grid.Grid2) *Quadratic {
	if g.Nx < 3 || g.Ny < 3 {
		panic(fmt.Sprintf(
			"Quadratic sampling needs three samples along every axis "+
				"of the (%d, %d) grid.", g.Nx, g.Ny,
		))
	}
	return &Quadratic{g}
}

// Eval returns the quadratic-interpolated value at (x, y). The coordinate
// may lie anywhere in the plane; it is folded into [0, Nx) x [0, Ny)
// first, and stencil indices wrap across the boundary, so translating x
// by a full period of Nx (or y by Ny) leaves the result unchanged.
func (q *Quadratic) Eval(x, y float64) float32 {
	g := q.g
	nx, ny := g.Nx, g.Ny

	// Circular closure.
	if x < 0 {
		x += float64((1 - int(x)/nx) * nx)
	}
	if x >= float64(nx) {
		x = math.Mod(x, float64(nx))
	}
	if y < 0 {
		y += float64((1 - int(y)/ny) * ny)
	}
	if y >= float64(ny) {
		y = math.Mod(y, float64(ny))
	}

	i, j := int(x), int(y)
	dx0, dy0 := x-float64(i), y-float64(j)

	ip1, im1 := grid.Wrap(i+1, nx), grid.Wrap(i-1, nx)
	jp1, jm1 := grid.Wrap(j+1, ny), grid.Wrap(j-1, ny)

	f0 := float64(g.AtRaw(i, j))
	c1 := float64(g.AtRaw(ip1, j)) - f0
	c2 := (c1 - f0 + float64(g.AtRaw(im1, j))) * 0.5
	c3 := float64(g.AtRaw(i, jp1)) - f0
	c4 := (c3 - f0 + float64(g.AtRaw(i, jm1))) * 0.5

	// hxc and hyc pick the corner quadrant; either 1 or -1.
	hxc, hyc := 1, 1
	if dx0 < 0 {
		hxc = -1
	}
	if dy0 < 0 {
		hyc = -1
	}
	ic := grid.Wrap(i+hxc, nx)
	jc := grid.Wrap(j+hyc, ny)
	fc := float64(g.AtRaw(ic, jc))

	hx, hy := float64(hxc), float64(hyc)
	c5 := (fc - f0 - hx*c1 - hx*(hx-1)*c2 - hy*c3 - hy*(hy-1)*c4) * hx * hy

	dxb, dyb := dx0-1, dy0-1
	return float32(f0 + dx0*(c1+dxb*c2+dy0*c5) + dy0*(c3+dyb*c4))
}

// EvalAll evaluates the sampler at all the given (x, y) values. If an
// output array is given, the output is written to that array (the array
// is still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (q *Quadratic) EvalAll(xs, ys []float64, out ...[]float32) []float32 {
	if len(out) == 0 {
		out = [][]float32{make([]float32, len(xs))}
	}
	for i := range xs {
		out[0][i] = q.Eval(xs[i], ys[i])
	}
	return out[0]
}

// QuadraticFast is the no-closure specialization of Quadratic: the same
// polynomial with the folding and wrapping stripped out.
//
// The caller is responsible for keeping the whole stencil inside the
// grid: both floor(x)-1 >= 0 and floor(x)+1 <= Nx-1 must hold, and the
// same for y. The sampler never checks, clamps, or wraps - a coordinate
// outside that range reads out of bounds. Use Quadratic anywhere the
// bound is not already guaranteed.
type QuadraticFast struct {
	g *grid.Grid2
}

// NewQuadraticFast creates an unchecked quadratic sampler over g. See the
// QuadraticFast contract for the bounds the caller takes on.
//
// Panics unless both axes hold at least three samples.
func NewQuadraticFast(g *grid.Grid2) *QuadraticFast {
	if g.Nx < 3 || g.Ny < 3 {
		panic(fmt.Sprintf(
			"Quadratic sampling needs three samples along every axis "+
				"of the (%d, %d) grid.", g.Nx, g.Ny,
		))
	}
	return &QuadraticFast{g}
}

// Eval returns the quadratic-interpolated value at (x, y). The stencil
// bound documented on QuadraticFast must hold; it is not checked.
func (q *QuadraticFast) Eval(x, y float64) float32 {
	g := q.g

	i, j := int(x), int(y)
	dx0, dy0 := x-float64(i), y-float64(j)

	f0 := float64(g.AtRaw(i, j))
	c1 := float64(g.AtRaw(i+1, j)) - f0
	c2 := (c1 - f0 + float64(g.AtRaw(i-1, j))) * 0.5
	c3 := float64(g.AtRaw(i, j+1)) - f0
	c4 := (c3 - f0 + float64(g.AtRaw(i, j-1))) * 0.5

	hxc, hyc := 1, 1
	if dx0 < 0 {
		hxc = -1
	}
	if dy0 < 0 {
		hyc = -1
	}
	fc := float64(g.AtRaw(i+hxc, j+hyc))

	hx, hy := float64(hxc), float64(hyc)
	c5 := (fc - f0 - hx*c1 - hx*(hx-1)*c2 - hy*c3 - hy*(hy-1)*c4) * hx * hy

	dxb, dyb := dx0-1, dy0-1
	return float32(f0 + dx0*(c1+dxb*c2+dy0*c5) + dy0*(c3+dyb*c4))
}

// EvalAll evaluates the sampler at all the given (x, y) values. If an
// output array is given, the output is written to that array (the array
// is still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (q *QuadraticFast) EvalAll(xs, ys []float64, out ...[]float32) []float32 {
	if len(out) == 0 {
		out = [][]float32{make([]float32, len(xs))}
	}
	for i := range xs {
		out[0][i] = q.Eval(xs[i], ys[i])
	}
	return out[0]
}
