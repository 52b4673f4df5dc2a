/*package resample implements whole-grid resamplers and quadratic point
samplers over 2D and 3D grids.

Coordinates are in 0-based grid index space: the sample at grid index
(i, j) lies at coordinate (i, j), and fractional coordinates fall between
samples. All routines are pure functions over caller-owned buffers; none
of them retain state between calls.
*/
package resample

import (
	"fmt"

	"github.com/jamesmkrieger/arachnid/grid"
)

// weightFloor keeps scan remainders away from exactly zero. The original
// resamplers applied this floor to every fractional weight; removing it
// would change results at grid-aligned destination samples.
const weightFloor = 1e-5

// EdgePolicy selects the stride formula used to map destination index
// space onto source index space. The two formulas disagree about where
// the final destination sample along an axis lands, so the choice must be
// made explicitly at every call site.
type EdgePolicy int

const (
	// EdgeAligned uses stride (n-1)/(n1-1): the final destination sample
	// lands exactly on the final source sample.
	EdgeAligned EdgePolicy = iota
	// EdgeLegacy uses stride n/n1: the final destination sample stops
	// short of the source end by n/n1 - 1 cells. This is the historical
	// decimation scan.
	EdgeLegacy
)

// stride returns the step, in source cells, between consecutive samples
// of a uniform scan mapping n1 destination samples onto an n-sample axis.
func (pol EdgePolicy) stride(n, n1 int) float64 {
	switch pol {
	case EdgeAligned:
		return float64(n-1) / float64(n1-1)
	case EdgeLegacy:
		return float64(n) / float64(n1)
	}
	panic(fmt.Sprintf("Unknown EdgePolicy %d.", pol))
}

func (pol EdgePolicy) String() string {
	switch pol {
	case EdgeAligned:
		return "EdgeAligned"
	case EdgeLegacy:
		return "EdgeLegacy"
	}
	return fmt.Sprintf("EdgePolicy(%d)", int(pol))
}

// split decomposes a scanned source position into a stencil base index
// and a blend weight on an n-sample axis. The base index is clamped so
// the +1 neighbor stays in bounds at the extreme final sample, and the
// weight is kept in [weightFloor, 1].
func split(pos float64, n int) (i int, d float64) {
	i = int(pos)
	if i > n-2 {
		// The legacy n/n1 scan lands on the final source sample whenever
		// n1 divides the scan evenly (the identity resize does on every
		// axis). Folding the remainder into the weight keeps the stencil
		// in bounds there.
		// TODO: compare final-sample output against SPIDER reference
		// images; the historical formula was patched empirically at this
		// sample and has never been validated.
		i = n - 2
	}
	d = pos - float64(i)
	if d < weightFloor {
		d = weightFloor
	} else if d > 1 {
		d = 1
	}
	return i, d
}

// scanAxis fills is and ds with the split base indices and weights of the
// n1-sample scan over an n-sample axis.
func scanAxis(pol EdgePolicy, n, n1 int, is []int, ds []float64) {
	r := pol.stride(n, n1)
	for k := 0; k < n1; k++ {
		is[k], ds[k] = split(float64(k)*r, n)
	}
}

// ResizeBiLinear fills dst with a bilinear resampling of src: every
// destination sample is the 4-corner blend of the enclosing source cell
// at the position given by pol's uniform scan.
//
// Panics unless every axis of src and dst holds at least two samples. The
// panic fires before anything is written to dst.
func ResizeBiLinear(src, dst *grid.Grid2, pol EdgePolicy) {
	if src.Nx < 2 || src.Ny < 2 {
		panic(fmt.Sprintf(
			"Source grid (%d, %d) needs two samples along every axis.",
			src.Nx, src.Ny,
		))
	}
	if dst.Nx < 2 || dst.Ny < 2 {
		panic(fmt.Sprintf(
			"Target grid (%d, %d) needs two samples along every axis.",
			dst.Nx, dst.Ny,
		))
	}

	ixs, dxs := make([]int, dst.Nx), make([]float64, dst.Nx)
	scanAxis(pol, src.Nx, dst.Nx, ixs, dxs)
	ry := pol.stride(src.Ny, dst.Ny)

	for ky := 0; ky < dst.Ny; ky++ {
		iy, yd := split(float64(ky)*ry, src.Ny)
		row := dst.Vals[ky*dst.Nx : (ky+1)*dst.Nx]
		for kx := range row {
			ix, xd := ixs[kx], dxs[kx]
			i := src.Idx(ix, iy)

			v11 := float64(src.Vals[i])
			v21 := float64(src.Vals[i+1])
			v12 := float64(src.Vals[i+src.Nx])
			v22 := float64(src.Vals[i+1+src.Nx])

			c1 := v11*(1-xd) + v21*xd
			c2 := v12*(1-xd) + v22*xd

			row[kx] = float32(c1*(1-yd) + c2*yd)
		}
	}
}

// ResizeTriLinear fills dst with a trilinear resampling of src: every
// destination sample is the 8-corner blend of the enclosing source cell
// at the position given by pol's uniform scan.
//
// Panics unless every axis of src and dst holds at least two samples. The
// panic fires before anything is written to dst.
func ResizeTriLinear(src, dst *grid.Grid3, pol EdgePolicy) {
	if src.Nx < 2 || src.Ny < 2 || src.Nz < 2 {
		panic(fmt.Sprintf(
			"Source grid (%d, %d, %d) needs two samples along every axis.",
			src.Nx, src.Ny, src.Nz,
		))
	}
	if dst.Nx < 2 || dst.Ny < 2 || dst.Nz < 2 {
		panic(fmt.Sprintf(
			"Target grid (%d, %d, %d) needs two samples along every axis.",
			dst.Nx, dst.Ny, dst.Nz,
		))
	}

	ixs, dxs := make([]int, dst.Nx), make([]float64, dst.Nx)
	scanAxis(pol, src.Nx, dst.Nx, ixs, dxs)
	ry := pol.stride(src.Ny, dst.Ny)
	rz := pol.stride(src.Nz, dst.Nz)

	diy, diz := src.Length, src.Area

	for kz := 0; kz < dst.Nz; kz++ {
		iz, zd := split(float64(kz)*rz, src.Nz)
		for ky := 0; ky < dst.Ny; ky++ {
			iy, yd := split(float64(ky)*ry, src.Ny)
			row := dst.Vals[dst.Idx(0, ky, kz) : dst.Idx(0, ky, kz)+dst.Nx]
			for kx := range row {
				ix, xd := ixs[kx], dxs[kx]
				i := src.Idx(ix, iy, iz)

				v111 := float64(src.Vals[i])
				v211 := float64(src.Vals[i+1])
				v121 := float64(src.Vals[i+diy])
				v221 := float64(src.Vals[i+1+diy])
				v112 := float64(src.Vals[i+diz])
				v212 := float64(src.Vals[i+1+diz])
				v122 := float64(src.Vals[i+diy+diz])
				v222 := float64(src.Vals[i+1+diy+diz])

				c11 := v111*(1-xd) + v211*xd
				c21 := v121*(1-xd) + v221*xd
				c12 := v112*(1-xd) + v212*xd
				c22 := v122*(1-xd) + v222*xd

				c1 := c11*(1-yd) + c21*yd
				c2 := c12*(1-yd) + c22*yd

				row[kx] = float32(c1*(1-zd) + c2*zd)
			}
		}
	}
}
