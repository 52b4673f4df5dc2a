package resample

import (
	"fmt"

	"github.com/jamesmkrieger/arachnid/grid"
)

// nearestFit returns the target size of an n-sample axis rescaled by
// factor, clamped to the two-sample minimum the resamplers require.
func nearestFit(n int, factor float64) int {
	n1 := int(float64(n)/factor + 0.5)
	if n1 < 2 {
		n1 = 2
	}
	return n1
}

// Rescale2 resamples src by a scale factor, choosing the nearest integer
// target dimensions: factor 2 halves each axis (to the nearest sample),
// factor 0.5 doubles it. If an output grid is given, the result is
// written to that grid (the grid is still returned as a convenience); it
// must already have the nearest-fit dimensions.
//
// Panics if factor is not positive.
func Rescale2(
	src *grid.Grid2, factor float64, pol EdgePolicy, out ...*grid.Grid2,
) *grid.Grid2 {
	if factor <= 0 {
		panic(fmt.Sprintf("Rescale factor %g is not positive.", factor))
	}
	nx1, ny1 := nearestFit(src.Nx, factor), nearestFit(src.Ny, factor)

	var dst *grid.Grid2
	if len(out) == 0 {
		dst = grid.Make2(nx1, ny1)
	} else {
		dst = out[0]
		if dst.Nx != nx1 || dst.Ny != ny1 {
			panic(fmt.Sprintf(
				"Output grid is (%d, %d), but factor %g rescales "+
					"(%d, %d) to (%d, %d).",
				dst.Nx, dst.Ny, factor, src.Nx, src.Ny, nx1, ny1,
			))
		}
	}

	ResizeBiLinear(src, dst, pol)
	return dst
}

// Rescale3 resamples src by a scale factor, choosing the nearest integer
// target dimensions. See Rescale2.
//
// Panics if factor is not positive.
func Rescale3(
	src *grid.Grid3, factor float64, pol EdgePolicy, out ...*grid.Grid3,
) *grid.Grid3 {
	if factor <= 0 {
		panic(fmt.Sprintf("Rescale factor %g is not positive.", factor))
	}
	nx1 := nearestFit(src.Nx, factor)
	ny1 := nearestFit(src.Ny, factor)
	nz1 := nearestFit(src.Nz, factor)

	var dst *grid.Grid3
	if len(out) == 0 {
		dst = grid.Make3(nx1, ny1, nz1)
	} else {
		dst = out[0]
		if dst.Nx != nx1 || dst.Ny != ny1 || dst.Nz != nz1 {
			panic(fmt.Sprintf(
				"Output grid is (%d, %d, %d), but factor %g rescales "+
					"(%d, %d, %d) to (%d, %d, %d).",
				dst.Nx, dst.Ny, dst.Nz, factor,
				src.Nx, src.Ny, src.Nz, nx1, ny1, nz1,
			))
		}
	}

	ResizeTriLinear(src, dst, pol)
	return dst
}

// Decimate2 downsamples src by a bin factor using the historical
// decimation scan. Bin factors of 1 or less return src unchanged, so
// callers can pass an unconditional factor the way the micrograph
// pipelines did.
func Decimate2(src *grid.Grid2, binFactor float64, out ...*grid.Grid2) *grid.Grid2 {
	if binFactor <= 1 {
		return src
	}
	return Rescale2(src, binFactor, EdgeLegacy, out...)
}

// Decimate3 downsamples src by a bin factor using the historical
// decimation scan. Bin factors of 1 or less return src unchanged.
func Decimate3(src *grid.Grid3, binFactor float64, out ...*grid.Grid3) *grid.Grid3 {
	if binFactor <= 1 {
		return src
	}
	return Rescale3(src, binFactor, EdgeLegacy, out...)
}
