/*package grid provides dense 2D and 3D grids of single-precision samples
backed by flat slices.

Grids wrap caller-owned buffers without copying. Index space is 0-based
and storage is x-fastest: the sample at (ix, iy, iz) lives at
ix + iy*Nx + iz*Nx*Ny. Three accessor tiers are provided: bounds-checked
(At, Set), periodic (AtWrap), and raw (AtRaw), which skips all checks and
leaves the bounds contract to the caller.
*/
package grid

import (
	"fmt"
)

// Grid2 provides an interface for reasoning over a 1D slice as if it were
// a 2D grid.
type Grid2 struct {
	Nx, Ny int
	Vals   []float32
}

// Grid3 provides an interface for reasoning over a 1D slice as if it were
// a 3D grid. The y and z strides are precomputed at construction.
type Grid3 struct {
	Nx, Ny, Nz           int
	Length, Area, Volume int
	Vals                 []float32
}

// NewGrid2 returns a Grid2 wrapping vals. The buffer is not copied.
//
// Panics if either dimension is smaller than 1 or if len(vals) != nx*ny.
func NewGrid2(nx, ny int, vals []float32) *Grid2 {
	if nx < 1 || ny < 1 {
		panic(fmt.Sprintf("Grid dimensions (%d, %d) are not positive.", nx, ny))
	}
	if nx*ny != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d and ny = %d", len(vals), nx, ny,
		))
	}
	return &Grid2{nx, ny, vals}
}

// NewGrid3 returns a Grid3 wrapping vals. The buffer is not copied.
//
// Panics if any dimension is smaller than 1 or if len(vals) != nx*ny*nz.
func NewGrid3(nx, ny, nz int, vals []float32) *Grid3 {
	if nx < 1 || ny < 1 || nz < 1 {
		panic(fmt.Sprintf(
			"Grid dimensions (%d, %d, %d) are not positive.", nx, ny, nz,
		))
	}
	if nx*ny*nz != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d, ny = %d, and nz = %d",
			len(vals), nx, ny, nz,
		))
	}
	g := &Grid3{}
	g.Nx, g.Ny, g.Nz = nx, ny, nz
	g.Length = nx
	g.Area = nx * ny
	g.Volume = nx * ny * nz
	g.Vals = vals
	return g
}

// Make2 allocates a zeroed nx * ny grid.
func Make2(nx, ny int) *Grid2 {
	return NewGrid2(nx, ny, make([]float32, nx*ny))
}

// Make3 allocates a zeroed nx * ny * nz grid.
func Make3(nx, ny, nz int) *Grid3 {
	return NewGrid3(nx, ny, nz, make([]float32, nx*ny*nz))
}

// Idx returns the flat index corresponding to a set of coordinates.
func (g *Grid2) Idx(ix, iy int) int {
	return ix + iy*g.Nx
}

// Coords returns the x, y coordinates of a sample from its flat index.
func (g *Grid2) Coords(idx int) (ix, iy int) {
	return idx % g.Nx, idx / g.Nx
}

// BoundsCheck returns true if the given coordinates are within the grid
// and false otherwise.
func (g *Grid2) BoundsCheck(ix, iy int) bool {
	return ix >= 0 && iy >= 0 && ix < g.Nx && iy < g.Ny
}

// IdxCheck returns a flat index and true if the given coordinates are
// valid and false otherwise.
func (g *Grid2) IdxCheck(ix, iy int) (idx int, ok bool) {
	if !g.BoundsCheck(ix, iy) {
		return -1, false
	}
	return g.Idx(ix, iy), true
}

// At returns the sample at (ix, iy).
//
// Panics if the coordinates are out of bounds.
func (g *Grid2) At(ix, iy int) float32 {
	if !g.BoundsCheck(ix, iy) {
		panic(fmt.Sprintf(
			"Index (%d, %d) out of bounds for (%d, %d) grid.",
			ix, iy, g.Nx, g.Ny,
		))
	}
	return g.Vals[g.Idx(ix, iy)]
}

// Set writes the sample at (ix, iy).
//
// Panics if the coordinates are out of bounds.
func (g *Grid2) Set(ix, iy int, v float32) {
	if !g.BoundsCheck(ix, iy) {
		panic(fmt.Sprintf(
			"Index (%d, %d) out of bounds for (%d, %d) grid.",
			ix, iy, g.Nx, g.Ny,
		))
	}
	g.Vals[g.Idx(ix, iy)] = v
}

// AtWrap returns the sample at (ix, iy) under periodic closure: indices
// wrap modulo the axis length, so any integer coordinates are valid.
func (g *Grid2) AtWrap(ix, iy int) float32 {
	return g.Vals[pMod(ix, g.Nx)+pMod(iy, g.Ny)*g.Nx]
}

// AtRaw returns the sample at (ix, iy) without any bounds checks. The
// caller must guarantee 0 <= ix < Nx and 0 <= iy < Ny; violating that
// reads an unrelated sample or panics on the slice access.
func (g *Grid2) AtRaw(ix, iy int) float32 {
	return g.Vals[ix+iy*g.Nx]
}

// Idx returns the flat index corresponding to a set of coordinates.
func (g *Grid3) Idx(ix, iy, iz int) int {
	return ix + iy*g.Length + iz*g.Area
}

// Coords returns the x, y, z coordinates of a sample from its flat index.
func (g *Grid3) Coords(idx int) (ix, iy, iz int) {
	ix = idx % g.Length
	iy = (idx % g.Area) / g.Length
	iz = idx / g.Area
	return ix, iy, iz
}

// BoundsCheck returns true if the given coordinates are within the grid
// and false otherwise.
func (g *Grid3) BoundsCheck(ix, iy, iz int) bool {
	return ix >= 0 && iy >= 0 && iz >= 0 &&
		ix < g.Nx && iy < g.Ny && iz < g.Nz
}

// IdxCheck returns a flat index and true if the given coordinates are
// valid and false otherwise.
func (g *Grid3) IdxCheck(ix, iy, iz int) (idx int, ok bool) {
	if !g.BoundsCheck(ix, iy, iz) {
		return -1, false
	}
	return g.Idx(ix, iy, iz), true
}

// At returns the sample at (ix, iy, iz).
//
// Panics if the coordinates are out of bounds.
func (g *Grid3) At(ix, iy, iz int) float32 {
	if !g.BoundsCheck(ix, iy, iz) {
		panic(fmt.Sprintf(
			"Index (%d, %d, %d) out of bounds for (%d, %d, %d) grid.",
			ix, iy, iz, g.Nx, g.Ny, g.Nz,
		))
	}
	return g.Vals[g.Idx(ix, iy, iz)]
}

// Set writes the sample at (ix, iy, iz).
//
// Panics if the coordinates are out of bounds.
func (g *Grid3) Set(ix, iy, iz int, v float32) {
	if !g.BoundsCheck(ix, iy, iz) {
		panic(fmt.Sprintf(
			"Index (%d, %d, %d) out of bounds for (%d, %d, %d) grid.",
			ix, iy, iz, g.Nx, g.Ny, g.Nz,
		))
	}
	g.Vals[g.Idx(ix, iy, iz)] = v
}

// AtWrap returns the sample at (ix, iy, iz) under periodic closure.
func (g *Grid3) AtWrap(ix, iy, iz int) float32 {
	return g.Vals[pMod(ix, g.Nx)+pMod(iy, g.Ny)*g.Length+pMod(iz, g.Nz)*g.Area]
}

// AtRaw returns the sample at (ix, iy, iz) without any bounds checks.
func (g *Grid3) AtRaw(ix, iy, iz int) float32 {
	return g.Vals[ix+iy*g.Length+iz*g.Area]
}

// Wrap folds an index at most one period out of range back into [0, n).
// Stencil neighbors are never more than one period out, so this avoids
// the general modulo.
func Wrap(i, n int) int {
	if i >= n {
		return i - n
	}
	if i < 0 {
		return i + n
	}
	return i
}

// pMod computes the positive modulo i % n.
func pMod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
