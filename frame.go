/*
 * frame.go, part of gostrain
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package strain

import (
	"math"

	v3 "github.com/rmera/gostrain/v3"
	"gonum.org/v1/gonum/mat"
)

//Cell is a simulation cell: an origin plus 3 basis vectors, each axis
//independently flagged as periodic or not. Orthorhombic and triclinic
//cells are both supported.
type Cell struct {
	origin [3]float64
	m      *mat.Dense //rows are the cell vectors
	inv    *mat.Dense
	pbc    [3]bool
}

//NewCell returns a Cell with the given origin (3 elements), basis vectors
//(9 elements, row per vector) and per-axis periodicity. It fails if the
//basis is singular, as reduced coordinates would then be undefined.
func NewCell(origin, vectors []float64, periodic [3]bool) (*Cell, error) {
	if len(origin) < 3 || len(vectors) < 9 {
		return nil, newError(InputFrameInvalid, "NewCell: need 3 origin and 9 basis components, got %d and %d", len(origin), len(vectors))
	}
	C := new(Cell)
	copy(C.origin[:], origin)
	C.m = mat.NewDense(3, 3, append([]float64{}, vectors[0:9]...))
	C.inv = mat.NewDense(3, 3, nil)
	if err := C.inv.Inverse(C.m); err != nil {
		return nil, newError(InputFrameInvalid, "NewCell: singular cell basis: %s", err.Error())
	}
	C.pbc = periodic
	return C, nil
}

//NewCubicCell returns a cubic cell of the given side with its origin at
//zero, periodic (or not) in all 3 axes.
func NewCubicCell(side float64, periodic bool) *Cell {
	C, err := NewCell([]float64{0, 0, 0},
		[]float64{side, 0, 0, 0, side, 0, 0, 0, side},
		[3]bool{periodic, periodic, periodic})
	if err != nil {
		panic(err.Error()) //can only happen for side == 0
	}
	return C
}

//Periodic returns the per-axis periodicity flags of the cell.
func (C *Cell) Periodic() [3]bool { return C.pbc }

//Origin returns the origin of the cell.
func (C *Cell) Origin() [3]float64 { return C.origin }

//Basis returns a copy of the 3x3 basis matrix (rows are the cell vectors).
func (C *Cell) Basis() *mat.Dense {
	return mat.DenseCopyOf(C.m)
}

//Volume returns the volume of the cell.
func (C *Cell) Volume() float64 {
	return math.Abs(v3.Det(C.m))
}

//Fractional puts in dst the reduced (fractional) coordinates of the
//point r. dst and r must have at least 3 elements each.
func (C *Cell) Fractional(dst, r []float64) {
	var d [3]float64
	for k := 0; k < 3; k++ {
		d[k] = r[k] - C.origin[k]
	}
	rowTimes(dst, d[:], C.inv)
}

//Cartesian puts in dst the cartesian coordinates of the point with
//reduced coordinates f.
func (C *Cell) Cartesian(dst, f []float64) {
	rowTimes(dst, f, C.m)
	for k := 0; k < 3; k++ {
		dst[k] += C.origin[k]
	}
}

//MinImage applies, in place, the minimum image convention to the
//displacement d: on each periodic axis, d is replaced by the shortest
//equivalent displacement under the cell wrap. Non-periodic axes are
//left alone.
func (C *Cell) MinImage(d []float64) {
	if !C.pbc[0] && !C.pbc[1] && !C.pbc[2] {
		return
	}
	var f [3]float64
	rowTimes(f[:], d, C.inv)
	wrapped := false
	for k := 0; k < 3; k++ {
		if !C.pbc[k] {
			continue
		}
		if s := math.Round(f[k]); s != 0 {
			f[k] -= s
			wrapped = true
		}
	}
	if wrapped {
		rowTimes(d, f[:], C.m)
	}
}

//DeformationTo returns the 3x3 map T that takes a displacement expressed
//in the receiver cell to the same reduced coordinates expressed in the
//other cell (applied as a row vector, d' = d*T). Mapping the current
//bond vectors through the current-to-reference map removes any globally
//affine cell strain.
func (C *Cell) DeformationTo(other *Cell) *mat.Dense {
	T := mat.NewDense(3, 3, nil)
	T.Mul(C.inv, other.m)
	return T
}

//rowTimes puts in dst the product of the row vector d and the 3x3
//matrix A. dst and d may alias.
func rowTimes(dst, d []float64, A *mat.Dense) {
	d0, d1, d2 := d[0], d[1], d[2]
	for k := 0; k < 3; k++ {
		dst[k] = d0*A.At(0, k) + d1*A.At(1, k) + d2*A.At(2, k)
	}
}

//Frame is one immutable configuration snapshot: an ordered set of
//(id, position) pairs plus the simulation cell. The library never
//mutates a Frame; it is owned by the caller.
type Frame struct {
	ids    []int
	coords *v3.Matrix
	cell   *Cell
}

//NewFrame assembles a frame from per-particle ids, coordinates and a
//cell. The insertion order of ids is the particle index. It fails if the
//coordinates are missing or do not match the ids.
func NewFrame(ids []int, coords *v3.Matrix, cell *Cell) (*Frame, error) {
	if coords == nil {
		return nil, newError(InputFrameInvalid, "NewFrame: nil coordinates")
	}
	if coords.NVecs() != len(ids) {
		return nil, newError(InputFrameInvalid, "NewFrame: %d ids but %d coordinates", len(ids), coords.NVecs())
	}
	if cell == nil {
		return nil, newError(InputFrameInvalid, "NewFrame: nil simulation cell")
	}
	return &Frame{ids: ids, coords: coords, cell: cell}, nil
}

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int { return len(F.ids) }

//ID returns the identifier of the ith particle.
func (F *Frame) ID(i int) int { return F.ids[i] }

//IDs returns the identifiers of all the particles, in frame order.
//The slice is backed by the frame and must not be modified.
func (F *Frame) IDs() []int { return F.ids }

//Coords returns the coordinates of the frame, one row vector per
//particle, in frame order.
func (F *Frame) Coords() *v3.Matrix { return F.coords }

//Cell returns the simulation cell of the frame.
func (F *Frame) Cell() *Cell { return F.cell }
