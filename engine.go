/*
 * engine.go, part of gostrain
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

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Engine computes, one particle at a time, the local deformation gradient
//that best maps the reference neighborhood of the particle to its current
//neighborhood, and the strain quantities derived from it. The
//per-particle computations are independent: ComputeParticle writes only
//the output slots of its own particle, so it can be called concurrently
//for different particles.
type Engine struct {
	cur, ref *Frame
	finder   NeighborFinder
	cutoff   float64
	o        Options //copied at construction, immutable afterwards
	toRef    *mat.Dense

	shear    *Property
	vol      *Property
	tensor   *Property
	gradient *Property
	d2min    *Property
	valid    *Property
}

//NewEngine returns an Engine for one current/reference frame pair. Both
//frames must have the same number of atoms (the caller checks; see
//Service.Compute). Neighborhoods are taken from the reference frame
//through the given finder, or a DistFinder over the reference frame when
//finder is nil.
func NewEngine(current, reference *Frame, cutoff float64, o *Options, finder NeighborFinder) *Engine {
	if o == nil {
		o = DefaultOptions()
	}
	if finder == nil {
		finder = NewDistFinder(reference)
	}
	E := &Engine{
		cur:    current,
		ref:    reference,
		finder: finder,
		cutoff: cutoff,
		o:      *o,
	}
	n := current.Len()
	E.shear = NewProperty("shear_strain", n, 1)
	E.vol = NewProperty("volumetric_strain", n, 1)
	E.valid = NewProperty("valid", n, 1)
	if E.o.strainTensors {
		E.tensor = NewProperty("strain_tensor", n, 6)
	}
	if E.o.deformationGradient {
		E.gradient = NewProperty("deformation_gradient", n, 9)
	}
	if E.o.d2min {
		E.d2min = NewProperty("D2min", n, 1)
	}
	if E.o.eliminateCellDeformation {
		E.toRef = current.Cell().DeformationTo(reference.Cell())
	}
	return E
}

//ShearStrains returns the per-particle von Mises shear strain invariants.
func (E *Engine) ShearStrains() *Property { return E.shear }

//VolumetricStrains returns the per-particle volumetric strains.
func (E *Engine) VolumetricStrains() *Property { return E.vol }

//StrainTensors returns the per-particle Green-Lagrangian strain tensors
//(6 components: xx, yy, zz, yz, xz, xy), or nil if they were not requested.
func (E *Engine) StrainTensors() *Property { return E.tensor }

//DeformationGradients returns the per-particle deformation gradients
//(9 components, column-major), or nil if they were not requested.
func (E *Engine) DeformationGradients() *Property { return E.gradient }

//NonaffineSquaredDisplacements returns the per-particle D2min values, or
//nil if they were not requested.
func (E *Engine) NonaffineSquaredDisplacements() *Property { return E.d2min }

//Valid returns the per-particle validity flags (1.0 valid, 0.0 invalid).
func (E *Engine) Valid() *Property { return E.valid }

//Invalid returns whether the fit for particle i was ill-posed.
func (E *Engine) Invalid(i int) bool { return E.valid.Float(i) == 0 }

//markInvalid records an ill-posed fit: the invariants default to 0.0 so
//summary arithmetic stays well-defined, everything else stays absent.
func (E *Engine) markInvalid(i int) {
	E.valid.SetFloat(i, 0)
	E.shear.SetFloat(i, 0)
	E.vol.SetFloat(i, 0)
}

//ComputeParticle computes the strain quantities of particle i and stores
//them in the per-particle output properties. It returns false if the
//neighborhood of i is too small or too degenerate for the fit, in which
//case the particle is marked invalid. It never fails otherwise.
func (E *Engine) ComputeParticle(i int) bool {
	neighbors := E.finder.Neighbors(i, E.cutoff)
	if len(neighbors) < 3 { //the 3x3 correlation matrix would be rank-deficient
		E.markInvalid(i)
		return false
	}
	refc := E.ref.Coords()
	curc := E.cur.Coords()
	refcell := E.ref.Cell()
	curcell := E.cur.Cell()
	x0 := refc.Vec(i)
	x1 := curc.Vec(i)
	d0s := make([][3]float64, len(neighbors))
	d1s := make([][3]float64, len(neighbors))
	var v, w [3][3]float64 //v = sum d0 (x) d0, w = sum d1 (x) d0
	for nj, j := range neighbors {
		d0 := &d0s[nj]
		d1 := &d1s[nj]
		y0 := refc.Vec(j)
		y1 := curc.Vec(j)
		for k := 0; k < 3; k++ {
			d0[k] = y0[k] - x0[k]
			d1[k] = y1[k] - x1[k]
		}
		refcell.MinImage(d0[:])
		if !E.o.assumeUnwrapped {
			curcell.MinImage(d1[:])
		}
		if E.toRef != nil {
			rowTimes(d1[:], d1[:], E.toRef)
		}
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				v[a][b] += d0[a] * d0[b]
				w[a][b] += d1[a] * d0[b]
			}
		}
	}
	det := det3(&v)
	tr := (v[0][0] + v[1][1] + v[2][2]) / 3
	if math.Abs(det) <= appzero*tr*tr*tr {
		E.markInvalid(i)
		return false
	}
	var vinv, f [3][3]float64
	adjugate(&v, &vinv)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			vinv[a][b] /= det
		}
	}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				f[a][b] += w[a][c] * vinv[c][b]
			}
		}
	}
	E.valid.SetFloat(i, 1)
	if E.gradient != nil {
		E.gradient.SetVector(i, []float64{
			f[0][0], f[1][0], f[2][0],
			f[0][1], f[1][1], f[2][1],
			f[0][2], f[1][2], f[2][2],
		})
	}
	if E.tensor != nil {
		var eta [3][3]float64 //1/2(FtF - I)
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				s := 0.0
				for c := 0; c < 3; c++ {
					s += f[c][a] * f[c][b]
				}
				if a == b {
					s -= 1
				}
				eta[a][b] = s / 2
			}
		}
		E.tensor.SetVector(i, []float64{
			eta[0][0], eta[1][1], eta[2][2],
			eta[1][2], eta[0][2], eta[0][1],
		})
		E.vol.SetFloat(i, (eta[0][0]+eta[1][1]+eta[2][2])/3)
		xx, yy, zz := eta[0][0], eta[1][1], eta[2][2]
		xy, yz, xz := eta[0][1], eta[1][2], eta[0][2]
		E.shear.SetFloat(i, math.Sqrt(
			((xx-yy)*(xx-yy)+(yy-zz)*(yy-zz)+(zz-xx)*(zz-xx))/2+
				3*(xy*xy+yz*yz+xz*xz)))
	} else {
		E.shear.SetFloat(i, 0)
		E.vol.SetFloat(i, 0)
	}
	if E.d2min != nil {
		res := 0.0
		for nj := range d0s {
			d0 := &d0s[nj]
			d1 := &d1s[nj]
			for a := 0; a < 3; a++ {
				r := d1[a] - f[a][0]*d0[0] - f[a][1]*d0[1] - f[a][2]*d0[2]
				res += r * r
			}
		}
		E.d2min.SetFloat(i, res)
	}
	return true
}

//det3 returns the determinant of a 3x3 matrix given as an array.
func det3(a *[3][3]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[2][1]*a[1][2]) -
		a[1][0]*(a[0][1]*a[2][2]-a[2][1]*a[0][2]) +
		a[2][0]*(a[0][1]*a[1][2]-a[1][1]*a[0][2])
}

//adjugate puts in dst the adjugate of a, so that a^-1 = adj(a)/det(a).
func adjugate(a, dst *[3][3]float64) {
	dst[0][0] = a[1][1]*a[2][2] - a[1][2]*a[2][1]
	dst[0][1] = a[0][2]*a[2][1] - a[0][1]*a[2][2]
	dst[0][2] = a[0][1]*a[1][2] - a[0][2]*a[1][1]
	dst[1][0] = a[1][2]*a[2][0] - a[1][0]*a[2][2]
	dst[1][1] = a[0][0]*a[2][2] - a[0][2]*a[2][0]
	dst[1][2] = a[0][2]*a[1][0] - a[0][0]*a[1][2]
	dst[2][0] = a[1][0]*a[2][1] - a[1][1]*a[2][0]
	dst[2][1] = a[0][1]*a[2][0] - a[0][0]*a[2][1]
	dst[2][2] = a[0][0]*a[1][1] - a[0][1]*a[1][0]
}
