/*
 * options.go, part of gostrain
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

import "runtime"

//Options controls what a strain computation produces and how the bond
//vectors are built. It is read-only for the duration of one Compute call.
type Options struct {
	eliminateCellDeformation bool
	assumeUnwrapped          bool
	deformationGradient      bool
	strainTensors            bool
	d2min                    bool
	cpus                     int
}

//DefaultOptions returns an Options with the default values: all the
//per-particle quantities are computed, the cell deformation is kept, the
//current coordinates are taken as wrapped, and all available CPUs are used.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.eliminateCellDeformation = false
	ret.assumeUnwrapped = false
	ret.deformationGradient = true
	ret.strainTensors = true
	ret.d2min = true
	ret.cpus = runtime.NumCPU()
	return ret
}

//EliminateCellDeformation returns whether the globally affine cell strain
//is removed before the per-particle fit, and sets the value to the one
//given, if any.
func (O *Options) EliminateCellDeformation(b ...bool) bool {
	ret := O.eliminateCellDeformation
	if len(b) > 0 {
		O.eliminateCellDeformation = b[0]
	}
	return ret
}

//AssumeUnwrapped returns whether the current coordinates are taken as
//already unwrapped (so no minimum image correction is applied to the
//current bond vectors), and sets the value to the one given, if any.
func (O *Options) AssumeUnwrapped(b ...bool) bool {
	ret := O.assumeUnwrapped
	if len(b) > 0 {
		O.assumeUnwrapped = b[0]
	}
	return ret
}

//DeformationGradient returns whether the per-particle deformation
//gradients are kept in the output, and sets the value to the one given,
//if any.
func (O *Options) DeformationGradient(b ...bool) bool {
	ret := O.deformationGradient
	if len(b) > 0 {
		O.deformationGradient = b[0]
	}
	return ret
}

//StrainTensors returns whether the Green-Lagrangian strain tensors, and
//with them the shear and volumetric invariants, are computed, and sets
//the value to the one given, if any.
func (O *Options) StrainTensors(b ...bool) bool {
	ret := O.strainTensors
	if len(b) > 0 {
		O.strainTensors = b[0]
	}
	return ret
}

//D2min returns whether the non-affine squared displacement is computed,
//and sets the value to the one given, if any.
func (O *Options) D2min(b ...bool) bool {
	ret := O.d2min
	if len(b) > 0 {
		O.d2min = b[0]
	}
	return ret
}

//Cpus returns the number of goroutines used for the per-particle pass,
//and sets it, if a valid value is given.
func (O *Options) Cpus(n ...int) int {
	ret := O.cpus
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return ret
}
