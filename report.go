/*
 * report.go, part of gostrain
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
	"encoding/json"
	"io"
)

//Summary holds the global statistics of one strain computation. The
//averages run over all the particles, the invalid ones contributing 0.0:
//ill-posed fits do not silently shrink the denominator.
type Summary struct {
	AverageShearStrain      float64 `json:"average_shear_strain"`
	AverageVolumetricStrain float64 `json:"average_volumetric_strain"`
	MaxShearStrain          float64 `json:"max_shear_strain"`
}

//AtomicStrain is a ready-to-serialize container for the strain
//quantities of one particle. StrainTensor (6 components: xx, yy, zz, xy,
//xz, yz) and DeformationGradient (9 components, column-major) are only
//present when the corresponding option was enabled and the fit was
//well-posed; D2min is null under the same conditions. ShearStrain and
//VolumetricStrain always carry a number, 0.0 when skipped or invalid.
type AtomicStrain struct {
	ID                  int       `json:"id"`
	ShearStrain         float64   `json:"shear_strain"`
	VolumetricStrain    float64   `json:"volumetric_strain"`
	StrainTensor        []float64 `json:"strain_tensor,omitempty"`
	DeformationGradient []float64 `json:"deformation_gradient,omitempty"`
	D2min               *float64  `json:"D2min"`
	Invalid             bool      `json:"invalid"`
}

//Report is the output record of one strain computation. The ith element
//of AtomicStrain corresponds to the ith particle of the current frame
//(strict positional correspondence, not an id-based join).
type Report struct {
	Cutoff              float64         `json:"cutoff"`
	NumInvalidParticles int             `json:"num_invalid_particles"`
	Summary             Summary         `json:"summary"`
	AtomicStrain        []*AtomicStrain `json:"atomic_strain"`
}

//Marshal serializes the report as JSON.
func (R *Report) Marshal() ([]byte, error) {
	ret, err := json.Marshal(R)
	if err != nil {
		return nil, newError(ExportUnsupported, "Report.Marshal: %s", err.Error())
	}
	return ret, nil
}

//Write encodes the report as JSON into out.
func (R *Report) Write(out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return newError(ExportUnsupported, "Report.Write: %s", err.Error())
	}
	return nil
}
