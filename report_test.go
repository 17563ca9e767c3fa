/*
 * report_test.go, part of gostrain
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v3 "github.com/rmera/gostrain/v3"
)

func TestReportSerialization(t *testing.T) {
	frame := cubicLattice(t, 3, 1.0, true)
	s := NewService()
	s.SetCutoff(1.1)
	report, err := s.Compute(frame)
	require.NoError(t, err)
	raw, err := report.Marshal()
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "cutoff")
	assert.Contains(t, decoded, "num_invalid_particles")
	summary, ok := decoded["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, summary, "average_shear_strain")
	assert.Contains(t, summary, "average_volumetric_strain")
	assert.Contains(t, summary, "max_shear_strain")
	atoms, ok := decoded["atomic_strain"].([]interface{})
	require.True(t, ok)
	require.Len(t, atoms, frame.Len())
	first, ok := atoms[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(frame.ID(0)), first["id"])
	assert.Len(t, first["strain_tensor"], 6)
	assert.Len(t, first["deformation_gradient"], 9)
	assert.NotNil(t, first["D2min"])
	assert.Equal(t, false, first["invalid"])
}

func TestReportAbsentFields(t *testing.T) {
	//an all-invalid computation: optional fields must be omitted, D2min
	//must be null, never a stale zero that looks like a real value
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	require.NoError(t, err)
	frame, err := NewFrame([]int{1, 2}, coords, NewCubicCell(50, false))
	require.NoError(t, err)
	s := NewService()
	s.SetCutoff(5)
	report, err := s.Compute(frame)
	require.NoError(t, err)
	raw, err := report.Marshal()
	require.NoError(t, err)
	str := string(raw)
	assert.False(t, strings.Contains(str, "strain_tensor"))
	assert.False(t, strings.Contains(str, "deformation_gradient"))
	assert.True(t, strings.Contains(str, `"D2min":null`))
	assert.True(t, strings.Contains(str, `"invalid":true`))
	assert.True(t, strings.Contains(str, `"shear_strain":0`))
}

func TestPropertyPresence(t *testing.T) {
	p := NewProperty("test", 3, 6)
	assert.False(t, p.Present(1))
	assert.Nil(t, p.Vector(1))
	p.SetVector(1, []float64{1, 2, 3, 4, 5, 6})
	assert.True(t, p.Present(1))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, p.Vector(1))
	assert.Equal(t, 4.0, p.Component(1, 3))
	assert.False(t, p.Present(0))
	assert.Panics(t, func() { p.SetVector(0, []float64{1}) })
	assert.Panics(t, func() { p.Floats() })

	scalar := NewProperty("d2", 2, 1)
	scalar.SetFloat(0, 2.5)
	assert.Equal(t, 2.5, scalar.Float(0))
	assert.Equal(t, []float64{2.5, 0}, scalar.Floats())
	assert.Equal(t, "d2", scalar.Name())
	assert.Equal(t, 2, scalar.Len())
	assert.Equal(t, 1, scalar.Comps())
}
