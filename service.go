/*
 * service.go, part of gostrain
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
	"log"

	"github.com/rmera/gostrain/strf"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Service drives strain computations: it owns the cutoff, the options and
//the pinned reference frame, and turns one current frame into one Report
//per Compute call. A Service is reusable for a sequence of current
//frames against one fixed reference. The setters must not be called
//while a Compute call is in flight.
type Service struct {
	cutoff float64
	opts   *Options
	ref    *Frame
	//NewFinder, when not nil, builds the neighbor query structure for a
	//reference frame. The default is a DistFinder.
	NewFinder func(*Frame) NeighborFinder
}

//NewService returns a Service with the default cutoff (0.10) and options.
func NewService() *Service {
	return &Service{cutoff: 0.10, opts: DefaultOptions()}
}

//SetCutoff sets the neighbor cutoff for all subsequent computations.
//A non-positive cutoff is accepted: it yields no neighbors, so every
//particle of the output is invalid.
func (S *Service) SetCutoff(cutoff float64) {
	S.cutoff = cutoff
}

//SetReferenceFrame pins a reference configuration reused by all future
//Compute calls until changed. If never called (or called with nil), each
//Compute call uses the current frame as its own reference, for which
//zero strain everywhere is the expected result.
func (S *Service) SetReferenceFrame(ref *Frame) {
	S.ref = ref
}

//SetOptions replaces the active options wholesale. A nil value restores
//the defaults.
func (S *Service) SetOptions(o *Options) {
	if o == nil {
		o = DefaultOptions()
	}
	S.opts = o
}

//Compute runs one strain pass over the current frame against the pinned
//(or self) reference and returns a fresh Report. If an output path is
//given and not empty, the report is additionally persisted through the
//strf package; persistence is best-effort and a failure there only
//produces a warning, never an error.
func (S *Service) Compute(current *Frame, outputPath ...string) (*Report, error) {
	if current == nil || current.Coords() == nil {
		return nil, errDecorate(newError(InputFrameInvalid, "could not build a position view from the current frame"), "Compute")
	}
	ref := S.ref
	if ref == nil {
		ref = current
	}
	if current.Len() != ref.Len() {
		return nil, errDecorate(newError(FrameSizeMismatch,
			"number of atoms in current (%d) and reference (%d) frames does not match", current.Len(), ref.Len()), "Compute")
	}
	var finder NeighborFinder
	if S.NewFinder != nil {
		finder = S.NewFinder(ref)
	}
	eng := NewEngine(current, ref, S.cutoff, S.opts, finder)
	ninvalid := S.run(eng, current.Len())
	report := S.assemble(eng, current, ninvalid)
	if len(outputPath) > 0 && outputPath[0] != "" {
		if err := strf.Write(outputPath[0], report); err != nil {
			//best-effort: the in-memory report is still good
			log.Printf("gostrain: could not persist the report: %s", err.Error())
		}
	}
	return report, nil
}

//run fans the per-particle pass out over Cpus goroutines, each working a
//disjoint index range, and merges their partial invalid counts. The
//engine writes only per-particle slots, so no locking is involved.
func (S *Service) run(eng *Engine, natoms int) int {
	if natoms == 0 {
		return 0
	}
	cpus := S.opts.Cpus()
	if cpus < 1 { //a zero-value Options carries no CPU count
		cpus = 1
	}
	if cpus > natoms {
		cpus = natoms
	}
	chunk := (natoms + cpus - 1) / cpus
	results := make([]chan int, 0, cpus)
	for start := 0; start < natoms; start += chunk {
		end := start + chunk
		if end > natoms {
			end = natoms
		}
		c := make(chan int)
		results = append(results, c)
		go func(start, end int, c chan int) {
			invalid := 0
			for i := start; i < end; i++ {
				if !eng.ComputeParticle(i) {
					invalid++
				}
			}
			c <- invalid
		}(start, end, c)
	}
	ninvalid := 0
	for _, c := range results {
		ninvalid += <-c
	}
	return ninvalid
}

//assemble reduces the engine output into a Report.
func (S *Service) assemble(eng *Engine, current *Frame, ninvalid int) *Report {
	natoms := current.Len()
	shear := eng.ShearStrains().Floats()
	vol := eng.VolumetricStrains().Floats()
	report := &Report{
		Cutoff:              S.cutoff,
		NumInvalidParticles: ninvalid,
		AtomicStrain:        make([]*AtomicStrain, natoms),
	}
	if natoms > 0 {
		report.Summary = Summary{
			AverageShearStrain:      stat.Mean(shear, nil),
			AverageVolumetricStrain: stat.Mean(vol, nil),
			MaxShearStrain:          floats.Max(shear),
		}
	}
	tensors := eng.StrainTensors()
	gradients := eng.DeformationGradients()
	d2min := eng.NonaffineSquaredDisplacements()
	for i := 0; i < natoms; i++ {
		a := &AtomicStrain{
			ID:               current.ID(i),
			ShearStrain:      shear[i],
			VolumetricStrain: vol[i],
			Invalid:          eng.Invalid(i),
		}
		if tensors != nil && tensors.Present(i) {
			//stored as xx,yy,zz,yz,xz,xy; serialized as xx,yy,zz,xy,xz,yz
			a.StrainTensor = []float64{
				tensors.Component(i, 0), tensors.Component(i, 1), tensors.Component(i, 2),
				tensors.Component(i, 5), tensors.Component(i, 4), tensors.Component(i, 3),
			}
		}
		if gradients != nil && gradients.Present(i) {
			a.DeformationGradient = gradients.Vector(i)
		}
		if d2min != nil && d2min.Present(i) {
			v := d2min.Float(i)
			a.D2min = &v
		}
		report.AtomicStrain[i] = a
	}
	return report
}
