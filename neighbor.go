/*
 * neighbor.go, part of gostrain
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

//NeighborFinder answers fixed-radius neighbor queries against one frame.
//Implementations must be safe for concurrent readers, as the per-particle
//pass queries them from several goroutines at once.
type NeighborFinder interface {
	//Neighbors returns the indexes of all the particles other than center
	//whose minimum-image distance to center is at most cutoff.
	Neighbors(center int, cutoff float64) []int
}

//DistFinder is the default NeighborFinder: a direct minimum-image scan
//over all the particles of a frame. Any correct acceleration structure
//can replace it through the NeighborFinder interface.
type DistFinder struct {
	frame *Frame
}

//NewDistFinder returns a DistFinder over the given frame.
func NewDistFinder(f *Frame) *DistFinder {
	return &DistFinder{frame: f}
}

//Neighbors returns the indexes of all particles within cutoff of center,
//under the periodic wrap of the frame's cell. A non-positive cutoff
//yields no neighbors.
func (D *DistFinder) Neighbors(center int, cutoff float64) []int {
	if cutoff <= 0 {
		return nil
	}
	coords := D.frame.Coords()
	cell := D.frame.Cell()
	n := coords.NVecs()
	c := coords.Vec(center)
	cut2 := cutoff * cutoff
	var d [3]float64
	ret := make([]int, 0, 16)
	for j := 0; j < n; j++ {
		if j == center {
			continue
		}
		x := coords.Vec(j)
		d[0] = x[0] - c[0]
		d[1] = x[1] - c[1]
		d[2] = x[2] - c[2]
		cell.MinImage(d[:])
		if d[0]*d[0]+d[1]*d[1]+d[2]*d[2] <= cut2 {
			ret = append(ret, j)
		}
	}
	return ret
}
