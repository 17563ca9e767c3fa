/*
 * doc.go, part of gostrain
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

/*Package strain computes per-particle local strain for a particle
configuration relative to a reference configuration, with the
Falk-Langer atomic strain method.


	**gostrain Capabilities**

    Fits, per particle, the local deformation gradient that best maps the
	reference neighborhood bond vectors to the current ones (linear
	least squares over all neighbors within a cutoff).

    Obtains, from the fit, the Green-Lagrangian strain tensor, the von Mises
	shear strain invariant, the volumetric strain and the non-affine
	squared displacement (D2min).

    Honors periodic boundary conditions per axis, with the minimum image
	convention, for orthorhombic and triclinic simulation cells.

    Optionally removes the globally affine cell deformation before the
	per-particle fit, and can take the current coordinates as already
	unwrapped.

    Marks as invalid the particles whose neighborhoods are too small or
	too degenerate for the fit, instead of failing the whole computation.

    Aggregates per-particle results and summary statistics (average and
	maximum shear strain, average volumetric strain) into a serializable
	report, which can be persisted as compressed JSON (see the strf
	subpackage).

The per-particle computations are independent and run concurrently over
the available CPUs.
*/
package strain
