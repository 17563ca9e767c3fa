/*
 * property.go, part of gostrain
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

//Property is a dense per-particle field: a scalar or fixed-width vector
//per particle, indexed 0..N-1 in frame order. A particle can additionally
//be flagged as not carrying a value, which keeps "skipped" and
//"computed-as-zero" apart.
type Property struct {
	name    string
	comps   int
	data    []float64
	present []bool
}

//NewProperty returns a Property with room for n particles of comps
//components each. No particle carries a value yet.
func NewProperty(name string, n, comps int) *Property {
	return &Property{
		name:    name,
		comps:   comps,
		data:    make([]float64, n*comps),
		present: make([]bool, n),
	}
}

//Name returns the name of the property.
func (P *Property) Name() string { return P.name }

//Len returns the number of particles the property spans.
func (P *Property) Len() int { return len(P.present) }

//Comps returns the number of components per particle.
func (P *Property) Comps() int { return P.comps }

//Present returns whether particle i carries a value.
func (P *Property) Present(i int) bool { return P.present[i] }

//Float returns the scalar value of particle i (its first component).
func (P *Property) Float(i int) float64 {
	return P.data[i*P.comps]
}

//SetFloat sets the scalar value of particle i and marks it present.
func (P *Property) SetFloat(i int, v float64) {
	P.data[i*P.comps] = v
	P.present[i] = true
}

//Component returns the cth component of particle i.
func (P *Property) Component(i, c int) float64 {
	return P.data[i*P.comps+c]
}

//Vector returns a copy of all the components of particle i, or nil if
//the particle carries no value.
func (P *Property) Vector(i int) []float64 {
	if !P.present[i] {
		return nil
	}
	ret := make([]float64, P.comps)
	copy(ret, P.data[i*P.comps:(i+1)*P.comps])
	return ret
}

//SetVector sets all the components of particle i and marks it present.
//Panics if v does not have exactly Comps elements.
func (P *Property) SetVector(i int, v []float64) {
	if len(v) != P.comps {
		panic(ErrPropertyWidth)
	}
	copy(P.data[i*P.comps:(i+1)*P.comps], v)
	P.present[i] = true
}

//Floats returns the raw scalar data of a 1-component property, backed by
//the property itself. Panics for multi-component properties.
func (P *Property) Floats() []float64 {
	if P.comps != 1 {
		panic(ErrPropertyWidth)
	}
	return P.data
}

//PanicMsg is a message used for panics. For errors use CompError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrPropertyWidth = PanicMsg("gostrain: wrong number of components for property")
)
