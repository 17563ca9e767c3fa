/*
 * v3.go, part of gostrain
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Matrix is a set of row vectors in 3D space, i.e. an N x 3 matrix.
//It embeds a gonum Dense so every gonum operation remains available.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense into a Matrix. The Dense must have
//3 columns, or the wrapped Matrix will panic on first use.
func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Vec returns the ith vector as a raw slice, backed by the matrix itself.
func (F *Matrix) Vec(i int) []float64 {
	return F.Dense.RawRowView(i)
}

//SetVec replaces the ith vector of the receiver with v.
func (F *Matrix) SetVec(i int, v []float64) {
	if len(v) < 3 {
		panic(ErrNotEnoughElements)
	}
	F.SetRow(i, v[0:3])
}

//SomeVecs puts in the receiver the vectors of A indicated by the
//indexes given. The receiver must have len(indexes) vectors.
func (F *Matrix) SomeVecs(A *Matrix, indexes []int) {
	if F.NVecs() != len(indexes) || A.NVecs() < len(indexes) {
		panic(ErrShape)
	}
	for i, v := range indexes {
		F.SetRow(i, A.RawRowView(v))
	}
}

//SetVecs is the inverse of SomeVecs: it replaces the vectors of the
//receiver indicated by the indexes with the vectors of A, in order.
func (F *Matrix) SetVecs(A *Matrix, indexes []int) {
	if A.NVecs() < len(indexes) || F.NVecs() < len(indexes) {
		panic(ErrShape)
	}
	for i, v := range indexes {
		F.SetRow(v, A.RawRowView(i))
	}
}

//SwapVecs exchanges the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	ri := append([]float64{}, F.RawRowView(i)...)
	F.SetRow(i, F.RawRowView(j))
	F.SetRow(j, ri)
}

//Norm returns the given norm of the matrix (2 for the Frobenius/Euclidean norm).
func (F *Matrix) Norm(ord float64) float64 {
	return mat.Norm(F.Dense, ord)
}

//Dot returns the dot product of the receiver and B, both taken as
//flat vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	fr, fc := F.Dims()
	br, bc := B.Dims()
	if fr != br || fc != bc {
		panic(ErrShape)
	}
	ret := 0.0
	for i := 0; i < fr; i++ {
		for j := 0; j < fc; j++ {
			ret += F.At(i, j) * B.At(i, j)
		}
	}
	return ret
}

//Cross puts in the receiver (a 1x3 Matrix) the cross product of a and b.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func Det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) -
		A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) +
		A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2))
}

//Errors

//Error is the error type for the v3 package, compatible with the
//Error interface of the parent package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("gostrain/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("gostrain/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("gostrain/v3: not enough elements in Matrix")
	ErrDeterminant       = PanicMsg("gostrain/v3: Determinants are only available for 3x3 matrices")
	ErrShape             = PanicMsg("gostrain/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("gostrain/v3: index out of range")
)
