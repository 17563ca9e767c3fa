/*
 * v3_test.go, part of gostrain
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
	"math"
	"testing"
)

func TestNewMatrix(t *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if A.NVecs() != 2 {
		t.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		t.Error("a slice of length 4 should not make a Matrix")
	}
}

func TestVecViewIsAView(t *testing.T) {
	A := Zeros(3)
	v := A.VecView(1)
	v.Set(0, 2, 4.25)
	if A.At(1, 2) != 4.25 {
		t.Errorf("changes in the view should reflect in the matrix")
	}
	raw := A.Vec(1)
	raw[0] = -1
	if A.At(1, 0) != -1 {
		t.Errorf("Vec should be backed by the matrix")
	}
}

func TestSomeVecs(t *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3})
	B := Zeros(2)
	B.SomeVecs(A, []int{1, 3})
	if B.At(0, 0) != 1 || B.At(1, 0) != 3 {
		t.Errorf("SomeVecs picked the wrong vectors: %v", B)
	}
	C := Zeros(4)
	C.SetVecs(B, []int{2, 0})
	if C.At(2, 1) != 1 || C.At(0, 1) != 3 {
		t.Errorf("SetVecs put the vectors in the wrong place: %v", C)
	}
}

func TestDet(t *testing.T) {
	A, _ := NewMatrix([]float64{2, 0, 0, 0, 3, 0, 0, 0, 4})
	if d := Det(A); math.Abs(d-24) > appzero {
		t.Errorf("determinant should be 24, got %f", d)
	}
	B, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if d := Det(B); math.Abs(d) > appzero {
		t.Errorf("singular matrix should have zero determinant, got %f", d)
	}
}

func TestCross(t *testing.T) {
	a, _ := NewMatrix([]float64{1, 0, 0})
	b, _ := NewMatrix([]float64{0, 1, 0})
	c := Zeros(1)
	c.Cross(a, b)
	if c.At(0, 0) != 0 || c.At(0, 1) != 0 || c.At(0, 2) != 1 {
		t.Errorf("e1 x e2 should be e3, got %v", c)
	}
}

func TestNormAndDot(t *testing.T) {
	a, _ := NewMatrix([]float64{3, 4, 0})
	if n := a.Norm(2); math.Abs(n-5) > appzero {
		t.Errorf("norm should be 5, got %f", n)
	}
	b, _ := NewMatrix([]float64{1, 1, 1})
	if d := a.Dot(b); math.Abs(d-7) > appzero {
		t.Errorf("dot should be 7, got %f", d)
	}
}

func TestSwapVecs(t *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	A.SwapVecs(0, 1)
	if A.At(0, 0) != 2 || A.At(1, 0) != 1 {
		t.Errorf("SwapVecs failed: %v", A)
	}
}
