// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package raptor

// sparseMatrix is the solver's data structure: L rows of XOR equations over
// the intermediate symbols. The coefficients of a row are the sorted,
// duplicate-free column indices whose GF(2) coefficient is 1, so if
// equation i is
//
//	C[0] ^ C[2] ^ C[3] ^ C[9] = [0xD2, 0x38]
//
// it is stored as coeff[i] = [0, 2, 3, 9], intermediate[i] = [0xD2, 0x38].
//
// Rows are kept triangular as equations arrive: every occupied slot s has
// coeff[s][0] == s, and no two occupied slots share a leftmost column. Once
// all L slots are occupied the matrix is fully specified and reduce turns
// intermediate into the solved symbol vector.
type sparseMatrix struct {
	coeff        [][]int
	intermediate []symbol
}

// newSparseMatrix allocates an L-row matrix with every slot empty.
func newSparseMatrix(l int) *sparseMatrix {
	return &sparseMatrix{
		coeff:        make([][]int, l),
		intermediate: make([]symbol, l),
	}
}

// symmetricDiff computes the symmetric difference of two sorted,
// duplicate-free index slices: the sorted XOR of the bit vectors they
// represent. Runs in O(len(a)+len(b)).
func symmetricDiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// addEquation incorporates one constraint: the XOR of the intermediate
// symbols at components equals b. The online strategy is a variant of
// Bioglio, Grangetto, and Gaeta (http://www.di.unito.it/~bioglio/Papers/CL2009-lt.pdf).
// The incoming equation is reduced against the stored rows until it either
// fits into an empty slot (at its leftmost column) or cancels to nothing and
// is discarded as redundant.
func (m *sparseMatrix) addEquation(components []int, b symbol) {
	for len(components) > 0 && len(m.coeff[components[0]]) > 0 {
		s := components[0]
		if len(components) >= len(m.coeff[s]) {
			b.xor(m.intermediate[s])
			components = symmetricDiff(components, m.coeff[s])
		} else {
			// The incoming row is sparser than the stored one: swap them,
			// then keep reducing the displaced row.
			components, m.coeff[s] = m.coeff[s], components
			b, m.intermediate[s] = m.intermediate[s], b
		}
	}

	if len(components) > 0 {
		m.coeff[components[0]] = components
		m.intermediate[components[0]] = b
	}
}

// fullySpecified reports whether every pivot slot is occupied, i.e. whether
// the equations received so far determine all intermediate symbols.
func (m *sparseMatrix) fullySpecified() bool {
	for _, r := range m.coeff {
		if len(r) == 0 {
			return false
		}
	}
	return true
}

// reduce performs the final back-substitution over the triangular matrix,
// in descending pivot order. Must only be called once the matrix is fully
// specified. Afterwards coeff[i] == [i] and intermediate[i] is the solved
// intermediate symbol C[i].
func (m *sparseMatrix) reduce() {
	for i := len(m.coeff) - 1; i >= 0; i-- {
		for j := 0; j < i; j++ {
			cj := m.coeff[j]
			for k := 0; k < len(cj); k++ {
				if cj[k] == i {
					m.intermediate[j].xor(m.intermediate[i])
					break
				}
			}
		}
		m.coeff[i] = m.coeff[i][:1]
	}
}
