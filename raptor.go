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

// raptor holds the solver for one source block: the L-row constraint matrix
// A of RFC 5053 section 5.4.2.4.2 and the block parameters derived from K.
// Both the encoder and the decoder drive the same machinery; the only
// difference is which LT equations get inserted (the K systematic rows with
// the source symbols as right-hand sides, or whatever rows were received).
//
// The matrix layout:
//
//	  K               S       H
//	  +-----------------------+-------+-------+
//	  |                       |       |       |
//	S |        G_LDPC         |  I_S  | 0_SxH |
//	  |                       |       |       |
//	  +-----------------------+-------+-------+
//	  |                               |       |
//	H |        G_Half                 |  I_H  |
//	  |                               |       |
//	  +-------------------------------+-------+
//	  |                                       |
//	  |                                       |
//	K |                 G_LT                  |
//	  |                                       |
//	  |                                       |
//	  +---------------------------------------+
type raptor struct {
	k      int
	l      int
	lPrime int
	matrix *sparseMatrix
}

// newRaptor creates the solver for a block of k source symbols and seeds it
// with the S LDPC and H Half constraint rows. Those rows have the zero
// symbol as right-hand side; the remaining K slots are filled by LT
// equations as they are inserted.
// k must be in the systematic index table, 0 <= k <= MaxSourceSymbols.
func newRaptor(k int) *raptor {
	l, lPrime, s, h, hPrime := intermediateSymbols(k)
	matrix := newSparseMatrix(l)

	// G_LDPC: every source column i contributes to three LDPC rows arranged
	// in successive clusters, per RFC 5053 section 5.4.2.3.
	compositions := make([][]int, s)
	for i := 0; i < k; i++ {
		a := 1 + (i/s)%(s-1)
		b := i % s
		compositions[b] = append(compositions[b], i)
		b = (b + a) % s
		compositions[b] = append(compositions[b], i)
		b = (b + a) % s
		compositions[b] = append(compositions[b], i)
	}
	for i := 0; i < s; i++ {
		compositions[i] = append(compositions[i], k+i) // I_S
		matrix.addEquation(compositions[i], symbol{})
	}

	// G_Half: row i holds the columns j whose gray sequence entry m[j] has
	// bit i set, making each row roughly half of the first K+S columns.
	compositions = make([][]int, h)
	m := buildGraySequence(k+s, hPrime)
	for i := 0; i < h; i++ {
		for j := 0; j < k+s; j++ {
			if bitSet(uint(m[j]), uint(i)) {
				compositions[i] = append(compositions[i], j)
			}
		}
		compositions[i] = append(compositions[i], k+s+i) // I_H
		matrix.addEquation(compositions[i], symbol{})
	}

	return &raptor{k: k, l: l, lPrime: lPrime, matrix: matrix}
}

// addEncodingSymbol inserts one LT equation: the row composition is derived
// from the symbol's ESI, the right-hand side is its payload. The payload is
// copied, so the caller's buffer is not written through during reduction.
func (r *raptor) addEncodingSymbol(es EncodingSymbol) {
	indices := findLTIndices(r.k, es.ESI, r.l, r.lPrime)
	data := make([]byte, len(es.Data))
	copy(data, es.Data)
	r.matrix.addEquation(indices, symbol{data: data})
}

// addEncodingSymbols inserts a set of encoding symbols and reports whether
// the matrix is now fully specified.
func (r *raptor) addEncodingSymbols(symbols []EncodingSymbol) bool {
	for _, es := range symbols {
		r.addEncodingSymbol(es)
	}
	return r.matrix.fullySpecified()
}

// fullySpecified reports whether enough equations have been inserted to
// solve for all L intermediate symbols.
func (r *raptor) fullySpecified() bool {
	return r.matrix.fullySpecified()
}

// reduce runs the final back-substitution. Call once, after the matrix is
// fully specified; afterwards intermediateSymbols returns the solved vector.
func (r *raptor) reduce() {
	r.matrix.reduce()
}

// intermediateSymbols exposes the solver's byte rows. Only meaningful after
// reduce.
func (r *raptor) intermediateSymbols() []symbol {
	return r.matrix.intermediate
}

// decode recovers the source block of the given byte length. Returns nil if
// the matrix is not fully specified yet. Otherwise it solves for the
// intermediate symbols, re-encodes the K systematic ESIs, and joins the
// pieces back into a buffer.
func (r *raptor) decode(sourceBlockLength int) []byte {
	if !r.matrix.fullySpecified() {
		return nil
	}

	r.matrix.reduce()

	source := make([]symbol, r.k)
	for i := 0; i < r.k; i++ {
		source[i] = ltEncode(r.k, uint32(i), r.l, r.lPrime, r.matrix.intermediate)
	}

	p := newPartition(sourceBlockLength, r.k)
	return p.decodeSourceBlock(source)
}
