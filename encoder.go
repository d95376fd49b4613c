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

// SourceBlockEncoder encodes one source block. Construction partitions the
// buffer into K source symbols, inserts them as the K systematic LT
// equations on top of the seeded constraint rows, and solves for the L
// intermediate symbols once. After that, Fountain produces encoding symbols
// for arbitrary ESIs without touching the solver again.
//
// An encoder is exclusively owned by one caller; it is not safe for
// concurrent use. Two blocks encode concurrently on two encoders.
type SourceBlockEncoder struct {
	intermediate []symbol
	k            int
	l            int
	lPrime       int
}

// NewSourceBlockEncoder creates an encoder for the buffer, split into at
// most maxSourceSymbols source symbols. The number actually used is
// NbSourceSymbols.
// maxSourceSymbols must be in the systematic index table,
// 0 < maxSourceSymbols <= MaxSourceSymbols.
func NewSourceBlockEncoder(buf []byte, maxSourceSymbols int) *SourceBlockEncoder {
	p := newPartition(len(buf), maxSourceSymbols)
	source := p.createSourceBlock(buf)
	k := len(source)

	r := newRaptor(k)
	r.addEncodingSymbols(source)
	r.reduce()

	return &SourceBlockEncoder{
		intermediate: r.intermediateSymbols(),
		k:            k,
		l:            r.l,
		lPrime:       r.lPrime,
	}
}

// NbSourceSymbols returns the number of source symbols K in the block.
func (e *SourceBlockEncoder) NbSourceSymbols() int {
	return e.k
}

// Fountain generates the encoding symbol with the given ESI. Symbols with
// ESI < K reproduce the source symbols (pieces shorter than the symbol size
// come back zero-padded to it); higher ESIs are repair symbols. The stream
// is unbounded: any 32-bit ESI is valid.
func (e *SourceBlockEncoder) Fountain(esi uint32) []byte {
	s := ltEncode(e.k, esi, e.l, e.lPrime, e.intermediate)
	return s.data
}

// EncodeSourceBlock is the convenience wrapper around SourceBlockEncoder:
// it emits the K source symbols followed by nbRepair repair symbols, for
// ESIs 0..K+nbRepair-1, and returns them with K.
func EncodeSourceBlock(buf []byte, maxSourceSymbols, nbRepair int) ([][]byte, int) {
	enc := NewSourceBlockEncoder(buf, maxSourceSymbols)
	n := enc.NbSourceSymbols() + nbRepair
	out := make([][]byte, 0, n)
	for esi := 0; esi < n; esi++ {
		out = append(out, enc.Fountain(uint32(esi)))
	}
	return out, enc.NbSourceSymbols()
}
