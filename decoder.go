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

// SourceBlockDecoder reconstructs one source block from received encoding
// symbols. Symbols may arrive in any order and may be any mix of source and
// repair ESIs; each is folded into the solver as it is pushed. Decoding
// becomes possible once the matrix is fully specified, typically after K
// symbols plus a small overhead.
//
// A decoder is exclusively owned by one caller; it is not safe for
// concurrent use.
type SourceBlockDecoder struct {
	r *raptor
}

// NewSourceBlockDecoder creates a decoder for a block of k source symbols.
// k must match the encoder's NbSourceSymbols and be within the systematic
// index table, 0 <= k <= MaxSourceSymbols.
func NewSourceBlockDecoder(k int) *SourceBlockDecoder {
	return &SourceBlockDecoder{r: newRaptor(k)}
}

// PushEncodingSymbol feeds one received symbol into the solver. The data is
// copied; the caller keeps ownership of the slice. Redundant symbols cancel
// out inside the solver and are dropped silently.
func (d *SourceBlockDecoder) PushEncodingSymbol(data []byte, esi uint32) {
	d.r.addEncodingSymbol(EncodingSymbol{Data: data, ESI: esi})
}

// FullySpecified reports whether enough symbols were received to decode.
func (d *SourceBlockDecoder) FullySpecified() bool {
	return d.r.fullySpecified()
}

// Decode recovers the source block of the given total byte length. Returns
// nil if the received symbols do not determine the block yet; more symbols
// can be pushed and Decode retried.
func (d *SourceBlockDecoder) Decode(sourceBlockLength int) []byte {
	return d.r.decode(sourceBlockLength)
}

// DecodeSourceBlock is the convenience wrapper around SourceBlockDecoder
// for positional symbol sets: received[i] is the symbol with ESI i, or nil
// if it was lost. Returns the reconstructed buffer, or nil if the received
// symbols are insufficient.
func DecodeSourceBlock(received [][]byte, k int, sourceBlockLength int) []byte {
	dec := NewSourceBlockDecoder(k)
	for _, es := range EncodingSymbolsFromBlock(received) {
		dec.PushEncodingSymbol(es.Data, es.ESI)
	}
	return dec.Decode(sourceBlockLength)
}
