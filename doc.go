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

/*
Package raptor implements the systematic Raptor fountain code (the R10 code)
from RFC 5053.

A source block is split into K equal-or-near-equal source symbols. From those
the encoder can produce an unbounded stream of encoding symbols, labeled by
Encoding Symbol Identifiers (ESIs), such that the original block can be
recovered from any sufficiently large subset of them -- typically K symbols
plus a small overhead. The code is systematic: encoding symbols with ESI < K
are the source symbols themselves, so in the common no-loss case the receiver
pays nothing for the coding.

Encoding works by solving for L = K+S+H intermediate symbols. The solver is
seeded with S LDPC and H Half constraint rows, then the K source symbols are
inserted as LT equations. The same sparse GF(2) matrix, triangularized
on the fly as equations arrive, serves the decoder: received (ESI, data)
pairs are inserted until every pivot slot is occupied, after which a single
back-substitution pass recovers the intermediate symbols and the source
symbols are regenerated by LT re-encoding.

A typical transmission system sends the K source symbols as-is, then repair
symbols with ESI >= K until the receiver reports the block reconstructed:

	enc := raptor.NewSourceBlockEncoder(buf, 64)
	k := enc.NbSourceSymbols()
	// send enc.Fountain(esi) for esi = 0..k-1, then repair ESIs >= k

	dec := raptor.NewSourceBlockDecoder(k)
	for each received (data, esi):
		dec.PushEncodingSymbol(data, esi)
		if dec.FullySpecified() {
			out := dec.Decode(len(buf))
			...
		}

The code supports a maximum of 8192 source symbols per block; very large
transfers should be split into sub-blocks per RFC 5053 before encoding.
*/
package raptor
