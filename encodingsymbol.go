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

// EncodingSymbol is one encoding symbol as it travels between the codec and
// the caller: a payload and the Encoding Symbol Identifier that determines
// its LT composition. The Data slice is borrowed, not copied; the symbol is
// a short-lived view used to feed equations into the solver.
type EncodingSymbol struct {
	Data []byte
	ESI  uint32
}

// EncodingSymbolsFromBlock converts a positional symbol set, where entry i
// is the symbol with ESI i or nil if it was lost, into the received-symbol
// list consumed by the decoder.
func EncodingSymbolsFromBlock(block [][]byte) []EncodingSymbol {
	out := make([]EncodingSymbol, 0, len(block))
	for esi, data := range block {
		if data == nil {
			continue
		}
		out = append(out, EncodingSymbol{Data: data, ESI: uint32(esi)})
	}
	return out
}
