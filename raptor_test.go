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

import (
	"bytes"
	"testing"
)

// The intermediate symbols must satisfy the LT relationship with the source
// symbols: re-encoding ESI i from the solved vector reproduces source
// symbol i.
func TestIntermediateEncoding(t *testing.T) {
	source := []EncodingSymbol{
		{Data: []byte{0, 0, 0, 1}, ESI: 0},
		{Data: []byte{0, 0, 1, 0}, ESI: 1},
		{Data: []byte{0, 1, 0, 0}, ESI: 2},
		{Data: []byte{1, 0, 0, 0}, ESI: 3},
	}

	r := newRaptor(4)
	if !r.addEncodingSymbols(source) {
		t.Fatal("matrix must be fully specified by the 4 systematic rows")
	}
	r.reduce()

	c := r.intermediateSymbols()
	if len(c) != 14 {
		t.Errorf("got %d intermediate symbols, should be 14", len(c))
	}

	for i := range source {
		got := ltEncode(r.k, uint32(i), r.l, r.lPrime, c)
		if !bytes.Equal(got.data, source[i].Data) {
			t.Errorf("LT re-encoding of ESI %d = %v, should be the source symbol %v",
				i, got.data, source[i].Data)
		}
	}
}

func TestIntermediateEncoding13(t *testing.T) {
	source := make([]EncodingSymbol, 13)
	for i := range source {
		data := make([]byte, 13)
		data[i] = 1
		source[i] = EncodingSymbol{Data: data, ESI: uint32(i)}
	}

	r := newRaptor(13)
	if !r.addEncodingSymbols(source) {
		t.Fatal("matrix must be fully specified by the 13 systematic rows")
	}
	r.reduce()

	c := r.intermediateSymbols()
	if len(c) != 26 {
		t.Errorf("got %d intermediate symbols, should be 26", len(c))
	}

	for i := range source {
		got := ltEncode(r.k, uint32(i), r.l, r.lPrime, c)
		if !bytes.Equal(got.data, source[i].Data) {
			t.Errorf("LT re-encoding of ESI %d = %v, should be the source symbol %v",
				i, got.data, source[i].Data)
		}
	}
}
