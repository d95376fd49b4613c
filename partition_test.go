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

	"pgregory.net/rapid"
)

func TestPartition(t *testing.T) {
	var partitionTests = []struct {
		totalSize                            int
		numPartitions                        int
		numLong, numShort, lenLong, lenShort int
	}{
		{100, 10, 0, 10, 0, 10},
		{100, 9, 1, 8, 12, 11},
		{100, 11, 1, 10, 10, 9},
		{16, 4, 0, 4, 0, 4},
		{26, 13, 0, 13, 0, 2},
	}

	for _, i := range partitionTests {
		p := newPartition(i.totalSize, i.numPartitions)
		if p.numLong+p.numShort != i.numPartitions {
			t.Errorf("Total pieces = %d, must be %d", p.numLong+p.numShort, i.numPartitions)
		}
		if p.lenLong*p.numLong+p.lenShort*p.numShort != i.totalSize {
			t.Errorf("Total partitioned size = %d, must be %d",
				p.lenLong*p.numLong+p.lenShort*p.numShort, i.totalSize)
		}
		if p.numLong != i.numLong {
			t.Errorf("Bad number of long pieces. got %d, want %d", p.numLong, i.numLong)
		}
		if p.numShort != i.numShort {
			t.Errorf("Bad number of short pieces. got %d, want %d", p.numShort, i.numShort)
		}
		if p.lenLong != i.lenLong {
			t.Errorf("Bad long piece length. got %d, want %d", p.lenLong, i.lenLong)
		}
		if p.lenShort != i.lenShort {
			t.Errorf("Bad short piece length. got %d, want %d", p.lenShort, i.lenShort)
		}
	}
}

func TestCreateSourceBlock(t *testing.T) {
	buf := []byte("abcdefghijk") // 11 bytes into 3 pieces: 4, 4, 3
	p := newPartition(len(buf), 3)
	symbols := p.createSourceBlock(buf)

	if len(symbols) != 3 {
		t.Fatalf("got %d source symbols, want 3", len(symbols))
	}
	want := []string{"abcd", "efgh", "ijk"}
	for i, s := range symbols {
		if s.ESI != uint32(i) {
			t.Errorf("symbol %d has ESI %d", i, s.ESI)
		}
		if string(s.Data) != want[i] {
			t.Errorf("symbol %d = %q, want %q", i, s.Data, want[i])
		}
	}
}

// Splitting and rejoining is the identity, for any buffer and piece count.
func TestPartitionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buf := rapid.SliceOfN(rapid.Byte(), 1, 10000).Draw(t, "buf")
		k := rapid.IntRange(1, 100).Draw(t, "k")

		p := newPartition(len(buf), k)
		pieces := p.createSourceBlock(buf)

		source := make([]symbol, len(pieces))
		for i, es := range pieces {
			source[i] = symbol{data: es.Data}
		}
		// Joining uses the piece count actually produced, as the decoder does.
		joined := newPartition(len(buf), len(pieces)).decodeSourceBlock(source)

		if !bytes.Equal(joined, buf) {
			t.Fatalf("round trip produced %d bytes, want %d", len(joined), len(buf))
		}

		// All pieces account for every byte exactly once, in order.
		total := 0
		for _, es := range pieces {
			total += len(es.Data)
		}
		if total != len(buf) {
			t.Fatalf("pieces cover %d bytes, want %d", total, len(buf))
		}
	})
}
