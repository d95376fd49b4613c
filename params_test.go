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
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestRaptorRand(t *testing.T) {
	var randTests = []struct {
		x uint32
		i uint32
		m uint32
		r uint32
	}{
		{1, 4, 150, 50},
		{20005, 19, 25, 6},
		{2180, 11, 1383483, 1166141},
	}

	for _, test := range randTests {
		if test.r != raptorRand(test.x, test.i, test.m) {
			t.Errorf("raptorRand(%d, %d, %d) = %d, should be %d",
				test.x, test.i, test.m, raptorRand(test.x, test.i, test.m), test.r)
		}
	}
}

func TestDeg(t *testing.T) {
	var degreeTests = []struct {
		v uint32
		d int
	}{
		{0, 1},
		{10000, 1},
		{10240, 1},
		{10241, 2},
		{10242, 2},
		{715000, 4},
		{1000000, 11},
		{1034300, 40},
		{1048575, 40},
	}

	for _, test := range degreeTests {
		if test.d != deg(test.v) {
			t.Errorf("deg(%d) = %d, should be %d", test.v, deg(test.v), test.d)
		}
	}
}

func TestIntermediateSymbols(t *testing.T) {
	var intermediateTests = []struct {
		k int
		l int
		s int
		h int
	}{
		{0, 4, 2, 2},
		{1, 8, 3, 4},
		{10, 23, 7, 6}, // from a Luby, Shokrollahi paper
		{13, 26, 7, 6},
		{14, 28, 7, 7},
		{500, 553, 41, 12},
		{5000, 5166, 151, 15},
	}

	for _, test := range intermediateTests {
		l, _, s, h, _ := intermediateSymbols(test.k)
		if l != test.l || s != test.s || h != test.h {
			t.Errorf("intermediateSymbols(%d) = (%d, %d, %d), should be %d, %d, %d",
				test.k, l, s, h, test.l, test.s, test.h)
		}
	}
}

// TestIntermediateSymbolsInvariants pins the defining properties of the
// derived parameters: S and L' prime, L' covering L, and H minimal for
// choose(H, ceil(H/2)) >= K+S.
func TestIntermediateSymbolsInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(0, 2048).Draw(t, "k")
		l, lPrime, s, h, hPrime := intermediateSymbols(k)

		if l != k+s+h {
			t.Errorf("L = %d, must be K+S+H = %d", l, k+s+h)
		}
		if !isPrime(s) {
			t.Errorf("S = %d is not prime", s)
		}
		if lPrime < l || !isPrime(lPrime) {
			t.Errorf("L' = %d must be the smallest prime >= L = %d", lPrime, l)
		}
		if hPrime != (h+1)/2 {
			t.Errorf("H' = %d, must be ceil(H/2) = %d", hPrime, (h+1)/2)
		}
		if centerBinomial(h) < k+s {
			t.Errorf("choose(%d, %d) < K+S = %d", h, hPrime, k+s)
		}
		if h > 0 && centerBinomial(h-1) >= k+s {
			t.Errorf("H = %d is not minimal for K+S = %d", h, k+s)
		}
	})
}

func TestTripleGenerator(t *testing.T) {
	var tripleTests = []struct {
		k int
		x uint32
		d int
		a uint32
		b uint32
	}{
		{0, 3, 2, 4, 3},
		{1, 4, 4, 2, 5},
		{4, 0, 10, 13, 1},
		{4, 4, 4, 6, 2},
		{500, 514, 2, 107, 279},
		{1000, 52918, 3, 1070, 121},
	}

	for _, test := range tripleTests {
		_, lPrime, _, _, _ := intermediateSymbols(test.k)
		d, a, b := tripleGenerator(test.k, test.x, lPrime)
		if d != test.d || a != test.a || b != test.b {
			t.Errorf("tripleGenerator(%d, %d) = (%d, %d, %d), should be %d, %d, %d",
				test.k, test.x, d, a, b, test.d, test.a, test.b)
		}
	}
}

func TestLTIndices(t *testing.T) {
	var ltIndexTests = []struct {
		k       int
		x       uint32
		indices []int
	}{
		{4, 0, []int{1, 2, 3, 4, 6, 7, 8, 10, 11, 12}},
		{4, 4, []int{2, 3, 8, 9}},
		{100, 1, []int{51, 104}},
		{1000, 727, []int{306, 687, 1040}},
		{10, 57279, []int{19, 20, 21, 22}},
	}

	for _, test := range ltIndexTests {
		l, lPrime, _, _, _ := intermediateSymbols(test.k)
		indices := findLTIndices(test.k, test.x, l, lPrime)
		if !reflect.DeepEqual(indices, test.indices) {
			t.Errorf("findLTIndices(%d, %d) = %v, should be %v",
				test.k, test.x, indices, test.indices)
		}
	}
}

// TestLTIndicesProperties checks the walk contract for arbitrary inputs:
// the result is sorted, in range, has exactly min(d, L) entries, and is a
// pure function of (K, X).
func TestLTIndicesProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(0, 1024).Draw(t, "k")
		x := rapid.Uint32().Draw(t, "x")
		l, lPrime, _, _, _ := intermediateSymbols(k)

		indices := findLTIndices(k, x, l, lPrime)

		d, _, _ := tripleGenerator(k, x, lPrime)
		if d > l {
			d = l
		}
		if len(indices) != d {
			t.Errorf("len(indices) = %d, must be min(d, L) = %d", len(indices), d)
		}
		for i, v := range indices {
			if v < 0 || v >= l {
				t.Errorf("index %d out of range [0, %d)", v, l)
			}
			if i > 0 && indices[i-1] > v {
				t.Errorf("indices not sorted: %v", indices)
			}
		}

		again := findLTIndices(k, x, l, lPrime)
		if !reflect.DeepEqual(indices, again) {
			t.Errorf("findLTIndices(%d, %d) is not deterministic: %v vs %v", k, x, indices, again)
		}
	})
}

func TestSystematicIndices(t *testing.T) {
	if systematicIndexTable[4] != 18 {
		t.Errorf("Systematic index for 4 was %d, must be 18", systematicIndexTable[4])
	}
	if systematicIndexTable[21] != 2 {
		t.Errorf("Systematic index for 21 was %d, must be 2", systematicIndexTable[21])
	}
	if systematicIndexTable[8192] != 2665 {
		t.Errorf("Systematic index for 8192 was %d, must be 2665", systematicIndexTable[8192])
	}
	if len(systematicIndexTable) != MaxSourceSymbols+1 {
		t.Errorf("Systematic index table has %d entries, must cover 0..%d",
			len(systematicIndexTable), MaxSourceSymbols)
	}
}
