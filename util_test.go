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
	"math/bits"
	"testing"

	"pgregory.net/rapid"
)

func TestBinomial(t *testing.T) {
	var binomialTests = []struct {
		x int
		b int
	}{
		{2, 2},
		{6, 20},
		{7, 35},
		{11, 462},
		{12, 924},
	}

	for _, test := range binomialTests {
		if test.b != centerBinomial(test.x) {
			t.Errorf("(%d, %d/2) = %d, should be %d", test.x, test.x, centerBinomial(test.x), test.b)
		}
	}
}

func TestChoose(t *testing.T) {
	var chooseTests = []struct {
		n    int
		k    int
		comb int
	}{
		{0, 0, 1},
		{1, 0, 1},
		{2, 1, 2},
		{7, 2, 21},
		{5, 3, 10},
		{12, 7, 792},
		{12, 1, 12},
		{12, 2, 66},
		{52, 5, 2598960},
		{52, 1, 52},
		{52, 52, 1},
		{52, 0, 1},
	}
	for _, test := range chooseTests {
		if choose(test.n, test.k) != test.comb {
			t.Errorf("choose(%d, %d) = %d, should be %d",
				test.n, test.k, choose(test.n, test.k), test.comb)
		}
	}
}

func TestBitSet(t *testing.T) {
	var bitTests = []struct {
		x     uint
		b     uint
		equal bool
	}{
		{0, 0, false},
		{0, 1, false},
		{1, 0, true},
		{7, 1, true},
		{16, 3, false},
		{16, 4, true},
		{16, 5, false},
		{0x1000, 12, true},
		{0x4000, 14, true},
		{0x4000, 15, false},
	}

	for _, test := range bitTests {
		if bitSet(test.x, test.b) != test.equal {
			t.Errorf("%d bit set in %d = %t, should be %t", test.b, test.x, bitSet(test.x, test.b), test.equal)
		}
	}
}

func TestGrayCode(t *testing.T) {
	// Successive Gray codes differ by exactly one bit.
	prev := grayCode(0)
	for x := uint64(1); x < 10000; x++ {
		g := grayCode(x)
		if bits.OnesCount64(prev^g) != 1 {
			t.Errorf("grayCode(%d) = %b and grayCode(%d) = %b differ by more than one bit",
				x-1, prev, x, g)
		}
		prev = g
	}
}

// TestBuildGraySequence pins the gray sequence contract on the (length,
// bits) pairs the Half constraint rows actually use: n strictly increasing
// values, each with exactly b bits set.
func TestBuildGraySequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(0, 2048).Draw(t, "k")
		_, _, kS, _, hPrime := intermediateSymbols(k)
		n := k + kS
		b := hPrime

		s := buildGraySequence(n, b)
		if len(s) != n {
			t.Fatalf("got %d values, want %d", len(s), n)
		}
		for i, g := range s {
			if bits.OnesCount(uint(g)) != b {
				t.Errorf("s[%d] = %b has %d bits set, want %d", i, g, bits.OnesCount(uint(g)), b)
			}
			if i > 0 && s[i-1] >= g {
				t.Errorf("sequence not strictly increasing at %d: %v", i, s[i-1:i+1])
			}
		}
	})
}

func TestSmallestPrimeGreaterOrEqual(t *testing.T) {
	var primeTests = []struct {
		x int
		p int
	}{
		{0, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{14, 17},
		{100, 101},
		{553, 557},
		{1000, 1009},
		{5167, 5167},
		{8419, 8419},
	}

	for _, test := range primeTests {
		if smallestPrimeGreaterOrEqual(test.x) != test.p {
			t.Errorf("smallestPrimeGreaterOrEqual(%d) = %d, should be %d",
				test.x, smallestPrimeGreaterOrEqual(test.x), test.p)
		}
	}
}
