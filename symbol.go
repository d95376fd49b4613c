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

// A symbol is one byte row of the solver: a source symbol, a received
// encoding symbol, or an intermediate symbol. Within one block all non-empty
// symbols share the encoding symbol size T. A zero-length symbol is the zero
// symbol; the constraint rows seeded into the solver start out this way and
// only grow when data is XORed into them.
type symbol struct {
	data []byte
}

// xor folds a into s. The shorter of the two is treated as zero-extended to
// the length of the longer, so s grows as needed and XOR against the zero
// symbol is a no-op.
func (s *symbol) xor(a symbol) {
	if len(s.data) < len(a.data) {
		grown := make([]byte, len(a.data))
		copy(grown, s.data)
		s.data = grown
	}
	xorBytes(s.data, a.data)
}

// empty reports whether s is the zero symbol.
func (s *symbol) empty() bool {
	return len(s.data) == 0
}
