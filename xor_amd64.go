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

//go:build amd64 && !purego

package raptor

import "golang.org/x/sys/cpu"

// The kernel is selected once at startup. SSE2 is part of the amd64
// baseline; AVX2 doubles the vector width when available.
var xorBytesImpl = xorBytesSSE2

func init() {
	if cpu.X86.HasAVX2 {
		xorBytesImpl = xorBytesAVX2
	}
}

// xorBytesSSE2 XORs src into dst. len(dst) == len(src).
//
//go:noescape
func xorBytesSSE2(dst, src []byte)

// xorBytesAVX2 XORs src into dst. len(dst) == len(src).
//
//go:noescape
func xorBytesAVX2(dst, src []byte)
