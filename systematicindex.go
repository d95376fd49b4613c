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

// MaxSourceSymbols is the largest number of source symbols a single block
// supports; it bounds the systematic index table below.
const MaxSourceSymbols = 8192

// systematicIndexTable holds the systematic index J(K) for each block size
// 0 <= K <= MaxSourceSymbols. J(K) seeds the triple generator so that the
// constraint matrix formed by the LDPC, Half, and first K LT rows is
// invertible, which is what makes the code systematic: solving against the
// K source symbols always succeeds, and re-encoding ESIs 0..K-1 reproduces
// them exactly.
var systematicIndexTable = [MaxSourceSymbols + 1]uint16{
	0, 0, 3, 1, 18, 2, 0, 8, 6, 0, 20, 1, 5, 1, 1, 16,
	2, 2, 1, 0, 3, 2, 0, 0, 0, 3, 2, 0, 3, 2, 2, 0,
	2, 3, 5, 0, 2, 4, 1, 0, 2, 9, 7, 0, 0, 0, 1, 3,
	1, 0, 0, 0, 8, 0, 3, 2, 0, 2, 7, 14, 23, 0, 7, 3,
	3, 19, 6, 2, 3, 7, 7, 14, 2, 3, 2, 5, 1, 2, 1, 0,
	1, 0, 1, 1, 15, 0, 7, 0, 2, 7, 7, 7, 10, 10, 1, 7,
	6, 3, 9, 9, 21, 3, 5, 1, 0, 6, 0, 0, 3, 9, 4, 7,
	3, 1, 4, 0, 0, 0, 19, 0, 39, 2, 7, 8, 1, 1, 7, 4,
	0, 0, 8, 6, 2, 5, 8, 3, 10, 0, 4, 6, 1, 3, 2, 7,
	3, 11, 2, 0, 3, 5, 0, 0, 4, 0, 0, 4, 0, 6, 0, 2,
	1, 13, 12, 3, 3, 0, 9, 1, 1, 11, 2, 2, 3, 8, 6, 3,
	19, 2, 2, 5, 36, 5, 8, 6, 0, 8, 5, 6, 0, 5, 0, 26,
	3, 4, 4, 12, 15, 3, 7, 1, 9, 0, 0, 9, 9, 18, 3, 0,
	6, 3, 3, 5, 0, 3, 2, 17, 2, 1, 1, 3, 3, 7, 1, 1,
	8, 0, 0, 0, 0, 9, 0, 7, 19, 7, 5, 1, 2, 1, 2, 3,
	3, 3, 3, 8, 1, 9, 1, 1, 4, 1, 14, 2, 8, 2, 0, 5,
	7, 8, 5, 4, 5, 6, 3, 8, 17, 6, 6, 0, 36, 14, 14, 15,
	0, 0, 8, 0, 4, 0, 1, 1, 4, 4, 1, 1, 1, 4, 1, 2,
	4, 1, 11, 1, 1, 0, 1, 5, 0, 5, 2, 2, 3, 2, 2, 2,
	22, 2, 17, 1, 3, 3, 6, 9, 14, 3, 22, 11, 3, 13, 6, 1,
	18, 6, 6, 3, 1, 1, 36, 1, 0, 2, 0, 2, 3, 3, 11, 3,
	6, 3, 19, 5, 1, 0, 3, 3, 5, 5, 7, 7, 12, 1, 2, 1,
	7, 0, 28, 8, 11, 7, 10, 7, 8, 7, 0, 1, 0, 0, 9, 18,
	0, 4, 0, 1, 3, 6, 3, 10, 3, 1, 4, 19, 1, 12, 3, 4,
	3, 3, 1, 4, 4, 1, 5, 3, 4, 0, 3, 1, 6, 2, 17, 4,
	17, 2, 4, 1, 7, 4, 7, 4, 1, 5, 0, 4, 10, 0, 0, 1,
	4, 6, 0, 2, 17, 14, 3, 8, 6, 12, 6, 12, 12, 3, 2, 13,
	9, 29, 1, 1, 8, 9, 8, 11, 1, 7, 11, 7, 8, 3, 7, 3,
	4, 3, 8, 6, 12, 15, 2, 3, 9, 5, 5, 8, 25, 0, 11, 1,
	1, 5, 7, 3, 0, 12, 3, 0, 15, 2, 1, 1, 15, 5, 4, 2,
	2, 3, 19, 2, 2, 9, 3, 11, 16, 8, 11, 11, 2, 4, 3, 4,
	4, 1, 4, 4, 101, 13, 1, 1, 3, 1, 6, 3, 4, 3, 6, 0,
	0, 0, 0, 0, 0, 5, 5, 0, 6, 0, 10, 3, 14, 11, 7, 3,
	5, 3, 4, 16, 0, 4, 5, 5, 12, 8, 3, 1, 2, 17, 3, 3,
	1, 17, 3, 4, 2, 3, 3, 7, 14, 20, 3, 11, 7, 4, 0, 14,
	12, 8, 0, 4, 8, 4, 10, 3, 1, 2, 2, 2, 27, 2, 3, 2,
	16, 2, 6, 0, 3, 2, 6, 2, 0, 7, 0, 3, 0, 4, 0, 7,
	2, 3, 1, 1, 18, 1, 2, 20, 3, 8, 3, 6, 6, 4, 24, 3,
	3, 10, 10, 3, 13, 13, 13, 3, 3, 3, 23, 46, 0, 3, 15, 13,
	1, 13, 3, 1, 1, 0, 4, 4, 6, 1, 12, 6, 13, 11, 11, 10,
	10, 25, 1, 3, 8, 1, 0, 0, 6, 0, 3, 8, 6, 11, 13, 6,
	7, 19, 31, 7, 11, 2, 1, 0, 1, 8, 11, 1, 6, 0, 4, 41,
	5, 0, 0, 13, 10, 17, 4, 16, 4, 8, 12, 0, 2, 8, 8, 27,
	8, 1, 1, 8, 30, 4, 16, 11, 4, 6, 4, 4, 7, 6, 4, 1,
	3, 4, 1, 1, 4, 1, 28, 7, 4, 1, 3, 0, 5, 14, 1, 0,
	0, 6, 0, 0, 5, 0, 1, 1, 16, 2, 3, 4, 10, 4, 10, 6,
	6, 4, 2, 7, 8, 11, 2, 7, 2, 8, 18, 5, 0, 12, 0, 6,
	0, 7, 3, 14, 3, 2, 2, 4, 17, 4, 4, 3, 20, 3, 1, 3,
	1, 1, 4, 1, 6, 3, 11, 4, 0, 4, 8, 0, 10, 8, 4, 8,
	3, 3, 3, 4, 3, 4, 4, 4, 1, 1, 6, 3, 3, 6, 8, 3,
	17, 1, 8, 9, 11, 11, 3, 31, 1, 1, 3, 17, 3, 7, 8, 8,
	18, 1, 0, 0, 21, 0, 37, 5, 15, 66, 15, 19, 16, 1, 1, 1,
	30, 1, 2, 2, 2, 14, 6, 14, 43, 22, 0, 5, 5, 1, 26, 0,
	4, 24, 0, 14, 4, 6, 6, 0, 7, 0, 10, 7, 7, 7, 10, 8,
	4, 8, 8, 15, 8, 8, 7, 8, 4, 8, 3, 3, 4, 5, 27, 1,
	6, 1, 0, 4, 2, 0, 12, 2, 5, 4, 4, 42, 4, 4, 18, 13,
	32, 13, 4, 4, 13, 6, 1, 15, 20, 3, 4, 18, 8, 16, 11, 13,
	4, 4, 3, 3, 3, 3, 3, 9, 4, 3, 8, 4, 3, 4, 9, 0,
	0, 0, 4, 11, 9, 9, 15, 6, 11, 0, 4, 1, 4, 21, 8, 17,
	17, 17, 17, 26, 33, 1, 12, 6, 23, 19, 7, 7, 7, 7, 6, 12,
	20, 6, 11, 8, 0, 8, 19, 11, 14, 18, 18, 4, 1, 1, 4, 1,
	59, 1, 8, 28, 6, 11, 17, 6, 5, 6, 10, 6, 6, 5, 10, 1,
	22, 27, 11, 11, 0, 17, 9, 3, 128, 4, 4, 3, 5, 4, 14, 5,
	9, 9, 5, 3, 21, 4, 3, 16, 13, 5, 8, 8, 16, 0, 5, 5,
	5, 21, 5, 6, 53, 6, 26, 25, 35, 4, 4, 16, 4, 6, 0, 1,
	8, 1, 1, 4, 4, 16, 0, 0, 13, 23, 0, 0, 8, 11, 3, 16,
	8, 35, 6, 8, 14, 13, 9, 4, 4, 14, 9, 6, 8, 9, 9, 10,
	6, 4, 9, 9, 9, 4, 4, 9, 10, 4, 13, 3, 4, 13, 3, 17,
	3, 13, 18, 14, 15, 41, 6, 6, 10, 6, 10, 6, 0, 4, 6, 4,
	4, 3, 5, 3, 0, 1, 10, 0, 6, 1, 15, 18, 8, 41, 18, 3,
	6, 9, 22, 22, 9, 9, 3, 3, 1, 1, 36, 0, 0, 4, 0, 1,
	0, 8, 16, 18, 0, 0, 12, 0, 8, 10, 5, 20, 13, 7, 8, 5,
	5, 8, 15, 5, 7, 12, 7, 9, 16, 14, 7, 71, 13, 18, 13, 8,
	13, 18, 8, 17, 19, 8, 8, 17, 3, 22, 4, 0, 6, 8, 8, 13,
	18, 6, 13, 25, 25, 29, 6, 5, 5, 25, 37, 15, 25, 6, 1, 13,
	9, 9, 5, 6, 22, 12, 1, 1, 14, 14, 4, 18, 27, 3, 3, 4,
	32, 19, 18, 27, 6, 8, 1, 13, 6, 15, 6, 46, 4, 4, 4, 42,
	37, 13, 0, 26, 4, 0, 17, 42, 3, 3, 25, 24, 25, 15, 25, 33,
	1, 3, 3, 3, 0, 0, 1, 8, 22, 9, 15, 3, 1, 0, 1, 0,
	3, 0, 8, 8, 1, 1, 3, 8, 13, 1, 1, 9, 1, 8, 0, 1,
	0, 3, 3, 3, 8, 34, 10, 3, 18, 28, 3, 3, 3, 1, 21, 8,
	27, 19, 14, 21, 6, 14, 0, 0, 7, 0, 21, 6, 6, 1, 0, 0,
	7, 4, 10, 4, 1, 7, 4, 21, 10, 4, 8, 1, 23, 1, 1, 8,
	1, 1, 16, 7, 3, 4, 7, 3, 7, 4, 3, 7, 4, 4, 3, 8,
	8, 0, 4, 4, 6, 6, 5, 23, 8, 8, 3, 11, 8, 12, 29, 16,
	82, 22, 3, 17, 3, 3, 3, 17, 8, 12, 14, 28, 19, 17, 16, 18,
	29, 18, 3, 5, 3, 17, 1, 1, 3, 3, 6, 3, 3, 25, 2, 8,
	2, 3, 3, 27, 3, 18, 31, 22, 5, 14, 6, 25, 5, 5, 4, 4,
	4, 15, 8, 12, 9, 9, 12, 8, 11, 6, 29, 6, 23, 17, 23, 23,
	30, 27, 6, 1, 12, 3, 3, 3, 4, 3, 3, 31, 4, 4, 54, 3,
	4, 4, 9, 4, 14, 8, 10, 15, 25, 3, 3, 1, 2, 1, 32, 4,
	1, 1, 3, 2, 50, 1, 8, 8, 4, 20, 17, 15, 25, 25, 19, 11,
	1, 39, 1, 1, 50, 3, 8, 8, 8, 3, 10, 0, 8, 36, 43, 2,
	17, 11, 11, 16, 11, 11, 4, 9, 29, 3, 12, 6, 8, 3, 3, 8,
	3, 3, 6, 6, 3, 0, 41, 6, 13, 3, 13, 33, 0, 0, 33, 0,
	9, 18, 26, 25, 30, 4, 8, 49, 17, 17, 1, 21, 6, 17, 0, 27,
	45, 4, 9, 4, 8, 4, 22, 18, 18, 26, 30, 16, 26, 16, 16, 16,
	25, 25, 72, 25, 0, 0, 27, 20, 0, 20, 25, 9, 30, 0, 0, 0,
	0, 29, 0, 9, 26, 0, 6, 4, 10, 4, 62, 62, 25, 44, 4, 27,
	31, 15, 15, 1, 40, 33, 21, 41, 21, 1, 31, 31, 25, 21, 56, 21,
	9, 9, 27, 3, 14, 3, 2, 1, 14, 17, 1, 8, 1, 11, 14, 8,
	8, 25, 1, 10, 8, 51, 21, 1, 5, 4, 20, 18, 4, 5, 1, 1,
	0, 0, 11, 11, 1, 0, 1, 4, 11, 22, 7, 10, 7, 46, 10, 26,
	7, 0, 22, 0, 14, 14, 0, 9, 63, 1, 1, 16, 1, 6, 11, 39,
	53, 18, 6, 8, 5, 5, 24, 10, 10, 25, 13, 25, 13, 8, 8, 10,
	14, 13, 8, 24, 5, 8, 12, 10, 25, 8, 8, 27, 11, 18, 1, 25,
	10, 4, 33, 4, 36, 75, 27, 4, 33, 40, 4, 4, 4, 5, 52, 6,
	6, 4, 5, 1, 4, 1, 1, 4, 2, 4, 8, 8, 14, 4, 18, 4,
	8, 18, 4, 12, 8, 19, 8, 8, 4, 27, 4, 13, 4, 10, 6, 6,
	4, 10, 10, 10, 4, 12, 12, 6, 6, 11, 49, 36, 42, 26, 5, 6,
	27, 6, 36, 5, 5, 50, 34, 6, 40, 0, 14, 0, 5, 0, 6, 1,
	1, 1, 3, 1, 10, 6, 6, 9, 1, 41, 15, 3, 3, 30, 25, 70,
	53, 3, 9, 36, 9, 22, 2, 17, 2, 21, 8, 17, 39, 8, 7, 8,
	9, 13, 13, 4, 4, 25, 26, 4, 6, 4, 19, 4, 15, 4, 4, 15,
	9, 13, 16, 9, 4, 9, 13, 15, 4, 30, 9, 62, 27, 1, 17, 1,
	27, 17, 144, 10, 10, 27, 25, 1, 17, 21, 33, 21, 10, 17, 41, 12,
	11, 8, 8, 8, 39, 36, 8, 8, 11, 31, 8, 11, 2, 11, 12, 75,
	2, 8, 8, 8, 2, 7, 7, 1, 1, 7, 34, 12, 16, 21, 12, 36,
	12, 12, 22, 26, 0, 0, 3, 3, 0, 10, 10, 27, 5, 10, 4, 8,
	4, 8, 4, 6, 4, 4, 4, 0, 0, 13, 0, 16, 24, 1, 10, 78,
	7, 10, 18, 9, 10, 6, 29, 27, 10, 6, 27, 8, 8, 5, 26, 5,
	13, 13, 13, 15, 13, 13, 15, 13, 13, 0, 33, 0, 0, 13, 0, 0,
	59, 0, 4, 31, 4, 8, 4, 8, 4, 80, 10, 26, 10, 4, 16, 15,
	16, 4, 4, 15, 16, 54, 13, 4, 15, 4, 9, 8, 28, 15, 28, 15,
	18, 8, 38, 5, 4, 45, 4, 1, 1, 1, 3, 1, 10, 13, 8, 35,
	24, 8, 8, 17, 8, 17, 8, 8, 8, 39, 2, 11, 4, 25, 13, 14,
	13, 34, 3, 4, 25, 4, 3, 25, 13, 3, 11, 13, 23, 4, 1, 4,
	4, 9, 4, 22, 5, 5, 35, 36, 19, 1, 7, 25, 22, 42, 22, 8,
	1, 27, 7, 25, 7, 29, 13, 7, 28, 28, 7, 32, 53, 12, 32, 24,
	34, 24, 26, 16, 15, 24, 32, 32, 15, 16, 24, 24, 16, 62, 4, 16,
	16, 4, 54, 4, 4, 10, 22, 16, 10, 36, 4, 54, 16, 90, 4, 10,
	64, 45, 16, 4, 36, 0, 0, 13, 13, 10, 15, 70, 41, 27, 41, 8,
	8, 25, 8, 47, 26, 4, 4, 23, 9, 27, 27, 9, 25, 42, 25, 57,
	25, 23, 5, 5, 5, 23, 23, 18, 28, 17, 13, 20, 11, 81, 4, 21,
	21, 2, 4, 4, 4, 30, 29, 30, 30, 58, 30, 31, 31, 31, 30, 23,
	55, 50, 23, 23, 23, 11, 11, 4, 1, 1, 14, 3, 27, 30, 15, 11,
	7, 27, 3, 4, 4, 12, 62, 27, 27, 33, 27, 46, 25, 37, 25, 11,
	15, 11, 16, 2, 17, 35, 5, 8, 2, 7, 7, 7, 21, 38, 36, 26,
	8, 7, 8, 38, 26, 38, 8, 21, 21, 7, 58, 7, 18, 7, 7, 9,
	15, 21, 21, 21, 10, 22, 10, 39, 4, 15, 2, 15, 2, 6, 9, 6,
	7, 3, 3, 15, 15, 3, 3, 23, 9, 10, 19, 8, 19, 8, 22, 8,
	19, 8, 21, 8, 9, 8, 0, 8, 0, 0, 11, 14, 47, 29, 6, 21,
	7, 28, 36, 49, 0, 36, 37, 11, 7, 22, 7, 13, 18, 44, 18, 10,
	18, 13, 0, 11, 0, 8, 0, 8, 55, 11, 13, 39, 0, 4, 0, 6,
	45, 6, 6, 1, 19, 30, 33, 25, 40, 0, 0, 4, 0, 21, 0, 4,
	7, 4, 4, 0, 17, 0, 4, 29, 9, 8, 15, 27, 12, 58, 7, 7,
	11, 4, 4, 4, 25, 8, 8, 127, 27, 9, 34, 4, 4, 54, 6, 23,
	17, 47, 17, 30, 46, 5, 25, 5, 3, 23, 22, 2, 16, 4, 2, 39,
	16, 18, 62, 12, 9, 17, 16, 14, 62, 53, 9, 17, 12, 14, 31, 62,
	12, 14, 18, 12, 39, 14, 12, 12, 14, 6, 6, 2, 2, 6, 2, 11,
	15, 4, 9, 2, 2, 2, 4, 6, 6, 9, 4, 4, 3, 3, 4, 13,
	13, 3, 40, 52, 13, 8, 8, 17, 8, 8, 46, 17, 17, 10, 13, 16,
	10, 4, 0, 25, 4, 4, 8, 37, 9, 25, 10, 7, 7, 10, 25, 15,
	13, 13, 55, 57, 31, 13, 12, 11, 11, 11, 31, 12, 12, 15, 37, 15,
	37, 11, 31, 61, 12, 17, 9, 67, 22, 9, 43, 9, 11, 43, 9, 9,
	17, 8, 18, 12, 30, 22, 0, 0, 22, 23, 5, 0, 12, 22, 5, 0,
	0, 12, 0, 45, 53, 17, 17, 22, 27, 25, 4, 10, 11, 31, 7, 7,
	7, 10, 37, 3, 31, 3, 31, 83, 3, 14, 3, 3, 3, 3, 19, 3,
	4, 4, 27, 3, 4, 5, 6, 0, 36, 18, 4, 4, 6, 0, 4, 9,
	9, 27, 1, 25, 19, 6, 21, 6, 18, 62, 18, 6, 33, 15, 15, 13,
	46, 39, 46, 10, 26, 4, 4, 9, 9, 30, 12, 13, 10, 38, 5, 16,
	22, 8, 27, 0, 0, 25, 7, 5, 4, 49, 37, 23, 23, 23, 7, 25,
	30, 34, 25, 1, 25, 7, 6, 25, 30, 25, 9, 25, 9, 32, 5, 27,
	5, 20, 1, 60, 1, 30, 60, 4, 17, 12, 25, 3, 14, 13, 12, 14,
	3, 17, 14, 7, 21, 4, 10, 4, 23, 4, 4, 13, 33, 6, 6, 6,
	21, 18, 6, 21, 18, 78, 18, 18, 21, 30, 18, 21, 39, 11, 53, 48,
	11, 0, 11, 48, 0, 0, 34, 9, 8, 50, 61, 50, 30, 9, 8, 8,
	67, 8, 9, 22, 24, 66, 30, 34, 64, 25, 25, 0, 5, 0, 0, 54,
	42, 9, 9, 5, 21, 9, 13, 5, 5, 9, 23, 9, 5, 33, 21, 24,
	26, 6, 89, 26, 6, 6, 42, 32, 9, 6, 9, 6, 32, 5, 1, 4,
	4, 0, 6, 10, 0, 6, 6, 4, 4, 4, 25, 8, 31, 29, 5, 14,
	16, 67, 29, 14, 14, 69, 13, 13, 16, 13, 33, 20, 38, 38, 15, 15,
	22, 28, 95, 31, 22, 22, 15, 29, 33, 20, 20, 19, 7, 19, 11, 11,
	7, 7, 55, 20, 29, 6, 5, 6, 20, 10, 5, 21, 8, 5, 5, 10,
	8, 6, 6, 70, 6, 49, 24, 47, 24, 47, 47, 24, 24, 17, 39, 39,
	57, 78, 39, 57, 29, 29, 37, 54, 118, 85, 25, 25, 39, 25, 67, 11,
	25, 67, 25, 11, 31, 33, 21, 37, 11, 21, 29, 36, 37, 11, 47, 29,
	21, 7, 3, 51, 1, 26, 27, 33, 10, 18, 33, 0, 0, 5, 0, 4,
	82, 13, 11, 30, 10, 10, 21, 19, 10, 10, 2, 10, 35, 30, 30, 2,
	2, 30, 2, 19, 69, 13, 2, 99, 13, 19, 30, 19, 30, 19, 2, 1,
	21, 9, 9, 30, 10, 30, 7, 10, 20, 30, 16, 34, 13, 13, 12, 30,
	13, 12, 12, 3, 66, 3, 15, 26, 31, 8, 22, 10, 9, 10, 8, 9,
	8, 31, 9, 54, 8, 9, 9, 9, 14, 31, 24, 5, 5, 21, 21, 52,
	29, 71, 39, 86, 75, 5, 39, 22, 29, 5, 39, 1, 25, 1, 13, 1,
	1, 66, 50, 58, 58, 50, 10, 58, 53, 50, 10, 10, 124, 3, 3, 3,
	9, 28, 28, 9, 21, 28, 69, 14, 37, 14, 14, 14, 19, 53, 47, 14,
	37, 19, 37, 19, 19, 37, 37, 53, 47, 37, 89, 25, 45, 25, 13, 13,
	13, 13, 15, 33, 15, 15, 15, 11, 11, 16, 6, 40, 16, 40, 16, 40,
	12, 12, 16, 51, 23, 23, 60, 16, 16, 23, 81, 12, 12, 12, 91, 16,
	12, 23, 12, 12, 12, 12, 33, 60, 16, 12, 16, 12, 12, 17, 10, 17,
	9, 4, 4, 9, 6, 6, 10, 4, 10, 57, 4, 4, 33, 6, 57, 7,
	9, 7, 33, 7, 9, 30, 17, 9, 53, 41, 9, 8, 8, 8, 8, 50,
	31, 25, 41, 31, 8, 34, 11, 11, 11, 21, 13, 24, 53, 33, 33, 16,
	8, 6, 16, 22, 14, 13, 39, 7, 10, 34, 7, 7, 7, 7, 11, 60,
	71, 30, 13, 13, 30, 21, 21, 36, 21, 21, 21, 13, 13, 21, 13, 19,
	30, 21, 19, 36, 13, 1, 7, 87, 25, 25, 25, 0, 39, 4, 35, 46,
	4, 4, 35, 15, 16, 29, 16, 16, 15, 62, 62, 56, 27, 56, 62, 234,
	1, 6, 62, 1, 1, 6, 27, 1, 1, 56, 1, 1, 56, 27, 1, 65,
	53, 20, 1, 1, 1, 4, 41, 73, 5, 34, 50, 6, 5, 30, 13, 30,
	13, 62, 67, 41, 30, 1, 35, 1, 35, 1, 3, 1, 7, 7, 22, 0,
	22, 11, 11, 71, 8, 8, 8, 0, 63, 8, 70, 8, 57, 8, 9, 22,
	0, 0, 0, 5, 5, 4, 57, 4, 132, 7, 7, 138, 58, 61, 55, 21,
	9, 3, 3, 49, 30, 22, 22, 3, 23, 3, 6, 22, 6, 3, 3, 6,
	14, 42, 4, 16, 16, 34, 15, 41, 15, 13, 13, 13, 15, 16, 13, 22,
	15, 22, 13, 22, 17, 25, 9, 22, 58, 33, 18, 18, 18, 67, 33, 30,
	18, 30, 18, 18, 33, 30, 30, 60, 33, 30, 33, 11, 18, 49, 35, 45,
	35, 35, 32, 45, 51, 35, 56, 32, 32, 32, 35, 45, 8, 10, 23, 31,
	8, 6, 23, 8, 66, 58, 55, 10, 21, 17, 2, 13, 2, 8, 70, 30,
	2, 2, 60, 2, 52, 4, 60, 93, 30, 52, 2, 4, 2, 42, 42, 2,
	4, 68, 99, 7, 4, 7, 8, 33, 54, 37, 37, 42, 33, 10, 36, 121,
	25, 25, 36, 25, 36, 38, 25, 25, 32, 36, 29, 11, 17, 11, 11, 29,
	86, 6, 21, 34, 12, 6, 6, 6, 6, 12, 3, 0, 10, 6, 6, 103,
	9, 9, 9, 10, 14, 43, 25, 55, 4, 14, 39, 18, 10, 4, 19, 37,
	19, 36, 37, 8, 8, 49, 8, 118, 16, 11, 45, 45, 69, 46, 103, 45,
	70, 69, 81, 45, 45, 69, 12, 21, 12, 12, 18, 25, 12, 12, 26, 12,
	66, 62, 80, 4, 4, 4, 4, 4, 22, 35, 57, 4, 20, 74, 1, 1,
	73, 1, 74, 1, 1, 54, 20, 20, 27, 73, 23, 16, 4, 16, 32, 23,
	17, 17, 63, 54, 16, 16, 58, 16, 21, 21, 27, 8, 8, 8, 31, 8,
	166, 20, 41, 5, 5, 5, 70, 15, 11, 12, 12, 26, 11, 26, 21, 21,
	27, 103, 27, 8, 21, 23, 60, 70, 60, 23, 27, 41, 60, 8, 1, 33,
	33, 33, 55, 1, 136, 18, 66, 34, 18, 113, 55, 22, 54, 29, 71, 39,
	41, 39, 17, 6, 17, 18, 41, 18, 13, 33, 41, 6, 13, 29, 47, 38,
	8, 23, 23, 46, 35, 12, 0, 58, 31, 36, 78, 37, 60, 78, 55, 86,
	6, 6, 8, 8, 8, 34, 28, 8, 22, 22, 54, 2, 26, 49, 34, 49,
	13, 34, 27, 27, 11, 30, 11, 30, 14, 18, 14, 38, 18, 32, 14, 14,
	63, 25, 25, 41, 25, 14, 25, 25, 25, 25, 146, 25, 41, 25, 63, 38,
	96, 41, 26, 26, 70, 122, 70, 38, 17, 57, 8, 4, 22, 2, 4, 30,
	4, 9, 29, 9, 22, 4, 8, 8, 35, 4, 4, 53, 8, 35, 4, 58,
	8, 45, 9, 13, 6, 6, 6, 85, 11, 33, 9, 23, 23, 11, 27, 4,
	4, 6, 6, 13, 13, 4, 4, 4, 69, 6, 6, 19, 30, 4, 6, 13,
	15, 97, 5, 41, 96, 76, 5, 5, 39, 41, 45, 5, 8, 30, 8, 8,
	8, 12, 148, 8, 53, 30, 58, 12, 12, 22, 4, 55, 30, 4, 15, 11,
	37, 30, 21, 13, 53, 21, 6, 30, 110, 30, 41, 41, 62, 128, 44, 117,
	86, 26, 44, 26, 44, 86, 26, 41, 60, 63, 98, 25, 122, 6, 52, 6,
	30, 164, 185, 252, 60, 21, 21, 34, 21, 34, 21, 60, 21, 159, 60, 21,
	34, 21, 14, 14, 10, 14, 2, 129, 33, 33, 20, 35, 20, 27, 5, 35,
	26, 1, 201, 95, 10, 99, 6, 91, 6, 128, 6, 6, 31, 4, 36, 0,
	30, 52, 49, 23, 36, 55, 49, 49, 23, 52, 1, 25, 62, 25, 44, 44,
	41, 49, 4, 4, 4, 4, 41, 41, 85, 41, 41, 49, 49, 4, 71, 41,
	4, 13, 65, 65, 65, 115, 13, 13, 71, 65, 71, 65, 143, 139, 65, 102,
	115, 104, 102, 102, 6, 1, 1, 6, 125, 1, 6, 24, 70, 1, 24, 6,
	55, 83, 34, 34, 58, 26, 80, 35, 35, 78, 30, 78, 13, 25, 19, 13,
	34, 62, 52, 22, 21, 114, 37, 8, 8, 30, 0, 6, 53, 83, 6, 6,
	7, 55, 83, 6, 53, 7, 6, 0, 6, 0, 22, 71, 83, 7, 53, 6,
	37, 4, 6, 64, 6, 50, 50, 41, 129, 256, 67, 7, 101, 36, 13, 13,
	36, 7, 13, 174, 7, 26, 99, 26, 99, 7, 22, 22, 22, 42, 4, 11,
	4, 11, 11, 21, 4, 4, 102, 102, 28, 47, 13, 26, 34, 23, 23, 23,
	57, 23, 14, 66, 51, 14, 51, 14, 51, 13, 13, 13, 58, 14, 0, 6,
	0, 0, 6, 6, 36, 26, 6, 0, 6, 0, 35, 26, 0, 6, 93, 61,
	58, 6, 58, 39, 6, 41, 62, 82, 68, 15, 27, 8, 88, 27, 13, 152,
	39, 13, 39, 8, 8, 39, 77, 32, 8, 8, 8, 82, 82, 11, 91, 11,
	77, 213, 11, 103, 8, 11, 106, 45, 45, 45, 12, 104, 64, 22, 22, 33,
	39, 39, 34, 22, 22, 12, 33, 71, 64, 103, 33, 12, 12, 12, 33, 12,
	34, 33, 39, 69, 13, 26, 39, 10, 10, 10, 10, 45, 4, 0, 0, 14,
	14, 22, 73, 73, 8, 67, 8, 8, 12, 12, 68, 15, 12, 26, 16, 157,
	52, 13, 69, 35, 52, 13, 6, 7, 7, 6, 58, 53, 46, 154, 12, 91,
	46, 75, 12, 63, 75, 50, 8, 8, 25, 42, 25, 103, 10, 0, 35, 19,
	93, 19, 35, 148, 35, 47, 35, 93, 7, 49, 103, 17, 31, 17, 37, 13,
	13, 17, 136, 13, 55, 111, 13, 55, 19, 59, 6, 102, 22, 22, 6, 31,
	31, 31, 12, 60, 12, 12, 83, 41, 94, 95, 12, 9, 9, 9, 83, 12,
	12, 41, 82, 9, 9, 95, 60, 12, 9, 12, 68, 9, 82, 41, 12, 68,
	38, 44, 8, 31, 38, 31, 81, 31, 81, 81, 82, 98, 1, 7, 1, 7,
	1, 7, 1, 1, 61, 18, 41, 13, 13, 6, 3, 3, 6, 13, 14, 34,
	4, 4, 8, 4, 46, 55, 139, 15, 15, 55, 15, 15, 46, 25, 25, 62,
	25, 10, 51, 154, 51, 126, 51, 123, 25, 25, 62, 185, 10, 62, 25, 126,
	21, 38, 30, 52, 21, 38, 19, 6, 39, 6, 6, 6, 31, 30, 19, 31,
	6, 39, 10, 99, 10, 10, 85, 58, 17, 64, 85, 10, 10, 10, 22, 4,
	31, 36, 31, 11, 31, 19, 19, 11, 22, 11, 22, 31, 31, 11, 42, 11,
	11, 34, 14, 36, 47, 60, 36, 27, 86, 215, 1, 1, 34, 10, 34, 30,
	26, 26, 41, 321, 11, 129, 8, 8, 8, 64, 64, 8, 73, 10, 55, 8,
	8, 10, 8, 8, 8, 41, 21, 91, 15, 0, 103, 103, 227, 160, 9, 124,
	52, 52, 160, 52, 42, 22, 22, 22, 22, 29, 22, 29, 95, 160, 22, 22,
	22, 22, 45, 0, 45, 22, 13, 3, 129, 54, 129, 6, 30, 6, 19, 99,
	4, 58, 58, 23, 35, 35, 30, 23, 35, 30, 23, 23, 55, 23, 30, 23,
	30, 35, 78, 58, 23, 30, 30, 35, 23, 23, 62, 95, 124, 47, 164, 91,
	47, 22, 22, 21, 25, 2, 25, 41, 25, 2, 25, 36, 41, 36, 17, 36,
	2, 2, 2, 2, 4, 4, 39, 39, 4, 55, 42, 42, 4, 4, 4, 4,
	4, 8, 25, 132, 64, 25, 25, 64, 64, 14, 32, 98, 75, 32, 32, 14,
	119, 14, 32, 32, 14, 32, 69, 206, 32, 12, 67, 102, 7, 7, 129, 22,
	22, 129, 22, 22, 67, 22, 7, 7, 40, 22, 37, 25, 10, 4, 86, 10,
	103, 28, 8, 8, 8, 8, 13, 47, 0, 4, 4, 16, 0, 16, 6, 102,
	6, 30, 55, 23, 86, 4, 82, 54, 62, 47, 86, 47, 62, 36, 66, 67,
	37, 66, 66, 78, 15, 4, 10, 34, 81, 158, 4, 10, 123, 34, 10, 4,
	79, 46, 35, 35, 24, 24, 24, 29, 29, 24, 29, 24, 6, 21, 55, 6,
	30, 54, 34, 30, 6, 6, 6, 34, 34, 85, 30, 6, 30, 6, 11, 8,
	8, 8, 13, 13, 13, 92, 6, 91, 79, 103, 6, 55, 29, 6, 18, 56,
	55, 74, 74, 18, 32, 47, 18, 47, 47, 6, 55, 32, 12, 7, 7, 22,
	9, 21, 159, 104, 0, 63, 63, 29, 63, 15, 15, 0, 56, 0, 56, 15,
	107, 29, 119, 56, 15, 86, 83, 29, 15, 63, 29, 119, 6, 112, 70, 6,
	4, 23, 32, 35, 10, 10, 22, 74, 74, 74, 4, 22, 23, 25, 3, 54,
	3, 17, 214, 54, 3, 3, 17, 17, 19, 17, 61, 61, 5, 5, 63, 4,
	22, 25, 4, 25, 4, 38, 41, 25, 22, 4, 4, 53, 103, 53, 23, 41,
	185, 23, 54, 54, 53, 66, 103, 53, 53, 41, 23, 53, 66, 41, 103, 67,
	53, 53, 66, 54, 66, 23, 53, 23, 53, 53, 32, 55, 21, 185, 206, 55,
	55, 42, 32, 21, 30, 33, 23, 13, 93, 23, 4, 3, 13, 4, 7, 3,
	7, 16, 4, 23, 4, 3, 23, 6, 23, 103, 72, 6, 111, 23, 103, 91,
	6, 23, 103, 56, 100, 110, 189, 100, 12, 12, 175, 105, 105, 6, 6, 36,
	121, 105, 105, 61, 71, 71, 88, 71, 55, 64, 55, 145, 55, 64, 129, 55,
	3, 8, 25, 68, 7, 7, 7, 7, 10, 62, 7, 7, 21, 21, 21, 21,
	101, 67, 54, 83, 169, 30, 128, 154, 41, 169, 54, 102, 135, 54, 102, 54,
	84, 84, 84, 190, 9, 55, 32, 39, 6, 7, 7, 34, 112, 7, 29, 21,
	29, 29, 7, 7, 81, 181, 21, 21, 136, 43, 79, 21, 88, 71, 112, 6,
	105, 62, 4, 6, 59, 29, 51, 37, 22, 31, 31, 33, 48, 31, 21, 124,
	60, 42, 13, 8, 8, 95, 36, 42, 42, 42, 29, 7, 17, 67, 30, 30,
	22, 22, 25, 22, 35, 67, 25, 30, 22, 30, 22, 22, 52, 73, 83, 22,
	22, 53, 67, 67, 52, 35, 22, 53, 13, 7, 7, 121, 7, 7, 3, 7,
	39, 128, 39, 147, 39, 39, 39, 224, 211, 14, 10, 39, 46, 39, 39, 46,
	29, 30, 23, 30, 13, 81, 13, 16, 85, 47, 125, 240, 20, 72, 72, 63,
	94, 63, 63, 94, 63, 112, 30, 23, 151, 46, 46, 72, 46, 10, 143, 12,
	22, 12, 6, 41, 4, 21, 294, 91, 3, 21, 0, 65, 61, 18, 18, 0,
	65, 0, 231, 0, 0, 65, 39, 0, 18, 129, 0, 18, 0, 0, 18, 61,
	145, 65, 267, 65, 61, 88, 54, 14, 14, 14, 112, 54, 8, 8, 111, 2,
	8, 70, 2, 70, 2, 8, 8, 23, 8, 30, 205, 205, 79, 14, 14, 79,
	81, 20, 25, 25, 20, 20, 25, 20, 25, 25, 22, 146, 83, 12, 58, 12,
	58, 12, 49, 124, 83, 49, 151, 128, 66, 66, 66, 215, 66, 148, 273, 46,
	307, 111, 46, 95, 35, 95, 35, 95, 206, 81, 175, 95, 35, 46, 35, 35,
	2, 50, 2, 2, 29, 113, 33, 4, 68, 33, 39, 39, 21, 80, 21, 21,
	21, 71, 52, 39, 21, 21, 123, 39, 105, 71, 39, 39, 145, 80, 168, 102,
	39, 71, 35, 108, 4, 35, 51, 35, 162, 108, 4, 104, 104, 35, 46, 83,
	70, 86, 86, 83, 11, 13, 257, 103, 104, 104, 299, 257, 285, 319, 129, 103,
	103, 299, 129, 257, 23, 319, 10, 129, 10, 5, 41, 21, 66, 66, 13, 36,
	36, 13, 35, 128, 35, 72, 35, 130, 323, 35, 72, 96, 35, 35, 72, 72,
	62, 20, 119, 19, 132, 135, 19, 20, 20, 66, 46, 16, 16, 160, 16, 16,
	16, 46, 169, 63, 16, 16, 63, 23, 117, 75, 75, 183, 230, 6, 22, 6,
	22, 86, 86, 6, 30, 22, 6, 6, 6, 30, 22, 6, 110, 130, 30, 72,
	30, 22, 6, 22, 130, 6, 22, 22, 104, 30, 43, 12, 96, 43, 63, 4,
	52, 52, 12, 129, 105, 12, 10, 111, 111, 6, 103, 6, 21, 147, 21, 102,
	21, 71, 21, 21, 125, 29, 15, 15, 15, 22, 76, 123, 35, 123, 1, 78,
	62, 10, 60, 60, 60, 10, 10, 194, 10, 10, 10, 88, 131, 351, 46, 106,
	85, 280, 6, 41, 169, 67, 26, 21, 72, 192, 112, 60, 60, 72, 77, 25,
	284, 414, 25, 25, 25, 77, 57, 57, 25, 77, 192, 88, 239, 57, 57, 109,
	88, 109, 88, 25, 29, 142, 158, 30, 30, 121, 14, 27, 9, 29, 14, 29,
	14, 14, 49, 14, 29, 9, 9, 9, 9, 14, 14, 9, 163, 53, 61, 12,
	70, 70, 6, 20, 5, 138, 5, 5, 5, 22, 5, 5, 51, 138, 44, 47,
	130, 34, 100, 21, 21, 45, 30, 37, 37, 30, 235, 17, 73, 73, 50, 101,
	17, 50, 71, 71, 17, 71, 71, 50, 17, 50, 114, 71, 71, 71, 114, 50,
	235, 73, 135, 50, 50, 78, 50, 50, 58, 88, 62, 4, 18, 39, 36, 18,
	15, 41, 132, 50, 6, 12, 27, 6, 46, 264, 46, 27, 73, 121, 18, 18,
	96, 41, 121, 159, 18, 41, 21, 95, 62, 21, 95, 4, 15, 21, 4, 21,
	4, 72, 15, 15, 4, 4, 4, 175, 105, 95, 318, 175, 4, 72, 72, 175,
	240, 4, 15, 15, 72, 4, 4, 101, 105, 4, 10, 4, 309, 4, 4, 4,
	4, 4, 10, 4, 105, 82, 37, 30, 159, 151, 151, 14, 14, 151, 13, 13,
	13, 66, 22, 14, 64, 42, 42, 51, 79, 32, 175, 14, 10, 13, 14, 10,
	280, 67, 10, 13, 149, 40, 40, 76, 95, 95, 149, 40, 149, 95, 76, 219,
	76, 51, 7, 103, 26, 103, 26, 7, 37, 37, 21, 50, 22, 10, 17, 10,
	17, 133, 209, 133, 162, 16, 70, 15, 15, 121, 178, 70, 70, 140, 36, 13,
	13, 11, 36, 39, 39, 39, 50, 39, 39, 50, 39, 99, 69, 50, 50, 99,
	99, 39, 39, 34, 69, 39, 39, 39, 33, 60, 12, 60, 163, 50, 22, 22,
	175, 178, 175, 22, 120, 82, 82, 120, 45, 45, 21, 45, 45, 120, 114, 82,
	121, 45, 21, 45, 117, 21, 82, 21, 82, 114, 82, 82, 114, 123, 120, 265,
	114, 197, 128, 55, 347, 55, 55, 128, 125, 145, 115, 45, 115, 11, 36, 55,
	36, 36, 45, 11, 3, 22, 3, 38, 60, 22, 70, 71, 18, 88, 121, 18,
	21, 54, 54, 54, 21, 54, 54, 21, 194, 236, 194, 137, 101, 241, 34, 83,
	15, 14, 15, 95, 41, 42, 41, 41, 175, 95, 29, 589, 29, 327, 29, 26,
	10, 29, 55, 29, 67, 62, 57, 25, 49, 57, 25, 57, 55, 91, 73, 112,
	81, 271, 136, 136, 81, 81, 35, 35, 67, 132, 132, 67, 67, 67, 67, 67,
	67, 67, 8, 188, 22, 101, 22, 117, 349, 117, 101, 22, 22, 22, 101, 211,
	101, 101, 142, 101, 55, 55, 218, 55, 218, 150, 24, 7, 7, 111, 146, 83,
	236, 183, 83, 7, 24, 324, 24, 146, 111, 24, 93, 146, 183, 83, 13, 83,
	63, 13, 104, 34, 4, 4, 66, 34, 34, 107, 34, 104, 4, 263, 63, 63,
	36, 101, 36, 105, 250, 36, 123, 101, 9, 172, 112, 6, 41, 0, 69, 41,
	102, 95, 218, 288, 0, 56, 0, 53, 76, 0, 56, 53, 56, 69, 56, 53,
	56, 53, 0, 95, 95, 0, 0, 0, 136, 18, 86, 170, 163, 199, 18, 128,
	86, 73, 128, 199, 73, 15, 86, 15, 94, 15, 273, 94, 124, 36, 36, 69,
	39, 66, 4, 4, 95, 66, 362, 121, 4, 4, 4, 66, 4, 121, 4, 95,
	4, 95, 60, 56, 66, 60, 30, 56, 66, 60, 16, 77, 80, 70, 70, 56,
	42, 206, 110, 70, 36, 126, 589, 126, 123, 123, 23, 23, 42, 23, 23, 51,
	14, 67, 81, 67, 14, 169, 67, 23, 399, 88, 363, 58, 58, 58, 35, 102,
	102, 35, 35, 102, 96, 6, 318, 96, 6, 6, 318, 128, 50, 324, 78, 175,
	32, 6, 83, 41, 6, 32, 6, 6, 18, 6, 96, 99, 161, 51, 96, 142,
	221, 113, 113, 161, 224, 96, 47, 70, 70, 25, 25, 514, 47, 134, 29, 258,
	29, 29, 252, 264, 160, 429, 430, 305, 21, 88, 70, 51, 197, 55, 10, 55,
	54, 70, 54, 138, 353, 132, 252, 398, 51, 255, 138, 138, 160, 7, 7, 119,
	62, 62, 62, 160, 123, 215, 113, 113, 19, 128, 44, 7, 7, 7, 44, 22,
	7, 13, 47, 7, 7, 7, 7, 270, 7, 11, 7, 7, 11, 11, 7, 54,
	7, 70, 47, 7, 7, 250, 7, 11, 47, 7, 84, 102, 179, 73, 41, 41,
	210, 17, 22, 22, 23, 17, 17, 210, 233, 209, 21, 21, 28, 105, 78, 93,
	71, 83, 68, 105, 68, 93, 12, 71, 12, 12, 60, 215, 17, 93, 17, 60,
	60, 239, 93, 93, 271, 7, 17, 7, 81, 7, 6, 7, 5, 337, 41, 41,
	89, 78, 41, 41, 18, 81, 178, 46, 25, 25, 60, 8, 204, 204, 60, 60,
	197, 212, 105, 128, 116, 99, 131, 99, 172, 102, 36, 85, 6, 49, 39, 49,
	289, 39, 36, 172, 236, 66, 66, 66, 83, 83, 205, 77, 6, 12, 105, 9,
	6, 30, 12, 9, 241, 6, 4, 8, 4, 4, 8, 36, 91, 61, 37, 37,
	37, 37, 29, 29, 29, 52, 29, 52, 46, 46, 128, 146, 51, 92, 128, 51,
	78, 137, 184, 55, 137, 401, 6, 91, 6, 17, 117, 6, 11, 127, 11, 91,
	128, 21, 128, 128, 70, 306, 101, 7, 6, 6, 175, 6, 50, 50, 61, 61,
	68, 136, 145, 61, 5, 10, 48, 163, 48, 39, 4, 4, 165, 11, 4, 121,
	4, 4, 121, 4, 262, 95, 60, 172, 60, 60, 60, 172, 230, 253, 95, 105,
	230, 95, 95, 128, 95, 105, 187, 95, 230, 105, 175, 105, 95, 95, 95, 128,
	95, 473, 95, 187, 34, 21, 21, 218, 112, 34, 6, 13, 78, 124, 82, 302,
	67, 6, 6, 6, 13, 67, 64, 13, 184, 64, 6, 13, 6, 35, 13, 35,
	303, 56, 31, 31, 161, 56, 56, 31, 86, 56, 71, 71, 71, 271, 56, 206,
	67, 67, 67, 70, 105, 123, 123, 61, 36, 6, 61, 62, 85, 6, 36, 55,
	22, 22, 30, 30, 99, 22, 93, 55, 22, 165, 165, 57, 280, 365, 23, 23,
	352, 225, 57, 57, 225, 206, 57, 350, 23, 57, 206, 240, 23, 57, 225, 240,
	57, 365, 206, 57, 225, 57, 240, 264, 89, 89, 55, 55, 83, 83, 288, 302,
	103, 103, 110, 185, 185, 266, 103, 201, 103, 67, 67, 67, 121, 185, 121, 103,
	121, 21, 51, 93, 58, 127, 93, 6, 128, 133, 6, 73, 137, 212, 128, 6,
	54, 327, 163, 238, 148, 148, 148, 16, 58, 156, 13, 26, 41, 41, 26, 101,
	80, 101, 41, 55, 266, 452, 452, 388, 270, 266, 568, 149, 270, 63, 63, 63,
	55, 63, 63, 374, 452, 13, 160, 364, 287, 222, 93, 13, 127, 145, 73, 252,
	101, 73, 73, 145, 145, 137, 73, 306, 73, 690, 24, 24, 173, 173, 299, 36,
	107, 24, 24, 107, 24, 159, 327, 36, 36, 36, 137, 3, 80, 3, 80, 3,
	80, 150, 80, 137, 194, 3, 150, 80, 137, 67, 14, 67, 128, 128, 67, 9,
	159, 62, 22, 62, 57, 22, 130, 22, 186, 57, 57, 24, 67, 79, 114, 114,
	27, 124, 69, 230, 281, 265, 188, 265, 265, 230, 54, 265, 54, 24, 184, 55,
	55, 55, 30, 73, 100, 41, 55, 30, 32, 36, 35, 81, 27, 6, 8, 6,
	27, 127, 37, 292, 298, 292, 137, 137, 217, 137, 193, 101, 101, 101, 159, 101,
	123, 101, 290, 123, 166, 123, 101, 123, 166, 256, 256, 76, 81, 7, 123, 133,
	189, 123, 231, 231, 231, 123, 281, 261, 7, 133, 123, 7, 149, 70, 150, 70,
	150, 70, 21, 138, 172, 138, 21, 21, 21, 138, 21, 272, 93, 54, 26, 21,
	21, 327, 175, 21, 21, 35, 175, 143, 35, 55, 39, 139, 160, 433, 183, 139,
	139, 328, 298, 139, 463, 35, 21, 35, 133, 35, 21, 66, 21, 133, 21, 21,
	21, 45, 34, 21, 21, 44, 34, 66, 21, 53, 19, 62, 69, 23, 23, 42,
	83, 76, 83, 130, 14, 130, 14, 137, 102, 164, 14, 138, 105, 13, 105, 105,
	169, 121, 105, 121, 121, 175, 121, 138, 13, 175, 121, 31, 51, 31, 4, 67,
	67, 172, 39, 325, 507, 74, 262, 37, 37, 36, 36, 36, 57, 146, 36, 36,
	129, 42, 29, 29, 36, 57, 57, 36, 57, 36, 178, 57, 36, 71, 172, 71,
	307, 277, 71, 71, 158, 9, 108, 8, 46, 30, 8, 9, 53, 210, 103, 184,
	128, 16, 83, 16, 173, 16, 108, 186, 26, 67, 67, 105, 67, 67, 67, 26,
	73, 67, 26, 67, 67, 192, 105, 105, 120, 67, 73, 73, 67, 105, 186, 105,
	105, 186, 105, 67, 26, 36, 83, 108, 7, 31, 31, 46, 31, 7, 46, 7,
	7, 53, 53, 137, 16, 41, 85, 41, 16, 136, 191, 341, 152, 1, 1, 114,
	82, 235, 82, 53, 8, 8, 151, 407, 53, 51, 51, 51, 195, 118, 36, 36,
	205, 30, 189, 285, 219, 189, 308, 6, 231, 64, 6, 57, 82, 6, 6, 55,
	55, 228, 36, 57, 6, 36, 21, 85, 85, 58, 85, 85, 51, 11, 11, 316,
	235, 159, 11, 335, 11, 4, 4, 173, 173, 101, 173, 101, 173, 314, 173, 4,
	507, 246, 41, 0, 178, 41, 51, 41, 82, 82, 41, 41, 225, 41, 51, 51,
	82, 93, 93, 151, 36, 12, 36, 70, 12, 12, 70, 12, 42, 127, 36, 13,
	13, 128, 4, 13, 486, 109, 109, 127, 13, 250, 250, 618, 241, 169, 169, 241,
	169, 221, 221, 169, 169, 287, 250, 221, 221, 287, 287, 221, 250, 287, 408, 221,
	221, 115, 264, 230, 164, 230, 235, 186, 11, 11, 282, 11, 11, 186, 309, 11,
	6, 303, 6, 17, 17, 55, 107, 55, 233, 13, 31, 105, 93, 21, 106, 143,
	106, 21, 146, 51, 80, 106, 80, 51, 106, 51, 21, 93, 277, 80, 432, 51,
	21, 206, 14, 14, 14, 158, 8, 316, 8, 60, 77, 63, 60, 54, 77, 334,
	60, 230, 54, 54, 124, 77, 60, 54, 54, 230, 54, 106, 7, 7, 106, 106,
	106, 164, 169, 129, 106, 165, 238, 206, 134, 123, 83, 374, 51, 60, 21, 21,
	21, 60, 292, 51, 267, 60, 21, 60, 97, 44, 44, 4, 4, 71, 71, 169,
	169, 26, 328, 169, 139, 284, 235, 222, 222, 193, 222, 222, 362, 94, 94, 152,
	152, 137, 68, 240, 284, 140, 68, 128, 175, 125, 36, 222, 135, 369, 6, 6,
	136, 86, 108, 102, 86, 238, 86, 15, 313, 15, 118, 15, 32, 420, 67, 420,
	112, 15, 313, 15, 15, 67, 15, 112, 276, 32, 32, 112, 118, 420, 276, 112,
	118, 313, 112, 112, 313, 128, 32, 151, 262, 32, 26, 32, 104, 26, 128, 128,
	26, 215, 128, 55, 164, 34, 34, 42, 486, 34, 34, 287, 35, 21, 71, 21,
	21, 165, 488, 161, 21, 71, 161, 165, 165, 223, 29, 29, 8, 8, 8, 324,
	8, 128, 461, 54, 54, 55, 32, 55, 292, 54, 54, 55, 19, 32, 80, 52,
	19, 32, 32, 19, 19, 206, 21, 127, 7, 7, 136, 13, 127, 13, 13, 7,
	166, 166, 136, 166, 7, 6, 11, 6, 194, 213, 390, 213, 196, 280, 280, 581,
	572, 280, 196, 196, 280, 475, 488, 280, 280, 196, 488, 196, 196, 428, 196, 280,
	196, 176, 176, 230, 17, 17, 202, 17, 259, 17, 176, 348, 17, 176, 259, 230,
	420, 329, 7, 7, 280, 256, 67, 34, 32, 127, 67, 32, 32, 127, 578, 32,
	34, 32, 34, 239, 34, 36, 133, 133, 413, 194, 133, 926, 36, 36, 36, 36,
	441, 129, 129, 133, 129, 36, 129, 30, 68, 30, 175, 68, 427, 109, 344, 172,
	172, 215, 353, 287, 353, 288, 293, 215, 293, 293, 215, 215, 85, 85, 85, 85,
	85, 165, 363, 165, 165, 194, 167, 235, 131, 194, 194, 120, 120, 149, 127, 127,
	149, 127, 149, 149, 264, 264, 351, 160, 4, 314, 142, 4, 314, 142, 55, 235,
	30, 93, 41, 93, 30, 93, 30, 41, 6, 423, 189, 478, 234, 53, 53, 461,
	30, 30, 172, 30, 172, 194, 194, 1195, 363, 321, 194, 194, 497, 94, 94, 78,
	94, 161, 161, 105, 281, 105, 105, 109, 101, 447, 172, 39, 85, 240, 71, 39,
	39, 284, 39, 5, 5, 105, 642, 161, 166, 105, 54, 54, 161, 105, 54, 166,
	54, 218, 60, 218, 305, 155, 11, 94, 216, 155, 155, 205, 205, 205, 333, 54,
	95, 124, 6, 41, 4, 559, 4, 516, 146, 368, 4, 4, 41, 41, 4, 175,
	199, 529, 175, 355, 313, 313, 278, 278, 334, 133, 278, 313, 321, 334, 278, 821,
	333, 120, 38, 172, 120, 407, 172, 38, 38, 335, 463, 270, 407, 120, 120, 428,
	38, 138, 138, 96, 158, 6, 6, 6, 267, 269, 6, 205, 21, 358, 60, 36,
	36, 158, 36, 91, 21, 21, 91, 21, 91, 91, 158, 230, 21, 158, 21, 201,
	10, 201, 183, 251, 251, 233, 93, 165, 94, 93, 93, 8, 281, 19, 8, 169,
	415, 521, 261, 506, 231, 16, 16, 16, 228, 16, 298, 129, 16, 119, 514, 777,
	777, 64, 64, 64, 154, 154, 239, 64, 51, 154, 64, 188, 154, 51, 51, 13,
	32, 32, 32, 30, 13, 30, 32, 150, 13, 32, 30, 31, 88, 88, 123, 191,
	86, 191, 86, 31, 31, 86, 88, 13, 70, 13, 229, 202, 330, 83, 193, 55,
	838, 95, 91, 55, 55, 95, 95, 83, 55, 55, 55, 83, 85, 83, 206, 55,
	55, 55, 85, 55, 85, 55, 95, 55, 85, 55, 55, 280, 54, 54, 55, 8,
	8, 8, 8, 8, 304, 8, 288, 288, 304, 8, 67, 151, 67, 8, 67, 67,
	8, 243, 67, 45, 151, 8, 243, 139, 161, 161, 627, 139, 159, 8, 8, 8,
	689, 8, 8, 46, 13, 13, 13, 13, 13, 37, 46, 52, 46, 34, 13, 74,
	48, 48, 48, 77, 77, 48, 128, 74, 48, 149, 77, 335, 120, 108, 148, 108,
	509, 156, 148, 566, 148, 108, 120, 335, 156, 21, 134, 299, 194, 75, 194, 215,
	32, 1, 236, 55, 55, 35, 198, 198, 198, 43, 43, 21, 137, 21, 21, 43,
	159, 43, 94, 94, 43, 159, 43, 137, 263, 137, 108, 468, 365, 32, 531, 159,
	481, 121, 159, 99, 121, 36, 159, 36, 121, 159, 175, 36, 159, 16, 85, 16,
	16, 97, 191, 686, 16, 457, 41, 51, 50, 51, 41, 105, 217, 14, 12, 124,
	385, 54, 124, 54, 4, 53, 54, 53, 818, 398, 398, 6, 6, 6, 95, 33,
	6, 53, 189, 6, 53, 6, 6, 6, 73, 60, 147, 60, 60, 192, 60, 192,
	62, 60, 173, 60, 60, 147, 147, 147, 60, 234, 60, 147, 64, 62, 60, 234,
	173, 147, 670, 173, 62, 62, 60, 334, 175, 83, 102, 185, 231, 83, 124, 124,
	102, 175, 185, 169, 83, 169, 185, 21, 7, 123, 21, 23, 23, 23, 21, 60,
	272, 60, 272, 318, 482, 272, 318, 103, 60, 60, 103, 60, 60, 60, 272, 60,
	381, 103, 441, 60, 272, 416, 48, 100, 128, 160, 100, 48, 160, 101, 101, 160,
	128, 160, 160, 140, 7, 7, 79, 7, 45, 327, 287, 37, 37, 138, 138, 327,
	37, 138, 37, 50, 83, 83, 98, 50, 50, 98, 50, 50, 83, 94, 69, 815,
	102, 222, 331, 130, 130, 308, 272, 86, 86, 8, 8, 235, 27, 235, 572, 343,
	27, 27, 343, 231, 708, 231, 408, 231, 180, 408, 408, 231, 231, 128, 241, 206,
	66, 160, 66, 19, 129, 5, 5, 5, 5, 168, 112, 168, 179, 112, 432, 168,
	280, 112, 264, 179, 112, 112, 179, 112, 112, 179, 112, 468, 112, 112, 112, 265,
	112, 94, 63, 63, 63, 63, 63, 63, 63, 63, 212, 94, 302, 301, 63, 163,
	163, 289, 60, 235, 550, 80, 21, 297, 85, 106, 106, 31, 31, 639, 143, 43,
	31, 230, 550, 323, 173, 230, 71, 160, 71, 71, 173, 89, 71, 242, 1470, 724,
	242, 208, 140, 242, 300, 208, 140, 208, 140, 242, 515, 183, 183, 208, 183, 306,
	450, 374, 306, 287, 610, 287, 287, 287, 46, 415, 127, 370, 370, 370, 32, 32,
	36, 32, 32, 32, 91, 173, 173, 299, 417, 414, 287, 559, 568, 370, 12, 12,
	568, 21, 324, 641, 21, 91, 112, 21, 769, 91, 91, 588, 112, 324, 769, 112,
	91, 21, 549, 114, 114, 364, 303, 39, 139, 139, 39, 241, 241, 217, 217, 231,
	207, 29, 231, 218, 85, 207, 29, 85, 85, 85, 232, 218, 85, 261, 4, 220,
	4, 8, 53, 239, 271, 194, 21, 63, 63, 76, 76, 63, 63, 63, 76, 215,
	63, 139, 215, 63, 139, 172, 172, 172, 287, 36, 71, 193, 198, 198, 128, 481,
	193, 128, 60, 60, 85, 206, 433, 53, 53, 53, 35, 38, 321, 35, 38, 35,
	38, 41, 35, 132, 35, 379, 132, 38, 379, 38, 35, 38, 173, 132, 38, 6,
	82, 43, 43, 106, 6, 298, 6, 6, 82, 13, 253, 57, 13, 138, 138, 466,
	273, 743, 398, 807, 317, 150, 150, 17, 31, 17, 31, 194, 94, 94, 17, 682,
	136, 81, 42, 310, 601, 689, 310, 205, 310, 205, 205, 541, 310, 158, 310, 158,
	158, 158, 601, 178, 808, 158, 205, 205, 541, 601, 158, 158, 205, 158, 601, 158,
	2665,
}
