// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package bitword provides branch-free transformations of the rightmost bits of
// fixed-width unsigned words.  Every function is a single formula built from
// addition, subtraction and bitwise operators.  Unsigned arithmetic in Go
// wraps modulo 2^W, which is exactly what the formulas require (for example,
// -x == ^x + 1 for every x, including zero).
//
// Bit positions are counted from the least-significant bit (bit 0).  All
// functions are total: the all-zero and all-one words are handled by
// wraparound rather than by branching.
package bitword

import "math/bits"

// Word is the set of fixed-width unsigned integer types on which the
// transformations operate.  The platform's native word is uint.
type Word interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// AllOnes returns the word of type T with every bit set (i.e. 2^W - 1).
func AllOnes[T Word]() T {
	return ^T(0)
}

// Width returns the number of bits in a word of type T.
func Width[T Word]() uint {
	return uint(bits.OnesCount64(uint64(AllOnes[T]())))
}
