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

// Package scan provides slow reference versions of the bitword
// transformations.  Each one walks the bits of its argument upwards from bit 0
// using explicit loops and conditionals, and never relies on wraparound
// arithmetic.  They exist to check the branch-free formulas against.
package scan

import "github.com/MurphyMarkW/delight/pkg/bitword"

// Determine the position of the lowest bit of x matching the given value, or
// the word width if there is no such bit.
func lowest[T bitword.Word](x T, set bool) uint {
	n := bitword.Width[T]()
	//
	for i := uint(0); i < n; i++ {
		if isSet(x, i) == set {
			return i
		}
	}
	// Not found
	return n
}

// Determine the length of the run of bits matching the given value which
// starts at position i.
func run[T bitword.Word](x T, i uint, set bool) uint {
	n := bitword.Width[T]()
	count := uint(0)
	//
	for ; i < n && isSet(x, i) == set; i++ {
		count++
	}
	//
	return count
}

// Construct a mask with count bits set, starting from bit position i.
func mask[T bitword.Word](i uint, count uint) T {
	var m T
	//
	for j := i; j < i+count; j++ {
		m |= T(1) << j
	}
	//
	return m
}

func isSet[T bitword.Word](x T, i uint) bool {
	return (x>>i)&1 == 1
}

// OnesCount counts the number of set bits in x, one bit at a time.
func OnesCount[T bitword.Word](x T) uint {
	count := uint(0)
	//
	for i := uint(0); i < bitword.Width[T](); i++ {
		if isSet(x, i) {
			count++
		}
	}
	//
	return count
}
