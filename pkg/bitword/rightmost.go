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
package bitword

// TurnOffRightmostOne clears the lowest set bit of x.  For example,
// 0b11001110 becomes 0b11001100.  Returns 0 when x is 0.
func TurnOffRightmostOne[T Word](x T) T {
	return x & (x - 1)
}

// TurnOnRightmostZero sets the lowest clear bit of x.  For example,
// 0b11001111 becomes 0b11011111.  When x has every bit set, x+1 wraps to zero
// and x is returned unchanged.
func TurnOnRightmostZero[T Word](x T) T {
	return x | (x + 1)
}

// RightmostOneBitmask isolates the lowest set bit of x, returning a word with
// exactly that bit set (e.g. 0b11011000 gives 0b00001000), or 0 when x is 0.
func RightmostOneBitmask[T Word](x T) T {
	return x & -x
}

// RightmostZeroBitmask isolates the lowest clear bit of x, returning a word
// with exactly that bit set (e.g. 0b11011011 gives 0b00000100), or 0 when x has
// every bit set.
func RightmostZeroBitmask[T Word](x T) T {
	return ^x & (x + 1)
}

// RightmostOneAndTrailingZerosBitmask returns a mask covering the lowest set
// bit of x and every bit below it.  For example, 0b01011000 gives 0b00001111.
// When x is 0 there is no set bit and the mask covers the whole word.
func RightmostOneAndTrailingZerosBitmask[T Word](x T) T {
	return x ^ (x - 1)
}

// RightmostZeroAndTrailingOnesBitmask returns a mask covering the lowest clear
// bit of x and every bit below it.  For example, 0b01010111 gives 0b00001111.
// When x has every bit set the mask covers the whole word.
func RightmostZeroAndTrailingOnesBitmask[T Word](x T) T {
	return x ^ (x + 1)
}
