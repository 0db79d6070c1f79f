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

// TurnOffTrailingOnes clears the run of set bits starting at bit 0, such that
// 0b11011011 becomes 0b11011000.  This has no effect if bit 0 is clear.
func TurnOffTrailingOnes[T Word](x T) T {
	return x & (x + 1)
}

// TurnOnTrailingZeros sets the run of clear bits starting at bit 0, such that
// 0b11011000 becomes 0b11011111.  This has no effect if bit 0 is set.  When x
// is 0 every bit is set.
func TurnOnTrailingZeros[T Word](x T) T {
	return x | (x - 1)
}

// TrailingZerosBitmask returns a mask of the run of clear bits starting at bit
// 0 (i.e. every bit below the lowest set bit).  For example, 0b11011000 gives
// 0b00000111.  Returns 0 if bit 0 is set, and every bit set if x is 0.
func TrailingZerosBitmask[T Word](x T) T {
	return ^x & (x - 1)
}

// TrailingOnesBitmask returns a mask of the run of set bits starting at bit 0
// (i.e. every bit below the lowest clear bit).  For example, 0b11011011 gives
// 0b00000011.  Returns 0 if bit 0 is clear, and every bit set if x has every
// bit set.
func TrailingOnesBitmask[T Word](x T) T {
	return x &^ (x + 1)
}
