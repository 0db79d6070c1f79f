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
package scan

import "github.com/MurphyMarkW/delight/pkg/bitword"

// TurnOffRightmostOne clears the lowest set bit, if there is one.
func TurnOffRightmostOne[T bitword.Word](x T) T {
	if i := lowest(x, true); i < bitword.Width[T]() {
		return x &^ mask[T](i, 1)
	}
	//
	return x
}

// TurnOnRightmostZero sets the lowest clear bit, if there is one.
func TurnOnRightmostZero[T bitword.Word](x T) T {
	if i := lowest(x, false); i < bitword.Width[T]() {
		return x | mask[T](i, 1)
	}
	//
	return x
}

// TurnOffTrailingOnes clears every bit in the run of ones starting at bit 0.
func TurnOffTrailingOnes[T bitword.Word](x T) T {
	return x &^ mask[T](0, run(x, 0, true))
}

// TurnOnTrailingZeros sets every bit in the run of zeros starting at bit 0.
func TurnOnTrailingZeros[T bitword.Word](x T) T {
	return x | mask[T](0, run(x, 0, false))
}

// RightmostZeroBitmask returns the lowest clear bit on its own, or 0 if there
// is none.
func RightmostZeroBitmask[T bitword.Word](x T) T {
	if i := lowest(x, false); i < bitword.Width[T]() {
		return mask[T](i, 1)
	}
	//
	return 0
}

// RightmostOneBitmask returns the lowest set bit on its own, or 0 if there is
// none.
func RightmostOneBitmask[T bitword.Word](x T) T {
	if i := lowest(x, true); i < bitword.Width[T]() {
		return mask[T](i, 1)
	}
	//
	return 0
}

// TrailingZerosBitmask returns the run of zeros starting at bit 0 as a mask.
func TrailingZerosBitmask[T bitword.Word](x T) T {
	return mask[T](0, run(x, 0, false))
}

// TrailingOnesBitmask returns the run of ones starting at bit 0 as a mask.
func TrailingOnesBitmask[T bitword.Word](x T) T {
	return mask[T](0, run(x, 0, true))
}

// LeadingOnesBitmask clears the lowest run of ones, wherever it starts, and
// keeps everything above it.
func LeadingOnesBitmask[T bitword.Word](x T) T {
	i := lowest(x, true)
	//
	return x &^ mask[T](i, run(x, i, true))
}

// RightmostOneAndTrailingZerosBitmask returns the lowest set bit together with
// every bit below it.  If there is no set bit, every bit is returned.
func RightmostOneAndTrailingZerosBitmask[T bitword.Word](x T) T {
	i := lowest(x, true)
	//
	return mask[T](0, min(i+1, bitword.Width[T]()))
}

// RightmostZeroAndTrailingOnesBitmask returns the lowest clear bit together
// with every bit below it.  If there is no clear bit, every bit is returned.
func RightmostZeroAndTrailingOnesBitmask[T bitword.Word](x T) T {
	i := lowest(x, false)
	//
	return mask[T](0, min(i+1, bitword.Width[T]()))
}
