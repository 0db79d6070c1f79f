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
package bitword_test

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/MurphyMarkW/delight/pkg/bitword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TurnOffRightmostOne_Drains(t *testing.T) {
	for i := range 1 << 8 {
		checkDrains(t, uint8(i))
	}
	//
	for range 10000 {
		checkDrains(t, rand.Uint64())
	}
}

func Test_Masks_Disjoint(t *testing.T) {
	for i := range 1 << 16 {
		x := uint16(i)
		assert.Zero(t, bitword.RightmostOneBitmask(x)&bitword.RightmostZeroBitmask(x), "%016b", x)
	}
}

func Test_Masks_SingleBit(t *testing.T) {
	for i := range 1 << 16 {
		x := uint16(i)
		one := bitword.RightmostOneBitmask(x)
		zero := bitword.RightmostZeroBitmask(x)
		//
		assert.LessOrEqual(t, bits.OnesCount16(one), 1)
		assert.LessOrEqual(t, bits.OnesCount16(zero), 1)
		assert.Equal(t, x != 0, one != 0)
		assert.Equal(t, x != 0xffff, zero != 0)
	}
}

func Test_ComplementaryPairing(t *testing.T) {
	for i := range 1 << 16 {
		x := uint16(i)
		assert.Equal(t, x, bitword.TurnOffRightmostOne(x)|bitword.RightmostOneBitmask(x))
	}
	//
	for range 100000 {
		x := rand.Uint64()
		require.Equal(t, x, bitword.TurnOffRightmostOne(x)|bitword.RightmostOneBitmask(x))
		require.Equal(t, x, bitword.TurnOnRightmostZero(x)&^bitword.RightmostZeroBitmask(x))
		require.Equal(t, x, bitword.TurnOffTrailingOnes(x)|bitword.TrailingOnesBitmask(x))
		require.Equal(t, x, bitword.TurnOnTrailingZeros(x)&^bitword.TrailingZerosBitmask(x))
	}
}

func Test_Masks_Composition(t *testing.T) {
	for i := range 1 << 16 {
		x := uint16(i)
		// Lowest set bit plus the zeros below it
		assert.Equal(t,
			bitword.RightmostOneAndTrailingZerosBitmask(x),
			bitword.RightmostOneBitmask(x)|bitword.TrailingZerosBitmask(x))
		// Lowest clear bit plus the ones below it
		assert.Equal(t,
			bitword.RightmostZeroAndTrailingOnesBitmask(x),
			bitword.RightmostZeroBitmask(x)|bitword.TrailingOnesBitmask(x))
		// Trailing ones of x are trailing zeros of its complement
		assert.Equal(t, bitword.TrailingOnesBitmask(x), bitword.TrailingZerosBitmask(^x))
	}
}

func Test_LeadingOnesBitmask_Subset(t *testing.T) {
	for i := range 1 << 16 {
		x := uint16(i)
		y := bitword.LeadingOnesBitmask(x)
		// Only ever clears bits
		assert.Equal(t, y, x&y)
		assert.Less(t, bits.OnesCount16(y), max(bits.OnesCount16(x), 1))
		// Bits above the lowest run survive
		if x != 0 {
			run := bitword.TrailingOnesBitmask(x >> bits.TrailingZeros16(x))
			assert.Equal(t, x&^(run<<bits.TrailingZeros16(x)), y, "%016b", x)
		}
	}
}

func checkDrains[T bitword.Word](t *testing.T, x T) {
	n := bits.OnesCount64(uint64(x))
	//
	for i := 0; i < n; i++ {
		y := bitword.TurnOffRightmostOne(x)
		require.Equal(t, bits.OnesCount64(uint64(x))-1, bits.OnesCount64(uint64(y)))
		require.Equal(t, y, x&y)
		x = y
	}
	//
	require.Zero(t, x)
	require.Zero(t, bitword.TurnOffRightmostOne(x))
}
