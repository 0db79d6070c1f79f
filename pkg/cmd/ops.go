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
package cmd

import (
	"fmt"

	"github.com/MurphyMarkW/delight/pkg/bitword"
	"github.com/MurphyMarkW/delight/pkg/bitword/scan"
)

// Operation pairs a branch-free transformation with its bit-scanning reference,
// as known on the command line.
type Operation[T bitword.Word] struct {
	// Name used on the command line
	Name string
	// Formula implemented by the transformation, for display.
	Formula string
	// Branch-free transformation
	Apply func(T) T
	// Reference implementation
	Reference func(T) T
}

// Operations returns every known operation for words of type T, in a fixed
// order.
func Operations[T bitword.Word]() []Operation[T] {
	return []Operation[T]{
		{"turn-off-rightmost-one", "x & (x - 1)",
			bitword.TurnOffRightmostOne[T], scan.TurnOffRightmostOne[T]},
		{"turn-on-rightmost-zero", "x | (x + 1)",
			bitword.TurnOnRightmostZero[T], scan.TurnOnRightmostZero[T]},
		{"turn-off-trailing-ones", "x & (x + 1)",
			bitword.TurnOffTrailingOnes[T], scan.TurnOffTrailingOnes[T]},
		{"turn-on-trailing-zeros", "x | (x - 1)",
			bitword.TurnOnTrailingZeros[T], scan.TurnOnTrailingZeros[T]},
		{"rightmost-zero-bitmask", "^x & (x + 1)",
			bitword.RightmostZeroBitmask[T], scan.RightmostZeroBitmask[T]},
		{"rightmost-one-bitmask", "x & -x",
			bitword.RightmostOneBitmask[T], scan.RightmostOneBitmask[T]},
		{"trailing-zeros-bitmask", "^x & (x - 1)",
			bitword.TrailingZerosBitmask[T], scan.TrailingZerosBitmask[T]},
		{"trailing-ones-bitmask", "x &^ (x + 1)",
			bitword.TrailingOnesBitmask[T], scan.TrailingOnesBitmask[T]},
		{"leading-ones-bitmask", "((x & -x) + x) & x",
			bitword.LeadingOnesBitmask[T], scan.LeadingOnesBitmask[T]},
		{"rightmost-one-and-trailing-zeros-bitmask", "x ^ (x - 1)",
			bitword.RightmostOneAndTrailingZerosBitmask[T], scan.RightmostOneAndTrailingZerosBitmask[T]},
		{"rightmost-zero-and-trailing-ones-bitmask", "x ^ (x + 1)",
			bitword.RightmostZeroAndTrailingOnesBitmask[T], scan.RightmostZeroAndTrailingOnesBitmask[T]},
	}
}

// SelectOperations returns the operations with the given names, in the order
// given.  No names selects every operation.
func SelectOperations[T bitword.Word](names []string) ([]Operation[T], error) {
	var (
		all      = Operations[T]()
		selected []Operation[T]
	)
	//
	if len(names) == 0 {
		return all, nil
	}
	//
	for _, name := range names {
		op, ok := findOperation(all, name)
		if !ok {
			return nil, fmt.Errorf("unknown operation \"%s\"", name)
		}
		//
		selected = append(selected, op)
	}
	//
	return selected, nil
}

func findOperation[T bitword.Word](ops []Operation[T], name string) (Operation[T], bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}
	//
	return Operation[T]{}, false
}
