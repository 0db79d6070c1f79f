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
	"os"
	"slices"
	"strconv"

	"github.com/MurphyMarkW/delight/pkg/bitword"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected 64bit unsigned integer flag, or exits if an error
// arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUintSlice gets an expected list of unsigned integers, or exits if an error
// arises.
func GetUintSlice(cmd *cobra.Command, flag string) []uint {
	r, err := cmd.Flags().GetUintSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected list of strings, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Widths supported on the command line.  Zero denotes the native word (uint).
var widths = []uint{0, 8, 16, 32, 64}

func checkWidth(width uint) error {
	if slices.Contains(widths, width) {
		return nil
	}
	//
	return fmt.Errorf("unsupported width %d (expected one of %v)", width, widths)
}

// Parse a word of the given type.  Any prefix understood by strconv is
// permitted (e.g. 0b1010, 0x0a, 0o12 or 10), as are underscores between digits
// when a prefix is given.
func parseWord[T bitword.Word](text string) (T, error) {
	n := bitword.Width[T]()
	//
	val, err := strconv.ParseUint(text, 0, int(n))
	if err != nil {
		return 0, fmt.Errorf("invalid %d-bit word %q: %w", n, text, err)
	}
	//
	return T(val), nil
}

// Format a word in binary, padded out to its full width.
func formatWord[T bitword.Word](x T) string {
	return fmt.Sprintf("0b%0*b", bitword.Width[T](), uint64(x))
}
