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

// LeadingOnesBitmask clears the lowest contiguous run of set bits in x,
// leaving only those bits strictly above that run.  For example, 0b11011110
// gives 0b11000000.  Adding the lowest set bit to x carries through the run,
// clearing it and setting the first clear bit above it; masking with x then
// drops that carry bit again.
//
// When x is 0 there is no run and the result is 0.  When every bit of x is set
// the run spans the whole word, the carry falls off the top, and the result is
// also 0.
func LeadingOnesBitmask[T Word](x T) T {
	return (RightmostOneBitmask(x) + x) & x
}
