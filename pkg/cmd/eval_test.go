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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Eval_Single(t *testing.T) {
	var buf bytes.Buffer
	//
	cfg := evalConfig{width: 8, operations: []string{"turn-off-rightmost-one"}}
	require.NoError(t, runEval(&buf, cfg, []string{"0b11001110"}))
	//
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "operation")
	assert.Contains(t, lines[1], "turn-off-rightmost-one")
	// x, result and changed bits
	assert.Contains(t, lines[1], "0b11001110")
	assert.Contains(t, lines[1], "0b11001100")
	assert.Contains(t, lines[1], "0b00000010")
	assert.NotContains(t, buf.String(), "\033")
}

func Test_Eval_AllOperations(t *testing.T) {
	var buf bytes.Buffer
	//
	require.NoError(t, runEval(&buf, evalConfig{width: 16}, []string{"0xd8", "0"}))
	// Two tables separated by a blank line
	tables := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	require.Len(t, tables, 2)
	//
	for _, table := range tables {
		assert.Len(t, strings.Split(table, "\n"), len(Operations[uint16]())+1)
	}
	//
	assert.Contains(t, tables[0], "0b0000000011011000")
	assert.Contains(t, tables[1], "0b0000000000000000")
}

func Test_Eval_Escapes(t *testing.T) {
	var buf bytes.Buffer
	//
	cfg := evalConfig{width: 8, operations: []string{"rightmost-one-bitmask"}, ansiEscapes: true}
	require.NoError(t, runEval(&buf, cfg, []string{"0"}))
	assert.Contains(t, buf.String(), "\033[33m")
}

func Test_Eval_Native(t *testing.T) {
	var buf bytes.Buffer
	//
	require.NoError(t, runEval(&buf, evalConfig{operations: []string{"leading-ones-bitmask"}}, []string{"222"}))
	assert.Contains(t, buf.String(), "11000000 |")
}

func Test_Eval_Invalid(t *testing.T) {
	var buf bytes.Buffer
	//
	assert.Error(t, runEval(&buf, evalConfig{width: 12}, []string{"1"}))
	assert.Error(t, runEval(&buf, evalConfig{width: 8}, []string{"1", "0x100"}))
	assert.Error(t, runEval(&buf, evalConfig{width: 8, operations: []string{"nope"}}, []string{"1"}))
	// Nothing printed for bad input
	assert.Empty(t, buf.String())
}
