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
	"io"
	"os"

	"github.com/MurphyMarkW/delight/pkg/bitword"
	"github.com/MurphyMarkW/delight/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] word...",
	Short: "Apply one or more operations to a set of words.",
	Long: `Apply one or more operations to each of the given words and print the
	results in binary.  Words may be given in any base using a prefix
	(e.g. 0b11011000, 0xd8, 0o330 or 216).`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg evalConfig
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.width = GetUint(cmd, "width")
		cfg.operations = GetStringArray(cmd, "op")
		cfg.ansiEscapes = GetFlag(cmd, "ansi-escapes")
		// Default to escapes whenever output is going to a terminal.
		if !cmd.Flags().Changed("ansi-escapes") {
			cfg.ansiEscapes = termio.IsTerminal(cmd.OutOrStdout())
		}
		//
		if err := runEval(cmd.OutOrStdout(), cfg, args); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// evalConfig captures the configuration of the eval command.
type evalConfig struct {
	// Width of words (0 for native).
	width uint
	// Names of operations to apply (empty for all).
	operations []string
	// Whether or not to colour changed results.
	ansiEscapes bool
}

func runEval(w io.Writer, cfg evalConfig, args []string) error {
	if err := checkWidth(cfg.width); err != nil {
		return err
	}
	//
	switch cfg.width {
	case 8:
		return evalWords[uint8](w, cfg, args)
	case 16:
		return evalWords[uint16](w, cfg, args)
	case 32:
		return evalWords[uint32](w, cfg, args)
	case 64:
		return evalWords[uint64](w, cfg, args)
	default:
		return evalWords[uint](w, cfg, args)
	}
}

func evalWords[T bitword.Word](w io.Writer, cfg evalConfig, args []string) error {
	ops, err := SelectOperations[T](cfg.operations)
	if err != nil {
		return err
	}
	// Parse all words up front, so nothing is printed for bad input.
	words := make([]T, len(args))
	//
	for i, arg := range args {
		if words[i], err = parseWord[T](arg); err != nil {
			return err
		}
	}
	//
	for i, x := range words {
		log.Debugf("evaluating %d operations on %s", len(ops), formatWord(x))
		//
		if i != 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		//
		if err := evalTable(x, ops, cfg.ansiEscapes).Print(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// Construct a table showing the result of applying each operation to x.  The
// final column marks those bits which the operation changed.
func evalTable[T bitword.Word](x T, ops []Operation[T], escapes bool) *termio.TablePrinter {
	var (
		table   = termio.NewTablePrinter(4, uint(len(ops))+1)
		changed = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
		zero    = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	)
	//
	table.SetRow(0, "operation", "x", "result", "changed")
	table.SetEscape(0, 0, termio.BoldAnsiEscape())
	table.AnsiEscapes(escapes)
	//
	for i, op := range ops {
		row := uint(i) + 1
		y := op.Apply(x)
		//
		table.SetRow(row, op.Name, formatWord(x), formatWord(y), formatWord(x^y))
		//
		if y == 0 {
			table.SetEscape(2, row, zero)
		} else if y != x {
			table.SetEscape(2, row, changed)
		}
	}
	//
	return table
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Uint("width", 0, "word width in bits (8, 16, 32, 64, or 0 for native)")
	evalCmd.Flags().StringArray("op", nil, "operation to apply (repeatable, default all)")
	evalCmd.Flags().Bool("ansi-escapes", false, "colour results (default when writing to a terminal)")
}
