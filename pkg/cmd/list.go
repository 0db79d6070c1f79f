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

	"github.com/MurphyMarkW/delight/pkg/util/termio"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available operations.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printOperations(cmd.OutOrStdout()); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func printOperations(w io.Writer) error {
	var (
		ops   = Operations[uint]()
		table = termio.NewTablePrinter(2, uint(len(ops)))
	)
	//
	table.AnsiEscapes(false)
	//
	for i, op := range ops {
		table.SetRow(uint(i), op.Name, op.Formula)
	}
	//
	return table.Print(w)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
