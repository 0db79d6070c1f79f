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
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/MurphyMarkW/delight/pkg/bitword"
	"github.com/MurphyMarkW/delight/pkg/bitword/scan"
	"github.com/MurphyMarkW/delight/pkg/util"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags]",
	Short: "Check every operation against a bit-scanning reference.",
	Long: `Check every operation against a slow bit-scanning reference, along with
	a number of algebraic laws relating the operations.  Widths of up to 16
	bits are checked exhaustively, whilst wider words are randomly sampled.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg    verifyConfig
			failed bool
		)
		//
		cfg.samples = GetUint(cmd, "samples")
		cfg.seed = GetUint64(cmd, "seed")
		//
		for _, width := range GetUintSlice(cmd, "width") {
			stats := util.NewPerfStats()
			reports, err := runVerify(cmd.Context(), width, cfg)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			stats.Log(fmt.Sprintf("Verifying %d-bit words", width))
			//
			for _, r := range reports {
				failed = r.log() || failed
			}
		}
		// Error signal
		if failed {
			os.Exit(1)
		}
	},
}

// verifyConfig captures the configuration of the verify command.
type verifyConfig struct {
	// Number of random samples for widths too large to enumerate.
	samples uint
	// Seed for random sampling.
	seed uint64
}

// Widths up to (and including) this are checked exhaustively.
const maxExhaustiveWidth = 16

// check is a predicate which should hold for every word.
type check[T bitword.Word] struct {
	name  string
	holds func(T) bool
}

// report summarises the outcome of running a single check.
type report struct {
	check string
	width uint
	// Number of words tested
	tested uint64
	// Words on which the check failed
	failures *roaring64.Bitmap
}

// Log the outcome of this check, returning true if it failed.
func (r *report) log() bool {
	if r.failures.IsEmpty() {
		log.Infof("%s (%d-bit): ok (%d words)", r.check, r.width, r.tested)
		return false
	}
	//
	var examples []string
	//
	for it := r.failures.Iterator(); it.HasNext() && len(examples) < 4; {
		examples = append(examples, fmt.Sprintf("%#x", it.Next()))
	}
	//
	log.Errorf("%s (%d-bit): failed on %d of %d words (e.g. %s)", r.check, r.width,
		r.failures.GetCardinality(), r.tested, strings.Join(examples, ", "))
	//
	return true
}

func runVerify(ctx context.Context, width uint, cfg verifyConfig) ([]report, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	//
	switch width {
	case 8:
		return verifyWidth[uint8](ctx, cfg)
	case 16:
		return verifyWidth[uint16](ctx, cfg)
	case 32:
		return verifyWidth[uint32](ctx, cfg)
	case 64:
		return verifyWidth[uint64](ctx, cfg)
	default:
		return verifyWidth[uint](ctx, cfg)
	}
}

// Run every check over the same set of words, one check per goroutine.
func verifyWidth[T bitword.Word](ctx context.Context, cfg verifyConfig) ([]report, error) {
	var (
		checks  = checksFor[T]()
		words   = wordsFor[T](cfg)
		reports = make([]report, len(checks))
	)
	//
	g, ctx := errgroup.WithContext(ctx)
	//
	for i, c := range checks {
		reports[i] = report{c.name, bitword.Width[T](), uint64(len(words)), roaring64.New()}
		//
		g.Go(func() error {
			return runCheck(ctx, c, words, reports[i].failures)
		})
	}
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	//
	return reports, nil
}

func runCheck[T bitword.Word](ctx context.Context, c check[T], words []T, failures *roaring64.Bitmap) error {
	for i, x := range words {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		//
		if !c.holds(x) {
			failures.Add(uint64(x))
		}
	}
	//
	return nil
}

// Construct the checks for words of type T.  That is, every operation agrees
// with its reference, along with some laws relating the operations.
func checksFor[T bitword.Word]() []check[T] {
	var checks []check[T]
	//
	for _, op := range Operations[T]() {
		checks = append(checks, check[T]{op.Name, func(x T) bool {
			return op.Apply(x) == op.Reference(x)
		}})
	}
	//
	return append(checks,
		check[T]{"drain-rightmost-ones", drains[T]},
		check[T]{"disjoint-rightmost-masks", func(x T) bool {
			return bitword.RightmostOneBitmask(x)&bitword.RightmostZeroBitmask(x) == 0
		}},
		check[T]{"reconstruct-rightmost-one", func(x T) bool {
			return bitword.TurnOffRightmostOne(x)|bitword.RightmostOneBitmask(x) == x
		}},
	)
}

// Turning off the rightmost one popcount(x) times leaves nothing, and each step
// removes exactly one bit.
func drains[T bitword.Word](x T) bool {
	n := scan.OnesCount(x)
	//
	for i := n; i > 0; i-- {
		x = bitword.TurnOffRightmostOne(x)
		//
		if scan.OnesCount(x) != i-1 {
			return false
		}
	}
	//
	return x == 0
}

// Determine the words to check.  Narrow words are enumerated exhaustively,
// whilst wide words are sampled around the boundary cases.
func wordsFor[T bitword.Word](cfg verifyConfig) []T {
	var (
		n   = bitword.Width[T]()
		all = bitword.AllOnes[T]()
	)
	//
	if n <= maxExhaustiveWidth {
		words := make([]T, 0, uint64(all)+1)
		//
		for x := uint64(0); x <= uint64(all); x++ {
			words = append(words, T(x))
		}
		//
		return words
	}
	//
	var (
		top   = T(1) << (n - 1)
		words = []T{0, 1, all, all - 1, top, top - 1}
		rng   = rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	)
	//
	for range cfg.samples {
		x := T(rng.Uint64())
		// Alternate between uniform words and those with long trailing runs.
		switch rng.UintN(3) {
		case 1:
			x <<= rng.UintN(n)
		case 2:
			x = ^(x << rng.UintN(n))
		}
		//
		words = append(words, x)
	}
	//
	return words
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().UintSlice("width", []uint{8, 16, 32, 64}, "word widths in bits to verify (0 for native)")
	verifyCmd.Flags().Uint("samples", 1000000, "number of random samples for words wider than 16 bits")
	verifyCmd.Flags().Uint64("seed", 0, "seed for random sampling")
}
