/*
Copyright 2026 The Decfloat Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/decfloat/decfloat/go/dtoa"
	"github.com/decfloat/decfloat/go/strtod"
)

var (
	roundtripSamples = 1000000
	roundtripSeed    int64
)

var Roundtrip = &cobra.Command{
	Use:   "roundtrip",
	Short: "Formats random bit patterns and verifies each parses back bit-exactly.",
	Args:  cobra.NoArgs,
	RunE:  commandRoundtrip,
}

func commandRoundtrip(cmd *cobra.Command, args []string) error {
	seed := roundtripSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	const maxReported = 10
	failures := 0

	for i := 0; i < roundtripSamples; i++ {
		var ok bool
		var detail string

		if bitWidth == 32 {
			b := uint32(rng.Uint64())
			f := math.Float32frombits(b)
			s := dtoa.FormatFloat32(f)
			g, _, _ := strtod.Parse32(s)
			if f != f { // NaN: any NaN pattern reads back as some NaN
				ok = g != g
			} else {
				ok = math.Float32bits(g) == b
			}
			detail = fmt.Sprintf("bits=0x%08x formatted=%q parsed=0x%08x", b, s, math.Float32bits(g))
		} else {
			b := rng.Uint64()
			f := math.Float64frombits(b)
			s := dtoa.FormatFloat64(f)
			g, _, _ := strtod.Parse64(s)
			if f != f {
				ok = g != g
			} else {
				ok = math.Float64bits(g) == b
			}
			detail = fmt.Sprintf("bits=0x%016x formatted=%q parsed=0x%016x", b, s, math.Float64bits(g))
		}

		if !ok {
			failures++
			if failures <= maxReported {
				fmt.Fprintf(cmd.ErrOrStderr(), "mismatch: %s\n", detail)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "checked %d float%d samples (seed %d): %d mismatches\n",
		roundtripSamples, bitWidth, seed, failures)
	if failures > 0 {
		return fmt.Errorf("%d of %d samples failed to round-trip", failures, roundtripSamples)
	}
	return nil
}

func init() {
	Roundtrip.Flags().IntVar(&roundtripSamples, "samples", roundtripSamples, "Number of random bit patterns to check.")
	Roundtrip.Flags().Int64Var(&roundtripSeed, "seed", roundtripSeed, "Random seed (0 picks one from the clock).")
	Root.AddCommand(Roundtrip)
}
