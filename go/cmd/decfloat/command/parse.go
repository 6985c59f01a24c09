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

	"github.com/spf13/cobra"

	"github.com/decfloat/decfloat/go/dtoa"
	"github.com/decfloat/decfloat/go/strtod"
)

var Parse = &cobra.Command{
	Use:   "parse <literal> [<literal> ...]",
	Short: "Parses each argument and prints the value, its bit pattern, and the parse status.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  commandParse,
}

func commandParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		if bitWidth == 32 {
			v, status, consumed := strtod.Parse32(arg)
			fmt.Fprintf(out, "%s\tbits=0x%08x\tstatus=%s\tconsumed=%d\n",
				dtoa.FormatFloat32(v), math.Float32bits(v), status, consumed)
		} else {
			v, status, consumed := strtod.Parse64(arg)
			fmt.Fprintf(out, "%s\tbits=0x%016x\tstatus=%s\tconsumed=%d\n",
				dtoa.FormatFloat64(v), math.Float64bits(v), status, consumed)
		}
	}
	return nil
}

func init() {
	Root.AddCommand(Parse)
}
