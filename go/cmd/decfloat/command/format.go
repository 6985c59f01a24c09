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

	"github.com/spf13/cobra"

	"github.com/decfloat/decfloat/go/dtoa"
	"github.com/decfloat/decfloat/go/hack"
	"github.com/decfloat/decfloat/go/strtod"
)

var formatDecimalPoint bool

var Format = &cobra.Command{
	Use:   "format <number> [<number> ...]",
	Short: "Prints the shortest decimal form of each numeric argument.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  commandFormat,
}

func commandFormat(cmd *cobra.Command, args []string) error {
	buf := make([]byte, 0, dtoa.MaxLen)
	for _, arg := range args {
		buf = buf[:0]
		if bitWidth == 32 {
			v, err := strtod.Float32(arg)
			if err != nil {
				return err
			}
			if formatDecimalPoint {
				buf = dtoa.AppendFloat32Decimal(buf, v)
			} else {
				buf = dtoa.AppendFloat32(buf, v)
			}
		} else {
			v, err := strtod.Float64(arg)
			if err != nil {
				return err
			}
			if formatDecimalPoint {
				buf = dtoa.AppendFloat64Decimal(buf, v)
			} else {
				buf = dtoa.AppendFloat64(buf, v)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), hack.String(buf))
	}
	return nil
}

func init() {
	Format.Flags().BoolVar(&formatDecimalPoint, "decimal-point", false, "Keep a trailing \".0\" on integral values.")
	Root.AddCommand(Format)
}
