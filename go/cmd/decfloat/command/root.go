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
	flag "github.com/spf13/pflag"
)

var (
	bitWidth = 64

	Root = &cobra.Command{
		Use:   "decfloat",
		Short: "decfloat converts between decimal text and IEEE-754 binary floating-point.",
		Long: "`decfloat` is a command-line front end to the shortest round-trip conversion library.\n\n" +
			"It formats binary floating-point values as the shortest decimal string that reads back\n" +
			"to the same value, parses decimal literals into correctly rounded values, and can\n" +
			"self-check the round-trip property over random bit patterns.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if bitWidth != 32 && bitWidth != 64 {
				return fmt.Errorf("unsupported --bits value %d (want 32 or 64)", bitWidth)
			}
			return nil
		},
	}
)

func registerFlags(fs *flag.FlagSet) {
	fs.IntVar(&bitWidth, "bits", bitWidth, "Floating-point width to operate on (32 or 64).")
}

func init() {
	registerFlags(Root.PersistentFlags())
}
