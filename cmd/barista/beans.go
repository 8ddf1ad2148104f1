// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/z5labs/barista/internal/try"
	"github.com/z5labs/barista/pkg/option"
	"github.com/z5labs/barista/pkg/slogfield"
	"github.com/z5labs/barista/quantity"

	"github.com/spf13/cobra"
)

func newBeansCmd(b *barista) *cobra.Command {
	var (
		portion    int32
		beanWeight int32
		partial    bool
	)

	cmd := &cobra.Command{
		Use:   "beans",
		Short: "Count the beans in a portion",
		Long: `Count the beans in a portion, both weights given in the same unit.

The count is undefined for a zero bean weight and when it does not fit in
an int32. By default that is reported as "undefined". With --partial the
unchecked computation is used instead and either case is reported as a
programming error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !partial {
				count := option.Map(quantity.CountBeans(portion, beanWeight), func(n int32) string {
					return strconv.FormatInt(int64(n), 10)
				})
				fmt.Fprintln(out, count.Or("undefined"))
				return nil
			}

			var n int32
			err := try.Catch(func() {
				n = quantity.CountBeansPartial(portion, beanWeight)
			})
			if err != nil {
				b.log.ErrorContext(
					cmd.Context(),
					"programming error while counting beans",
					slogfield.Int32("portion", portion),
					slogfield.Int32("bean_weight", beanWeight),
					slogfield.Error(err),
				)
				return err
			}
			fmt.Fprintln(out, n)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int32Var(&portion, "portion", 0, "weight of the portion")
	flags.Int32Var(&beanWeight, "bean-weight", 0, "weight of a single bean")
	flags.BoolVar(&partial, "partial", false, "skip the zero weight check")
	_ = cmd.MarkFlagRequired("portion")
	_ = cmd.MarkFlagRequired("bean-weight")
	return cmd
}
