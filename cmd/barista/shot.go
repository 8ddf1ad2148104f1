// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/z5labs/barista/coffee"

	"github.com/spf13/cobra"
)

func newShotCmd(b *barista) *cobra.Command {
	bean := &beanFlag{value: coffee.Arabica}
	strength := strengthFlag(coffee.StrengthMedium)

	cmd := &cobra.Command{
		Use:   "shot [size...]",
		Short: "Pull espresso shots of one bean and strength",
		Long: `Pull one espresso shot per given size, all from the same bean and strength.

Without sizes a single shot of the configured size is pulled. Strength
defaults to the configured machine strength.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := []coffee.Size{b.cfg.Machine.Settings.Size}
			if len(args) > 0 {
				sizes = make([]coffee.Size, len(args))
				for i, arg := range args {
					err := sizes[i].UnmarshalText([]byte(arg))
					if err != nil {
						return err
					}
				}
			}

			st := b.cfg.Machine.Settings.Strength
			if cmd.Flags().Changed("strength") {
				st = strength.value
			}

			pull := coffee.MakeShot(bean.value)(st)
			for _, size := range sizes {
				fmt.Fprintln(cmd.OutOrStdout(), pull(size))
			}
			return nil
		},
	}
	cmd.Flags().Var(bean, "bean", "bean: arabica, robusta or a blend ratio like Arabica60Robusta40")
	cmd.Flags().Var(strength, "strength", "strength: light, medium or strong")
	return cmd
}
