// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/z5labs/barista/coffee"
	"github.com/z5labs/barista/machine"
	"github.com/z5labs/barista/pkg/option"
	"github.com/z5labs/barista/quantity"

	"github.com/spf13/cobra"
)

func newEspressoCmd(b *barista) *cobra.Command {
	def := machine.DefaultSettings()
	size := sizeFlag(def.Size)
	strength := strengthFlag(def.Strength)
	milk := milkFlag()

	cmd := &cobra.Command{
		Use:   "espresso",
		Short: "Serve an espresso and pick its cup",
		Long: `Serve an espresso and pick its cup.

Size and strength default to the configured machine settings. Without
--milk the espresso is served black.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			settings := b.cfg.Machine.Settings
			if flags.Changed("size") {
				settings = settings.WithSize(size.value)
			}
			if flags.Changed("strength") {
				settings = settings.WithStrength(strength.value)
			}

			m := option.None[coffee.Milk]()
			if flags.Changed("milk") {
				m = option.Some(milk.value)
			}

			e := coffee.NewEspresso(settings.Size, settings.Strength, m)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, e)
			fmt.Fprintf(out, "cup: %s\n", quantity.CupColorFor(e))
		},
	}

	flags := cmd.Flags()
	flags.Var(size, "size", "size: small, medium or large")
	flags.Var(strength, "strength", "strength: light, medium or strong")
	flags.Var(milk, "milk", "milk: whole, skim, soy or almond")
	return cmd
}
