// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/z5labs/barista/machine"
	"github.com/z5labs/barista/pkg/slogfield"
	"github.com/z5labs/barista/quantity"

	"github.com/spf13/cobra"
)

func newBrewCmd(b *barista) *cobra.Command {
	def := machine.DefaultSettings()
	grind := grindFlag(def.Grind)
	strength := strengthFlag(def.Strength)
	size := sizeFlag(def.Size)

	var (
		small       bool
		maxStrength bool
		water       uint32
		beans       uint32
		cups        int
	)

	cmd := &cobra.Command{
		Use:   "brew",
		Short: "Brew coffee with the configured machine",
		Long: `Brew coffee with the configured machine.

Flags only override the configured settings when given. A supply is only
tracked when configured or when --water or --beans is given, in which case
every cup depletes it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			var steps []machine.Step
			if flags.Changed("grind") {
				steps = append(steps, machine.Grind(grind.value))
			}
			if flags.Changed("strength") {
				steps = append(steps, machine.Strength(strength.value))
			}
			if flags.Changed("size") {
				steps = append(steps, machine.Size(size.value))
			}
			if small {
				steps = append(steps, machine.SmallSize)
			}
			if maxStrength {
				steps = append(steps, machine.MaxStrength)
			}

			opts := []machine.Option{machine.LogHandler(b.handler)}
			supply, tracked := b.supply().Value()
			if flags.Changed("water") {
				supply.Water = quantity.Milliliters(water)
				tracked = true
			}
			if flags.Changed("beans") {
				supply.Beans = quantity.Grams(beans)
				tracked = true
			}
			if tracked {
				opts = append(opts, machine.WithSupply(supply))
			}

			m := machine.New(b.cfg.Machine.Settings, opts...).Configure(steps...)
			b.log.DebugContext(
				cmd.Context(),
				"brewing",
				slogfield.Stringer("settings", m.Settings()),
				slogfield.Int("cups", cups),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, m.Settings())
			for i := 0; i < cups; i++ {
				c, next, err := m.Dispense()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, c)
				m = next
			}
			if s, ok := m.Supply().Value(); ok {
				fmt.Fprintf(out, "remaining: %s\n", s)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(grind, "grind", "grind: fine, medium or coarse")
	flags.Var(strength, "strength", "strength: light, medium or strong")
	flags.Var(size, "size", "size: small, medium or large")
	flags.BoolVar(&small, "small", false, "brew a small cup")
	flags.BoolVar(&maxStrength, "max-strength", false, "brew at the strongest strength")
	flags.Uint32Var(&water, "water", 0, "water in the machine, in milliliters")
	flags.Uint32Var(&beans, "beans", 0, "beans in the machine, in grams")
	flags.IntVar(&cups, "cups", 1, "number of cups to dispense")
	return cmd
}
