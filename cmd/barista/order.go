// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"time"

	"github.com/z5labs/barista/coffee"

	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Describe a coffee order",
	}
	cmd.AddCommand(
		newInstantOrderCmd(),
		newEspressoOrderCmd(),
		newPourOverOrderCmd(),
		newOtherOrderCmd(),
	)
	return cmd
}

func printOrder(cmd *cobra.Command, o coffee.Order) {
	fmt.Fprintln(cmd.OutOrStdout(), coffee.Describe(o))
}

func newInstantOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instant",
		Short: "Order an instant 3-in-1 coffee",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printOrder(cmd, coffee.Instant3In1{})
		},
	}
}

func newEspressoOrderCmd() *cobra.Command {
	bean := &beanFlag{value: coffee.Arabica}
	strength := strengthFlag(coffee.StrengthMedium)

	cmd := &cobra.Command{
		Use:   "espresso",
		Short: "Order an espresso",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printOrder(cmd, coffee.EspressoOrder{
				Bean:     bean.value,
				Strength: strength.value,
			})
		},
	}
	cmd.Flags().Var(bean, "bean", "bean: arabica, robusta or a blend ratio like Arabica60Robusta40")
	cmd.Flags().Var(strength, "strength", "strength: light, medium or strong")
	return cmd
}

func newPourOverOrderCmd() *cobra.Command {
	var (
		temperature uint8
		brewTime    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "pour-over",
		Short: "Order a pour-over",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printOrder(cmd, coffee.PourOver{
				Temperature: coffee.Celsius(temperature),
				Time:        brewTime,
			})
		},
	}
	cmd.Flags().Uint8Var(&temperature, "temperature", 93, "water temperature in degrees celsius")
	cmd.Flags().DurationVar(&brewTime, "time", 3*time.Minute, "brewing time")
	return cmd
}

func newOtherOrderCmd() *cobra.Command {
	method := methodFlag()

	cmd := &cobra.Command{
		Use:   "other",
		Short: "Order coffee brewed with another method",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printOrder(cmd, coffee.OtherMethod{Method: method.value})
		},
	}
	cmd.Flags().Var(method, "method", "method: frenchpress, aeropress or coldbrew")
	return cmd
}
