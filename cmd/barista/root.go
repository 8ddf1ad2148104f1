// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"log/slog"

	"github.com/z5labs/barista/machine"
	"github.com/z5labs/barista/pkg/noop"
	"github.com/z5labs/barista/pkg/option"

	"github.com/spf13/cobra"
)

// barista is the state shared by every subcommand. It is populated
// once the config has been read.
type barista struct {
	cfg     Config
	handler slog.Handler
	log     *slog.Logger
}

func (b *barista) supply() option.Option[machine.Supply] {
	return option.FromPtr(b.cfg.Machine.Supply)
}

func newRootCmd() *cobra.Command {
	b := &barista{
		handler: noop.LogHandler{},
		log:     slog.New(noop.LogHandler{}),
	}

	var cfgPath string
	cmd := &cobra.Command{
		Use:          "barista",
		Short:        "Brew, order and render coffee",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cfgPath)
			if err != nil {
				return err
			}

			b.cfg = cfg
			b.handler = slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.Logging.Level,
			})
			b.log = slog.New(b.handler)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "yaml or json config file overriding the defaults")

	cmd.AddCommand(
		newBrewCmd(b),
		newOrderCmd(),
		newEspressoCmd(b),
		newBeansCmd(b),
		newShotCmd(b),
	)
	return cmd
}
