package main

import (
	"github.com/spf13/cobra"

	"github.com/nestjam/pariffiliator/internal/clipboard"
	"github.com/nestjam/pariffiliator/internal/factory"
	"github.com/nestjam/pariffiliator/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive link generator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := factory.NewGenerator(config, logger)
		if err != nil {
			return err
		}

		return tui.Run(cmd.Context(), gen, clipboard.System{})
	},
}
