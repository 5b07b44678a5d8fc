package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestjam/pariffiliator/internal/clipboard"
	"github.com/nestjam/pariffiliator/internal/factory"
	"github.com/nestjam/pariffiliator/internal/ui"
)

var copyResult bool

var generateCmd = &cobra.Command{
	Use:   "generate [url...]",
	Short: "Generate affiliate links locally",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := factory.NewGenerator(config, logger)
		if err != nil {
			return err
		}

		controller := ui.NewController(gen, clipboard.System{}, ui.WithControllerLogger(logger))
		defer controller.Close()

		rejected := 0
		for _, arg := range args {
			controller.SetInput(arg)
			state := controller.Generate(cmd.Context())

			if state.Phase() == ui.Error {
				rejected++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", arg, state.Error)
				continue
			}

			fmt.Fprintln(cmd.OutOrStdout(), state.Result)
		}

		if copyResult && controller.State().Result != "" {
			if err = controller.Copy(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.CopiedLabel)
		}

		if rejected > 0 {
			return fmt.Errorf("%d of %d links rejected", rejected, len(args))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "copy the last link to the clipboard")
}
