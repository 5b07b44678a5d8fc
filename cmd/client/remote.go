package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestjam/pariffiliator/internal/client"
)

var serverAddr string

var remoteCmd = &cobra.Command{
	Use:   "remote [url...]",
	Short: "Generate affiliate links with a running server",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(client.WithServerAddress(serverAddr))

		for _, arg := range args {
			link, err := c.Generate(arg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), link)
		}

		return nil
	},
}

func init() {
	remoteCmd.Flags().StringVarP(&serverAddr, "server", "a", "http://localhost:8080", "address of the server")
}
