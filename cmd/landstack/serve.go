package main

import (
	"log"

	"github.com/AtRiskMedia/landstack-go/internal/application/startup"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := startup.Initialize(); err != nil {
				return err
			}
			log.Println("Application has shut down gracefully.")
			return nil
		},
	}
}
