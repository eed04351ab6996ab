package main

import (
	"fmt"

	"github.com/AtRiskMedia/landstack-go/internal/application/startup"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

var schemaArgs struct {
	Print bool
}

func newSchemaCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "schema",
		Short: "Create the database tables and indexes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaArgs.Print {
				for _, stmt := range database.NewTableCreator().Statements() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s;\n\n", stmt)
				}
				return nil
			}

			logger, err := startup.NewLogger()
			if err != nil {
				return err
			}
			defer logger.Close()

			db, err := startup.OpenDatabase(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", db.Driver)
			return nil
		},
	}
	command.Flags().BoolVar(&schemaArgs.Print, "print", false, "print the DDL instead of applying it")
	return command
}
