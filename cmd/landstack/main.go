package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "landstack",
		Short:         "Landing page builder for property marketing campaigns.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(),
		newSeedCommand(),
		newSchemaCommand(),
		newHashPasswordCommand(),
		newKeygenCommand(),
	)
	return root
}
