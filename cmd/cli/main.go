package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "deephealth-cli",
		Short:        "Query a deep health checker",
		SilenceUsage: true,
	}
	root.AddCommand(newDeepCmd())
	return root
}
