package main

import "github.com/spf13/cobra"

const (
	appName    = "random-service"
	appVersion = "0.1.0"
)

// newRootCmd builds the command tree. Without a subcommand the root prints
// its help and exits.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "HTTP service answering every request with a random byte",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newKeyCmd())
	return root
}
