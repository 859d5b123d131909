package main

import "github.com/spf13/cobra"

// newKeyCmd declares the key command. Cookie secrets are not used by the
// service yet, so it does nothing.
func newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Generates a secret key for cookies",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return nil
		},
	}
}
