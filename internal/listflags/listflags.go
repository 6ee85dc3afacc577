// Package listflags holds flag helpers shared by item listing commands.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds a shared --all flag for including completed items.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("all", false, "Include completed items")
		return
	}

	cmd.Flags().BoolVar(target, "all", false, "Include completed items")
}
