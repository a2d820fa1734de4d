// ABOUTME: CLI command printing the taper version.
// ABOUTME: Version is set at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taper version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taper %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
