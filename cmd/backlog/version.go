// Version command for the backlog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backlog/pkg/backlog"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the backlog version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("backlog", backlog.Version)
	},
}
