// Init command creates the config and data directories and verifies that the
// configured storage driver can attach.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize backlog storage",
	Long:  `Initialize the backlog storage driver using configuration from config.yaml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The driver is already attached by PersistentPreRunE.
		fmt.Println("Backlog initialized successfully")
		return nil
	},
}
