// New-list command creates an empty task list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

var newListCmd = &cobra.Command{
	Use:   "new-list <name>",
	Short: "Create a task list",
	Long: `New-list creates a new, empty task list.

Example:
  backlog new-list "Sprint 12"`,
	Args: cobra.ExactArgs(1),
	RunE: runNewList,
}

func runNewList(cmd *cobra.Command, args []string) error {
	list := types.NewTaskList(args[0])

	if err := types.Create(driver.TaskLists(), list); err != nil {
		return fmt.Errorf("create task list: %w", err)
	}

	return printItem(list)
}
