// Show command retrieves a single task by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task by id",
	Long: `Show retrieves a task by its id and prints it.

Example:
  backlog show 0196b4c9-8447-7959-ae1f-72c7c8a3dd36`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	task, err := types.Get(driver.Tasks(), id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	return printItem(task)
}
