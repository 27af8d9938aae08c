// List command prints the tasks inside a task list, in backlog order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <list-id>",
	Short: "List the tasks in a task list",
	Long: `List prints the tasks contained in the given task list, ordered by
their sort-order token.

Example:
  backlog list 0196fe23-7c01-7d6b-9e09-5968eb370549`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	list, err := types.Get(driver.TaskLists(), id)
	if err != nil {
		return fmt.Errorf("get task list: %w", err)
	}

	links, err := types.GetLinked(driver.Backlog(), list)
	if err != nil {
		return fmt.Errorf("get linked tasks: %w", err)
	}

	var tasks []types.Task
	for link := range links {
		_, task, err := link.Resolve()
		if err != nil {
			return fmt.Errorf("resolve linked task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return printTasks(tasks)
}
