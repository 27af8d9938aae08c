// Add command creates a task, optionally linked into a task list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

var (
	flagAddDescription string
	flagAddListID      string
	flagAddSortOrder   string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a task",
	Long: `Add creates a new task. With --list, the task is created inside the
given task list in a single step.

Example:
  backlog add "Fix login timeout"
  backlog add "Fix login timeout" -d "Sessions expire too early" --list 0196fe23-7c01-7d6b-9e09-5968eb370549`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddDescription, "description", "d", "", "task description")
	addCmd.Flags().StringVar(&flagAddListID, "list", "", "id of the task list to add the task to")
	addCmd.Flags().StringVar(&flagAddSortOrder, "order", types.DefaultSortOrder, "sort order token within the list")
}

func runAdd(cmd *cobra.Command, args []string) error {
	task := types.NewTask(args[0], flagAddDescription)

	if flagAddListID == "" {
		if err := types.Create(driver.Tasks(), task); err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		return printItem(task)
	}

	link := types.Contains[types.TaskList, types.Task]{
		Left:      targetListSlot(flagAddListID),
		SortOrder: flagAddSortOrder,
		Right:     types.Resolved(task),
	}

	if err := types.CreateLinked(driver.Backlog(), link); err != nil {
		return fmt.Errorf("create linked task: %w", err)
	}
	return printItem(task)
}

// targetListSlot looks up the target list and captures the outcome, resolved
// or not. A bad id or a missing list surfaces through the relationship error
// when the link is resolved, alongside any problem on the task side.
func targetListSlot(raw string) types.Slot[types.TaskList] {
	id, err := parseItemID(raw)
	if err != nil {
		return types.Unresolved[types.TaskList](err)
	}

	list, err := types.Get(driver.TaskLists(), id)
	if err != nil {
		return types.Unresolved[types.TaskList](err)
	}
	return types.Resolved(list)
}
