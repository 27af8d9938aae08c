// Shared helpers for backlog CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/backlog/pkg/types"
)

// parseItemID parses a CLI-supplied id string, mapping parse failures onto
// the invalid-id error so every command reports bad ids the same way.
func parseItemID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &types.InvalidIDError{ID: raw}
	}
	return id, nil
}

// printItem writes a single item to stdout, as indented JSON when --json is
// set and as a one-line summary otherwise.
func printItem(item any) error {
	if flagJSON {
		output, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	switch v := item.(type) {
	case types.Task:
		if v.Description != "" {
			fmt.Printf("%s  %s  %s\n", v.ID, v.Name, v.Description)
		} else {
			fmt.Printf("%s  %s\n", v.ID, v.Name)
		}
	case types.TaskList:
		fmt.Printf("%s  %s\n", v.ID, v.Name)
	default:
		fmt.Printf("%+v\n", v)
	}
	return nil
}

// printTasks writes a sequence of tasks to stdout in backlog order.
func printTasks(tasks []types.Task) error {
	if flagJSON {
		output, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal tasks: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	for _, t := range tasks {
		if err := printItem(t); err != nil {
			return err
		}
	}
	return nil
}
