package tasks

import (
	"fmt"
	"strings"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

type TaskListCmd struct {
	Pending bool `help:"Only show tasks not yet completed."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Data().Tasks()
	if c.Pending {
		kept := tasks[:0]
		for _, t := range tasks {
			if !t.Completed() {
				kept = append(kept, t)
			}
		}
		tasks = kept
	}

	if len(tasks) == 0 {
		ctx.Println("No tasks found.")
		return nil
	}

	for _, t := range tasks {
		ctx.Println(formatTask(t))
	}
	return nil
}

func formatTask(t models.Task) string {
	check := "[ ]"
	if t.Completed() {
		check = "[x]"
	}
	line := fmt.Sprintf("%s %-10s %-40s %-6s %s",
		check,
		cli.ShortID(t.ID),
		t.Title,
		t.Priority,
		t.Time.Local().Format(constants.DateFormat+" "+constants.TimeFormat),
	)
	if t.Subtitle != "" {
		line += "\n" + strings.Repeat(" ", 15) + t.Subtitle
	}
	return line
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
