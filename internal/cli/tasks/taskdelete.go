package tasks

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/logger"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID (or a unique prefix) to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	data := ctx.Data()
	id, err := cli.MatchID(taskIDs(data.Tasks()), c.ID)
	if err != nil {
		return err
	}
	task, _ := data.Task(id)

	ok, err := ctx.Confirm(fmt.Sprintf("Delete task %q?", task.Title), "This can't be undone.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}

	data.DeleteTask(id)
	if ctx.Reminders != nil {
		if _, err := ctx.Reminders.Cancel(ctx.Context(), id); err != nil {
			logger.Warn("Failed to cancel reminder", "task", id, "error", err)
		}
	}
	if err := ctx.Commit(); err != nil {
		return err
	}

	ctx.Printf("Deleted task: %s (ID: %s)\n", task.Title, cli.ShortID(id))
	return nil
}
