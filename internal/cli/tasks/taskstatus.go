package tasks

import (
	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/models"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID (or a unique prefix)."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, models.TaskCompleted)
}

type TaskUndoCmd struct {
	ID string `arg:"" help:"Task ID (or a unique prefix)."`
}

func (c *TaskUndoCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, models.TaskNotStarted)
}

func setStatus(ctx *cli.Context, arg string, status models.TaskStatus) error {
	data := ctx.Data()
	id, err := cli.MatchID(taskIDs(data.Tasks()), arg)
	if err != nil {
		return err
	}
	data.UpdateTaskStatus(id, status)
	if err := ctx.Commit(); err != nil {
		return err
	}

	task, _ := data.Task(id)
	if status == models.TaskCompleted {
		ctx.Printf("Completed task: %s\n", task.Title)
	} else {
		ctx.Printf("Reopened task: %s\n", task.Title)
	}
	return nil
}
