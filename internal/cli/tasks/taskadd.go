package tasks

import (
	"time"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/validation"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Subtitle string `short:"s" help:"Optional second line."`
	At       string `short:"a" help:"Reminder time: HH:MM, 'YYYY-MM-DD HH:MM' or RFC 3339. Defaults to five minutes from now."`
	Priority string `short:"p" help:"Priority (Low|Medium|High)." default:"Medium"`
}

// now is swapped in tests.
var now = time.Now

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	current := now()
	at, err := validation.ParseTaskTime(c.At, current.Add(constants.DefaultTaskDueAhead), time.Local)
	if err != nil {
		return err
	}
	priority, err := validation.ParsePriority(c.Priority)
	if err != nil {
		return err
	}

	draft := models.TaskDraft{
		Title:    c.Title,
		Subtitle: c.Subtitle,
		Time:     at,
		Priority: priority,
	}
	if err := validation.ValidateTaskDraft(draft, current); err != nil {
		return err
	}

	data := ctx.Data()
	task := data.AddTask(draft)
	data.ScheduleTaskReminder(ctx.Context(), task)
	if err := ctx.Commit(); err != nil {
		return err
	}

	ctx.Printf("Added task: %s (ID: %s)\n", task.Title, cli.ShortID(task.ID))
	if data.NotificationsEnabled() {
		ctx.Printf("Reminder set for %s\n", task.Time.Local().Format(constants.DateFormat+" "+constants.TimeFormat))
	}
	return nil
}
