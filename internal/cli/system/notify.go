package system

import (
	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/config"
	"github.com/julianstephens/studylit/internal/reminder"
)

type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if ctx.Reminders == nil {
		return reminder.ErrNoNotifier
	}
	if !ctx.Data().NotificationsEnabled() {
		if c.DryRun {
			ctx.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	notifier := ctx.Notifier
	if c.DryRun {
		notifier = reminder.PrintNotifier{W: ctx.Writer()}
	}
	if notifier == nil {
		return reminder.ErrNoNotifier
	}

	cfg := ctx.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	res, err := ctx.Reminders.Deliver(ctx.Context(), notifier, cfg.ReminderLookback)
	if err != nil {
		return err
	}

	if c.DryRun {
		ctx.Printf("[DryRun] delivered %d, failed %d, dropped %d\n", len(res.Delivered), len(res.Failed), len(res.Dropped))
	}
	return nil
}
