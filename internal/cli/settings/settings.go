package settings

import (
	"github.com/julianstephens/studylit/internal/cli"
)

type SettingsCmd struct {
	List                bool `help:"List current settings."`
	ToggleTheme         bool `help:"Switch between the light and dark theme."`
	ToggleNotifications bool `help:"Turn task reminders on or off."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	data := ctx.Data()

	updated := false
	if c.ToggleTheme {
		data.ToggleTheme()
		updated = true
	}
	if c.ToggleNotifications {
		data.ToggleNotifications()
		updated = true
	}
	if updated {
		if err := ctx.Commit(); err != nil {
			return err
		}
		ctx.Println("Settings updated successfully.")
	}

	if !c.List {
		if !updated {
			ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		}
		return nil
	}

	ctx.Println("Current Settings:")
	name := data.Username()
	if name == "" {
		name = "(not set)"
	}
	ctx.Printf("  Name:                  %s\n", name)
	ctx.Printf("  Theme:                 %s\n", data.Theme())
	ctx.Printf("  Notifications Enabled: %v\n", data.NotificationsEnabled())
	if err := data.RemindersAvailable(); err != nil {
		ctx.Printf("  Reminders:             unavailable (%v)\n", err)
	} else {
		ctx.Printf("  Reminders:             available\n")
	}
	if ctx.Config != nil {
		ctx.Printf("  Daily Goal:            %d min\n", ctx.Config.DailyGoalMin)
	}
	ctx.Printf("  Storage:               %s\n", ctx.Store.GetConfigPath())
	return nil
}
