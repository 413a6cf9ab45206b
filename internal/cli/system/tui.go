package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/config"
	"github.com/julianstephens/studylit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	cfg := ctx.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := tui.NewModel(ctx.Context(), ctx.Data(), ctx.Reminders, cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return ctx.Commit()
}
