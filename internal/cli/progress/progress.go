package progress

import (
	"time"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/config"
	"github.com/julianstephens/studylit/internal/progress"
)

type ProgressCmd struct{}

// now is swapped in tests.
var now = time.Now

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	goal := int(cfg.DailyGoal().Seconds())
	sum := progress.Summarize(ctx.Data().StudySubjects(), now(), goal)
	ctx.Println(progress.Render(sum, progress.DefaultPalette()))
	return nil
}
