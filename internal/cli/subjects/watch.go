package subjects

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/timer"
)

type SubjectWatchCmd struct {
	ID    string        `arg:"" help:"Subject ID (or a unique prefix)."`
	Start bool          `help:"Start the timer first if it is paused."`
	For   time.Duration `help:"Stop watching after this long. Zero watches until interrupted."`
}

func (c *SubjectWatchCmd) Run(ctx *cli.Context) error {
	data := ctx.Data()
	id, err := cli.MatchID(subjectIDs(data.StudySubjects()), c.ID)
	if err != nil {
		return err
	}
	s, _ := data.StudySubject(id)
	if !s.Ongoing() {
		if !c.Start {
			return fmt.Errorf("timer for %s is not running (pass --start to start it)", s.Title)
		}
		data.ToggleStudyStatus(id)
		if err := ctx.Commit(); err != nil {
			return err
		}
		s, _ = data.StudySubject(id)
	}

	base := ctx.Context()
	if c.For > 0 {
		var cancel context.CancelFunc
		base, cancel = context.WithTimeout(base, c.For)
		defer cancel()
	}

	// s is a copy, so the poll goroutine never reads container state.
	w := ctx.Writer()
	render := func(time.Time) {
		fmt.Fprintf(w, "\r▶ %s  %s", s.Title, timer.FormatDuration(data.LiveSeconds(s)))
	}
	render(time.Now())
	stop := timer.NewPoll(timer.Interval, render).Start(base)
	<-base.Done()
	stop()
	ctx.Println()
	return nil
}
