package subjects

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timer"
	"github.com/julianstephens/studylit/internal/validation"
)

type SubjectAddCmd struct {
	Title string `arg:"" help:"Subject title."`
}

func (c *SubjectAddCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateSubjectTitle(c.Title); err != nil {
		return err
	}
	s, ok := ctx.Data().AddStudySubject(c.Title)
	if !ok {
		return fmt.Errorf("subject was not added")
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("Added subject: %s (ID: %s)\n", s.Title, cli.ShortID(s.ID))
	return nil
}

type SubjectListCmd struct{}

func (c *SubjectListCmd) Run(ctx *cli.Context) error {
	data := ctx.Data()
	subjects := data.StudySubjects()
	if len(subjects) == 0 {
		ctx.Println("No study subjects yet.")
		return nil
	}
	for _, s := range subjects {
		marker := " "
		if s.Ongoing() {
			marker = "▶"
		}
		ctx.Printf("%s %-10s %-30s %s\n", marker, cli.ShortID(s.ID), s.Title, timer.FormatDuration(data.LiveSeconds(s)))
	}
	return nil
}

type SubjectToggleCmd struct {
	ID string `arg:"" help:"Subject ID (or a unique prefix)."`
}

func (c *SubjectToggleCmd) Run(ctx *cli.Context) error {
	data := ctx.Data()
	id, err := cli.MatchID(subjectIDs(data.StudySubjects()), c.ID)
	if err != nil {
		return err
	}
	data.ToggleStudyStatus(id)
	if err := ctx.Commit(); err != nil {
		return err
	}

	s, _ := data.StudySubject(id)
	if s.Ongoing() {
		ctx.Printf("Started timer for %s\n", s.Title)
	} else {
		last := 0
		if n := len(s.History); n > 0 {
			last = s.History[n-1].Seconds
		}
		ctx.Printf("Stopped timer for %s: +%s (total %s)\n", s.Title, timer.FormatDuration(last), timer.FormatDuration(s.TotalTime))
	}
	return nil
}

type SubjectLogCmd struct {
	ID      string `arg:"" help:"Subject ID (or a unique prefix)."`
	Hours   string `short:"H" help:"Hours studied."`
	Minutes string `short:"m" help:"Minutes studied."`
}

func (c *SubjectLogCmd) Run(ctx *cli.Context) error {
	seconds, err := validation.ParseManualTime(c.Hours, c.Minutes)
	if err != nil {
		return err
	}
	data := ctx.Data()
	id, err := cli.MatchID(subjectIDs(data.StudySubjects()), c.ID)
	if err != nil {
		return err
	}
	data.AddManualTime(id, seconds)
	if err := ctx.Commit(); err != nil {
		return err
	}

	s, _ := data.StudySubject(id)
	ctx.Printf("Logged %s for %s (total %s)\n", timer.FormatDuration(seconds), s.Title, timer.FormatDuration(s.TotalTime))
	return nil
}

type SubjectDeleteCmd struct {
	ID string `arg:"" help:"Subject ID (or a unique prefix) to delete."`
}

func (c *SubjectDeleteCmd) Run(ctx *cli.Context) error {
	data := ctx.Data()
	id, err := cli.MatchID(subjectIDs(data.StudySubjects()), c.ID)
	if err != nil {
		return err
	}
	s, _ := data.StudySubject(id)

	ok, err := ctx.Confirm(fmt.Sprintf("Delete subject %q?", s.Title), "Its recorded study time is deleted too.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}

	data.DeleteStudySubject(id)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("Deleted subject: %s\n", s.Title)
	return nil
}

func subjectIDs(subjects []models.StudySubject) []string {
	ids := make([]string, len(subjects))
	for i, s := range subjects {
		ids[i] = s.ID
	}
	return ids
}
