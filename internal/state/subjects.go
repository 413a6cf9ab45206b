package state

import (
	"strings"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timer"
)

// StudySubjects returns deep copies of the subjects in insertion order.
func (c *Container) StudySubjects() []models.StudySubject {
	out := make([]models.StudySubject, len(c.subjects))
	for i, s := range c.subjects {
		out[i] = s.Clone()
	}
	return out
}

// StudySubject looks a subject up by id.
func (c *Container) StudySubject(id string) (models.StudySubject, bool) {
	if i := c.subjectIndex(id); i >= 0 {
		return c.subjects[i].Clone(), true
	}
	return models.StudySubject{}, false
}

func (c *Container) subjectIndex(id string) int {
	for i := range c.subjects {
		if c.subjects[i].ID == id {
			return i
		}
	}
	return -1
}

// AddStudySubject appends a paused subject with no recorded time. Blank
// titles are ignored. The created subject is returned with ok set.
func (c *Container) AddStudySubject(title string) (models.StudySubject, bool) {
	if strings.TrimSpace(title) == "" {
		return models.StudySubject{}, false
	}
	s := models.StudySubject{
		ID:      c.newID(constants.SubjectIDPrefix),
		Title:   title,
		Status:  models.SubjectPaused,
		History: []models.Session{},
	}
	c.subjects = append(c.subjects, s)
	c.persist()
	return s.Clone(), true
}

// DeleteStudySubject removes the subject with id. Confirmation is the
// caller's job.
func (c *Container) DeleteStudySubject(id string) {
	i := c.subjectIndex(id)
	if i < 0 {
		return
	}
	c.subjects = append(c.subjects[:i:i], c.subjects[i+1:]...)
	c.persist()
}

// ToggleStudyStatus starts a paused subject's timer or stops a running one.
// Stopping folds the elapsed whole seconds into the total and records a
// session. Other subjects are not affected, so several may run at once.
func (c *Container) ToggleStudyStatus(id string) {
	i := c.subjectIndex(id)
	if i < 0 {
		return
	}
	s := &c.subjects[i]
	now := c.now()

	if start, running := s.Started(); running && s.Ongoing() {
		elapsed := timer.LiveElapsedSeconds(start, now)
		if elapsed < 0 {
			elapsed = 0
		}
		s.Status = models.SubjectPaused
		s.TotalTime += elapsed
		s.StartTime = nil
		s.History = append(s.History, models.Session{Date: now, Seconds: elapsed})
	} else {
		ms := now.UnixMilli()
		s.Status = models.SubjectOngoing
		s.StartTime = &ms
	}
	c.persist()
}

// AddManualTime records seconds of study done away from the timer. The
// subject's running state is left alone. seconds is trusted.
func (c *Container) AddManualTime(id string, seconds int) {
	i := c.subjectIndex(id)
	if i < 0 {
		return
	}
	s := &c.subjects[i]
	s.TotalTime += seconds
	s.History = append(s.History, models.Session{Date: c.now(), Seconds: seconds, Manual: true})
	c.persist()
}

// LiveSeconds is the subject's total plus the running session, if any.
func (c *Container) LiveSeconds(s models.StudySubject) int {
	if start, ok := s.Started(); ok {
		if elapsed := timer.LiveElapsedSeconds(start, c.now()); elapsed > 0 {
			return s.TotalTime + elapsed
		}
	}
	return s.TotalTime
}
