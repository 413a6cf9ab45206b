package models

import "time"

type SubjectStatus string

const (
	SubjectPaused  SubjectStatus = "paused"
	SubjectOngoing SubjectStatus = "ongoing"
)

// Session is one entry of a subject's history: a completed timer run or a
// manual addition.
type Session struct {
	Date    time.Time `json:"date"`
	Seconds int       `json:"seconds"`
	Manual  bool      `json:"manual,omitempty"`
}

type StudySubject struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Status    SubjectStatus `json:"status"`
	TotalTime int           `json:"totalTime"` // seconds
	StartTime *int64        `json:"startTime"` // epoch milliseconds, nil unless ongoing
	History   []Session     `json:"history"`
}

func (s StudySubject) Ongoing() bool {
	return s.Status == SubjectOngoing
}

// Started returns the start of the running session, if any.
func (s StudySubject) Started() (time.Time, bool) {
	if s.StartTime == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*s.StartTime), true
}

// HistorySeconds sums the recorded sessions.
func (s StudySubject) HistorySeconds() int {
	total := 0
	for _, h := range s.History {
		total += h.Seconds
	}
	return total
}

// Clone returns a copy that shares no memory with s.
func (s StudySubject) Clone() StudySubject {
	c := s
	if s.StartTime != nil {
		start := *s.StartTime
		c.StartTime = &start
	}
	c.History = make([]Session, len(s.History))
	copy(c.History, s.History)
	return c
}
