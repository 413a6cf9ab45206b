package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the priorities in the order they are offered to users.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskCompleted  TaskStatus = "completed"
)

// Toggle returns the opposite status. Unknown statuses toggle to completed.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskCompleted {
		return TaskNotStarted
	}
	return TaskCompleted
}

// TaskDraft is the caller-supplied part of a new task.
type TaskDraft struct {
	Title    string
	Subtitle string
	Time     time.Time
	Priority Priority
}

type Task struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Time     time.Time  `json:"time"` // reminder trigger, RFC 3339
	Priority Priority   `json:"priority"`
	Status   TaskStatus `json:"status"`
}

func (t Task) Completed() bool {
	return t.Status == TaskCompleted
}
