package models

import "time"

// Reminder is a scheduled, fire-once notification awaiting delivery.
type Reminder struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Trigger time.Time `json:"trigger"`
	TaskID  string    `json:"taskId,omitempty"`
}

// Due reports whether the trigger instant has been reached.
func (r Reminder) Due(now time.Time) bool {
	return !r.Trigger.After(now)
}

// Stale reports whether the reminder is more than lookback overdue and
// should be dropped rather than delivered late.
func (r Reminder) Stale(now time.Time, lookback time.Duration) bool {
	return now.Sub(r.Trigger) > lookback
}
