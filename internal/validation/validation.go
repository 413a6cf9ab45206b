// Package validation holds the input rules applied before calling into the
// state container. The container itself trusts its input.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

// ErrInvalidInput wraps every rejection so callers can tell bad input from
// other failures.
var ErrInvalidInput = errors.New("invalid input")

// InputError carries the message shown to the user.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func reject(msg string) error {
	return &InputError{Message: msg}
}

// ValidateTaskDraft checks a new task before it is added. Reminders must be
// set for a future instant.
func ValidateTaskDraft(draft models.TaskDraft, now time.Time) error {
	if err := ValidateTaskTitle(draft.Title); err != nil {
		return err
	}
	if err := ValidateTaskTime(draft.Time, now); err != nil {
		return err
	}
	if !draft.Priority.Valid() {
		return reject(fmt.Sprintf("please choose a priority (%s)", joinPriorities()))
	}
	return nil
}

// ValidateTaskTitle rejects blank task titles.
func ValidateTaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return reject("please enter a task title")
	}
	return nil
}

// ValidateTaskTime requires a reminder strictly after now.
func ValidateTaskTime(at, now time.Time) error {
	if !at.After(now) {
		return reject("please select a future time for the reminder")
	}
	return nil
}

// ParsePriority accepts a priority name in any case.
func ParsePriority(s string) (models.Priority, error) {
	for _, p := range models.Priorities {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", reject(fmt.Sprintf("please choose a priority (%s)", joinPriorities()))
}

func joinPriorities() string {
	names := make([]string, len(models.Priorities))
	for i, p := range models.Priorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// ValidateSubjectTitle rejects blank subject titles.
func ValidateSubjectTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return reject("please enter a subject title")
	}
	return nil
}

// ValidateUsername rejects blank names and returns the trimmed name.
func ValidateUsername(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", reject("please enter your name")
	}
	return trimmed, nil
}

// ParseManualTime turns hour and minute fields into seconds. Empty fields
// count as zero.
func ParseManualTime(hours, minutes string) (int, error) {
	h, err := parseField(hours)
	if err != nil {
		return 0, err
	}
	m, err := parseField(minutes)
	if err != nil {
		return 0, err
	}

	// Checked before multiplying so overlong input cannot wrap around.
	if h > constants.MaxManualHours || m > constants.MaxManualHours*60 {
		return 0, reject(fmt.Sprintf("please enter at most %d hours", constants.MaxManualHours))
	}

	total := h*60 + m
	if total <= 0 {
		return 0, reject("please enter a time greater than 0 minutes")
	}
	return total * 60, nil
}

func parseField(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, reject("please enter valid numbers")
	}
	return n, nil
}

// ParseTaskTime reads a reminder time given as RFC 3339, "YYYY-MM-DD HH:MM"
// or "HH:MM" (today, in loc). An empty string yields def.
func ParseTaskTime(s string, def time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(constants.DateFormat+" "+constants.TimeFormat, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(constants.TimeFormat, s, loc); err == nil {
		today := def.In(loc)
		return time.Date(today.Year(), today.Month(), today.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
	}
	return time.Time{}, reject(fmt.Sprintf("could not read time %q (use HH:MM, YYYY-MM-DD HH:MM or RFC 3339)", s))
}
