// Package reminder schedules fire-once task reminders and delivers them
// through the desktop tray notifier.
package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
)

var (
	// ErrPastTrigger is returned when scheduling for an instant that is not
	// in the future.
	ErrPastTrigger = errors.New("reminder trigger must be in the future")
	// ErrNoNotifier means reminders can be scheduled but nothing will show them.
	ErrNoNotifier = errors.New("no notifier available")
)

// Metadata travels with a reminder to its delivery.
type Metadata struct {
	TaskID string
}

// Handle identifies a scheduled reminder.
type Handle string

// Scheduler schedules a notification to fire once at a future instant.
type Scheduler interface {
	Schedule(ctx context.Context, title, body string, trigger time.Time, meta Metadata) (Handle, error)
	// Permission reports whether scheduled reminders can be shown. A non-nil
	// error means they will not fire.
	Permission(ctx context.Context) error
}

// Notifier displays a notification immediately.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
	Available(ctx context.Context) error
}

// StoreScheduler persists pending reminders in the store under the
// reminders key. Delivery happens when Deliver runs, normally from the
// notify command on a schedule.
//
// Schedule, Cancel and Deliver each rewrite the whole reminders value;
// mu keeps those read-modify-write cycles from interleaving in one process.
type StoreScheduler struct {
	mu       sync.Mutex
	store    storage.Provider
	notifier Notifier
	now      func() time.Time
}

type Option func(*StoreScheduler)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *StoreScheduler) { s.now = now }
}

func NewStoreScheduler(store storage.Provider, notifier Notifier, opts ...Option) *StoreScheduler {
	s := &StoreScheduler{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StoreScheduler) Schedule(ctx context.Context, title, body string, trigger time.Time, meta Metadata) (Handle, error) {
	if !trigger.After(s.now()) {
		return "", ErrPastTrigger
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.pending(ctx)
	if err != nil {
		return "", err
	}

	r := models.Reminder{
		ID:      uuid.NewString(),
		Title:   title,
		Body:    body,
		Trigger: trigger,
		TaskID:  meta.TaskID,
	}
	pending = append(pending, r)
	if err := s.save(ctx, pending); err != nil {
		return "", err
	}

	logger.Debug("Scheduled reminder", "id", r.ID, "task", r.TaskID, "trigger", r.Trigger)
	return Handle(r.ID), nil
}

func (s *StoreScheduler) Permission(ctx context.Context) error {
	if s.notifier == nil {
		return ErrNoNotifier
	}
	if err := s.notifier.Available(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNoNotifier, err)
	}
	return nil
}

// Pending returns the reminders not yet delivered, soonest first.
func (s *StoreScheduler) Pending(ctx context.Context) ([]models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending(ctx)
}

func (s *StoreScheduler) pending(ctx context.Context) ([]models.Reminder, error) {
	raw, found, err := s.store.Get(ctx, constants.KeyReminders)
	if err != nil {
		return nil, fmt.Errorf("failed to read reminders: %w", err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	var pending []models.Reminder
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, fmt.Errorf("failed to parse reminders: %w", err)
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Trigger.Before(pending[j].Trigger)
	})
	return pending, nil
}

// Cancel drops every pending reminder for taskID.
func (s *StoreScheduler) Cancel(ctx context.Context, taskID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.pending(ctx)
	if err != nil {
		return 0, err
	}
	kept := pending[:0]
	for _, r := range pending {
		if r.TaskID != taskID {
			kept = append(kept, r)
		}
	}
	removed := len(pending) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.save(ctx, kept)
}

// DeliveryResult summarizes one Deliver run.
type DeliveryResult struct {
	Delivered []models.Reminder
	Failed    []models.Reminder
	Dropped   []models.Reminder
}

// Deliver shows every due reminder. Reminders more than lookback overdue
// are dropped unshown. Reminders whose notification fails stay pending so
// a later run can retry them until they go stale.
func (s *StoreScheduler) Deliver(ctx context.Context, notifier Notifier, lookback time.Duration) (DeliveryResult, error) {
	var res DeliveryResult

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.pending(ctx)
	if err != nil {
		return res, err
	}

	now := s.now()
	var kept []models.Reminder
	for _, r := range pending {
		switch {
		case !r.Due(now):
			kept = append(kept, r)
		case r.Stale(now, lookback):
			logger.Info("Dropping stale reminder", "id", r.ID, "trigger", r.Trigger)
			res.Dropped = append(res.Dropped, r)
		default:
			if err := notifier.Notify(ctx, r.Title, r.Body); err != nil {
				logger.Warn("Failed to deliver reminder", "id", r.ID, "error", err)
				res.Failed = append(res.Failed, r)
				kept = append(kept, r)
				continue
			}
			res.Delivered = append(res.Delivered, r)
		}
	}

	if len(kept) == len(pending) {
		return res, nil
	}
	return res, s.save(ctx, kept)
}

func (s *StoreScheduler) save(ctx context.Context, pending []models.Reminder) error {
	if pending == nil {
		pending = []models.Reminder{}
	}
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to serialize reminders: %w", err)
	}
	if err := s.store.Set(ctx, constants.KeyReminders, string(data)); err != nil {
		return fmt.Errorf("failed to save reminders: %w", err)
	}
	return nil
}

var _ Scheduler = (*StoreScheduler)(nil)
