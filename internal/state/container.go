// Package state owns the in-memory tasks, study subjects and preferences,
// and persists them as whole snapshots after every change.
//
// A Container is driven from a single goroutine and holds no lock. Writes
// run in the background, in issue order, through a storage.Writer.
package state

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/reminder"
	"github.com/julianstephens/studylit/internal/storage"
)

// Persister queues writes for the store.
type Persister interface {
	Enqueue(entries ...storage.Entry)
	Flush(ctx context.Context) error
	Close(ctx context.Context) error
}

type Container struct {
	store     storage.Provider
	writer    Persister
	scheduler reminder.Scheduler
	now       func() time.Time
	newID     func(prefix string) string
	debounce  time.Duration

	tasks                []models.Task
	subjects             []models.StudySubject
	theme                models.Theme
	notificationsEnabled bool
	username             string

	loadStarted bool
	loaded      bool
	loggedOut   bool
	reminderErr error
}

type Option func(*Container)

// WithWriter replaces the default background writer.
func WithWriter(w Persister) Option {
	return func(c *Container) { c.writer = w }
}

// WithScheduler sets where task reminders go. Without one, reminders are
// skipped.
func WithScheduler(s reminder.Scheduler) Option {
	return func(c *Container) { c.scheduler = s }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.now = now }
}

// WithIDGenerator overrides how ids are minted. The function receives the
// id prefix for the entity kind.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(c *Container) { c.newID = fn }
}

// WithDebounce collapses bursts of changes into one write per key when the
// default writer is used.
func WithDebounce(d time.Duration) Option {
	return func(c *Container) { c.debounce = d }
}

func New(store storage.Provider, opts ...Option) *Container {
	c := &Container{
		store:                store,
		now:                  time.Now,
		newID:                func(prefix string) string { return prefix + uuid.NewString() },
		theme:                models.ThemeLight,
		notificationsEnabled: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.writer == nil {
		c.writer = storage.NewWriter(store, storage.WithDebounce(c.debounce))
	}
	return c
}

// IsDataLoaded reports whether Load has finished. Until then nothing is
// persisted.
func (c *Container) IsDataLoaded() bool {
	return c.loaded
}

// Flush waits until every snapshot queued so far has been written.
func (c *Container) Flush(ctx context.Context) error {
	return c.writer.Flush(ctx)
}

// Close flushes pending writes and stops the writer.
func (c *Container) Close(ctx context.Context) error {
	return c.writer.Close(ctx)
}

// RemindersAvailable returns why reminders will not be shown, or nil.
// It is checked once during Load.
func (c *Container) RemindersAvailable() error {
	if c.scheduler == nil {
		return reminder.ErrNoNotifier
	}
	return c.reminderErr
}

// Logout waits for queued writes, then removes every user key from the
// store. In-memory state is left as is, but nothing more is persisted.
func (c *Container) Logout(ctx context.Context) error {
	if err := c.writer.Flush(ctx); err != nil {
		logger.Warn("Failed to flush before logout", "error", err)
	}
	c.loggedOut = true
	if err := c.store.RemoveMany(ctx, constants.LogoutKeys); err != nil {
		logger.Error("Failed to clear data on logout", "error", err)
		return err
	}
	logger.Info("Logged out")
	return nil
}
