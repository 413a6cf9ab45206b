package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/backup"
	"github.com/julianstephens/studylit/internal/config"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/reminder"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/sqlite"
)

var (
	ErrUnknownID   = errors.New("no item with that id")
	ErrAmbiguousID = errors.New("id matches more than one item")
)

// Context is handed to every command.
type Context struct {
	Store      storage.Provider
	State      *state.Container
	Reminders  *reminder.StoreScheduler
	Notifier   reminder.Notifier
	Config     *config.Config
	ConfigPath string

	// Yes skips confirmation prompts.
	Yes bool
	// Out receives command output. Defaults to stdout.
	Out io.Writer
	// Base is the context blocking calls run under.
	Base context.Context
}

var confirmFunc = func(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

func (c *Context) Context() context.Context {
	if c.Base == nil {
		return context.Background()
	}
	return c.Base
}

// Writer is where command output goes.
func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Writer(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Writer(), args...)
}

// Data loads the container on first use and returns it.
func (c *Context) Data() *state.Container {
	c.State.Load(c.Context())
	return c.State
}

// Commit waits for queued writes so a short-lived command does not exit
// before its changes reach the store.
func (c *Context) Commit() error {
	if c.State == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(c.Context(), constants.FlushTimeout)
	defer cancel()
	if err := c.State.Flush(ctx); err != nil {
		return fmt.Errorf("failed to save changes: %w", err)
	}
	return nil
}

// Confirm asks a yes/no question unless Yes is set. Aborting the prompt
// counts as no.
func (c *Context) Confirm(title, description string) (bool, error) {
	if c.Yes {
		return true, nil
	}
	ok, err := confirmFunc(title, description)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// PerformAutomaticBackup backs up a SQLite store and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// MatchID resolves arg against ids. An exact match wins; otherwise arg must
// be a unique prefix of an id, with or without its kind prefix.
func MatchID(ids []string, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", ErrUnknownID
	}
	var found []string
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) || strings.HasPrefix(trimKind(id), arg) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrUnknownID, arg)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousID, arg)
	}
}

// ShortID trims generated ids for display.
func ShortID(id string) string {
	rest := trimKind(id)
	if len(rest) <= constants.ShortIDLength {
		return id
	}
	return id[:len(id)-len(rest)] + rest[:constants.ShortIDLength]
}

func trimKind(id string) string {
	if i := strings.IndexByte(id, '_'); i >= 0 {
		return id[i+1:]
	}
	return id
}
