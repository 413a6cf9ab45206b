package system

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/studylit/internal/backup"
	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/sqlite"
)

type DoctorCmd struct{}

// errSkip marks a check that does not apply to the current setup.
var errSkip = errors.New("not applicable")

// warning is a finding that does not fail the run.
type warning struct{ msg string }

func (w warning) Error() string { return w.msg }

type check struct {
	name string
	run  func(*cli.Context) error
	// needsStore checks are skipped once storage is unreachable.
	needsStore bool
}

var checks = []check{
	{name: "Storage reachable", run: checkStorage},
	{name: "Migrations complete", run: checkMigrations, needsStore: true},
	{name: "Data integrity", run: checkData, needsStore: true},
	{name: "Backups present", run: checkBackups},
	{name: "Reminder delivery", run: checkNotifier},
	{name: "Clock", run: checkClock},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	reachable := true
	for i, c := range checks {
		if c.needsStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		var w warning
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errSkip):
			ctx.Printf("⊘ %s: SKIPPED\n", c.name)
		case errors.As(err, &w):
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %s\n", indent(w.msg))
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %s\n", indent(err.Error()))
			failed++
			if i == 0 {
				reachable = false
			}
		}
	}

	ctx.Println()
	if failed > 0 {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("%d health check(s) failed", failed)
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n   ")
}

func checkStorage(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, _, err := ctx.Store.Get(ctx.Context(), constants.KeyTheme); err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	return nil
}

func checkMigrations(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return errSkip
	}
	pending, err := m.PendingMigrations()
	if err != nil {
		return err
	}
	if pending > 0 {
		return fmt.Errorf("%d migration(s) pending, run 'studylit migrate'", pending)
	}
	return nil
}

func checkData(ctx *cli.Context) error {
	rep, err := state.Verify(ctx.Context(), ctx.Store)
	if err != nil {
		return err
	}
	if !rep.OK() {
		return errors.New(strings.Join(rep.Errors, "\n"))
	}
	if len(rep.Warnings) > 0 {
		return warning{strings.Join(rep.Warnings, "\n")}
	}
	return nil
}

func checkBackups(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return errSkip
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return warning{"no backups found, consider creating one with 'studylit backup create'"}
	}
	return nil
}

func checkNotifier(ctx *cli.Context) error {
	if ctx.Notifier == nil {
		return warning{"no notifier configured, reminders will not be shown"}
	}
	if err := ctx.Notifier.Available(ctx.Context()); err != nil {
		return warning{fmt.Sprintf("reminders will not be shown: %v", err)}
	}
	return nil
}

func checkClock(*cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
