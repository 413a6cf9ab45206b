package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/cli/backups"
	"github.com/julianstephens/studylit/internal/cli/progress"
	"github.com/julianstephens/studylit/internal/cli/settings"
	"github.com/julianstephens/studylit/internal/cli/subjects"
	"github.com/julianstephens/studylit/internal/cli/system"
	"github.com/julianstephens/studylit/internal/cli/tasks"
	"github.com/julianstephens/studylit/internal/config"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/errors"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/reminder"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
)

var CLI struct {
	Version      kong.VersionFlag
	Config       string `help:"Database file, .json file or PostgreSQL connection string. PostgreSQL passwords must NOT be embedded; use the keyring, the environment or .pgpass. Defaults to the connection in $STUDYLIT_DB_CONNECTION or the keyring, then ~/.config/studylit/studylit.db." type:"string"`
	SettingsFile string `help:"YAML settings file. Defaults to config.yaml next to the database." type:"path"`
	Debug        bool   `help:"Log debug output to stderr."`
	Yes          bool   `short:"y" help:"Answer yes to every confirmation."`

	Init    system.InitCmd    `cmd:"" help:"Initialize studylit storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Task    struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a task with a reminder."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks."`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Mark a task completed."`
		Undo   tasks.TaskUndoCmd   `cmd:"" help:"Mark a task not started."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Subject struct {
		Add    subjects.SubjectAddCmd    `cmd:"" help:"Add a study subject."`
		List   subjects.SubjectListCmd   `cmd:"" help:"List study subjects and their totals."`
		Toggle subjects.SubjectToggleCmd `cmd:"" help:"Start or stop a subject's timer."`
		Watch  subjects.SubjectWatchCmd  `cmd:"" help:"Show a running timer live."`
		Log    subjects.SubjectLogCmd    `cmd:"" help:"Add study time by hand."`
		Delete subjects.SubjectDeleteCmd `cmd:"" help:"Delete a study subject."`
	} `cmd:"" help:"Manage study subjects."`
	Progress progress.ProgressCmd `cmd:"" help:"Show the daily goal, weekly trend and subject breakdown."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Logout   system.LogoutCmd     `cmd:"" help:"Erase all stored data."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report whether a connection string is stored."`
	} `cmd:"" help:"Manage the database connection stored in the OS keyring."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Deliver due reminders (run periodically)."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Tasks with reminders and study timers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	dir := configDir(store)
	settingsPath := CLI.SettingsFile
	if settingsPath == "" {
		settingsPath = config.DefaultPath(dir)
	}
	cfg, err := config.Load(settingsPath)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug || cfg.Debug, ConfigDir: dir}); err != nil {
		errors.Fatal(err)
	}

	command := kctx.Command()
	if needsLoad(command) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	base, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := reminder.NewTrayNotifier(cfg.TrayIdentifier)
	reminders := reminder.NewStoreScheduler(store, notifier)
	data := state.New(store,
		state.WithScheduler(reminders),
		state.WithDebounce(cfg.SaveDebounce),
	)

	appCtx := &cli.Context{
		Store:      store,
		State:      data,
		Reminders:  reminders,
		Notifier:   notifier,
		Config:     cfg,
		ConfigPath: settingsPath,
		Yes:        CLI.Yes,
		Base:       base,
	}

	runErr := kctx.Run(appCtx)

	closeCtx, cancel := context.WithTimeout(context.Background(), constants.FlushTimeout)
	defer cancel()
	if err := data.Close(closeCtx); err != nil {
		logger.Warn("Failed to flush pending writes", "error", err)
	}
	if err := store.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}

	errors.Fatal(runErr)
}

// needsLoad reports whether the store must be loaded before command runs.
// init creates the store and doctor reports on an unloadable one itself.
func needsLoad(command string) bool {
	switch {
	case strings.HasPrefix(command, "init"),
		strings.HasPrefix(command, "doctor"),
		strings.HasPrefix(command, "keyring"):
		return false
	}
	return true
}

// configDir is where logs and the settings file live: next to a file
// store, otherwise the default data directory.
func configDir(store storage.Provider) string {
	if cli.IsFileStore(store) {
		return filepath.Dir(store.GetConfigPath())
	}
	path, err := cli.ExpandHome(constants.DefaultConfigPath)
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}
