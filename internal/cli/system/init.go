package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/validation"
)

type InitCmd struct {
	Name   string `help:"Your name."`
	Force  bool   `help:"Delete the existing database file before initializing."`
	Source string `help:"Database path or connection string to copy existing data from."`
}

// askName prompts for a name when --name is not given. Swapped in tests.
var askName = func() (string, error) {
	var name string
	err := huh.NewInput().
		Title("What's your name?").
		Value(&name).
		Validate(func(s string) error {
			_, err := validation.ValidateUsername(s)
			return err
		}).
		Run()
	return name, err
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized studylit storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		n, err := copyData(ctx, c.Source)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Printf("Copied %d key(s).\n", n)
	}

	data := ctx.Data()
	name := c.Name
	if name == "" && data.Username() == "" && !ctx.Yes {
		asked, err := askName()
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return err
		}
		name = asked
	}
	if name != "" {
		trimmed, err := validation.ValidateUsername(name)
		if err != nil {
			return err
		}
		data.SetUsername(trimmed)
	}
	if err := ctx.Commit(); err != nil {
		return err
	}

	if data.Username() != "" {
		ctx.Printf("Welcome, %s!\n", data.Username())
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if !cli.IsFileStore(ctx.Store) {
		return fmt.Errorf("--force only works with file-based storage")
	}
	dbPath := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absDB, errDB := filepath.Abs(dbPath)
		absSrc, errSrc := filepath.Abs(c.Source)
		if errDB == nil && errSrc == nil && absDB == absSrc {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	ok, err := ctx.Confirm("Delete "+dbPath+"?", "All tasks and study time in it are lost.")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("init cancelled")
	}
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	ctx.Printf("Deleted existing database at: %s\n", dbPath)
	return nil
}

// copyData copies every user key from the store at source into ctx.Store.
func copyData(ctx *cli.Context, source string) (int, error) {
	src, err := cli.OpenStore(source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	bg := ctx.Context()
	copied := 0
	for _, key := range constants.LogoutKeys {
		value, found, err := src.Get(bg, key)
		if err != nil {
			return copied, fmt.Errorf("failed to read %s from source: %w", key, err)
		}
		if !found {
			continue
		}
		if err := ctx.Store.Set(bg, key, value); err != nil {
			return copied, fmt.Errorf("failed to write %s: %w", key, err)
		}
		copied++
	}
	return copied, nil
}
