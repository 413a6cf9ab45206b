package reminder

import (
	"context"
	"fmt"
	"io"
)

// PrintNotifier writes notifications to W instead of showing them. It backs
// notify --dry-run.
type PrintNotifier struct {
	W io.Writer
}

func (p PrintNotifier) Notify(_ context.Context, title, body string) error {
	_, err := fmt.Fprintf(p.W, "%s %s\n", title, body)
	return err
}

func (p PrintNotifier) Available(context.Context) error { return nil }
