// Package errors renders command failures for the terminal.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/studylit/internal/logger"
)

// Replaced in tests.
var (
	exit           = os.Exit
	out  io.Writer = os.Stderr
)

const prefix = "Error: "

// Format is the one-line form shown to the user. Nil renders empty.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

// Fatal reports err on stderr and in the log file, then exits 1.
// It returns normally when err is nil so callers can pass a run result
// straight through.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(out, Format(err))
	exit(1)
}
