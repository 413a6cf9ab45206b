package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: errors.New("store unavailable"), expected: "Error: store unavailable"},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("failed to load: %w", errors.New("permission denied")),
			expected: "Error: failed to load: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestFatal(t *testing.T) {
	oldExit, oldOut := exit, out
	defer func() { exit, out = oldExit, oldOut }()

	var buf bytes.Buffer
	code := -1
	exit = func(c int) { code = c }
	out = &buf

	Fatal(nil)
	if code != -1 || buf.Len() != 0 {
		t.Fatalf("Fatal(nil) exited with %d and wrote %q", code, buf.String())
	}

	Fatal(fmt.Errorf("subject %q not found", "s1"))
	if code != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", code)
	}
	if want := "Error: subject \"s1\" not found\n"; buf.String() != want {
		t.Errorf("Fatal() wrote %q, want %q", buf.String(), want)
	}
}
