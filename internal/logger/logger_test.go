package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/studylit/internal/constants"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")
	defer func() { Logger = nil }()

	for _, debug := range []bool{false, true} {
		if err := Init(Config{Debug: debug, ConfigDir: configDir}); err != nil {
			t.Fatalf("Init(debug=%v) error = %v", debug, err)
		}
		if Logger == nil {
			t.Fatalf("Logger is nil after Init(debug=%v)", debug)
		}
		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")
	}

	logFile := filepath.Join(configDir, "logs", constants.AppName+".log")
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file %s: %v", logFile, err)
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// must not panic
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
}

func TestUseWriterCapturesOutput(t *testing.T) {
	var buf bytes.Buffer
	UseWriter(&buf, log.DebugLevel)
	defer func() { Logger = nil }()

	Warn("write failed", "key", "tasks")

	out := buf.String()
	if !strings.Contains(out, "write failed") || !strings.Contains(out, "key=tasks") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	UseWriter(&buf, log.WarnLevel)
	defer func() { Logger = nil }()

	Debug("hidden debug")
	Info("hidden info")
	Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn leaked: %q", out)
	}
	if !strings.Contains(out, "shown error") {
		t.Errorf("error message missing: %q", out)
	}
}
