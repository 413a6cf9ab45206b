package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/studylit/internal/constants"
)

func TestSetGetDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://student@localhost:5432/studylit?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString() error = %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() error = %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() error = %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() after delete error = %v, want ErrNotFound", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() error = %v, want ErrNotFound", err)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("   "); err == nil {
		t.Error("SetConnectionString(blank) should return an error")
	}
}

func TestResolveConnectionString(t *testing.T) {
	configured := "postgres://student@localhost/studylit"

	t.Run("falls back to configured value", func(t *testing.T) {
		gokeyring.MockInit()
		t.Setenv(constants.ConnectionEnvVar, "")

		got, err := ResolveConnectionString(configured)
		if err != nil {
			t.Fatalf("ResolveConnectionString() error = %v", err)
		}
		if got != configured {
			t.Errorf("ResolveConnectionString() = %q, want %q", got, configured)
		}
	})

	t.Run("keyring wins over configured value", func(t *testing.T) {
		gokeyring.MockInit()
		t.Setenv(constants.ConnectionEnvVar, "")
		stored := "postgres://student:secret@db/studylit"
		if err := SetConnectionString(stored); err != nil {
			t.Fatal(err)
		}

		got, err := ResolveConnectionString(configured)
		if err != nil {
			t.Fatalf("ResolveConnectionString() error = %v", err)
		}
		if got != stored {
			t.Errorf("ResolveConnectionString() = %q, want %q", got, stored)
		}
	})

	t.Run("environment wins over keyring", func(t *testing.T) {
		gokeyring.MockInit()
		env := "postgres://student:env@db/studylit"
		t.Setenv(constants.ConnectionEnvVar, env)
		_ = SetConnectionString("postgres://student:secret@db/studylit")

		got, err := ResolveConnectionString(configured)
		if err != nil {
			t.Fatalf("ResolveConnectionString() error = %v", err)
		}
		if got != env {
			t.Errorf("ResolveConnectionString() = %q, want %q", got, env)
		}
	})
}
