// Package testutil holds shared guards for tests that touch a database.
package testutil

import (
	"os"
	"testing"
)

// RequireTestEnvironment fails the test unless GO_ENV is "test". The
// guard exists so a misconfigured shell can never point a destructive
// test at the development or production database.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("tests must run with GO_ENV=test, got %q", env)
	}
}

// RequireTestEnvironmentOrSkip skips instead of failing when GO_ENV is
// not "test". Use it for optional suites.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Skipf("skipping: GO_ENV must be \"test\", got %q", env)
	}
}

// MustSetTestEnvironment forces GO_ENV=test for the current process.
// Call it from TestMain before any configuration is loaded.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("failed to set GO_ENV=test: %v", err)
	}
}
