// Where: cli/cmd/mobileci/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies is deterministic.
package main

import (
	"errors"
	"testing"
)

func TestBuildDependenciesSuccess(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() {
		getwd = origGetwd
	})

	getwd = func() (string, error) {
		return "/project", nil
	}

	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deps.WorkDir != "/project" {
		t.Fatalf("unexpected work dir: %s", deps.WorkDir)
	}
	if deps.Store == nil || deps.Prompter == nil || deps.IsTerminal == nil || deps.LookupEnv == nil {
		t.Fatalf("expected all dependencies to be wired: %+v", deps)
	}
}

func TestBuildDependenciesGetwdError(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() {
		getwd = origGetwd
	})

	getwd = func() (string, error) {
		return "", errors.New("boom")
	}

	if _, err := buildDependencies(); err == nil {
		t.Fatalf("expected error on getwd failure")
	}
}
