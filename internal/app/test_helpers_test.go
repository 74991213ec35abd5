// Where: cli/internal/app/test_helpers_test.go
// What: Shared helpers for command tests.
// Why: Run the CLI against a temp directory with a fixed environment.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/mobile-ci/cli/internal/envutil"
	"github.com/poruru/mobile-ci/cli/internal/interaction"
)

type mockPrompter struct {
	inputFn       func(title, description string) (string, error)
	selectValueFn func(title string, options []interaction.SelectOption) (string, error)
	confirmFn     func(title string) (bool, error)

	titles []string
}

func (m *mockPrompter) Input(title, description string) (string, error) {
	m.titles = append(m.titles, title)
	if m.inputFn != nil {
		return m.inputFn(title, description)
	}
	return "", nil
}

func (m *mockPrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	m.titles = append(m.titles, title)
	if m.selectValueFn != nil {
		return m.selectValueFn(title, options)
	}
	return options[0].Value, nil
}

func (m *mockPrompter) Confirm(title string) (bool, error) {
	m.titles = append(m.titles, title)
	if m.confirmFn != nil {
		return m.confirmFn(title)
	}
	return false, nil
}

type runResult struct {
	code   int
	out    string
	errOut string
}

func runIn(t *testing.T, dir string, env map[string]string, args ...string) runResult {
	t.Helper()
	var out, errOut bytes.Buffer
	deps := Dependencies{
		WorkDir:   dir,
		Out:       &out,
		ErrOut:    &errOut,
		LookupEnv: envutil.MapLookup(env),
	}
	code := Run(args, deps)
	return runResult{code: code, out: out.String(), errOut: errOut.String()}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
