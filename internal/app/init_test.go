// Where: cli/internal/app/init_test.go
// What: Tests for the init command.
// Why: Ensure prompts produce a valid selection file and TTY rules hold.
package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/poruru/mobile-ci/cli/internal/config"
	"github.com/poruru/mobile-ci/cli/internal/domain/selection"
	"github.com/poruru/mobile-ci/cli/internal/envutil"
	"github.com/poruru/mobile-ci/cli/internal/interaction"
)

func runInitCmd(t *testing.T, dir string, prompter interaction.Prompter, terminal bool, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	deps := Dependencies{
		WorkDir:    dir,
		Out:        &out,
		ErrOut:     &bytes.Buffer{},
		Prompter:   prompter,
		IsTerminal: func() bool { return terminal },
		LookupEnv:  envutil.MapLookup(nil),
	}
	code := Run(append([]string{"init"}, args...), deps)
	return code, out.String()
}

func answers(values map[string]string) func(string, []interaction.SelectOption) (string, error) {
	return func(title string, options []interaction.SelectOption) (string, error) {
		if value, ok := values[title]; ok {
			return value, nil
		}
		return options[0].Value, nil
	}
}

func TestInitWritesSelection(t *testing.T) {
	dir := t.TempDir()
	prompter := &mockPrompter{
		selectValueFn: answers(map[string]string{
			"App SDK":           "native",
			"Build type":        "signed",
			"Publishing format": "aab",
		}),
		inputFn: func(title, _ string) (string, error) {
			if title == "Build variant name" {
				return " freeRelease ", nil
			}
			return "", nil
		},
		confirmFn: func(string) (bool, error) { return true, nil },
	}

	code, out := runInitCmd(t, dir, prompter, true)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out)
	}
	cfg, err := config.Load(filepath.Join(dir, "mobileci.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := selection.Key{Platform: selection.PlatformGitHubActions, SDK: selection.SDKNative, BuildType: selection.BuildTypeSigned}
	if cfg.Key() != want {
		t.Fatalf("unexpected key: %v", cfg.Key())
	}
	if cfg.CustomInputs.BuildVariantName == nil || *cfg.CustomInputs.BuildVariantName != "freeRelease" {
		t.Fatalf("unexpected variant name: %v", cfg.CustomInputs.BuildVariantName)
	}
	if cfg.CustomInputs.BuildVariantPath != nil {
		t.Fatalf("blank path must stay absent")
	}
	if cfg.CustomInputs.PublishingFormat != selection.PublishingFormatAab || !cfg.CustomInputs.ShowVersions {
		t.Fatalf("unexpected inputs: %+v", cfg.CustomInputs)
	}
	if !strings.Contains(out, "Created") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInitSkipsVariantNameForFlutter(t *testing.T) {
	prompter := &mockPrompter{
		selectValueFn: answers(map[string]string{"App SDK": "flutter"}),
	}
	code, out := runInitCmd(t, t.TempDir(), prompter, true)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out)
	}
	if slices.Contains(prompter.titles, "Build variant name") {
		t.Fatalf("flutter must not prompt for a variant name: %v", prompter.titles)
	}
	if !slices.Contains(prompter.titles, "Build variant path") {
		t.Fatalf("expected variant path prompt: %v", prompter.titles)
	}
}

func TestInitRequiresTerminal(t *testing.T) {
	code, out := runInitCmd(t, t.TempDir(), &mockPrompter{}, false)
	if code == 0 {
		t.Fatalf("expected failure without a terminal")
	}
	if !strings.Contains(out, errInteractiveRequired.Error()) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mobileci.yml")
	writeFile(t, path, "sdk: native\n")

	code, out := runInitCmd(t, dir, &mockPrompter{}, true)
	if code == 0 {
		t.Fatalf("expected failure for existing file")
	}
	if !strings.Contains(out, "--force") {
		t.Fatalf("unexpected output: %q", out)
	}
	if got := readFile(t, path); got != "sdk: native\n" {
		t.Fatalf("file must be untouched, got %q", got)
	}

	code, out = runInitCmd(t, dir, &mockPrompter{}, true, "--force")
	if code != 0 {
		t.Fatalf("expected overwrite with --force, got %d: %s", code, out)
	}
}

func TestInitPropagatesPromptError(t *testing.T) {
	prompter := &mockPrompter{
		selectValueFn: func(string, []interaction.SelectOption) (string, error) {
			return "", errors.New("user aborted")
		},
	}
	code, out := runInitCmd(t, t.TempDir(), prompter, true)
	if code == 0 {
		t.Fatalf("expected failure on prompt error")
	}
	if !strings.Contains(out, "user aborted") {
		t.Fatalf("unexpected output: %q", out)
	}
}
