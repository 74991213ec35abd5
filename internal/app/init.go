// Where: cli/internal/app/init.go
// What: init command handler.
// Why: Build a selection file by prompting for each axis.
package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/poruru/mobile-ci/cli/internal/config"
	"github.com/poruru/mobile-ci/cli/internal/domain/selection"
	"github.com/poruru/mobile-ci/cli/internal/infra/fileops"
	"github.com/poruru/mobile-ci/cli/internal/interaction"
	"github.com/poruru/mobile-ci/cli/internal/meta"
	"github.com/poruru/mobile-ci/cli/internal/ui"
)

var errInteractiveRequired = errors.New("init requires an interactive terminal")

// InitCmd writes a selection file from interactive answers.
type InitCmd struct {
	Config string `short:"c" default:"mobileci.yml" help:"Selection file to create"`
	Force  bool   `help:"Overwrite an existing selection file"`
}

// runInit is the init command entry point.
func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	logger := newLogger(deps.ErrOut, cli.Debug)

	if deps.IsTerminal == nil || !deps.IsTerminal() || deps.Prompter == nil {
		return exitWithError(out, errInteractiveRequired)
	}
	target := resolvePath(deps.WorkDir, cli.Init.Config)
	if fileops.FileExists(target) && !cli.Init.Force {
		return exitWithError(out, fmt.Errorf("%s already exists (use --force to overwrite)", target))
	}

	cfg, err := promptSelection(deps.Prompter)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := config.Validate(cfg); err != nil {
		return exitWithError(out, err)
	}
	logger.Debug().Str("path", target).Str("key", cfg.Key().String()).Msg("saving selection")
	if err := config.Save(target, cfg); err != nil {
		return exitWithError(out, err)
	}
	console.Success(fmt.Sprintf("Created %s", target))
	console.Info(fmt.Sprintf("Run '%s generate' to print the workflow", meta.AppName))
	return 0
}

func promptSelection(prompter interaction.Prompter) (selection.Configuration, error) {
	var cfg selection.Configuration
	var err error

	if cfg.Platform, err = selectOne(prompter, "CI platform", selection.AllPlatforms(), selection.ParsePlatform); err != nil {
		return cfg, err
	}
	if cfg.SDK, err = selectOne(prompter, "App SDK", selection.AllSDKs(), selection.ParseSDK); err != nil {
		return cfg, err
	}
	if cfg.BuildType, err = selectOne(prompter, "Build type", selection.AllBuildTypes(), selection.ParseBuildType); err != nil {
		return cfg, err
	}
	format, err := selectOne(prompter, "Publishing format", selection.AllPublishingFormats(), selection.ParsePublishingFormat)
	if err != nil {
		return cfg, err
	}
	cfg.CustomInputs.PublishingFormat = format

	// Flutter workflows build through the flutter tool and take no Gradle variant.
	if cfg.SDK != selection.SDKFlutter {
		name, err := prompter.Input("Build variant name", "Gradle variant, e.g. freeRelease (blank for the default)")
		if err != nil {
			return cfg, err
		}
		cfg.CustomInputs.BuildVariantName = optional(name)
	}
	variantPath, err := prompter.Input("Build variant path", "Project directory relative to the repository root (blank for the default)")
	if err != nil {
		return cfg, err
	}
	cfg.CustomInputs.BuildVariantPath = optional(variantPath)

	if cfg.CustomInputs.ShowVersions, err = prompter.Confirm("Print tool versions in the workflow?"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type choice interface {
	comparable
	ID() string
	Label() string
}

func selectOne[T choice](prompter interaction.Prompter, title string, values []T, parse func(string) (T, error)) (T, error) {
	options := make([]interaction.SelectOption, 0, len(values))
	for _, value := range values {
		options = append(options, interaction.SelectOption{Label: value.Label(), Value: value.ID()})
	}
	answer, err := prompter.SelectValue(title, options)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", strings.ToLower(title), err)
	}
	return parse(answer)
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
