// Where: cli/cmd/mobileci/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/mobile-ci/cli/internal/app"
	"github.com/poruru/mobile-ci/cli/internal/domain/template"
	"github.com/poruru/mobile-ci/cli/internal/interaction"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:    workDir,
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		Store:      template.Default(),
		Prompter:   interaction.HuhPrompter{},
		IsTerminal: stdinIsTerminal,
		LookupEnv:  os.LookupEnv,
	}, nil
}

func stdinIsTerminal() bool {
	return interaction.IsTerminal(os.Stdin)
}
