// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/poruru/mobile-ci/cli/internal/domain/selection"
	"github.com/poruru/mobile-ci/cli/internal/envutil"
	"github.com/poruru/mobile-ci/cli/internal/interaction"
	"github.com/poruru/mobile-ci/cli/internal/meta"
	"github.com/poruru/mobile-ci/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	WorkDir    string
	Out        io.Writer
	ErrOut     io.Writer
	Store      selection.Renderer
	Prompter   interaction.Prompter
	IsTerminal func() bool
	LookupEnv  envutil.LookupFunc
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile  string      `name:"env-file" help:"Path to .env file with MOBILECI_* overrides"`
	Debug    bool        `help:"Write a debug trace to stderr"`
	Generate GenerateCmd `cmd:"" help:"Generate a workflow and its setup notes"`
	Init     InitCmd     `cmd:"" help:"Create a selection file interactively"`
	Variants VariantsCmd `cmd:"" help:"List workflow variants"`
	Options  OptionsCmd  `cmd:"" help:"List selectable values"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	VariantsCmd struct{}
	OptionsCmd  struct{}
	VersionCmd  struct{}
)

// Run parses args, dispatches to the matching handler and returns the exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}

	if len(args) == 0 {
		args = []string{"--help"}
	}

	cli := CLI{}
	exited := false
	exitCode := 0
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Generate CI workflows for mobile app builds."),
		kong.Writers(out, deps.ErrOut),
		kong.Exit(func(code int) {
			exited = true
			exitCode = code
		}),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if exited {
		return exitCode
	}
	if err != nil {
		return handleParseError(err, out)
	}

	if code, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return code
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"generate": runGenerate,
		"init":     runInit,
		"variants": runVariants,
		"options":  runOptions,
		"version":  runVersion,
	}
	handler, ok := handlers[command]
	if !ok {
		return 1, false
	}
	return handler(cli, deps, out), true
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, _ Dependencies, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// handleParseError prints the parse failure with a pointer to --help.
func handleParseError(err error, out io.Writer) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	fmt.Fprintf(out, "Run '%s --help' for usage.\n", meta.AppName)
	return 1
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
