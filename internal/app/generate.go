// Where: cli/internal/app/generate.go
// What: generate command handler.
// Why: Resolve a selection into a workflow and optional setup notes.
package app

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strconv"

	"github.com/poruru/mobile-ci/cli/internal/config"
	"github.com/poruru/mobile-ci/cli/internal/domain/selection"
	"github.com/poruru/mobile-ci/cli/internal/domain/template"
	"github.com/poruru/mobile-ci/cli/internal/infra/fileops"
	"github.com/poruru/mobile-ci/cli/internal/meta"
	"github.com/poruru/mobile-ci/cli/internal/ui"
	"github.com/poruru/mobile-ci/cli/internal/workflowcheck"
	"github.com/rs/zerolog"
)

// GenerateCmd resolves the selection and prints or writes the artifacts.
type GenerateCmd struct {
	Config       string `short:"c" help:"Path to selection file (default: ./mobileci.yml when present)"`
	Platform     string `help:"CI platform (github)"`
	SDK          string `name:"sdk" help:"App SDK (native, flutter, react-native)"`
	BuildType    string `name:"build-type" help:"Build type (unsigned, signed)"`
	Format       string `name:"format" help:"Publishing format (apk, aab)"`
	VariantName  string `name:"variant-name" help:"Gradle build variant name"`
	VariantPath  string `name:"variant-path" help:"Path to the app or android project"`
	ShowVersions string `name:"show-versions" placeholder:"BOOL" help:"Add a step that prints tool versions (true or false)"`
	OutDir       string `short:"o" name:"out-dir" help:"Write files under this directory instead of printing"`
	Check        bool   `help:"Validate the generated workflow structure"`
	Save         bool   `help:"Write the resolved selection back to the selection file"`
}

// runGenerate is the generate command entry point.
func runGenerate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	logger := newLogger(deps.ErrOut, cli.Debug)
	cmd := cli.Generate

	configPath, cfg, err := loadSelection(cmd.Config, deps.WorkDir)
	if err != nil {
		return exitWithError(out, err)
	}
	logger.Debug().Str("config", configPath).Str("key", cfg.Key().String()).Msg("selection loaded")

	lookup, err := resolveLookup(cli, deps, console.Warn)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := config.ApplyEnv(&cfg, lookup); err != nil {
		return exitWithError(out, err)
	}
	if err := applyGenerateFlags(&cfg, cmd); err != nil {
		return exitWithError(out, err)
	}
	if err := config.Validate(cfg); err != nil {
		return exitWithError(out, err)
	}

	store := deps.Store
	if store == nil {
		store = template.Default()
	}
	cfg.ClearArtifacts()
	if err := cfg.Resolve(store); err != nil {
		return exitWithError(out, err)
	}
	row, _ := selection.Lookup(cfg.Key())
	code, _ := cfg.CodeArtifact()
	info, hasInfo := cfg.InfoArtifact()
	logger.Debug().
		Str("code_variant", row.Code.ID).
		Bool("has_info", hasInfo).
		Int("code_bytes", len(code)).
		Msg("artifacts resolved")

	if cmd.Check {
		if err := workflowcheck.Validate(code); err != nil {
			return exitWithError(out, fmt.Errorf("generated workflow %s: %w", row.Code.ID, err))
		}
		logger.Debug().Str("code_variant", row.Code.ID).Msg("workflow structure ok")
	}

	if cmd.OutDir != "" {
		if err := writeArtifacts(console, logger, resolvePath(deps.WorkDir, cmd.OutDir), row, code, info, hasInfo); err != nil {
			return exitWithError(out, err)
		}
	} else {
		printArtifacts(console, cfg, row, code, info, hasInfo)
	}

	if cmd.Save {
		if configPath == "" {
			configPath = filepath.Join(deps.WorkDir, meta.SelectionFile)
		}
		if err := config.Save(configPath, cfg); err != nil {
			return exitWithError(out, err)
		}
		console.Success(fmt.Sprintf("Saved selection to %s", configPath))
	}
	return 0
}

// loadSelection returns the selection file path in use and its contents.
// Without an explicit path, ./mobileci.yml is used when it exists; otherwise
// the selection starts empty on GitHub Actions.
func loadSelection(explicit, workDir string) (string, selection.Configuration, error) {
	if explicit != "" {
		file := resolvePath(workDir, explicit)
		cfg, err := config.Load(file)
		return file, cfg, err
	}
	file := filepath.Join(workDir, meta.SelectionFile)
	if fileops.FileExists(file) {
		cfg, err := config.Load(file)
		return file, cfg, err
	}
	return "", selection.Configuration{Platform: selection.PlatformGitHubActions}, nil
}

// applyGenerateFlags overrides cfg with non-empty command-line values.
func applyGenerateFlags(cfg *selection.Configuration, cmd GenerateCmd) error {
	var errs []error
	if cmd.Platform != "" {
		value, err := selection.ParsePlatform(cmd.Platform)
		errs = append(errs, flagError("--platform", err))
		cfg.Platform = value
	}
	if cmd.SDK != "" {
		value, err := selection.ParseSDK(cmd.SDK)
		errs = append(errs, flagError("--sdk", err))
		cfg.SDK = value
	}
	if cmd.BuildType != "" {
		value, err := selection.ParseBuildType(cmd.BuildType)
		errs = append(errs, flagError("--build-type", err))
		cfg.BuildType = value
	}
	if cmd.Format != "" {
		value, err := selection.ParsePublishingFormat(cmd.Format)
		errs = append(errs, flagError("--format", err))
		cfg.CustomInputs.PublishingFormat = value
	}
	if cmd.VariantName != "" {
		name := cmd.VariantName
		cfg.CustomInputs.BuildVariantName = &name
	}
	if cmd.VariantPath != "" {
		variantPath := cmd.VariantPath
		cfg.CustomInputs.BuildVariantPath = &variantPath
	}
	if cmd.ShowVersions != "" {
		show, err := strconv.ParseBool(cmd.ShowVersions)
		errs = append(errs, flagError("--show-versions", err))
		cfg.CustomInputs.ShowVersions = show
	}
	return errors.Join(errs...)
}

func flagError(flag string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", flag, err)
}

// writeArtifacts writes the workflow under outDir/.github/workflows and the
// notes under outDir/docs/ci. Notes left by a previous run are removed when
// the variant has none.
func writeArtifacts(
	console *ui.Console,
	logger zerolog.Logger,
	outDir string,
	row selection.Variant,
	code, info string,
	hasInfo bool,
) error {
	base := path.Base(row.Code.ID)
	workflowPath := filepath.Join(outDir, filepath.FromSlash(meta.WorkflowsDir), base+meta.WorkflowExt)
	infoPath := filepath.Join(outDir, filepath.FromSlash(meta.NotesDir), base+meta.InfoExt)

	if err := fileops.WriteFile(workflowPath, code); err != nil {
		return fmt.Errorf("write workflow: %w", err)
	}
	console.Success(fmt.Sprintf("Wrote %s", workflowPath))

	if hasInfo {
		if err := fileops.WriteFile(infoPath, info); err != nil {
			return fmt.Errorf("write setup notes: %w", err)
		}
		console.Success(fmt.Sprintf("Wrote %s", infoPath))
		return nil
	}
	removed, err := fileops.RemoveFile(infoPath)
	if err != nil {
		return fmt.Errorf("remove stale setup notes: %w", err)
	}
	if removed {
		logger.Debug().Str("path", infoPath).Msg("removed stale setup notes")
		console.Info(fmt.Sprintf("Removed stale %s", infoPath))
	}
	return nil
}

func printArtifacts(
	console *ui.Console,
	cfg selection.Configuration,
	row selection.Variant,
	code, info string,
	hasInfo bool,
) {
	console.Header("📦", "Selection:")
	console.Item("Platform", cfg.Platform.Label())
	console.Item("SDK", cfg.SDK.Label())
	console.Item("Build type", cfg.BuildType.Label())
	console.Item("Format", cfg.CustomInputs.PublishingFormat.Label())
	console.Item("Variant", row.Code.ID)
	fmt.Fprintln(console.Out)

	console.Document(path.Base(row.Code.ID)+meta.WorkflowExt, code)
	if hasInfo {
		console.Document(path.Base(row.Code.ID)+meta.InfoExt, info)
		return
	}
	console.Info("No setup notes for this combination")
}

func resolvePath(workDir, value string) string {
	if filepath.IsAbs(value) || workDir == "" {
		return value
	}
	return filepath.Join(workDir, value)
}
