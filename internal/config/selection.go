// Where: cli/internal/config/selection.go
// What: Selection file load/save helpers.
// Why: Manage mobileci.yml consistently and validate it before use.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/poruru/mobile-ci/cli/internal/domain/selection"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

const selectionSchemaURL = "selection.schema.json"

//go:embed schema/selection.schema.json
var selectionSchemaJSON []byte

var (
	ErrMissingSDK              = errors.New("sdk is required")
	ErrMissingBuildType        = errors.New("build type is required")
	ErrMissingPublishingFormat = errors.New("publishing format is required")
	ErrInvalidVariantName      = errors.New("build variant name must contain only letters, digits and underscores")
)

// variantNamePattern matches names that form a single Gradle task suffix.
var variantNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// SelectionFile is the on-disk shape of mobileci.yml. Artifacts are written
// for the caller's records and ignored on load; they are always regenerated.
type SelectionFile struct {
	selection.Configuration `yaml:",inline"`
	CodeArtifact            *string `yaml:"code_artifact,omitempty"`
	InfoArtifact            *string `yaml:"info_artifact,omitempty"`
}

// Load reads, validates and decodes a selection file.
func Load(path string) (selection.Configuration, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return selection.Configuration{}, err
	}
	cfg, err := Parse(payload)
	if err != nil {
		return selection.Configuration{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates payload against the selection schema and decodes it.
// A missing platform defaults to GitHub Actions. Other axes may be left
// out for environment or flag overrides; call Validate once layering is done.
func Parse(payload []byte) (selection.Configuration, error) {
	if err := validateSchema(payload); err != nil {
		return selection.Configuration{}, err
	}

	var file SelectionFile
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return selection.Configuration{}, fmt.Errorf("decode selection: %w", err)
	}
	cfg := file.Configuration
	if cfg.Platform == 0 {
		cfg.Platform = selection.PlatformGitHubActions
	}
	return cfg, nil
}

// Validate checks that every axis holds a declared value and that a build
// variant name can be used as a Gradle task suffix.
func Validate(cfg selection.Configuration) error {
	if !cfg.Platform.Valid() {
		return fmt.Errorf("%w: platform %s", selection.ErrInvalidValue, cfg.Platform.Label())
	}
	if cfg.SDK == 0 {
		return ErrMissingSDK
	}
	if !cfg.SDK.Valid() {
		return fmt.Errorf("%w: %s", selection.ErrInvalidValue, cfg.SDK.Label())
	}
	if cfg.BuildType == 0 {
		return ErrMissingBuildType
	}
	if !cfg.BuildType.Valid() {
		return fmt.Errorf("%w: %s", selection.ErrInvalidValue, cfg.BuildType.Label())
	}
	if cfg.CustomInputs.PublishingFormat == 0 {
		return ErrMissingPublishingFormat
	}
	if !cfg.CustomInputs.PublishingFormat.Valid() {
		return fmt.Errorf("%w: %s", selection.ErrInvalidValue, cfg.CustomInputs.PublishingFormat.Label())
	}
	if name := cfg.CustomInputs.BuildVariantName; name != nil && *name != "" && !variantNamePattern.MatchString(*name) {
		return fmt.Errorf("%w: %q", ErrInvalidVariantName, *name)
	}
	return nil
}

// Save writes cfg and its current artifacts to path.
func Save(path string, cfg selection.Configuration) error {
	file := SelectionFile{Configuration: cfg}
	if code, ok := cfg.CodeArtifact(); ok && code != "" {
		file.CodeArtifact = &code
	}
	if info, ok := cfg.InfoArtifact(); ok {
		file.InfoArtifact = &info
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&file); err != nil {
		_ = encoder.Close()
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func validateSchema(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := k8syaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if document == nil {
		return fmt.Errorf("selection file is empty")
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(selectionSchemaURL, bytes.NewReader(selectionSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load selection schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(selectionSchemaURL)
	})
	return compiledSchema, schemaErr
}
