// Where: cli/internal/workflowcheck/validator.go
// What: Structural check for generated GitHub Actions workflows.
// Why: Catch template edits that produce YAML GitHub would reject.
package workflowcheck

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "workflow.schema.json"

//go:embed schema/workflow.schema.json
var schemaJSON []byte

var ErrEmptyWorkflow = errors.New("workflow is empty")

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Validate parses content as YAML and checks it against the workflow schema.
func Validate(content string) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	// yaml.v3 keeps the `on` key as a string; YAML 1.1 decoders turn it into true.
	var document map[string]any
	if err := yaml.Unmarshal([]byte(content), &document); err != nil {
		return fmt.Errorf("parse workflow yaml: %w", err)
	}
	if len(document) == 0 {
		return ErrEmptyWorkflow
	}

	normalized, err := toJSONValue(document)
	if err != nil {
		return err
	}
	if err := sch.Validate(normalized); err != nil {
		return fmt.Errorf("workflow schema: %w", err)
	}
	return nil
}

func toJSONValue(document map[string]any) (any, error) {
	data, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("encode workflow json: %w", err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode workflow json: %w", err)
	}
	return value, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load workflow schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
