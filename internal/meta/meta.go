// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the tool name and file layout in one place.
package meta

const (
	// Project Identity
	AppName   = "mobileci"
	EnvPrefix = "MOBILECI"

	// File Layout
	SelectionFile = "mobileci.yml"
	WorkflowsDir  = ".github/workflows"
	NotesDir      = "docs/ci"
	WorkflowExt   = ".yml"
	InfoExt       = ".md"
)
