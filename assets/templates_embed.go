// Where: cli/assets/templates_embed.go
// What: Embed workflow and setup-notes templates for the renderer.
// Why: Ship the template store inside the binary.
package assets

import "embed"

// TemplatesFS holds templates/workflows, templates/info and shared partials.
//
//go:embed templates/workflows/*.tmpl templates/info/*.tmpl templates/partials/*.tmpl
var TemplatesFS embed.FS

// TemplatesRoot is the directory inside TemplatesFS that variant identifiers resolve against.
const TemplatesRoot = "templates"
