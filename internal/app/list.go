// Where: cli/internal/app/list.go
// What: variants and options command handlers.
// Why: Show the resolution table and every selectable value.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/mobile-ci/cli/internal/domain/selection"
	"github.com/poruru/mobile-ci/cli/internal/ui"
)

func runVariants(_ CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)
	console.Header("📦", "Workflow variants:")
	for _, row := range selection.Variants() {
		info := "(no setup notes)"
		if row.HasInfo() {
			info = row.Info.ID
		}
		console.ItemPlain(row.Key.String())
		console.Item("  code", row.Code.ID)
		console.Item("  info", info)
	}
	return 0
}

func runOptions(_ CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)
	printAxis(console, "Platforms:", selection.AllPlatforms())
	printAxis(console, "SDKs:", selection.AllSDKs())
	printAxis(console, "Build types:", selection.AllBuildTypes())
	printAxis(console, "Publishing formats:", selection.AllPublishingFormats())
	return 0
}

func printAxis[T choice](console *ui.Console, title string, values []T) {
	console.Header("🔧", title)
	for _, value := range values {
		console.ItemPlain(fmt.Sprintf("%-14s %s", value.ID(), value.Label()))
	}
}
