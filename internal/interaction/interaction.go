// Where: cli/internal/interaction/interaction.go
// What: Prompt contract used by `mobileci init` and the stdin TTY check.
// Why: init asks one question per selection axis; tests answer them without a terminal.
package interaction

import (
	"os"

	"github.com/mattn/go-isatty"
)

// SelectOption is one choice for an axis. Label is the enum's display label
// ("React Native"), Value its identifier ("react-native").
type SelectOption struct {
	Label string
	Value string
}

// Prompter asks the init questions in order: one SelectValue per axis
// (platform, SDK, build type, publishing format), Input for the optional
// variant name and path, then Confirm for the versions step.
type Prompter interface {
	// Input returns free text; blank answers leave the value absent.
	Input(title, description string) (string, error)
	// SelectValue returns the Value of the chosen option.
	SelectValue(title string, options []SelectOption) (string, error)
	Confirm(title string) (bool, error)
}

// IsTerminal reports whether file is an interactive terminal. init refuses
// to run when stdin is not.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
