// Where: cli/internal/interaction/selector.go
// What: huh-backed Prompter for the init questions.
// Why: Arrow-key menus for the enum axes, a text field for variant inputs.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter runs each init question as a standalone huh field.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, description string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Description(description).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}

func (p HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
