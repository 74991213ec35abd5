// Where: cli/internal/domain/selection/resolve.go
// What: Variant resolution and parameter binding.
// Why: Turn a configuration into rendered workflow and setup-notes text.
package selection

import "fmt"

// Renderer produces text for a registered template variant.
type Renderer interface {
	Render(id string, params any) (string, error)
}

// Artifacts is the outcome of one resolution.
type Artifacts struct {
	CodeVariant string
	Code        string
	// InfoVariant is empty and Info nil when the row has no setup notes.
	InfoVariant string
	Info        *string
}

// Resolve renders the code and info variants for cfg without mutating it.
func Resolve(cfg Configuration, store Renderer) (Artifacts, error) {
	row, ok := Lookup(cfg.Key())
	if !ok {
		return Artifacts{}, fmt.Errorf("%w: %s", ErrUnsupportedCombination, cfg.Key())
	}
	if !cfg.CustomInputs.PublishingFormat.Valid() {
		return Artifacts{}, fmt.Errorf("%w: %s", ErrInvalidValue, cfg.CustomInputs.PublishingFormat.Label())
	}

	code, err := store.Render(row.Code.ID, Bind(row.Code.Params, row.Code.Title, cfg.CustomInputs))
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w %s: %w", ErrRender, row.Code.ID, err)
	}
	result := Artifacts{CodeVariant: row.Code.ID, Code: code}

	if row.Info != nil {
		info, err := store.Render(row.Info.ID, Bind(row.Info.Params, "", cfg.CustomInputs))
		if err != nil {
			return Artifacts{}, fmt.Errorf("%w %s: %w", ErrRender, row.Info.ID, err)
		}
		result.InfoVariant = row.Info.ID
		result.Info = &info
	}
	return result, nil
}

// Bind builds the template data for the declared params only. Optional
// strings become "", the format and flag keep their types.
func Bind(params []Param, title string, inputs CustomInputs) map[string]any {
	data := make(map[string]any, len(params))
	for _, param := range params {
		switch param {
		case ParamTitle:
			data[string(param)] = title
		case ParamPublishingFormat:
			data[string(param)] = inputs.PublishingFormat
		case ParamShowVersions:
			data[string(param)] = inputs.ShowVersions
		case ParamBuildVariantName:
			data[string(param)] = stringOrEmpty(inputs.BuildVariantName)
		case ParamBuildVariantPath:
			data[string(param)] = stringOrEmpty(inputs.BuildVariantPath)
		default:
			panic(fmt.Sprintf("selection: unbound param %q", param))
		}
	}
	return data
}
