// Where: cli/internal/domain/selection/configuration.go
// What: Selection state and the artifacts derived from it.
// Why: Keep generated text consistent with the last resolution.
package selection

import "errors"

var (
	// ErrInvalidValue reports an axis value outside its declared set.
	ErrInvalidValue = errors.New("invalid selection value")
	// ErrUnsupportedCombination reports a combination with no table row.
	ErrUnsupportedCombination = errors.New("unsupported selection combination")
	// ErrRender reports a template store failure for a registered variant.
	ErrRender = errors.New("render template variant")
)

// CustomInputs are the optional parameters bound into templates.
type CustomInputs struct {
	BuildVariantName *string         `yaml:"build_variant_name,omitempty"`
	BuildVariantPath *string         `yaml:"build_variant_path,omitempty"`
	PublishingFormat PublishingFormat `yaml:"publishing_format"`
	ShowVersions     bool             `yaml:"show_versions"`
}

// Configuration is the user's selection plus the last generated artifacts.
// Artifacts are only written by Resolve and ClearArtifacts.
type Configuration struct {
	Platform     Platform     `yaml:"platform"`
	SDK          SDK          `yaml:"sdk"`
	BuildType    BuildType    `yaml:"build_type"`
	CustomInputs CustomInputs `yaml:"custom_inputs"`

	codeArtifact *string
	infoArtifact *string
}

// New returns a Configuration with no generated artifacts.
func New(platform Platform, sdk SDK, buildType BuildType, inputs CustomInputs) Configuration {
	return Configuration{
		Platform:     platform,
		SDK:          sdk,
		BuildType:    buildType,
		CustomInputs: inputs,
	}
}

// Key returns the combination this configuration selects.
func (c Configuration) Key() Key {
	return Key{Platform: c.Platform, SDK: c.SDK, BuildType: c.BuildType}
}

// CodeArtifact returns the last generated workflow text.
func (c *Configuration) CodeArtifact() (string, bool) {
	if c.codeArtifact == nil {
		return "", false
	}
	return *c.codeArtifact, true
}

// InfoArtifact returns the last generated setup notes, if the variant has any.
func (c *Configuration) InfoArtifact() (string, bool) {
	if c.infoArtifact == nil {
		return "", false
	}
	return *c.infoArtifact, true
}

// ClearArtifacts drops generated text: code becomes empty and info absent.
func (c *Configuration) ClearArtifacts() {
	empty := ""
	c.codeArtifact = &empty
	c.infoArtifact = nil
}

// Resolve regenerates both artifacts. On error both are cleared so text from
// an earlier selection never survives a failed resolution.
func (c *Configuration) Resolve(store Renderer) error {
	artifacts, err := Resolve(*c, store)
	if err != nil {
		c.ClearArtifacts()
		return err
	}
	code := artifacts.Code
	c.codeArtifact = &code
	c.infoArtifact = nil
	if artifacts.Info != nil {
		info := *artifacts.Info
		c.infoArtifact = &info
	}
	return nil
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
