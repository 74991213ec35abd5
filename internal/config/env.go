// Where: cli/internal/config/env.go
// What: Environment overrides for selection values.
// Why: Let CI jobs and .env files adjust a committed selection file.
package config

import (
	"fmt"
	"strconv"

	"github.com/poruru/mobile-ci/cli/internal/constants"
	"github.com/poruru/mobile-ci/cli/internal/domain/selection"
	"github.com/poruru/mobile-ci/cli/internal/envutil"
)

// ApplyEnv overrides cfg with MOBILECI_* variables visible through lookup.
// Blank variables are ignored.
func ApplyEnv(cfg *selection.Configuration, lookup envutil.LookupFunc) error {
	if value, ok := envutil.LookupHostEnv(lookup, constants.EnvSuffixPlatform); ok {
		platform, err := selection.ParsePlatform(value)
		if err != nil {
			return envError(constants.EnvSuffixPlatform, err)
		}
		cfg.Platform = platform
	}
	if value, ok := envutil.LookupHostEnv(lookup, constants.EnvSuffixSDK); ok {
		sdk, err := selection.ParseSDK(value)
		if err != nil {
			return envError(constants.EnvSuffixSDK, err)
		}
		cfg.SDK = sdk
	}
	if value, ok := envutil.LookupHostEnv(lookup, constants.EnvSuffixBuildType); ok {
		buildType, err := selection.ParseBuildType(value)
		if err != nil {
			return envError(constants.EnvSuffixBuildType, err)
		}
		cfg.BuildType = buildType
	}
	if value, ok := envutil.LookupHostEnv(lookup, constants.EnvSuffixPublishingFormat); ok {
		format, err := selection.ParsePublishingFormat(value)
		if err != nil {
			return envError(constants.EnvSuffixPublishingFormat, err)
		}
		cfg.CustomInputs.PublishingFormat = format
	}
	if value, ok := envutil.LookupHostEnv(lookup, constants.EnvSuffixShowVersions); ok {
		show, err := strconv.ParseBool(value)
		if err != nil {
			return envError(constants.EnvSuffixShowVersions, err)
		}
		cfg.CustomInputs.ShowVersions = show
	}
	if value, ok := envutil.LookupHostEnv(lookup, constants.EnvSuffixBuildVariantName); ok {
		cfg.CustomInputs.BuildVariantName = &value
	}
	if value, ok := envutil.LookupHostEnv(lookup, constants.EnvSuffixBuildVariantPath); ok {
		cfg.CustomInputs.BuildVariantPath = &value
	}
	return nil
}

func envError(suffix string, err error) error {
	return fmt.Errorf("%s: %w", envutil.HostEnvKey(suffix), err)
}
