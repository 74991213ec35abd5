// Where: cli/internal/constants/env.go
// What: Environment variable suffixes for selection overrides.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Suffixes are joined with meta.EnvPrefix, e.g. MOBILECI_SDK.
const (
	EnvSuffixPlatform         = "PLATFORM"
	EnvSuffixSDK              = "SDK"
	EnvSuffixBuildType        = "BUILD_TYPE"
	EnvSuffixBuildVariantName = "BUILD_VARIANT_NAME"
	EnvSuffixBuildVariantPath = "BUILD_VARIANT_PATH"
	EnvSuffixPublishingFormat = "PUBLISHING_FORMAT"
	EnvSuffixShowVersions     = "SHOW_VERSIONS"
)
