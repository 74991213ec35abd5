// Where: cli/internal/domain/selection/enums.go
// What: Closed selection axes and their display labels.
// Why: Keep identifiers and labels stable independent of Go constant names.
package selection

import (
	"fmt"
	"strings"
)

// Platform is the CI hosting environment a workflow targets.
type Platform int

const (
	PlatformGitHubActions Platform = iota + 1
)

// SDK is the application framework being built.
type SDK int

const (
	SDKNative SDK = iota + 1
	SDKFlutter
	SDKReactNative
)

// BuildType selects a signed release or an unsigned debug artifact.
type BuildType int

const (
	BuildTypeUnsigned BuildType = iota + 1
	BuildTypeSigned
)

// PublishingFormat is the packaged Android output container.
type PublishingFormat int

const (
	PublishingFormatApk PublishingFormat = iota + 1
	PublishingFormatAab
)

var platforms = enum[Platform]{
	kind:   "platform",
	values: []Platform{PlatformGitHubActions},
	ids:    map[Platform]string{PlatformGitHubActions: "github"},
	labels: map[Platform]string{PlatformGitHubActions: "GitHub Actions"},
}

var sdks = enum[SDK]{
	kind:   "sdk",
	values: []SDK{SDKNative, SDKFlutter, SDKReactNative},
	ids: map[SDK]string{
		SDKNative:      "native",
		SDKFlutter:     "flutter",
		SDKReactNative: "react-native",
	},
	labels: map[SDK]string{
		SDKNative:      "Native App",
		SDKFlutter:     "Flutter",
		SDKReactNative: "React Native",
	},
}

var buildTypes = enum[BuildType]{
	kind:   "build type",
	values: []BuildType{BuildTypeUnsigned, BuildTypeSigned},
	ids: map[BuildType]string{
		BuildTypeUnsigned: "unsigned",
		BuildTypeSigned:   "signed",
	},
	labels: map[BuildType]string{
		BuildTypeUnsigned: "Debug (unsigned)",
		BuildTypeSigned:   "Release (signed)",
	},
}

var publishingFormats = enum[PublishingFormat]{
	kind:   "publishing format",
	values: []PublishingFormat{PublishingFormatApk, PublishingFormatAab},
	ids: map[PublishingFormat]string{
		PublishingFormatApk: "apk",
		PublishingFormatAab: "aab",
	},
	labels: map[PublishingFormat]string{
		PublishingFormatApk: "APK",
		PublishingFormatAab: "AAB",
	},
}

// AllPlatforms returns every platform in declaration order.
func AllPlatforms() []Platform { return platforms.all() }

// AllSDKs returns every SDK in declaration order.
func AllSDKs() []SDK { return sdks.all() }

// AllBuildTypes returns every build type in declaration order.
func AllBuildTypes() []BuildType { return buildTypes.all() }

// AllPublishingFormats returns every publishing format in declaration order.
func AllPublishingFormats() []PublishingFormat { return publishingFormats.all() }

// ParsePlatform accepts an identifier ("github") or a label ("GitHub Actions").
func ParsePlatform(value string) (Platform, error) { return platforms.parse(value) }

// ParseSDK accepts an identifier ("react-native") or a label ("React Native").
func ParseSDK(value string) (SDK, error) { return sdks.parse(value) }

// ParseBuildType accepts an identifier ("signed") or a label ("Release (signed)").
func ParseBuildType(value string) (BuildType, error) { return buildTypes.parse(value) }

// ParsePublishingFormat accepts an identifier ("aab") or a label ("AAB").
func ParsePublishingFormat(value string) (PublishingFormat, error) {
	return publishingFormats.parse(value)
}

func (p Platform) Label() string { return platforms.label(p) }
func (p Platform) ID() string    { return platforms.ids[p] }
func (p Platform) Valid() bool   { return platforms.valid(p) }
func (p Platform) String() string {
	return p.Label()
}

func (p Platform) MarshalText() ([]byte, error) { return platforms.marshal(p) }

func (p *Platform) UnmarshalText(text []byte) error {
	return platforms.unmarshal(p, text)
}

func (s SDK) Label() string  { return sdks.label(s) }
func (s SDK) ID() string     { return sdks.ids[s] }
func (s SDK) Valid() bool    { return sdks.valid(s) }
func (s SDK) String() string { return s.Label() }

func (s SDK) MarshalText() ([]byte, error) { return sdks.marshal(s) }

func (s *SDK) UnmarshalText(text []byte) error { return sdks.unmarshal(s, text) }

func (b BuildType) Label() string  { return buildTypes.label(b) }
func (b BuildType) ID() string     { return buildTypes.ids[b] }
func (b BuildType) Valid() bool    { return buildTypes.valid(b) }
func (b BuildType) String() string { return b.Label() }

func (b BuildType) MarshalText() ([]byte, error) { return buildTypes.marshal(b) }

func (b *BuildType) UnmarshalText(text []byte) error {
	return buildTypes.unmarshal(b, text)
}

func (f PublishingFormat) Label() string  { return publishingFormats.label(f) }
func (f PublishingFormat) ID() string     { return publishingFormats.ids[f] }
func (f PublishingFormat) Valid() bool    { return publishingFormats.valid(f) }
func (f PublishingFormat) String() string { return f.Label() }

func (f PublishingFormat) MarshalText() ([]byte, error) { return publishingFormats.marshal(f) }

func (f *PublishingFormat) UnmarshalText(text []byte) error {
	return publishingFormats.unmarshal(f, text)
}

// enum holds the explicit identifier and label tables for one axis.
type enum[T ~int] struct {
	kind   string
	values []T
	ids    map[T]string
	labels map[T]string
}

func (e enum[T]) all() []T {
	out := make([]T, len(e.values))
	copy(out, e.values)
	return out
}

func (e enum[T]) valid(value T) bool {
	_, ok := e.ids[value]
	return ok
}

func (e enum[T]) label(value T) string {
	if label, ok := e.labels[value]; ok {
		return label
	}
	return fmt.Sprintf("%s(%d)", e.kind, int(value))
}

func (e enum[T]) parse(value string) (T, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range e.values {
		if strings.EqualFold(trimmed, e.ids[candidate]) || strings.EqualFold(trimmed, e.labels[candidate]) {
			return candidate, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q (expected one of %s)", ErrInvalidValue, e.kind, value, e.choices())
}

func (e enum[T]) choices() string {
	parts := make([]string, 0, len(e.values))
	for _, value := range e.values {
		parts = append(parts, e.ids[value])
	}
	return strings.Join(parts, ", ")
}

func (e enum[T]) marshal(value T) ([]byte, error) {
	id, ok := e.ids[value]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidValue, e.label(value))
	}
	return []byte(id), nil
}

func (e enum[T]) unmarshal(target *T, text []byte) error {
	value, err := e.parse(string(text))
	if err != nil {
		return err
	}
	*target = value
	return nil
}
