// Where: cli/internal/domain/selection/variants.go
// What: Resolution table from (platform, sdk, build type) to template variants.
// Why: Keep every supported combination visible as one explicit row.
package selection

// Param names a value a template variant accepts.
type Param string

const (
	ParamTitle            Param = "Title"
	ParamPublishingFormat Param = "PublishingFormat"
	ParamShowVersions     Param = "ShowVersions"
	ParamBuildVariantName Param = "BuildVariantName"
	ParamBuildVariantPath Param = "BuildVariantPath"
)

// Key identifies one combination of the three selection axes.
type Key struct {
	Platform  Platform
	SDK       SDK
	BuildType BuildType
}

// CodeVariant is the workflow template for a combination.
type CodeVariant struct {
	ID     string
	Title  string
	Params []Param
}

// InfoVariant is the setup-notes template for a combination.
type InfoVariant struct {
	ID     string
	Params []Param
}

// Variant is one row of the resolution table.
// Info is nil when the combination has no manual setup steps.
type Variant struct {
	Key
	Code CodeVariant
	Info *InfoVariant
}

var (
	gradleParams = []Param{
		ParamTitle,
		ParamPublishingFormat,
		ParamShowVersions,
		ParamBuildVariantName,
		ParamBuildVariantPath,
	}
	flutterParams = []Param{
		ParamTitle,
		ParamPublishingFormat,
		ParamShowVersions,
		ParamBuildVariantPath,
	}
	infoParams = []Param{ParamShowVersions}
)

// variantTable lists rows in the order the variants command prints them.
var variantTable = []Variant{
	{
		Key:  Key{PlatformGitHubActions, SDKNative, BuildTypeSigned},
		Code: CodeVariant{ID: "workflows/github-native-signed", Title: "Android release build", Params: gradleParams},
		Info: &InfoVariant{ID: "info/github-native-signed", Params: infoParams},
	},
	{
		Key:  Key{PlatformGitHubActions, SDKFlutter, BuildTypeSigned},
		Code: CodeVariant{ID: "workflows/github-flutter-signed", Title: "Flutter Android release build", Params: flutterParams},
		Info: &InfoVariant{ID: "info/github-flutter-signed", Params: infoParams},
	},
	{
		Key:  Key{PlatformGitHubActions, SDKReactNative, BuildTypeSigned},
		Code: CodeVariant{ID: "workflows/github-react-native-signed", Title: "React Native Android release build", Params: gradleParams},
		Info: &InfoVariant{ID: "info/github-react-native-signed", Params: infoParams},
	},
	{
		Key:  Key{PlatformGitHubActions, SDKNative, BuildTypeUnsigned},
		Code: CodeVariant{ID: "workflows/github-native-unsigned", Title: "Android debug build", Params: gradleParams},
		Info: &InfoVariant{ID: "info/github-native-unsigned", Params: infoParams},
	},
	{
		Key:  Key{PlatformGitHubActions, SDKFlutter, BuildTypeUnsigned},
		Code: CodeVariant{ID: "workflows/github-flutter-unsigned", Title: "Flutter Android debug build", Params: flutterParams},
		Info: &InfoVariant{ID: "info/github-flutter-unsigned", Params: infoParams},
	},
	{
		// An unsigned React Native debug build needs no manual steps, so it
		// intentionally has no setup notes.
		Key:  Key{PlatformGitHubActions, SDKReactNative, BuildTypeUnsigned},
		Code: CodeVariant{ID: "workflows/github-react-native-unsigned", Title: "React Native Android debug build", Params: gradleParams},
		Info: nil,
	},
}

var variantIndex = indexVariants(variantTable)

func indexVariants(rows []Variant) map[Key]Variant {
	index := make(map[Key]Variant, len(rows))
	for _, row := range rows {
		if _, dup := index[row.Key]; dup {
			panic("selection: duplicate variant row for " + row.Key.String())
		}
		index[row.Key] = row
	}
	return index
}

// Lookup returns the table row for a combination.
func Lookup(key Key) (Variant, bool) {
	row, ok := variantIndex[key]
	return row, ok
}

// Variants returns every table row in a stable order.
func Variants() []Variant {
	out := make([]Variant, len(variantTable))
	copy(out, variantTable)
	return out
}

func (k Key) String() string {
	return k.Platform.Label() + " / " + k.SDK.Label() + " / " + k.BuildType.Label()
}

// HasInfo reports whether the row declares setup notes.
func (v Variant) HasInfo() bool {
	return v.Info != nil
}
