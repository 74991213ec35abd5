package version

import (
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
}

func TestGetVersion(t *testing.T) {
	cases := []struct {
		name    string
		stamped string
		info    *debug.BuildInfo
		ok      bool
		want    string
	}{
		{name: "stamped", stamped: "v1.2.0", ok: false, want: "v1.2.0"},
		{name: "no build info", ok: false, want: "dev"},
		{name: "module version", info: &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}}, ok: true, want: "v0.3.1"},
		{
			name: "dirty revision",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			ok:   true,
			want: "0123456 (dirty)",
		},
		{name: "no revision", info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, ok: true, want: "dev"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			origVersion := Version
			t.Cleanup(func() { Version = origVersion })
			Version = tc.stamped
			stubBuildInfo(t, tc.info, tc.ok)

			if got := GetVersion(); got != tc.want {
				t.Fatalf("GetVersion() = %q, want %q", got, tc.want)
			}
		})
	}
}
