package lockfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"peer annotations stripped", "4.8.3(react-dom@18.3.1)(react@18.3.1)", "4.8.3"},
		{"plain version untouched", "1.2.3", "1.2.3"},
		{"empty string", "", ""},
		{"single annotation", "2.8.15(react@18.3.1)", "2.8.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVersion(tt.version))
		})
	}
}

func TestVersionMatches(t *testing.T) {
	tests := []struct {
		actual   string
		expected string
		want     bool
	}{
		{"18.3.1", "18", true},
		{"18.3.1", "18.3", true},
		{"18.3.1", "18.3.1", true},
		{"2.0.0", "18", false},
		{"1.0.0", "1.0.0", true},
		// prefix must end at a dot boundary
		{"18.3.1", "1", false},
		{"180.0.0", "18", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VersionMatches(tt.actual, tt.expected),
			"VersionMatches(%q, %q)", tt.actual, tt.expected)
	}
}

func TestVersionFromPackageKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		pkg  string
		want string
	}{
		{"plain key", "lodash@4.17.21", "lodash", "4.17.21"},
		{"scoped key", "@ant-design/icons@4.8.3", "@ant-design/icons", "4.8.3"},
		{"slash separated key", "/esprima@1.2.5", "esprima", "1.2.5"},
		{"peer suffix dropped", "lodash@4.17.21_peer_abc", "lodash", "4.17.21"},
		{"package not in key", "react@18.3.1", "lodash", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionFromPackageKey(tt.key, tt.pkg))
		})
	}
}

func TestSplitSnapshotKey(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		wantName    string
		wantVersion string
	}{
		{"scoped with annotations", "@ahooksjs/use-request@2.8.15(react@18.3.1)", "@ahooksjs/use-request", "2.8.15"},
		{"plain", "lodash@4.17.21", "lodash", "4.17.21"},
		{"scoped plain", "@babel/code-frame@7.22.10", "@babel/code-frame", "7.22.10"},
		{"no version separator", "lodash", "lodash", ""},
		{"scoped without version", "@babel/core", "@babel/core", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, version := splitSnapshotKey(tt.key)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantVersion, version)
		})
	}
}
