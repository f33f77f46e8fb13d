package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnpmcheck/pkg/batch"
	"pnpmcheck/pkg/lockfile"
)

func findings(versions ...string) []lockfile.Finding {
	out := make([]lockfile.Finding, 0, len(versions))
	for _, v := range versions {
		out = append(out, lockfile.Finding{
			Location:       lockfile.PackagesLocation,
			Version:        v,
			DependencyType: "packages",
		})
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		findings []lockfile.Finding
		want     Status
	}{
		{"no findings", []string{"2.0.0"}, nil, NotFound},
		{"no findings no versions", nil, nil, NotFound},
		{"presence suffices without versions", nil, findings("1.0.0"), Found},
		{"no version matches", []string{"2.0.0"}, findings("1.0.0"), VersionMismatch},
		{"exact match", []string{"1.0.0"}, findings("1.0.0"), Found},
		{"prefix match", []string{"18"}, findings("18.3.1"), Found},
		{"all expected versions matched", []string{"1.0", "2.0"}, findings("1.0.3", "2.0.1"), Found},
		{"some expected versions matched", []string{"1.0", "2.0"}, findings("1.0.3", "3.0.0"), PartialMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.versions, tt.findings))
		})
	}
}

func TestClassifyIgnoresFindingOrder(t *testing.T) {
	versions := []string{"1.0", "2.0"}
	forward := findings("1.0.3", "3.0.0", "2.0.1")
	backward := findings("2.0.1", "3.0.0", "1.0.3")
	assert.Equal(t, Classify(versions, forward), Classify(versions, backward))
}

func TestMatchingFindings(t *testing.T) {
	all := findings("1.0.3", "2.0.1", "3.0.0")
	matched := MatchingFindings(all, []string{"1.0", "2.0"})
	require.Len(t, matched, 2)
	assert.Equal(t, "1.0.3", matched[0].Version)
	assert.Equal(t, "2.0.1", matched[1].Version)

	assert.Empty(t, MatchingFindings(all, []string{"9"}))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Found", Found.String())
	assert.Equal(t, "Not Found", NotFound.String())
	assert.Equal(t, "Version Mismatch", VersionMismatch.String())
	assert.Equal(t, "Partial Match", PartialMatch.String())
}

func TestRunPreservesTargetOrder(t *testing.T) {
	lock, err := lockfile.Parse([]byte(`lockfileVersion: '9.0'
importers:
  .:
    dependencies:
      antd:
        specifier: ^4.8.3
        version: 4.8.3
`))
	require.NoError(t, err)

	targets := []batch.Target{
		{Name: "zzz-missing"},
		{Name: "antd", Versions: []string{"5.0.0"}},
		{Name: "antd"},
	}
	results := Run(lock, targets)
	require.Len(t, results, 3)
	assert.Equal(t, "zzz-missing", results[0].Target.Name)
	assert.Equal(t, NotFound, results[0].Status)
	assert.Equal(t, VersionMismatch, results[1].Status)
	assert.Equal(t, Found, results[2].Status)
}

func TestSortFindings(t *testing.T) {
	fs := findings("10.0.0", "2.0.1", "not-a-version", "2.0.1-beta.1")
	SortFindings(fs)

	got := make([]string, 0, len(fs))
	for _, f := range fs {
		got = append(got, f.Version)
	}
	assert.Equal(t, []string{"2.0.1-beta.1", "2.0.1", "10.0.0", "not-a-version"}, got)
}
