package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFileSimpleFormat(t *testing.T) {
	path := writeBatchFile(t, "X\tPackage Name\tVersion(s)\n"+
		"1\tantd\t4.8.3, 5.0.0\n"+
		"2\tlodash\t\n"+
		"\n"+
		"3\treact\t18.3.1\n")

	targets, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, targets, 3)

	assert.Equal(t, "antd", targets[0].Name)
	assert.Equal(t, []string{"4.8.3", "5.0.0"}, targets[0].Versions)
	assert.Empty(t, targets[0].Status)
	assert.Empty(t, targets[0].DetectionDate)

	assert.Equal(t, "lodash", targets[1].Name)
	assert.Empty(t, targets[1].Versions, "empty version field means any version")

	assert.Equal(t, "react", targets[2].Name)
}

func TestParseFileAdvisoryFormat(t *testing.T) {
	path := writeBatchFile(t, "Package Name\tCompromised Version(s)\tDetection Date\tStatus\n"+
		"chalk\t5.6.1\t2025-09-08\tConfirmed\n"+
		"debug\t4.4.2, 4.4.3\t2025-09-08\tUnder Review\n")

	targets, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.Equal(t, "chalk", targets[0].Name)
	assert.Equal(t, []string{"5.6.1"}, targets[0].Versions)
	assert.Equal(t, "2025-09-08", targets[0].DetectionDate)
	assert.Equal(t, "Confirmed", targets[0].Status)

	assert.Equal(t, []string{"4.4.2", "4.4.3"}, targets[1].Versions)
	assert.Equal(t, "Under Review", targets[1].Status)
}

func TestParseFileShortRowsSkipped(t *testing.T) {
	path := writeBatchFile(t, "X\tPackage Name\tVersion(s)\n"+
		"short row\n"+
		"1\tantd\t4.8.3\n")

	targets, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "antd", targets[0].Name)
}

func TestParseFileUnrecognizedHeader(t *testing.T) {
	path := writeBatchFile(t, "name,versions\nantd,4.8.3\n")

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestParseFileEmpty(t *testing.T) {
	path := writeBatchFile(t, "")

	targets, err := ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read batch file")
}

func TestParseFileCRLF(t *testing.T) {
	path := writeBatchFile(t, "X\tPackage Name\tVersion(s)\r\n1\tantd\t4.8.3\r\n")

	targets, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, []string{"4.8.3"}, targets[0].Versions)
}
