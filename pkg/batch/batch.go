package batch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"

	"pnpmcheck/pkg/logger"
)

// Target is one package to check, parsed from a batch list file.
type Target struct {
	Name          string
	Versions      []string // empty means any version is acceptable
	Status        string   // advisory status carried over from the input file
	DetectionDate string
}

// ErrUnrecognizedFormat is returned when a batch file's header line matches
// no known layout.
var ErrUnrecognizedFormat = errors.New("unrecognized batch file format")

const (
	simpleHeader   = "Package Name\tVersion(s)"
	advisoryHeader = "Package Name\tCompromised Version(s)\tDetection Date\tStatus"
)

// ParseFile reads a tab separated batch list. Two layouts are recognized by
// their header line: a plain package/version listing, and an advisory
// listing that adds a detection date and status per package. Blank lines
// and rows with too few columns are skipped.
func ParseFile(path string) ([]Target, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return parse(string(content))
}

func parse(content string) ([]Target, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	header := lines[0]
	switch {
	case strings.Contains(header, simpleHeader):
		return parseSimple(lines[1:]), nil
	case strings.Contains(header, advisoryHeader):
		return parseAdvisory(lines[1:]), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, header)
	}
}

func parseSimple(lines []string) []Target {
	var targets []Target
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		targets = append(targets, Target{
			Name:     strings.TrimSpace(parts[1]),
			Versions: splitVersions(parts[2]),
		})
	}
	return targets
}

func parseAdvisory(lines []string) []Target {
	var targets []Target
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 4 {
			continue
		}
		targets = append(targets, Target{
			Name:          strings.TrimSpace(parts[0]),
			Versions:      splitVersions(parts[1]),
			DetectionDate: strings.TrimSpace(parts[2]),
			Status:        strings.TrimSpace(parts[3]),
		})
	}
	return targets
}

// splitVersions splits a ", " separated version list. An empty field means
// any version.
func splitVersions(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	var versions []string
	for _, v := range strings.Split(field, ", ") {
		v = strings.TrimSpace(v)
		if _, err := semver.NewVersion(v); err != nil {
			logger.Debugf("batch: version %q is not valid semver, matching it verbatim", v)
		}
		versions = append(versions, v)
	}
	return versions
}
