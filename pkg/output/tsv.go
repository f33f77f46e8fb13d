package output

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"pnpmcheck/pkg/checker"
)

const reportHeader = "Package Name\tStatus\tExpected Versions\tFound Versions\tLocations\tOriginal Status\tDetection Date"

// WriteTSVReport writes the machine readable batch report, one row per
// target in input order.
func WriteTSVReport(results []checker.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, reportHeader)
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Target.Name,
			r.Status,
			expectedVersions(r),
			foundVersions(r),
			locations(r),
			r.Target.Status,
			r.Target.DetectionDate,
		)
	}
	return w.Flush()
}

func expectedVersions(r checker.Result) string {
	if len(r.Target.Versions) == 0 {
		return "Any"
	}
	return strings.Join(r.Target.Versions, ", ")
}

func foundVersions(r checker.Result) string {
	if len(r.Findings) == 0 {
		return "None"
	}
	versions := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		versions = append(versions, f.Version)
	}
	return strings.Join(versions, ", ")
}

func locations(r checker.Result) string {
	if len(r.Findings) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Location, f.DependencyType))
	}
	return strings.Join(parts, "; ")
}
