package output

import (
	"encoding/json"

	"pnpmcheck/pkg/checker"
	"pnpmcheck/pkg/lockfile"
)

// reportRow is the JSON shape of one batch result, mirroring the TSV
// report columns.
type reportRow struct {
	Name             string             `json:"name"`
	Status           string             `json:"status"`
	ExpectedVersions []string           `json:"expected_versions,omitempty"`
	Findings         []lockfile.Finding `json:"findings,omitempty"`
	OriginalStatus   string             `json:"original_status,omitempty"`
	DetectionDate    string             `json:"detection_date,omitempty"`
}

// GenerateJSONReport converts batch results to JSON format.
func GenerateJSONReport(results []checker.Result) ([]byte, error) {
	rows := make([]reportRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, reportRow{
			Name:             r.Target.Name,
			Status:           r.Status.String(),
			ExpectedVersions: r.Target.Versions,
			Findings:         r.Findings,
			OriginalStatus:   r.Target.Status,
			DetectionDate:    r.Target.DetectionDate,
		})
	}
	return json.MarshalIndent(rows, "", "  ")
}
