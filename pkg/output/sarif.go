package output

import (
	"encoding/json"
	"fmt"
	"time"

	"pnpmcheck/pkg/checker"
)

// SARIF format specification: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html

// SarifReport represents the top-level SARIF report structure
type SarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

// SarifRun represents a single run of the analysis tool
type SarifRun struct {
	Tool        SarifTool         `json:"tool"`
	Results     []SarifResult     `json:"results"`
	Invocations []SarifInvocation `json:"invocations"`
}

// SarifTool represents the tool that performed the analysis
type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

// SarifDriver represents the driver of the tool
type SarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []SarifRule `json:"rules"`
}

// SarifRule represents a rule that was evaluated during the analysis
type SarifRule struct {
	ID               string            `json:"id"`
	ShortDescription SarifMessage      `json:"shortDescription"`
	FullDescription  SarifMessage      `json:"fullDescription"`
	Help             SarifMessage      `json:"help"`
	Properties       map[string]string `json:"properties,omitempty"`
}

// SarifResult represents a result of the analysis
type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SarifMessage    `json:"message"`
	Locations []SarifLocation `json:"locations"`
}

// SarifMessage represents a message in the SARIF report
type SarifMessage struct {
	Text string `json:"text"`
}

// SarifLocation represents a location in the code
type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

// SarifPhysicalLocation represents a physical location in the code
type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
}

// SarifArtifactLocation represents the location of an artifact
type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

// SarifInvocation represents an invocation of the tool
type SarifInvocation struct {
	ExecutionSuccessful bool   `json:"executionSuccessful"`
	StartTimeUtc        string `json:"startTimeUtc"`
	EndTimeUtc          string `json:"endTimeUtc"`
}

// GenerateSarifReport converts batch results to SARIF format. Packages
// absent from the lockfile produce no result; everything else maps onto a
// rule by status, so the report surfaces exactly the packages that are
// present. The lockfile path becomes the artifact location of every result.
func GenerateSarifReport(results []checker.Result, lockfilePath string, toolVersion string) ([]byte, error) {
	rules := []SarifRule{
		{
			ID:               "listed-version-present",
			ShortDescription: SarifMessage{Text: "Listed package version present in lockfile"},
			FullDescription:  SarifMessage{Text: "Every version listed for this package was matched by the lockfile's resolved versions."},
			Help:             SarifMessage{Text: "Remove or upgrade the package so the listed versions are no longer resolved."},
		},
		{
			ID:               "listed-version-partial",
			ShortDescription: SarifMessage{Text: "Some listed package versions present in lockfile"},
			FullDescription:  SarifMessage{Text: "Part of the versions listed for this package were matched by the lockfile's resolved versions."},
			Help:             SarifMessage{Text: "Check which of the listed versions are resolved and upgrade them."},
		},
		{
			ID:               "package-present",
			ShortDescription: SarifMessage{Text: "Package present in lockfile"},
			FullDescription:  SarifMessage{Text: "The package is resolved by the lockfile; no version constraint was given."},
			Help:             SarifMessage{Text: "Verify whether the resolved versions are acceptable."},
		},
		{
			ID:               "version-mismatch",
			ShortDescription: SarifMessage{Text: "Package present at other versions"},
			FullDescription:  SarifMessage{Text: "The package is resolved by the lockfile, but at none of the listed versions."},
			Help:             SarifMessage{Text: "No listed version is in use; usually no action is needed."},
		},
	}

	sarifResults := make([]SarifResult, 0, len(results))
	for _, r := range results {
		var ruleID, level string
		switch r.Status {
		case checker.NotFound:
			continue
		case checker.Found:
			if len(r.Target.Versions) == 0 {
				ruleID, level = "package-present", "note"
			} else {
				ruleID, level = "listed-version-present", "error"
			}
		case checker.PartialMatch:
			ruleID, level = "listed-version-partial", "warning"
		case checker.VersionMismatch:
			ruleID, level = "version-mismatch", "note"
		}

		messageText := fmt.Sprintf("%s: expected %s, found %s",
			r.Target.Name, expectedVersions(r), foundVersions(r))
		if r.Target.Status != "" {
			messageText += fmt.Sprintf(" (advisory status: %s)", r.Target.Status)
		}

		sarifResults = append(sarifResults, SarifResult{
			RuleID:  ruleID,
			Level:   level,
			Message: SarifMessage{Text: messageText},
			Locations: []SarifLocation{
				{
					PhysicalLocation: SarifPhysicalLocation{
						ArtifactLocation: SarifArtifactLocation{
							URI: lockfilePath,
						},
					},
				},
			},
		})
	}

	now := time.Now().UTC()
	sarifReport := SarifReport{
		Schema:  "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Version: "2.1.0",
		Runs: []SarifRun{
			{
				Tool: SarifTool{
					Driver: SarifDriver{
						Name:    "pnpmcheck",
						Version: toolVersion,
						Rules:   rules,
					},
				},
				Results: sarifResults,
				Invocations: []SarifInvocation{
					{
						ExecutionSuccessful: true,
						StartTimeUtc:        now.Format(time.RFC3339),
						EndTimeUtc:          now.Format(time.RFC3339),
					},
				},
			},
		},
	}

	return json.MarshalIndent(sarifReport, "", "  ")
}
