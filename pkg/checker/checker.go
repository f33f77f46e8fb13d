package checker

import (
	"sort"

	"github.com/Masterminds/semver/v3"

	"pnpmcheck/pkg/batch"
	"pnpmcheck/pkg/lockfile"
)

// Status classifies the outcome of checking one package against the
// lockfile.
type Status int

const (
	Found Status = iota
	VersionMismatch
	NotFound
	PartialMatch
)

func (s Status) String() string {
	switch s {
	case Found:
		return "Found"
	case VersionMismatch:
		return "Version Mismatch"
	case NotFound:
		return "Not Found"
	case PartialMatch:
		return "Partial Match"
	}
	return "Unknown"
}

// Result pairs one batch target with what was found in the lockfile.
type Result struct {
	Target   batch.Target
	Findings []lockfile.Finding
	Status   Status
}

// MatchingFindings returns the findings whose version satisfies any of the
// expected versions.
func MatchingFindings(findings []lockfile.Finding, versions []string) []lockfile.Finding {
	var matched []lockfile.Finding
	for _, f := range findings {
		for _, v := range versions {
			if lockfile.VersionMatches(f.Version, v) {
				matched = append(matched, f)
				break
			}
		}
	}
	return matched
}

// Classify decides the status for one target. No findings is NotFound; any
// finding satisfies an unconstrained target. When versions were expected, a
// full match requires as many matching findings as expected versions, and
// fewer is a partial match. The status depends only on the set of findings,
// never their order.
func Classify(versions []string, findings []lockfile.Finding) Status {
	if len(findings) == 0 {
		return NotFound
	}
	if len(versions) == 0 {
		return Found
	}
	matched := MatchingFindings(findings, versions)
	switch {
	case len(matched) == 0:
		return VersionMismatch
	case len(matched) == len(versions):
		return Found
	default:
		return PartialMatch
	}
}

// Run checks every target against the lockfile. Results come back in
// target order.
func Run(lock *lockfile.Lockfile, targets []batch.Target) []Result {
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		findings := lock.FindPackage(target.Name)
		SortFindings(findings)
		results = append(results, Result{
			Target:   target,
			Findings: findings,
			Status:   Classify(target.Versions, findings),
		})
	}
	return results
}

// SortFindings orders findings by semantic version, oldest first, so that
// report output is stable across runs. Versions that do not parse as semver
// sort after those that do, lexically.
func SortFindings(findings []lockfile.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		vi, erri := semver.NewVersion(findings[i].Version)
		vj, errj := semver.NewVersion(findings[j].Version)
		switch {
		case erri == nil && errj == nil:
			if !vi.Equal(vj) {
				return vi.LessThan(vj)
			}
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			if findings[i].Version != findings[j].Version {
				return findings[i].Version < findings[j].Version
			}
		}
		return findings[i].Location < findings[j].Location
	})
}
