package lockfile

import (
	"fmt"
	"strings"
)

// Finding records one place a package was located in the lockfile.
type Finding struct {
	Location       string `json:"location"`            // importer path, "packages section" or "snapshots section"
	Specifier      string `json:"specifier,omitempty"` // declared range, importer findings only
	Version        string `json:"version"`             // canonical version, annotations stripped
	DependencyType string `json:"dependency_type"`     // which dependency map produced the finding
}

// Section labels used in findings and reports.
const (
	RootLocation      = "root"
	PackagesLocation  = "packages section"
	SnapshotsLocation = "snapshots section"
)

// FindPackage scans all three lockfile sections for name and returns every
// distinct place it occurs. A package that is only pulled in transitively
// still surfaces through the snapshots pass. An absent package yields an
// empty result, never an error.
func (l *Lockfile) FindPackage(name string) []Finding {
	var found []Finding

	for path, importer := range l.Importers {
		location := path
		if path == "." {
			location = RootLocation
		}
		depMaps := []struct {
			label string
			deps  map[string]Dependency
		}{
			{"dependencies", importer.Dependencies},
			{"devDependencies", importer.DevDependencies},
			{"optionalDependencies", importer.OptionalDependencies},
		}
		for _, m := range depMaps {
			if dep, ok := m.deps[name]; ok {
				found = append(found, Finding{
					Location:       location,
					Specifier:      dep.Specifier,
					Version:        ExtractVersion(dep.Version),
					DependencyType: m.label,
				})
			}
		}
	}

	// Keys differing only in peer suffix resolve to the same version, so
	// the packages pass de-duplicates on version alone.
	patterns := []string{name + "@", "/" + name + "@"}
	for key := range l.Packages {
		for _, pattern := range patterns {
			if !strings.Contains(key, pattern) {
				continue
			}
			version := versionFromPackageKey(key, name)
			if version == "" || hasVersion(found, version) {
				continue
			}
			found = append(found, Finding{
				Location:       PackagesLocation,
				Version:        version,
				DependencyType: "packages",
			})
		}
	}

	for key, snapshot := range l.Snapshots {
		if raw, ok := snapshot.Dependencies[name]; ok {
			version := ExtractVersion(raw)
			if !hasVersionAt(found, version, SnapshotsLocation) {
				found = append(found, Finding{
					Location:       SnapshotsLocation,
					Version:        version,
					DependencyType: fmt.Sprintf("snapshots[%s].dependencies", key),
				})
			}
		}

		keyName, keyVersion := splitSnapshotKey(key)
		if keyName != name && !strings.HasSuffix(keyName, "/"+name) {
			continue
		}
		if keyVersion != "" && !hasVersionAt(found, keyVersion, SnapshotsLocation) {
			found = append(found, Finding{
				Location:       SnapshotsLocation,
				Version:        keyVersion,
				DependencyType: "snapshots",
			})
		}
	}

	return found
}

func hasVersion(findings []Finding, version string) bool {
	for _, f := range findings {
		if f.Version == version {
			return true
		}
	}
	return false
}

func hasVersionAt(findings []Finding, version, location string) bool {
	for _, f := range findings {
		if f.Version == version && f.Location == location {
			return true
		}
	}
	return false
}
