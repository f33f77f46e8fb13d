package lockfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lockfile is a parsed pnpm-lock.yaml document. A package can appear in
// three places: the per-project importer blocks, the global packages table
// and the snapshots table. The document is read once and never mutated.
type Lockfile struct {
	LockfileVersion string              `yaml:"lockfileVersion"`
	Importers       map[string]Importer `yaml:"importers"`
	Packages        map[string]Package  `yaml:"packages"`
	Snapshots       map[string]Snapshot `yaml:"snapshots"`
}

// Importer holds the direct dependency declarations of one workspace
// project. The importer key "." is the workspace root.
type Importer struct {
	Dependencies         map[string]Dependency `yaml:"dependencies"`
	DevDependencies      map[string]Dependency `yaml:"devDependencies"`
	OptionalDependencies map[string]Dependency `yaml:"optionalDependencies"`
}

// Dependency is one declared dependency: the range the user wrote and the
// version pnpm resolved it to.
type Dependency struct {
	Specifier string `yaml:"specifier"`
	Version   string `yaml:"version"`
}

// Package is one entry of the packages table, keyed by "name@version".
// Only the key takes part in package lookup; the record itself carries
// resolution metadata.
type Package struct {
	Resolution       Resolution        `yaml:"resolution"`
	Dependencies     map[string]string `yaml:"dependencies"`
	DevDependencies  map[string]string `yaml:"devDependencies"`
	PeerDependencies map[string]string `yaml:"peerDependencies"`
}

// Resolution identifies where a package was fetched from.
type Resolution struct {
	Integrity string `yaml:"integrity"`
	Tarball   string `yaml:"tarball"`
}

// Snapshot is one entry of the snapshots table: the dependency edges of a
// package at one exact resolved version.
type Snapshot struct {
	Dependencies         map[string]string `yaml:"dependencies"`
	DevDependencies      map[string]string `yaml:"devDependencies"`
	OptionalDependencies map[string]string `yaml:"optionalDependencies"`
}

// Load reads and parses a pnpm-lock.yaml file.
func Load(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lockfile: %w", err)
	}
	return Parse(data)
}

// Parse parses lockfile content.
func Parse(data []byte) (*Lockfile, error) {
	var lock Lockfile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("invalid pnpm-lock.yaml: %w", err)
	}
	return &lock, nil
}
