package lockfile

import "strings"

// ExtractVersion strips peer resolution annotations from a lockfile version
// string, e.g. "4.8.3(react-dom@18.3.1)(react@18.3.1)" -> "4.8.3".
func ExtractVersion(version string) string {
	if pos := strings.Index(version, "("); pos >= 0 {
		return version[:pos]
	}
	return version
}

// VersionMatches reports whether actual satisfies expected. The match is
// deliberately loose: expected "18" matches actual "18.3.1". Range
// operators (^, ~, >=) are not supported.
func VersionMatches(actual, expected string) bool {
	return actual == expected || strings.HasPrefix(actual, expected+".")
}

// versionFromPackageKey extracts the version from a packages-table key,
// given the package name it is expected to contain, e.g.
// "@ant-design/icons@4.8.3" -> "4.8.3". The "/{name}@" alternative keeps a
// scoped name from matching inside a longer name. Returns "" when the key
// does not contain the package at all.
func versionFromPackageKey(key, name string) string {
	for _, pattern := range []string{name + "@", "/" + name + "@"} {
		if pos := strings.Index(key, pattern); pos >= 0 {
			rest := key[pos+len(pattern):]
			// older lockfiles append a peer suffix after "_"
			if cut := strings.Index(rest, "_"); cut >= 0 {
				rest = rest[:cut]
			}
			return rest
		}
	}
	return ""
}

// splitSnapshotKey breaks a snapshots-table key into package name and
// version, e.g. "@ahooksjs/use-request@2.8.15(react@18.3.1)" ->
// ("@ahooksjs/use-request", "2.8.15"). Peer annotations are dropped first;
// scoped names carry a leading "@", so the name ends at the last "@" of
// what remains. A key without a version separator yields an empty version.
func splitSnapshotKey(key string) (name, version string) {
	base := key
	if paren := strings.Index(base, "("); paren >= 0 {
		base = base[:paren]
	}
	at := strings.LastIndex(base, "@")
	if at <= 0 {
		return base, ""
	}
	return base[:at], base[at+1:]
}
