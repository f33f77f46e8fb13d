package output

import (
	"fmt"
	"strings"

	"pnpmcheck/pkg/checker"
	"pnpmcheck/pkg/lockfile"
)

// PrintNotFound reports a package that is absent from every lockfile
// section.
func PrintNotFound(name string) {
	fmt.Printf("Package %q not found\n", name)
}

// PrintVersionMismatch reports a package that is present, but at none of
// the expected versions.
func PrintVersionMismatch(name, expected string, findings []lockfile.Finding) {
	fmt.Printf("Package %q found, but not at the expected version\n", name)
	fmt.Printf("   expected version: %s\n", expected)
	fmt.Println("   actual versions:")
	for _, f := range findings {
		fmt.Printf("   - %s (%s)\n", f.Version, f.Location)
	}
}

// PrintFound reports a successful single-package check.
func PrintFound(name, version string, findings []lockfile.Finding, verbose bool) {
	if version != "" {
		fmt.Printf("Found package %s @ %s\n", name, version)
	} else {
		fmt.Printf("Found package %s\n", name)
	}
	for _, f := range findings {
		printFinding(f, verbose)
	}
}

func printFinding(f lockfile.Finding, verbose bool) {
	if !verbose {
		fmt.Printf("   %s @ %s (%s)\n", f.Location, f.Version, f.DependencyType)
		return
	}
	fmt.Printf("   location: %s\n", f.Location)
	fmt.Printf("      type: %s\n", f.DependencyType)
	if f.Specifier != "" {
		fmt.Printf("      specifier: %s\n", f.Specifier)
	}
	fmt.Printf("      version: %s\n", f.Version)
	fmt.Println()
}

// PrintBatchResults prints every batch result followed by a summary count
// block. Non-Found results always print their detail lines; Found results
// only do so in verbose mode.
func PrintBatchResults(results []checker.Result, verbose bool) {
	var found, notFound, mismatch, partial int

	fmt.Println("Batch check results:")
	fmt.Println()

	for _, r := range results {
		var marker string
		switch r.Status {
		case checker.Found:
			found++
			marker = "[FOUND]"
		case checker.NotFound:
			notFound++
			marker = "[MISSING]"
		case checker.VersionMismatch:
			mismatch++
			marker = "[MISMATCH]"
		case checker.PartialMatch:
			partial++
			marker = "[PARTIAL]"
		}

		fmt.Printf("%-10s %s\n", marker, r.Target.Name)

		if verbose || r.Status != checker.Found {
			expected := "any"
			if len(r.Target.Versions) > 0 {
				expected = strings.Join(r.Target.Versions, ", ")
			}
			fmt.Printf("   expected versions: %s\n", expected)
			if r.Status != checker.NotFound {
				fmt.Println("   actual versions:")
				for _, f := range r.Findings {
					fmt.Printf("   - %s @ %s (%s)\n", f.Location, f.Version, f.DependencyType)
				}
			}
			if r.Target.Status != "" {
				fmt.Printf("   status: %s\n", r.Target.Status)
			}
			if r.Target.DetectionDate != "" {
				fmt.Printf("   detected: %s\n", r.Target.DetectionDate)
			}
			fmt.Println()
		}
	}

	fmt.Println("Summary:")
	fmt.Printf("   total: %d\n", len(results))
	fmt.Printf("   found: %d\n", found)
	fmt.Printf("   partial match: %d\n", partial)
	fmt.Printf("   version mismatch: %d\n", mismatch)
	fmt.Printf("   not found: %d\n", notFound)
}
