package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pnpmcheck/pkg/batch"
	"pnpmcheck/pkg/checker"
	"pnpmcheck/pkg/config"
	"pnpmcheck/pkg/lockfile"
	"pnpmcheck/pkg/logger"
	"pnpmcheck/pkg/output"
)

// Version is set during build using ldflags
var Version = "dev"

// errCheckFailed marks a run where the tool worked but the answer is "no":
// the package is missing or present at the wrong version. The result has
// already been printed, only the exit code carries it further.
var errCheckFailed = errors.New("check failed")

var (
	lockfilePath string
	verbose      bool
	batchPath    string
	outputPath   string
	outputFormat string
	configPath   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pnpmcheck [package] [version]",
	Short: "Checks whether a pnpm-lock.yaml contains given packages and versions",
	Long: `pnpmcheck inspects a pnpm-lock.yaml file and reports whether a package is
present, and at which versions, across the importers, packages and snapshots
sections. Batch mode checks a whole list of packages read from a tab
separated report file.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&lockfilePath, "file", "f", "pnpm-lock.yaml", "Path to the pnpm-lock.yaml file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")
	rootCmd.Flags().StringVarP(&batchPath, "batch", "b", "", "Batch mode: path to a package list file")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "Write a report file (batch mode)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "tsv", "Report file format: tsv, json or sarif")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a config file (default "+config.DefaultConfigFile+")")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			logger.Errorf("%v", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verbose)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("file") && cfg.Lockfile != "" {
		lockfilePath = cfg.Lockfile
	}
	if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
		outputFormat = cfg.Output.Format
	}

	if _, err := os.Stat(lockfilePath); err != nil {
		return fmt.Errorf("lockfile %q does not exist", lockfilePath)
	}
	lock, err := lockfile.Load(lockfilePath)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", lockfilePath, err)
	}
	logger.Debugf("lockfile version: %s", lock.LockfileVersion)

	if batchPath != "" {
		return runBatch(cfg, lock)
	}
	if len(args) == 0 {
		return errors.New("a package name is required unless --batch is used")
	}
	version := ""
	if len(args) > 1 {
		version = args[1]
	}
	return runSingle(lock, args[0], version)
}

func runSingle(lock *lockfile.Lockfile, name, version string) error {
	logger.Debugf("looking up package: %s", name)
	if version != "" {
		logger.Debugf("expected version: %s", version)
	}

	findings := lock.FindPackage(name)
	checker.SortFindings(findings)

	if len(findings) == 0 {
		output.PrintNotFound(name)
		return errCheckFailed
	}
	if version != "" {
		matched := checker.MatchingFindings(findings, []string{version})
		if len(matched) == 0 {
			output.PrintVersionMismatch(name, version, findings)
			return errCheckFailed
		}
		output.PrintFound(name, version, matched, verbose)
		return nil
	}
	output.PrintFound(name, "", findings, verbose)
	return nil
}

// runBatch reports on every listed package. Individual misses do not fail
// the run; batch mode reports, it does not gate.
func runBatch(cfg *config.Config, lock *lockfile.Lockfile) error {
	targets, err := batch.ParseFile(batchPath)
	if err != nil {
		return err
	}

	kept := make([]batch.Target, 0, len(targets))
	for _, t := range targets {
		if cfg.IsPackageIgnored(t.Name) {
			logger.Debugf("skipping ignored package %s", t.Name)
			continue
		}
		kept = append(kept, t)
	}
	targets = kept
	logger.Debugf("batch mode: checking %d packages", len(targets))

	results := checker.Run(lock, targets)
	output.PrintBatchResults(results, verbose)

	if outputPath == "" {
		outputPath = cfg.Output.File
	}
	if outputPath == "" {
		return nil
	}

	switch outputFormat {
	case "", "tsv":
		if err := output.WriteTSVReport(results, outputPath); err != nil {
			return err
		}
	case "json":
		data, err := output.GenerateJSONReport(results)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report file: %w", err)
		}
	case "sarif":
		data, err := output.GenerateSarifReport(results, lockfilePath, Version)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report file: %w", err)
		}
	default:
		return fmt.Errorf("unknown report format %q", outputFormat)
	}

	fmt.Printf("\nReport written to %s\n", outputPath)
	return nil
}
