// Package cli provides the cobra command tree for citelens.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
	"github.com/citelens-labs/citelens-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands run against, injected by the composition root.
var (
	analyzerService   driving.AnalyzerService
	comparatorService driving.ComparatorService
	auditService      driving.AuditService
	settingsService   driving.SettingsService
	scoreStore        driven.ScoreStore
)

// Services aggregates everything the command tree needs.
type Services struct {
	Analyzer   driving.AnalyzerService
	Comparator driving.ComparatorService
	Audit      driving.AuditService
	Settings   driving.SettingsService

	// Scores backs the cache commands. Optional; cache commands report
	// the store as unavailable when nil.
	Scores driven.ScoreStore
}

// SetServices injects the service implementations used by all commands.
func SetServices(s Services) {
	analyzerService = s.Analyzer
	comparatorService = s.Comparator
	auditService = s.Audit
	settingsService = s.Settings
	scoreStore = s.Scores
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "citelens",
	Short: "Citation visibility analysis for answer engines",
	Long: `Citelens measures how visible a site is in answer-engine responses.

It extracts cited domains from a response, scores the target site's
position, word share and citation quality against its competitors, and
compares the response text with the site's own content.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
