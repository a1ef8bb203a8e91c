package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

var (
	analyzeFile  string
	analyzeJSON  bool
	analyzeWatch bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [target-site]",
	Short: "Analyze citations in a response text",
	Long: `Scores how well the target site is cited in an answer-engine response.

The response text is read from --file, or from stdin when no file is
given. The target site may be a bare domain or a full URL; it defaults
to the configured target.site setting.

With --watch the file is re-analyzed every time it changes, which is
useful while iterating on page content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read the response text from a file instead of stdin")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeWatch, "watch", "w", false, "re-analyze whenever the file changes (requires --file)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	if analyzeWatch {
		if analyzeFile == "" {
			return errors.New("--watch requires --file")
		}
		return watchAndAnalyze(cmd, target)
	}

	text, err := readResponseText(cmd)
	if err != nil {
		return err
	}

	report := analyzerService.Evaluate(text, target)
	return outputReport(cmd, report)
}

// resolveTarget returns the target site from the argument, falling back
// to the configured default.
func resolveTarget(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if settingsService != nil {
		if site := settingsService.All().TargetSite; site != "" {
			return site, nil
		}
	}
	return "", errors.New("no target site given and target.site is not configured")
}

func readResponseText(cmd *cobra.Command) (string, error) {
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("read response file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// watchAndAnalyze re-runs the analysis on every write to the file until
// the command context is cancelled.
func watchAndAnalyze(cmd *cobra.Command, target string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(analyzeFile); err != nil {
		return fmt.Errorf("watch %s: %w", analyzeFile, err)
	}

	analyze := func() error {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("read response file: %w", err)
		}
		report := analyzerService.Evaluate(string(data), target)
		return outputReport(cmd, report)
	}

	// Initial run before the first change.
	if err := analyze(); err != nil {
		return err
	}
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", analyzeFile)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cmd.Println()
			if err := analyze(); err != nil {
				cmd.PrintErrf("analyze failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		}
	}
}

func outputReport(cmd *cobra.Command, report domain.CitationReport) error {
	if analyzeJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Citation Report")
	cmd.Println("===============")
	cmd.Printf("Target: %s\n", report.Target)
	printMetrics(cmd, report.Metrics)
	cmd.Println()

	if len(report.Competitors) == 0 {
		cmd.Println("No competitors cited.")
	} else {
		cmd.Println("Competitors:")
		for _, site := range competitorsByScore(report.Competitors) {
			m := report.Competitors[site]
			cmd.Printf("  %s total=%.4f pos=%.4f word=%.4f quality=%.4f\n",
				site, m.TotalScore, m.Pos, m.Word, m.CitationQuality)
		}
		cmd.Printf("Best competitor: %s (%.4f)\n", report.Best.Site, report.Best.Score)
	}
	cmd.Printf("Total words: %d\n", report.TotalWords)
	return nil
}

func printMetrics(cmd *cobra.Command, m domain.SiteMetrics) {
	cmd.Printf("  Pos:     %.4f\n", m.Pos)
	cmd.Printf("  Word:    %.4f\n", m.Word)
	cmd.Printf("  Quality: %.4f\n", m.CitationQuality)
	cmd.Printf("  Total:   %.4f\n", m.TotalScore)
}

// competitorsByScore orders competitor sites by TotalScore descending,
// ties broken alphabetically so output is stable.
func competitorsByScore(competitors map[string]domain.SiteMetrics) []string {
	sites := make([]string, 0, len(competitors))
	for site := range competitors {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool {
		a, b := competitors[sites[i]], competitors[sites[j]]
		if a.TotalScore == b.TotalScore {
			return sites[i] < sites[j]
		}
		return a.TotalScore > b.TotalScore
	})
	return sites
}
