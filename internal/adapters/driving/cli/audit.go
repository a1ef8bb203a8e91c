package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

var (
	auditQuery   string
	auditNoCache bool
	auditJSON    bool
)

var auditCmd = &cobra.Command{
	Use:   "audit [target-site]",
	Short: "Run a full visibility audit",
	Long: `Runs an end-to-end audit of the target site.

The audit fetches the target page, asks the answer engine the query,
scores the site's citations in the answer, and compares the answer with
the page content. When no query is given and an LLM is configured, a
query is suggested from the page itself.

Scores are cached by answer content; use --no-cache to force
recomputation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditQuery, "query", "q", "", "question to ask the answer engine")
	auditCmd.Flags().BoolVar(&auditNoCache, "no-cache", false, "skip the score cache")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	if auditService == nil {
		return errors.New("audit service not configured")
	}

	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	req := domain.AuditRequest{
		TargetSite: target,
		Query:      auditQuery,
		SkipCache:  auditNoCache,
	}

	result, err := auditService.Run(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if auditJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Audit Result")
	cmd.Println("============")
	cmd.Printf("Run:    %s\n", result.ID)
	cmd.Printf("Target: %s\n", result.Request.TargetSite)
	cmd.Printf("Query:  %s\n", result.Request.Query)
	if result.FromCache {
		cmd.Println("Scores served from cache.")
	}
	cmd.Println()
	printMetrics(cmd, result.Report.Metrics)
	cmd.Println()

	if len(result.Report.Competitors) > 0 {
		cmd.Println("Competitors:")
		for _, site := range competitorsByScore(result.Report.Competitors) {
			m := result.Report.Competitors[site]
			cmd.Printf("  %s total=%.4f\n", site, m.TotalScore)
		}
		cmd.Printf("Best competitor: %s (%.4f)\n", result.Report.Best.Site, result.Report.Best.Score)
		cmd.Println()
	}

	cmd.Printf("Content similarity: unigram=%.4f 1-2gram=%.4f\n",
		result.Similarity.Unigram, result.Similarity.UniBigram)
	return nil
}
