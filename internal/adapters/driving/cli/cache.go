package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var cacheLimit int

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the score cache",
	Long:  `Inspect and clear cached citation scores, keyed by answer content hash.`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached scores",
	RunE:  runCacheList,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove all cached scores",
	RunE:  runCachePurge,
}

func init() {
	cacheListCmd.Flags().IntVarP(&cacheLimit, "limit", "n", 20, "maximum number of records to show")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	if scoreStore == nil {
		return errors.New("score store not configured")
	}

	records, err := scoreStore.List(cmd.Context(), cacheLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		cmd.Println("Cache is empty.")
		return nil
	}

	cmd.Println("Cached scores (newest first):")
	for _, rec := range records {
		cmd.Printf("  %s  %s  total=%.4f  %s\n",
			rec.Hash[:12], rec.Target, rec.Metrics.TotalScore,
			rec.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runCachePurge(cmd *cobra.Command, _ []string) error {
	if scoreStore == nil {
		return errors.New("score store not configured")
	}

	if err := scoreStore.Purge(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("Cache purged.")
	return nil
}
