package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var compareJSON bool

var compareCmd = &cobra.Command{
	Use:   "compare [file-a] [file-b]",
	Short: "Compare lexical similarity of two texts",
	Long: `Computes TF-IDF cosine similarity between two text files.

Similarity is reported at two granularities: unigrams for plain word
overlap, and 1-2grams which also reward shared phrases.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "output the scores as JSON")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if comparatorService == nil {
		return errors.New("comparator service not configured")
	}

	textA, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	textB, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[1], err)
	}

	report := comparatorService.Compare(string(textA), string(textB))

	if compareJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Unigram similarity: %.4f\n", report.Unigram)
	cmd.Printf("1-2gram similarity: %.4f\n", report.UniBigram)
	return nil
}
