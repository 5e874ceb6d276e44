package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search every paragraph in the library",
	Long: `Performs a case-insensitive substring search across all indexed
paragraphs and prints each match with a contextual snippet.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]
	if err := ensureLibrary(cmd); err != nil {
		return err
	}

	resp := services.Search.Search(term)
	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}
	return outputSearchText(cmd, term, resp)
}

func outputSearchJSON(cmd *cobra.Command, resp domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, term string, resp domain.SearchResponse) error {
	if resp.TotalHits == 0 {
		cmd.Printf("No results for %q.\n", term)
		return nil
	}

	cmd.Printf("%d hits in %d paragraphs.\n", resp.TotalHits, resp.Paragraphs)
	if resp.Paragraphs > len(resp.Results) {
		cmd.Printf("Showing first %d matches.\n", len(resp.Results))
	}
	cmd.Println()

	for _, result := range resp.Results {
		cmd.Printf("  %s — %s", result.SourceTitle, result.Heading)
		if result.Count > 1 {
			cmd.Printf(" (%d)", result.Count)
		}
		cmd.Println()
		cmd.Printf("    %s\n", result.Snippet)
		cmd.Printf("    %s\n", result.ID)
		cmd.Println()
	}
	return nil
}
