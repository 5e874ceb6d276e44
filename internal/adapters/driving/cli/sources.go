package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List loaded documents",
	Long: `Lists every document in the current library with its paragraph count,
plus a hint for each known document that is missing.`,
	Args: cobra.NoArgs,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	if err := ensureLibrary(cmd); err != nil {
		return err
	}
	snap := services.Library.Snapshot()

	loaded := make(map[string]bool, len(snap.Documents))
	for i := range snap.Documents {
		doc := &snap.Documents[i]
		loaded[doc.ID] = true
		cmd.Printf("  %-12s %s (%d sections, %d paragraphs)\n",
			doc.ID, doc.Title, len(doc.Sections), doc.ParagraphCount())
	}

	for _, id := range domain.SourceOrder {
		if loaded[id] {
			continue
		}
		if hint, ok := domain.SourceHints[id]; ok {
			cmd.Printf("  %-12s missing — %s\n", id, hint)
		}
	}
	return nil
}
