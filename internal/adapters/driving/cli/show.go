package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/studyshelf/internal/adapters/driving/render"
	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

var (
	showTerm    string
	showNoColor bool
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a document or a single paragraph",
	Long: `Shows library content by id. A document id (e.g. "bbook") prints the
table of contents; a paragraph id as printed by search (e.g. "p-s0-2-1")
prints that paragraph with its annotations.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showTerm, "term", "", "highlight occurrences of this term")
	showCmd.Flags().BoolVar(&showNoColor, "no-color", false, "disable annotation styling")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := ensureLibrary(cmd); err != nil {
		return err
	}
	snap := services.Library.Snapshot()

	id := args[0]
	if strings.HasPrefix(id, "p-") {
		return showParagraph(cmd, snap, id)
	}
	return showDocument(cmd, snap, id)
}

func showParagraph(cmd *cobra.Command, snap *domain.Snapshot, id string) error {
	key, sectionIndex, paragraphIndex, err := domain.ParseParagraphID(id)
	if err != nil {
		return fmt.Errorf("invalid paragraph id %q: %w", id, err)
	}

	docID, ok := snap.Keys[key]
	if !ok {
		return fmt.Errorf("paragraph %q: %w", id, domain.ErrNotFound)
	}
	doc := snap.DocumentByID(docID)
	if doc == nil || sectionIndex >= len(doc.Sections) {
		return fmt.Errorf("paragraph %q: %w", id, domain.ErrNotFound)
	}
	section := &doc.Sections[sectionIndex]
	if paragraphIndex >= len(section.Paragraphs) {
		return fmt.Errorf("paragraph %q: %w", id, domain.ErrNotFound)
	}

	text := section.Paragraphs[paragraphIndex]
	opts := domain.AnnotateOptions{IncludeQuotes: doc.ID != domain.DailyDocumentID}
	matches := services.Annotation.Resolve(text, showTerm, opts)

	r := renderer
	if showNoColor {
		r = render.New(render.PlainTheme())
	}
	cmd.Printf("%s — %s\n\n", doc.Title, section.Heading)
	cmd.Println(r.Annotate(text, matches))
	for _, m := range matches {
		if m.Kind == domain.MatchKindQuote && m.Title != "" {
			cmd.Printf("\n  ↳ %s\n", m.Title)
		}
	}
	return nil
}

func showDocument(cmd *cobra.Command, snap *domain.Snapshot, id string) error {
	doc := snap.DocumentByID(id)
	if doc == nil {
		if hint, ok := domain.SourceHints[id]; ok {
			return fmt.Errorf("document %q is not loaded. %s", id, hint)
		}
		return fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}

	cmd.Println(doc.Title)
	if doc.Author != "" {
		cmd.Printf("by %s\n", doc.Author)
	}
	cmd.Println()
	for i := range doc.Sections {
		section := &doc.Sections[i]
		cmd.Printf("  %3d. %s", i+1, section.Heading)
		if len(section.Paragraphs) > 0 {
			cmd.Printf("  (%d paragraphs)", len(section.Paragraphs))
		}
		cmd.Println()
	}
	return nil
}
