package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var defineList bool

var defineCmd = &cobra.Command{
	Use:   "define [term]",
	Short: "Look up a term in the dictionary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDefine,
}

func init() {
	defineCmd.Flags().BoolVar(&defineList, "list", false, "list every term grouped by letter")
	rootCmd.AddCommand(defineCmd)
}

func runDefine(cmd *cobra.Command, args []string) error {
	if err := ensureLibrary(cmd); err != nil {
		return err
	}

	if defineList || len(args) == 0 {
		return listTerms(cmd)
	}

	term := args[0]
	entry, err := services.Glossary.Define(term)
	if err != nil {
		return fmt.Errorf("no definition for %q: %w", term, err)
	}

	cmd.Println(entry.Term)
	if entry.Pronunciation != "" {
		cmd.Printf("  /%s/\n", entry.Pronunciation)
	}
	cmd.Println()
	if len(entry.Parts) > 1 {
		for i, part := range entry.Parts {
			cmd.Printf("  %d. %s\n", i+1, part)
		}
	} else {
		cmd.Printf("  %s\n", entry.Definition)
	}
	if entry.Pages != "" {
		cmd.Printf("\n  pages %s\n", entry.Pages)
	}
	return nil
}

func listTerms(cmd *cobra.Command) error {
	buckets := services.Glossary.TermsByLetter()
	if len(buckets) == 0 {
		cmd.Println("The dictionary is not loaded.")
		return nil
	}

	letters := make([]string, 0, len(buckets))
	for letter := range buckets {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	for _, letter := range letters {
		cmd.Println(letter)
		for _, entry := range buckets[letter] {
			cmd.Printf("  %s\n", entry.Term)
		}
	}
	return nil
}
