package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

var (
	dailyRandom bool
	dailyNext   bool
	dailyPrev   bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily [month] [day]",
	Short: "Read a daily reflection",
	Long: `Prints a daily reflection. With no arguments today's entry is shown,
falling back to the first entry when today's date has none. A month name
alone lists that month's entries; month and day print one entry.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().BoolVar(&dailyRandom, "random", false, "show a random entry")
	dailyCmd.Flags().BoolVar(&dailyNext, "next", false, "show the entry after the selected date")
	dailyCmd.Flags().BoolVar(&dailyPrev, "prev", false, "show the entry before the selected date")
	dailyCmd.MarkFlagsMutuallyExclusive("random", "next", "prev")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	if err := ensureLibrary(cmd); err != nil {
		return err
	}

	if dailyRandom {
		section, err := services.Daily.Random()
		if err != nil {
			return fmt.Errorf("no daily entries loaded: %w", err)
		}
		printDaily(cmd, section)
		return nil
	}

	if len(args) == 1 {
		return listMonth(cmd, args[0])
	}

	var section *domain.Section
	var err error
	if len(args) == 2 {
		day, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return fmt.Errorf("day %q: %w", args[1], domain.ErrInvalidInput)
		}
		section, err = services.Daily.ByDate(args[0], day)
		if err != nil {
			return fmt.Errorf("no entry for %s %d: %w", args[0], day, err)
		}
	} else {
		section, err = services.Daily.Today()
		if err != nil {
			return fmt.Errorf("no daily entries loaded: %w", err)
		}
	}

	if dailyNext || dailyPrev {
		direction := 1
		if dailyPrev {
			direction = -1
		}
		section, err = services.Daily.Shift(section, direction)
		if err != nil {
			return fmt.Errorf("no adjacent entry: %w", err)
		}
	}

	printDaily(cmd, section)
	return nil
}

func listMonth(cmd *cobra.Command, month string) error {
	if domain.MonthIndex(month) < 0 {
		return fmt.Errorf("month %q: %w", month, domain.ErrInvalidInput)
	}
	entries := services.Daily.Entries(month)
	if len(entries) == 0 {
		cmd.Printf("No entries for %s.\n", month)
		return nil
	}
	for i := range entries {
		cmd.Printf("  %2d  %s\n", entries[i].Meta.Day, entries[i].Heading)
	}
	return nil
}

func printDaily(cmd *cobra.Command, section *domain.Section) {
	cmd.Println(section.Heading)
	cmd.Println()
	for _, text := range section.Paragraphs {
		// Quote detection is suppressed inside the daily document.
		matches := services.Annotation.Resolve(text, "", domain.AnnotateOptions{})
		cmd.Println(renderer.Annotate(text, matches))
		cmd.Println()
	}
	if source := section.Meta.Source; source != "" {
		cmd.Printf("— %s\n", source)
	}
}
