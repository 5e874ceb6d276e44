package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/studyshelf/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive reader",
	Long: `Launch the interactive terminal reader.

Controls:
  enter    - Search
  ↑/k, ↓/j - Navigate results
  esc      - Back
  ctrl+d   - Today's daily reflection
  ←/h, →/l - Previous / next day
  r        - Random day
  ctrl+r   - Refresh sources
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Library:  services.Library,
		Search:   services.Search,
		Annotate: services.Annotation,
		Glossary: services.Glossary,
		Daily:    services.Daily,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
