package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch every source, bypassing HTTP caches",
	Args:  cobra.NoArgs,
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	snap, err := services.Library.Load(cmd.Context(), true)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}
	cmd.Printf("Loaded %d documents (%d paragraphs).\n", len(snap.Documents), len(snap.Paragraphs))
	return nil
}
