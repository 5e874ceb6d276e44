// Package cli implements the StudyShelf command line interface using cobra.
// Commands are thin: they parse arguments, call driving ports and format
// output. Services are injected once at startup via SetServices.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/studyshelf/internal/adapters/driving/render"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driven"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driving"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services aggregates everything the commands need.
type Services struct {
	Config     driven.ConfigStore
	Library    driving.LibraryService
	Search     driving.SearchService
	Annotation driving.AnnotationService
	Glossary   driving.GlossaryService
	Daily      driving.DailyService
}

var (
	services Services
	renderer = render.New(nil)
	verbose  bool
)

// SetServices injects the application services used by all commands.
func SetServices(s Services) {
	services = s
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "studyshelf",
	Short: "A reading companion for the recovery library",
	Long: `StudyShelf loads a small library of recovery texts, indexes every
paragraph, and lets you search, read and study them from the terminal.

Texts are fetched from the hosted library (or a local folder) and cached
locally, so the shelf keeps working offline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureLibrary loads the library if no snapshot has been published yet.
// A load that produced at least one document is good enough even if some
// sources failed.
func ensureLibrary(cmd *cobra.Command) error {
	if services.Library == nil {
		return errors.New("library service not configured")
	}
	if snap := services.Library.Snapshot(); snap != nil && !snap.Empty() {
		return nil
	}
	if _, err := services.Library.Load(cmd.Context(), false); err != nil {
		return fmt.Errorf("loading library: %w", err)
	}
	return nil
}
