// Command layername renders output filenames for image layers from a
// filename pattern.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "layername",
	Short: "Render output filenames for image layers from a pattern",
	Long: `layername renders output filenames for image layers from a declarative
filename pattern.

Patterns mix literal text with bracketed fields:

  layername render --pattern "export_[layer path, -]_[001]" --tree layers.yaml

Run "layername fields" for the list of available fields and their usage.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
