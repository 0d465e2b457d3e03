package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kamilburda/gimp-export-layers/internal/layertree"
	"github.com/kamilburda/gimp-export-layers/pkg/renamer"
)

var (
	// render flags
	patternString string
	treeFile      string
	fileExtension string
	includeGroups bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the pattern over a layer tree",
	Long: `Render a filename pattern over all layers of a layer tree, printing one
name per line in layer order.

The layer tree is described in a YAML file:

  image:
    name: Image.xcf
    width: 1000
    height: 500
    layers:
      - name: foreground
      - name: Corners
        layers:
          - name: corner

Examples:
  # Number layers per group
  layername render -p "image[001]" -t layers.yaml

  # Full layer paths, keeping extensions matching the output format
  layername render -p "[layer path, -, %c, %i]" -t layers.yaml -e png

  # Include layer groups themselves as items
  layername render -p "[layer name]" -t layers.yaml --include-groups`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&patternString, "pattern", "p", "",
		"Filename pattern (required)")
	renderCmd.Flags().StringVarP(&treeFile, "tree", "t", "",
		"Layer tree YAML file (required)")
	renderCmd.Flags().StringVarP(&fileExtension, "file-extension", "e", "",
		"Output file extension compared against by the %i field mode")
	renderCmd.Flags().BoolVar(&includeGroups, "include-groups", false,
		"Render names for layer groups as well")

	_ = renderCmd.MarkFlagRequired("pattern")
	_ = renderCmd.MarkFlagRequired("tree")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	return renderTree(cmd.OutOrStdout(), patternString, treeFile, fileExtension, includeGroups)
}

func renderTree(out io.Writer, patternString, treePath, extension string, includeGroups bool) error {
	tree, err := layertree.Load(treePath)
	if err != nil {
		return fmt.Errorf("loading layer tree: %w", err)
	}

	items := layertree.Flatten(tree, layertree.FlattenOptions{
		IncludeGroups: includeGroups,
	})
	slog.Debug("flattened layer tree", "items", len(items))

	r := renamer.New(patternString, renamer.WithFileExtension(extension))
	for _, name := range r.Render(items) {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}

	return nil
}
