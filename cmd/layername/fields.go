package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kamilburda/gimp-export-layers/pkg/renamer"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List available pattern fields",
	Long: `List the fields available in filename patterns, with the accepted number
of arguments and usage examples for each.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printFields(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func printFields(out io.Writer) error {
	for i, spec := range renamer.Fields() {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}

		argRange := fmt.Sprintf("%d or more", spec.MinArgs)
		if spec.MaxArgs >= 0 {
			argRange = fmt.Sprintf("%d to %d", spec.MinArgs, spec.MaxArgs)
		}

		if _, err := fmt.Fprintf(out, "%s\n  usage: %s\n  arguments: %s\n",
			spec.Name, spec.Usage, argRange); err != nil {
			return err
		}
		for _, example := range spec.Examples {
			if _, err := fmt.Fprintf(out, "  %s\n", example); err != nil {
				return err
			}
		}
	}

	return nil
}
