package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert Japanese text into an Anki deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout())
		},
	}
}

// runConvert is a placeholder: deck building is not implemented yet.
// TODO: take an input file and an output path and feed the tokenized
// morphemes into a card template once the deck format is settled.
func runConvert(out io.Writer) error {
	if _, err := fmt.Fprintln(out, "Converting text to Anki deck format..."); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, "Conversion complete!")
	return err
}
