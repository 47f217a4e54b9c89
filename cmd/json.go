package cmd

import (
	"io"

	"golang-devtools/internal/pkg/jsonfmt"

	"github.com/spf13/cobra"
)

var (
	jsonIndent int
	jsonMinify bool
	jsonFile   string
)

var jsonCmd = &cobra.Command{
	Use:   "json [document...]",
	Short: "Pretty-print or minify JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args, jsonFile)
		if err != nil {
			return err
		}

		var out string
		if jsonMinify {
			out, err = jsonfmt.Minify(input)
		} else {
			out, err = jsonfmt.Format(input, jsonIndent)
		}
		if err != nil {
			return err
		}
		return render(cmd, codecResult{Input: input, Output: out}, func(w io.Writer) error {
			return printLine(w, out)
		})
	},
}

func init() {
	jsonCmd.Flags().IntVarP(&jsonIndent, "indent", "i", jsonfmt.DefaultIndent, "Spaces per indentation level")
	jsonCmd.Flags().BoolVarP(&jsonMinify, "minify", "m", false, "Strip insignificant whitespace")
	jsonCmd.Flags().StringVarP(&jsonFile, "file", "f", "", "Read input from file (- for stdin)")
	rootCmd.AddCommand(jsonCmd)
}
