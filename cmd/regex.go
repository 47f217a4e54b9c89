package cmd

import (
	"fmt"
	"io"
	"strings"

	"golang-devtools/internal/pkg/regextest"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	regexGlobal     bool
	regexIgnoreCase bool
	regexMultiline  bool
	regexFile       string
)

var regexCmd = &cobra.Command{
	Use:   "regex <pattern> [text...]",
	Short: "Test a regular expression against a text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[1:], regexFile)
		if err != nil {
			return err
		}

		result, err := regextest.Test(regextest.Request{
			Pattern:    args[0],
			Text:       text,
			Global:     regexGlobal,
			IgnoreCase: regexIgnoreCase,
			Multiline:  regexMultiline,
		})
		if err != nil {
			return err
		}

		return render(cmd, result, func(w io.Writer) error {
			if result.Count == 0 {
				return printLine(w, "No matches")
			}
			rows := make([]table.Row, 0, len(result.Matches))
			for i, m := range result.Matches {
				rows = append(rows, table.Row{i + 1, m.Index, m.Text, strings.Join(m.Groups, ", ")})
			}
			if err := printTable(w, table.Row{"#", "Index", "Match", "Groups"}, rows); err != nil {
				return err
			}
			return printLine(w, fmt.Sprintf("%d match(es): %s", result.Count, result.Highlighted))
		})
	},
}

func init() {
	regexCmd.Flags().BoolVarP(&regexGlobal, "global", "g", false, "Return every match")
	regexCmd.Flags().BoolVarP(&regexIgnoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	regexCmd.Flags().BoolVarP(&regexMultiline, "multiline", "m", false, "^ and $ match at line breaks")
	regexCmd.Flags().StringVarP(&regexFile, "file", "f", "", "Read text from file (- for stdin)")
	rootCmd.AddCommand(regexCmd)
}
