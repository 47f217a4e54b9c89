package cmd

import (
	"io"

	"golang-devtools/internal/pkg/textcase"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var caseFile string

var caseCmd = &cobra.Command{
	Use:   "case [text...]",
	Short: "Render a text in every letter case style",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args, caseFile)
		if err != nil {
			return err
		}

		res := textcase.Convert(input)
		return render(cmd, res, func(w io.Writer) error {
			return printTable(w, nil, []table.Row{
				{"UPPER", res.Upper},
				{"lower", res.Lower},
				{"Title", res.Title},
				{"Sentence", res.Sentence},
				{"camelCase", res.Camel},
				{"PascalCase", res.Pascal},
				{"snake_case", res.Snake},
				{"kebab-case", res.Kebab},
			})
		})
	},
}

func init() {
	caseCmd.Flags().StringVarP(&caseFile, "file", "f", "", "Read input from file (- for stdin)")
	rootCmd.AddCommand(caseCmd)
}
