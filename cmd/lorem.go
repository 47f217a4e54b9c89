package cmd

import (
	"io"

	"golang-devtools/internal/pkg/lorem"

	"github.com/spf13/cobra"
)

var loremCount int

var loremCmd = &cobra.Command{
	Use:       "lorem [words|sentences|paragraphs]",
	Short:     "Generate Lorem Ipsum placeholder text",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(lorem.Words), string(lorem.Sentences), string(lorem.Paragraphs)},
	RunE: func(cmd *cobra.Command, args []string) error {
		var kindArg string
		if len(args) == 1 {
			kindArg = args[0]
		}
		kind, err := lorem.ParseKind(kindArg)
		if err != nil {
			return err
		}

		text, err := lorem.Generate(kind, loremCount)
		if err != nil {
			return err
		}
		return render(cmd, map[string]string{"type": string(kind), "text": text}, func(w io.Writer) error {
			return printLine(w, text)
		})
	},
}

func init() {
	loremCmd.Flags().IntVarP(&loremCount, "count", "n", 3, "Number of units to generate")
	rootCmd.AddCommand(loremCmd)
}
