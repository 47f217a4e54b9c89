package cmd

import (
	"io"

	"golang-devtools/internal/pkg/color"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color <hex>",
	Short: "Convert a hex colour to RGB and HSL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formats, err := color.Convert(args[0])
		if err != nil {
			return err
		}
		return render(cmd, formats, func(w io.Writer) error {
			return printTable(w, nil, []table.Row{
				{"HEX", formats.Hex},
				{"RGB", formats.RGB},
				{"RGBA", formats.RGBA},
				{"HSL", formats.HSL},
				{"HSLA", formats.HSLA},
				{"CSS", formats.Filter},
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
}
