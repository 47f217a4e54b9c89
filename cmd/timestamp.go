package cmd

import (
	"io"
	"time"

	"golang-devtools/internal/pkg/timestamp"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var timestampMillis bool

var timestampCmd = &cobra.Command{
	Use:   "timestamp [value]",
	Short: "Convert a Unix timestamp, or show the current one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		var conv timestamp.Conversion
		switch {
		case len(args) == 0:
			conv = timestamp.Now(time.Now, loc)
		case timestampMillis:
			ms, err := timestamp.ParseMillis(args[0])
			if err != nil {
				return err
			}
			if conv, err = timestamp.FromMillis(ms, loc); err != nil {
				return err
			}
		default:
			sec, err := timestamp.ParseSeconds(args[0])
			if err != nil {
				return err
			}
			if conv, err = timestamp.FromSeconds(sec, loc); err != nil {
				return err
			}
		}

		return render(cmd, conv, func(w io.Writer) error {
			return printTable(w, nil, []table.Row{
				{"Seconds", conv.Seconds},
				{"Milliseconds", conv.Milliseconds},
				{"Local", conv.Local},
				{"UTC", conv.UTC},
				{"ISO 8601", conv.ISO},
			})
		})
	},
}

func init() {
	timestampCmd.Flags().BoolVarP(&timestampMillis, "millis", "m", false, "Interpret the value as milliseconds")
	rootCmd.AddCommand(timestampCmd)
}
