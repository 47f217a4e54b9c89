package cmd

import (
	"io"
	"strings"

	"golang-devtools/internal/pkg/uuidgen"

	"github.com/spf13/cobra"
)

var (
	uuidCount   int
	uuidVersion int
)

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Generate UUIDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := uuidgen.Generate(uuidCount, uuidVersion)
		if err != nil {
			return err
		}
		return render(cmd, ids, func(w io.Writer) error {
			return printLine(w, strings.Join(ids, "\n"))
		})
	},
}

func init() {
	uuidCmd.Flags().IntVarP(&uuidCount, "count", "n", uuidgen.DefaultCount, "Number of UUIDs to generate")
	uuidCmd.Flags().IntVarP(&uuidVersion, "version", "v", uuidgen.DefaultVersion, "UUID version (4 or 7)")
	rootCmd.AddCommand(uuidCmd)
}
