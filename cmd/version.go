package cmd

import (
	"io"

	"golang-devtools/internal/pkg/version"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and git info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetGitInfo()
		return render(cmd, info, func(w io.Writer) error {
			return printTable(w, nil, []table.Row{
				{"Tag", info.Tag},
				{"Branch", info.Branch},
				{"Commit", info.Commit},
				{"Dirty", info.Dirty},
				{"Go", info.GoVersion},
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
