package cmd

import (
	"io"
	"strings"

	"golang-devtools/internal/pkg/textdiff"

	"github.com/spf13/cobra"
)

var (
	diffUnified bool
	diffContext int
)

var diffCmd = &cobra.Command{
	Use:   "diff <left-file> <right-file>",
	Short: "Compare two texts line by line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := fileManager.ReadFile(args[0])
		if err != nil {
			return err
		}
		right, err := fileManager.ReadFile(args[1])
		if err != nil {
			return err
		}

		if diffUnified {
			out, err := textdiff.Unified(string(left), string(right), diffContext)
			if err != nil {
				return err
			}
			return render(cmd, map[string]string{"unified": out}, func(w io.Writer) error {
				_, err := io.WriteString(w, out)
				return err
			})
		}

		result, err := textdiff.Compare(strings.TrimSuffix(string(left), "\n"), strings.TrimSuffix(string(right), "\n"))
		if err != nil {
			return err
		}
		return render(cmd, result, func(w io.Writer) error {
			if result.Identical() {
				return printLine(w, "Texts are identical")
			}
			_, err := io.WriteString(w, result.String())
			return err
		})
	},
}

func init() {
	diffCmd.Flags().BoolVarP(&diffUnified, "unified", "u", false, "Print a unified diff")
	diffCmd.Flags().IntVarP(&diffContext, "context", "U", 3, "Lines of context for --unified")
	rootCmd.AddCommand(diffCmd)
}
