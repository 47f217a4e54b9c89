package cmd

import (
	"io"
	"strings"

	"golang-devtools/internal/pkg/hash"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	hashAlgorithms []string
	hashFile       string
	hashList       bool
)

var hashCmd = &cobra.Command{
	Use:   "hash [text...]",
	Short: "Compute message digests",
	RunE: func(cmd *cobra.Command, args []string) error {
		if hashList {
			names := hash.Algorithms()
			return render(cmd, names, func(w io.Writer) error {
				return printLine(w, strings.Join(names, "\n"))
			})
		}

		input, err := readInput(args, hashFile)
		if err != nil {
			return err
		}

		digests, err := hash.SumAll(input, hashAlgorithms...)
		if err != nil {
			return err
		}
		return render(cmd, digests, func(w io.Writer) error {
			rows := make([]table.Row, 0, len(digests))
			for _, d := range digests {
				rows = append(rows, table.Row{strings.ToUpper(d.Algorithm), d.Hex})
			}
			return printTable(w, table.Row{"Algorithm", "Digest"}, rows)
		})
	},
}

func init() {
	hashCmd.Flags().StringSliceVarP(&hashAlgorithms, "algorithm", "a", nil, "Digest algorithm, repeatable (default md5,sha1,sha256)")
	hashCmd.Flags().StringVarP(&hashFile, "file", "f", "", "Read input from file (- for stdin)")
	hashCmd.Flags().BoolVar(&hashList, "list", false, "List supported algorithms")
	rootCmd.AddCommand(hashCmd)
}
