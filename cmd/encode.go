package cmd

import (
	"io"

	"golang-devtools/internal/pkg/codec"

	"github.com/spf13/cobra"
)

type codecResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

var (
	base64Decode bool
	base64File   string
	urlDecode    bool
	urlFile      string
)

var base64Cmd = &cobra.Command{
	Use:   "base64 [text...]",
	Short: "Encode or decode Base64",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args, base64File)
		if err != nil {
			return err
		}

		out := codec.EncodeBase64(input)
		if base64Decode {
			if out, err = codec.DecodeBase64(input); err != nil {
				return err
			}
		}
		return renderCodec(cmd, input, out)
	},
}

var urlCmd = &cobra.Command{
	Use:   "url [text...]",
	Short: "Percent-encode or decode a URI component",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args, urlFile)
		if err != nil {
			return err
		}

		out := codec.EncodeURIComponent(input)
		if urlDecode {
			if out, err = codec.DecodeURIComponent(input); err != nil {
				return err
			}
		}
		return renderCodec(cmd, input, out)
	},
}

func renderCodec(cmd *cobra.Command, input, output string) error {
	return render(cmd, codecResult{Input: input, Output: output}, func(w io.Writer) error {
		return printLine(w, output)
	})
}

func init() {
	base64Cmd.Flags().BoolVarP(&base64Decode, "decode", "d", false, "Decode instead of encode")
	base64Cmd.Flags().StringVarP(&base64File, "file", "f", "", "Read input from file (- for stdin)")
	urlCmd.Flags().BoolVarP(&urlDecode, "decode", "d", false, "Decode instead of encode")
	urlCmd.Flags().StringVarP(&urlFile, "file", "f", "", "Read input from file (- for stdin)")

	rootCmd.AddCommand(base64Cmd)
	rootCmd.AddCommand(urlCmd)
}
