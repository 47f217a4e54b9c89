package cmd

import (
	"io"

	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/pkg/qr"

	"github.com/spf13/cobra"
)

type qrResult struct {
	URL  string `json:"url" yaml:"url"`
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

var (
	qrSize       int
	qrColor      string
	qrBackground string
	qrDownload   bool
	qrOut        string
	qrForce      bool
)

var qrCmd = &cobra.Command{
	Use:   "qr <text...>",
	Short: "Build a QR code image URL and optionally download it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, "")
		if err != nil {
			return err
		}

		req := qr.Request{Text: text, Size: qrSize, Color: qrColor, Background: qrBackground}
		downloader := newQRDownloader(cfg)

		url, err := downloader.URL(req)
		if err != nil {
			return err
		}
		result := qrResult{URL: url}

		if qrDownload {
			out := qrOut
			if out == "" {
				out = cfg.QR.Output
			}
			if result.File, err = downloader.Download(cmd.Context(), req, out, qrForce); err != nil {
				return err
			}
			logging.WithComponentAndTool("cli", "qr").WithField("file", result.File).Info("QR code saved")
		}

		return render(cmd, result, func(w io.Writer) error {
			if result.File != "" {
				return printLine(w, result.File)
			}
			return printLine(w, result.URL)
		})
	},
}

func init() {
	qrCmd.Flags().IntVarP(&qrSize, "size", "s", qr.DefaultSize, "Image edge in pixels")
	qrCmd.Flags().StringVar(&qrColor, "color", qr.DefaultColor, "Foreground colour (hex)")
	qrCmd.Flags().StringVar(&qrBackground, "background", qr.DefaultBackground, "Background colour (hex)")
	qrCmd.Flags().BoolVarP(&qrDownload, "download", "d", false, "Download the image")
	qrCmd.Flags().StringVar(&qrOut, "out", "", "Destination file (default from config)")
	qrCmd.Flags().BoolVar(&qrForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(qrCmd)
}
